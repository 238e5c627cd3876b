package axisfile

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/goaxis/internal/logging"
	"github.com/philipparndt/goaxis/pkg/axis"
	"github.com/philipparndt/goaxis/pkg/config"
	"github.com/philipparndt/goaxis/pkg/geometry"
)

// System is a fully resolved axis system: the geometry definition plus
// the presentation settings, with configuration defaults filled in.
type System struct {
	Name        string
	Source      string
	Definition  axis.Definition
	Numbering   axis.Numbering
	Bubble      axis.BubbleOptions
	DrawStyle   axis.DrawStyle
	LabelOffset geometry.Placement
}

// Load parses filename and resolves it against cfg
func Load(filename string, cfg *config.Config) (*System, error) {
	doc, err := Parse(filename)
	if err != nil {
		return nil, err
	}
	sys, err := Resolve(doc, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	sys.Source = filename
	return sys, nil
}

// Resolve turns a document into a System. Settings the document leaves
// out come from cfg. Omitted angles default to zero for every axis;
// angles given with the wrong count are kept, leaving nothing to draw.
func Resolve(doc *Document, cfg *config.Config) (*System, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := logging.Logger()

	def := axis.Definition{
		Distances:    doc.Distances,
		Angles:       doc.Angles,
		Labels:       doc.Labels,
		Length:       cfg.Axis.Length,
		Limit:        cfg.Axis.Limit,
		CustomNumber: doc.CustomNumber,
		Placement:    doc.Placement.placement(),
	}
	if doc.Length != nil {
		def.Length = *doc.Length
	}
	if doc.Limit != nil {
		def.Limit = *doc.Limit
	}
	if doc.Angles == nil {
		def.Angles = make([]float64, len(doc.Distances))
	} else if len(doc.Angles) != len(doc.Distances) {
		logger.Warn("Distances and angles differ in length, nothing to draw",
			slog.String("system", doc.Name),
			slog.Int("distances", len(doc.Distances)),
			slog.Int("angles", len(doc.Angles)))
	}
	if def.Length <= 0 {
		logger.Warn("Axis length is not positive, nothing to draw", slog.String("system", doc.Name))
	}

	numbering, err := cfg.Numbering()
	if err != nil {
		return nil, err
	}
	if doc.Numbering.Style != "" {
		if numbering.Style, err = axis.ParseStyle(doc.Numbering.Style); err != nil {
			return nil, err
		}
	}
	if doc.Numbering.Start != 0 {
		numbering.StartNumber = doc.Numbering.Start
	}
	numbering.Custom = doc.CustomNumber

	bubbles := axis.BubbleOptions{Size: cfg.BubbleSize(), FontSize: cfg.FontSize()}
	if bubbles.Position, err = cfg.BubblePosition(); err != nil {
		return nil, err
	}
	if doc.Bubbles.Position != "" {
		if bubbles.Position, err = axis.ParseBubblePosition(doc.Bubbles.Position); err != nil {
			return nil, err
		}
	}
	if doc.Bubbles.Size > 0 {
		bubbles.Size = doc.Bubbles.Size
	}
	if doc.Bubbles.FontSize > 0 {
		bubbles.FontSize = doc.Bubbles.FontSize
	}

	drawStyle, err := cfg.DrawStyle()
	if err != nil {
		return nil, err
	}
	if doc.DrawStyle != "" {
		if drawStyle, err = axis.ParseDrawStyle(doc.DrawStyle); err != nil {
			return nil, err
		}
	}

	logger.Debug("Resolved axis system",
		slog.String("system", doc.Name),
		slog.Int("axes", def.AxisCount()),
		slog.Float64("length", def.Length),
		slog.Float64("limit", def.Limit))

	return &System{
		Name:        doc.Name,
		Definition:  def,
		Numbering:   numbering,
		Bubble:      bubbles,
		DrawStyle:   drawStyle,
		LabelOffset: doc.LabelOffset.placement(),
	}, nil
}

func (p PlacementSpec) placement() geometry.Placement {
	return geometry.Placement{
		Base:     geometry.NewVector3(p.X, p.Y, p.Z),
		Rotation: p.Rotation,
	}
}

// Segments returns the placed segments of the system
func (s *System) Segments() []geometry.Segment {
	return s.Definition.PlacedSegments()
}

// Labels returns one number per axis, parallel to the axes
func (s *System) Labels() []string {
	return s.Numbering.Labels(s.Definition.AxisCount())
}

// Bubbles lays out the system's bubbles in the placed frame
func (s *System) Bubbles() []axis.Bubble {
	bubbles := s.Definition.Bubbles(s.Bubble, s.Numbering)
	p := s.Definition.Placement
	for i := range bubbles {
		b := &bubbles[i]
		b.Center = p.Apply(b.Center)
		b.TextPosition = p.Apply(b.TextPosition)
		for j := range b.Outline {
			b.Outline[j] = p.Apply(b.Outline[j])
		}
	}
	return bubbles
}
