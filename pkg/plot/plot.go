// Package plot draws a plan view of an axis system to a PNG image.
package plot

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/philipparndt/goaxis/internal/logging"
	"github.com/philipparndt/goaxis/pkg/axis"
	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/config"
	"github.com/philipparndt/goaxis/pkg/geometry"
)

// Options controls the raster output
type Options struct {
	Width      int
	Height     int
	Margin     int
	Background string
	LineColor  string
	LineWidth  float64
	// FontPath enables bubble numbers and axis labels. Without a font only
	// the geometry is drawn.
	FontPath string
}

// OptionsFromConfig takes the plot settings from cfg
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:      cfg.Plot.Width,
		Height:     cfg.Plot.Height,
		Margin:     cfg.Plot.Margin,
		Background: cfg.Plot.Background,
		LineColor:  cfg.Plot.LineColor,
		LineWidth:  cfg.Axis.LineWidth,
		FontPath:   cfg.Text.Font,
	}
}

// Render draws the placed axes, bubbles and labels of sys. The caller owns
// the returned context and must Close it.
func Render(sys *axisfile.System, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid plot size %dx%d", opts.Width, opts.Height)
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}

	segments := sys.Segments()
	bubbles := sys.Bubbles()
	annotations := placedAnnotations(sys)
	view := Fit(extent(segments, bubbles, annotations), opts.Width, opts.Height, opts.Margin)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.ClearWithColor(gg.Hex(opts.Background))
	dc.SetHexColor(opts.LineColor)
	dc.SetLineWidth(opts.LineWidth)

	if dashes := sys.DrawStyle.Dashes(opts.LineWidth * 1.5); dashes != nil {
		dc.SetDash(dashes...)
	}
	for _, s := range segments {
		x1, y1 := view.Project(s.Start)
		x2, y2 := view.Project(s.End)
		dc.DrawLine(x1, y1, x2, y2)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke axis: %w", err)
		}
	}
	dc.ClearDash()

	for _, b := range bubbles {
		drawBubble(dc, view, b)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke bubble: %w", err)
		}
	}

	if opts.FontPath != "" && (len(bubbles) > 0 || len(annotations) > 0) {
		if err := drawText(dc, view, opts.FontPath, sys, bubbles, annotations); err != nil {
			dc.Close()
			return nil, err
		}
	}

	logging.Logger().Debug("Rendered plot",
		slog.String("system", sys.Name),
		slog.Int("segments", len(segments)),
		slog.Int("bubbles", len(bubbles)),
		slog.Float64("scale", view.Scale))

	return dc, nil
}

// SavePNG renders sys and writes the image to path
func SavePNG(sys *axisfile.System, opts Options, path string) error {
	dc, err := Render(sys, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func drawBubble(dc *gg.Context, view Viewport, b axis.Bubble) {
	if b.Shape == axis.Circle {
		x, y := view.Project(b.Center)
		dc.DrawCircle(x, y, b.Radius*view.Scale)
		return
	}
	for i, p := range b.Outline {
		x, y := view.Project(p)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

func drawText(dc *gg.Context, view Viewport, fontPath string, sys *axisfile.System, bubbles []axis.Bubble, annotations []axis.Annotation) error {
	source, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		return fmt.Errorf("failed to load font %s: %w", fontPath, err)
	}
	defer source.Close()

	size := sys.Bubble.FontSize * view.Scale
	if len(bubbles) > 0 {
		size = math.Min(size, bubbles[0].Radius*view.Scale)
	}
	dc.SetFont(source.Face(math.Max(size, 6)))

	for _, b := range bubbles {
		x, y := numberBaseline(view, b)
		dc.DrawStringAnchored(b.Number, x, y, 0.5, 0)
	}
	for _, a := range annotations {
		x, y := view.Project(a.Position)
		dc.Push()
		// image Y points down, so plan rotations flip sign
		dc.RotateAbout(-a.Rotation*math.Pi/180, x, y)
		dc.DrawString(a.Text, x, y)
		dc.Pop()
	}
	return nil
}

// numberBaseline is where a bubble number's centered baseline sits in pixels
func numberBaseline(view Viewport, b axis.Bubble) (x, y float64) {
	return view.Project(b.TextPosition)
}

func placedAnnotations(sys *axisfile.System) []axis.Annotation {
	annotations := sys.Definition.Annotations(sys.LabelOffset)
	p := sys.Definition.Placement
	for i := range annotations {
		annotations[i].Position = p.Apply(annotations[i].Position)
		annotations[i].Rotation += p.Rotation
	}
	return annotations
}

func extent(segments []geometry.Segment, bubbles []axis.Bubble, annotations []axis.Annotation) geometry.BoundingBox {
	bbox := geometry.BoundsOf(segments)
	for _, b := range bubbles {
		r := geometry.NewVector3(b.Radius, b.Radius, 0)
		bbox.Extend(b.Center.Add(r))
		bbox.Extend(b.Center.Sub(r))
		for _, p := range b.Outline {
			bbox.Extend(p)
		}
	}
	for _, a := range annotations {
		bbox.Extend(a.Position)
	}
	return bbox
}
