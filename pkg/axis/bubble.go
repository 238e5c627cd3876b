package axis

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goaxis/pkg/geometry"
)

// BubblePosition selects where axis bubbles are drawn
type BubblePosition int

const (
	BubbleStart BubblePosition = iota
	BubbleEnd
	BubbleBoth
	BubbleNone
	ArrowLeft
	ArrowRight
	BarLeft
	BarRight
)

var bubblePositionNames = [...]string{
	BubbleStart: "Start",
	BubbleEnd:   "End",
	BubbleBoth:  "Both",
	BubbleNone:  "None",
	ArrowLeft:   "Arrow left",
	ArrowRight:  "Arrow right",
	BarLeft:     "Bar left",
	BarRight:    "Bar right",
}

// String returns the position name, e.g. "Arrow left"
func (p BubblePosition) String() string {
	if p < 0 || int(p) >= len(bubblePositionNames) {
		return fmt.Sprintf("BubblePosition(%d)", int(p))
	}
	return bubblePositionNames[p]
}

// ParseBubblePosition matches a position name case-insensitively. Dashes
// and underscores may stand in for the space ("arrow-left").
func ParseBubblePosition(s string) (BubblePosition, error) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for i, name := range bubblePositionNames {
		if strings.EqualFold(normalized, name) {
			return BubblePosition(i), nil
		}
	}
	return BubbleStart, fmt.Errorf("unknown bubble position %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (p BubblePosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *BubblePosition) UnmarshalText(text []byte) error {
	pos, err := ParseBubblePosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// pairs reports whether every axis carries a bubble at both ends
func (p BubblePosition) pairs() bool {
	switch p {
	case BubbleBoth, ArrowLeft, ArrowRight, BarLeft, BarRight:
		return true
	}
	return false
}

func (p BubblePosition) ends() []AxisEnd {
	switch {
	case p == BubbleNone:
		return nil
	case p == BubbleEnd:
		return []AxisEnd{EndSide}
	case p.pairs():
		return []AxisEnd{StartSide, EndSide}
	default:
		return []AxisEnd{StartSide}
	}
}

// AxisEnd names one end of an axis
type AxisEnd int

const (
	StartSide AxisEnd = iota
	EndSide
)

// BubbleShape is the outline drawn around a bubble number
type BubbleShape int

const (
	Circle BubbleShape = iota
	Arrow
	Bar
)

// BubbleOptions configures bubble layout
type BubbleOptions struct {
	Position BubblePosition
	// Size is the bubble diameter in mm.
	Size float64
	// FontSize is the number text height; zero uses 0.75 of Size.
	FontSize float64
}

// Bubble is one number marker at an axis end, in the axis system's local frame
type Bubble struct {
	Axis   int
	End    AxisEnd
	Shape  BubbleShape
	Center geometry.Vector3
	Radius float64
	// Outline is the closed polygon of arrow and bar markers; nil for circles.
	Outline []geometry.Vector3
	// TextPosition is where the centered number text sits.
	TextPosition geometry.Vector3
	Number       string
}

// Bubbles lays out the bubbles of every axis of d
func (d Definition) Bubbles(opts BubbleOptions, numbering Numbering) []Bubble {
	return LayoutBubbles(d.Segments(), d.Limited(), d.AxisCount(), opts, numbering)
}

// LayoutBubbles places number bubbles on generated segments. limited tells
// whether segments come in stub pairs. Bubbles are returned axis by axis,
// start before end. When both ends carry a bubble they share a number.
func LayoutBubbles(segments []geometry.Segment, limited bool, axisCount int, opts BubbleOptions, numbering Numbering) []Bubble {
	ends := opts.Position.ends()
	if len(segments) == 0 || len(ends) == 0 {
		return nil
	}

	axes := len(segments)
	if limited {
		axes /= 2
	}
	axes = min(axes, axisCount)

	radius := opts.Size / 2
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = radius * 1.5
	}
	normal := geometry.NewVector3(0, 0, 1)

	bubbles := make([]Bubble, 0, axes*len(ends))
	for i := 0; i < axes; i++ {
		var first, last geometry.Vector3
		if limited {
			first, last = segments[i*2].Start, segments[i*2+1].Start
		} else {
			first, last = segments[i].Start, segments[i].End
		}

		number := numbering.Number(i)
		for _, end := range ends {
			// the bubble hangs off tip, pointing away from base
			base, tip := first, last
			if end == EndSide {
				base, tip = last, first
			}
			dv := tip.Sub(base).Normalize()
			chord := dv.Cross(normal)

			b := Bubble{
				Axis:   i,
				End:    end,
				Shape:  Circle,
				Radius: radius,
				Center: tip.Add(dv.Mul(radius)),
				Number: number,
			}
			if left, ok := opts.Position.side(end); ok {
				b.Shape, b.Outline, b.Center = marker(opts.Position, left, tip, dv, chord, radius)
			}
			b.TextPosition = geometry.NewVector3(b.Center.X, b.Center.Y-fontSize/2.5, b.Center.Z)
			bubbles = append(bubbles, b)
		}
	}

	return bubbles
}

// side reports on which side of the axis an arrow or bar marker points.
// ok is false for plain circular bubbles.
func (p BubblePosition) side(end AxisEnd) (left, ok bool) {
	switch p {
	case ArrowLeft, BarLeft:
		return end == StartSide, true
	case ArrowRight, BarRight:
		return end == EndSide, true
	}
	return false, false
}

func marker(p BubblePosition, left bool, tip, dv, chord geometry.Vector3, rad float64) (BubbleShape, []geometry.Vector3, geometry.Vector3) {
	sign := 1.0
	if left {
		sign = -1
	}
	side := chord.Mul(sign)
	p3 := tip.Add(side.Mul(rad / 2))

	if p == ArrowLeft || p == ArrowRight {
		p4 := p3.Sub(dv.Mul(rad * 2))
		p5 := tip.Sub(dv.Mul(rad)).Add(side.Mul(rad * 1.5))
		outline := []geometry.Vector3{p3, p5, p4, p3}
		if !left {
			outline = []geometry.Vector3{p3, p4, p5, p3}
		}
		return Arrow, outline, p5.Sub(side.Mul(rad * 2.5))
	}

	p4 := p3.Sub(dv.Mul(rad / 2))
	p5 := p4.Add(side.Mul(rad * 1.5))
	p6 := p5.Add(dv.Mul(rad / 2))
	outline := []geometry.Vector3{p3, p6, p5, p4, p3}
	if !left {
		outline = []geometry.Vector3{p3, p4, p5, p6, p3}
	}
	return Bar, outline, p5.Sub(side.Mul(rad * 3))
}
