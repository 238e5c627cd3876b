package axis

import (
	"fmt"
	"strings"
)

// DrawStyle is the line pattern used to draw axes
type DrawStyle int

const (
	Solid DrawStyle = iota
	Dashed
	Dotted
	Dashdot
)

var drawStyleNames = [...]string{
	Solid:   "Solid",
	Dashed:  "Dashed",
	Dotted:  "Dotted",
	Dashdot: "Dashdot",
}

// String returns the style name
func (s DrawStyle) String() string {
	if s < 0 || int(s) >= len(drawStyleNames) {
		return fmt.Sprintf("DrawStyle(%d)", int(s))
	}
	return drawStyleNames[s]
}

// ParseDrawStyle matches a style name case-insensitively
func ParseDrawStyle(s string) (DrawStyle, error) {
	for i, name := range drawStyleNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return DrawStyle(i), nil
		}
	}
	return Solid, fmt.Errorf("unknown draw style %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (s DrawStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *DrawStyle) UnmarshalText(text []byte) error {
	style, err := ParseDrawStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Pattern returns the 16-bit stipple mask of the style, most significant
// bit first. Unknown styles draw dash-dot, the default for axes.
func (s DrawStyle) Pattern() uint16 {
	switch s {
	case Solid:
		return 0xffff
	case Dashed:
		return 0xf00f
	case Dotted:
		return 0x0f0f
	default:
		return 0xff88
	}
}

// Dashes converts the stipple mask into alternating on/off run lengths,
// each bit covering unit drawing units. The pattern is rotated so it starts
// with an "on" run. Solid lines return nil.
func (s DrawStyle) Dashes(unit float64) []float64 {
	p := s.Pattern()
	if p == 0xffff {
		return nil
	}

	// rotate so bit 15 is set and bit 0 is clear, giving whole runs
	for p&0x8000 == 0 || p&0x0001 != 0 {
		p = p<<1 | p>>15
	}

	var runs []float64
	on := true
	count := 0
	for bit := 15; bit >= 0; bit-- {
		set := p&(1<<bit) != 0
		if set != on {
			runs = append(runs, float64(count)*unit)
			on = set
			count = 0
		}
		count++
	}
	runs = append(runs, float64(count)*unit)
	return runs
}
