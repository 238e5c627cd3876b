package axis

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects how an axis index is rendered as a bubble number
type Style int

const (
	Numeric    Style = iota // 1, 2, 3
	Numeric02               // 01, 02, 03
	Numeric003              // 001, 002, 003
	UpperAlpha              // A, B, C
	LowerAlpha              // a, b, c
	Roman                   // I, II, III
	Prefixed                // L0, L1, L2
)

var styleNames = [...]string{
	Numeric:    "1,2,3",
	Numeric02:  "01,02,03",
	Numeric003: "001,002,003",
	UpperAlpha: "A,B,C",
	LowerAlpha: "a,b,c",
	Roman:      "I,II,III",
	Prefixed:   "L0,L1,L2",
}

var styleAliases = map[string]Style{
	"numeric":    Numeric,
	"numeric02":  Numeric02,
	"numeric003": Numeric003,
	"alpha":      UpperAlpha,
	"upper":      UpperAlpha,
	"upperalpha": UpperAlpha,
	"lower":      LowerAlpha,
	"loweralpha": LowerAlpha,
	"roman":      Roman,
	"prefixed":   Prefixed,
}

// Styles lists every numbering style in declaration order
func Styles() []Style {
	return []Style{Numeric, Numeric02, Numeric003, UpperAlpha, LowerAlpha, Roman, Prefixed}
}

// String returns the style's sample notation, e.g. "I,II,III"
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle accepts either the sample notation ("01,02,03") or a name
// such as "roman" or "upperalpha".
func ParseStyle(s string) (Style, error) {
	trimmed := strings.TrimSpace(s)
	for i, name := range styleNames {
		if trimmed == name {
			return Style(i), nil
		}
	}
	if style, ok := styleAliases[strings.ToLower(trimmed)]; ok {
		return style, nil
	}
	return Numeric, fmt.Errorf("unknown numbering style %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Style) UnmarshalText(text []byte) error {
	style, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

type romanNumeral struct {
	symbol string
	value  int
}

var romanTable = []romanNumeral{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4},
	{"I", 1},
}

// Label renders the zero-based axis index in the given style. A non-empty
// custom string wins over every style and is returned as is.
//
// The alphabetic styles use at most two letters and are unique for indices
// below 676; past that labels repeat. Roman numerals cover 1 to 3999.
func Label(index int, style Style, custom string) string {
	if custom != "" {
		return custom
	}

	switch style {
	case Numeric02:
		return fmt.Sprintf("%02d", index+1)
	case Numeric003:
		return fmt.Sprintf("%03d", index+1)
	case UpperAlpha:
		return strings.ToUpper(alpha(index))
	case LowerAlpha:
		return alpha(index)
	case Roman:
		return roman(index + 1)
	case Prefixed:
		return "L" + strconv.Itoa(index)
	default:
		return strconv.Itoa(index + 1)
	}
}

// alpha works on remainders so every int, math.MinInt included, maps to
// one or two letters.
func alpha(n int) string {
	size := len(alphabet)
	var b strings.Builder
	if base := n / size; base != 0 {
		b.WriteByte(alphabet[mod(base, size)])
	}
	b.WriteByte(alphabet[mod(n, size)])
	return b.String()
}

func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// maxRoman is the largest value with a standard numeral. Larger values,
// like non-positive ones, fall back to decimal.
const maxRoman = 3999

func roman(n int) string {
	if n <= 0 || n > maxRoman {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// Numbering bundles the style settings of one axis system
type Numbering struct {
	Style       Style
	StartNumber int
	Custom      string
}

// DefaultNumbering numbers axes 1, 2, 3 starting at the first axis
func DefaultNumbering() Numbering {
	return Numbering{Style: Numeric, StartNumber: 1}
}

// Offset returns the index shift implied by StartNumber
func (n Numbering) Offset() int {
	if n.StartNumber > 1 {
		return n.StartNumber - 1
	}
	return 0
}

// Number labels the axis at position i, honoring StartNumber
func (n Numbering) Number(i int) string {
	return Label(i+n.Offset(), n.Style, n.Custom)
}

// Labels returns the numbers of the first count axes
func (n Numbering) Labels(count int) []string {
	if count <= 0 {
		return nil
	}
	labels := make([]string, count)
	for i := range labels {
		labels[i] = n.Number(i)
	}
	return labels
}
