package axis

import "github.com/philipparndt/goaxis/pkg/geometry"

// Record describes one generated segment together with its number
type Record struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Number string
}

// GridPoints returns the first vertex of every segment. Other tools snap
// to these points when laying out a structural grid.
func GridPoints(segments []geometry.Segment) []geometry.Vector3 {
	if len(segments) == 0 {
		return nil
	}
	points := make([]geometry.Vector3, len(segments))
	for i, s := range segments {
		points[i] = s.Start
	}
	return points
}

// AxisData numbers every segment in order. Stub pairs of a limited system
// each get their own number.
func AxisData(segments []geometry.Segment, numbering Numbering) []Record {
	if len(segments) == 0 {
		return nil
	}
	records := make([]Record, len(segments))
	for i, s := range segments {
		records[i] = Record{Start: s.Start, End: s.End, Number: numbering.Number(i)}
	}
	return records
}

// Annotation is a free-text axis label positioned in the local frame
type Annotation struct {
	Axis     int
	Text     string
	Position geometry.Vector3
	// Rotation about Z in degrees, taken from the label offset.
	Rotation float64
}

// Annotations places the free-text label of every axis that has one at the
// start of the axis, shifted and rotated by offset.
func (d Definition) Annotations(offset geometry.Placement) []Annotation {
	segments := d.Segments()
	perAxis := 1
	if d.Limited() {
		perAxis = 2
	}

	var annotations []Annotation
	for i := 0; i*perAxis < len(segments); i++ {
		text := d.Label(i)
		if text == "" {
			continue
		}
		annotations = append(annotations, Annotation{
			Axis:     i,
			Text:     text,
			Position: segments[i*perAxis].Start.Add(offset.Base),
			Rotation: offset.Rotation,
		})
	}
	return annotations
}
