package axis

import (
	"errors"
	"fmt"
	"slices"

	"github.com/philipparndt/goaxis/pkg/geometry"
)

// DefaultLength is the axis length of a freshly created system, in mm
const DefaultLength = 3000.0

// ErrIndexOutOfRange is returned by the editing operations for a bad axis index
var ErrIndexOutOfRange = errors.New("axis index out of range")

// Definition describes one axis system. It is a value: the editing
// methods return a modified copy and never touch the receiver's slices.
type Definition struct {
	// Distances are the intervals between consecutive axes, in mm.
	// The first entry offsets the first axis from the origin.
	Distances []float64
	// Angles tilt each axis from the Y direction, in degrees.
	Angles []float64
	// Labels are free-text annotations shown next to each axis,
	// independent of the bubble numbers.
	Labels []string
	// Length is the nominal span of every axis along Y, in mm.
	Length float64
	// Limit, when positive, draws each axis as two stubs of this length.
	Limit float64
	// CustomNumber replaces every bubble number when set.
	CustomNumber string
	// Placement positions the local frame in the drawing.
	Placement geometry.Placement
}

// NewDefinition returns an empty system with the default length
func NewDefinition() Definition {
	return Definition{Length: DefaultLength}
}

// AxisCount returns the number of configured axes
func (d Definition) AxisCount() int {
	return len(d.Distances)
}

// Drawable reports whether Segments will produce any geometry
func (d Definition) Drawable() bool {
	return len(d.Distances) > 0 && d.Length > 0 && len(d.Distances) == len(d.Angles)
}

// Limited reports whether axes are drawn as stub pairs
func (d Definition) Limited() bool {
	return d.Limit > 0
}

// Segments generates the system's geometry in its local frame
func (d Definition) Segments() []geometry.Segment {
	return Generate(d.Distances, d.Angles, d.Length, d.Limit)
}

// PlacedSegments generates the geometry and applies the placement
func (d Definition) PlacedSegments() []geometry.Segment {
	return d.Placement.ApplyAll(d.Segments())
}

// Label returns the free-text annotation of axis i, or "" when unset
func (d Definition) Label(i int) string {
	if i < 0 || i >= len(d.Labels) {
		return ""
	}
	return d.Labels[i]
}

// Normalize pads Angles with zeros and Labels with empty strings so both
// match Distances. Extra trailing entries are dropped.
func (d Definition) Normalize() Definition {
	n := len(d.Distances)
	out := d.clone()
	out.Angles = resize(out.Angles, n, 0)
	out.Labels = resize(out.Labels, n, "")
	return out
}

// AddAxis appends an axis at the given interval and angle
func (d Definition) AddAxis(distance, angle float64, label string) Definition {
	out := d.Normalize()
	out.Distances = append(out.Distances, distance)
	out.Angles = append(out.Angles, angle)
	out.Labels = append(out.Labels, label)
	return out
}

// SetAxis replaces the entry of axis i
func (d Definition) SetAxis(i int, distance, angle float64, label string) (Definition, error) {
	if i < 0 || i >= len(d.Distances) {
		return d, fmt.Errorf("set axis %d of %d: %w", i, len(d.Distances), ErrIndexOutOfRange)
	}
	out := d.Normalize()
	out.Distances[i] = distance
	out.Angles[i] = angle
	out.Labels[i] = label
	return out, nil
}

// RemoveAxis deletes axis i. Later axes keep their own intervals, so they
// move towards the origin by the removed distance.
func (d Definition) RemoveAxis(i int) (Definition, error) {
	if i < 0 || i >= len(d.Distances) {
		return d, fmt.Errorf("remove axis %d of %d: %w", i, len(d.Distances), ErrIndexOutOfRange)
	}
	out := d.Normalize()
	out.Distances = slices.Delete(out.Distances, i, i+1)
	out.Angles = slices.Delete(out.Angles, i, i+1)
	out.Labels = slices.Delete(out.Labels, i, i+1)
	return out, nil
}

func (d Definition) clone() Definition {
	out := d
	out.Distances = slices.Clone(d.Distances)
	out.Angles = slices.Clone(d.Angles)
	out.Labels = slices.Clone(d.Labels)
	return out
}

func resize[T any](s []T, n int, fill T) []T {
	if len(s) >= n {
		return s[:n]
	}
	for len(s) < n {
		s = append(s, fill)
	}
	return s
}
