package geometry

// Segment is a straight line between two points
type Segment struct {
	Start Vector3
	End   Vector3
}

// NewSegment creates a segment from start to end
func NewSegment(start, end Vector3) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the distance between the segment's endpoints
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Direction returns the unit vector from Start towards End.
// A zero-length segment yields the zero vector.
func (s Segment) Direction() Vector3 {
	return s.End.Sub(s.Start).Normalize()
}

// Midpoint returns the point halfway between the endpoints
func (s Segment) Midpoint() Vector3 {
	return s.Start.Lerp(s.End, 0.5)
}

// Reverse returns the segment with swapped endpoints
func (s Segment) Reverse() Segment {
	return Segment{Start: s.End, End: s.Start}
}
