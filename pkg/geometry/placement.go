package geometry

import "math"

// Placement positions a local frame in the drawing: a rotation about the
// Z axis (degrees, counter-clockwise) followed by a translation to Base.
type Placement struct {
	Base     Vector3
	Rotation float64
}

// Identity returns the placement that leaves points unchanged
func Identity() Placement {
	return Placement{}
}

// IsIdentity reports whether the placement is a no-op
func (p Placement) IsIdentity() bool {
	return p.Base == (Vector3{}) && math.Mod(p.Rotation, 360) == 0
}

// Apply maps a point from the local frame into the placed frame
func (p Placement) Apply(v Vector3) Vector3 {
	return p.rotate(v).Add(p.Base)
}

// ApplySegment maps both endpoints of a segment
func (p Placement) ApplySegment(s Segment) Segment {
	return Segment{Start: p.Apply(s.Start), End: p.Apply(s.End)}
}

// ApplyAll maps every segment, returning a new slice
func (p Placement) ApplyAll(segments []Segment) []Segment {
	placed := make([]Segment, len(segments))
	for i, s := range segments {
		placed[i] = p.ApplySegment(s)
	}
	return placed
}

// RotateVector rotates a direction without translating it
func (p Placement) RotateVector(v Vector3) Vector3 {
	return p.rotate(v)
}

// Inverse returns the placement that undoes p
func (p Placement) Inverse() Placement {
	inv := Placement{Rotation: -p.Rotation}
	inv.Base = inv.rotate(p.Base).Neg()
	return inv
}

func (p Placement) rotate(v Vector3) Vector3 {
	return v.RotateZ(p.Rotation)
}
