// Package axis generates construction axis systems: families of parallel
// or radiating reference lines used to align building elements in a plan.
//
// Generate turns cumulative (distance, angle) pairs into line segments in
// the axis system's local frame, and Label renders an axis index as a
// display string in one of the supported numbering styles. Both are pure
// functions and safe for concurrent use. Placement into the drawing is the
// caller's job (see geometry.Placement).
package axis
