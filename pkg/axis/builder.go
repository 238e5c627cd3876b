package axis

import (
	"math"

	"github.com/philipparndt/goaxis/pkg/geometry"
)

// singularCos is the |cos| below which an axis counts as parallel to the
// baseline and gets the long fallback length instead of length/cos.
const singularCos = 0.01

// singularLengthFactor multiplies the nominal length for near-parallel axes.
const singularLengthFactor = 100

// Generate builds the segments of an axis system in its local frame.
//
// Axis i starts on the baseline at the running sum of distances[0..i] and
// leans by angles[i] degrees from the Y direction. Its length is stretched
// by 1/cos(angle) so every axis spans the nominal length along Y. With a
// positive limit each axis becomes two stubs of that length, one at each
// end, so the result has two segments per axis.
//
// Empty distances, a non-positive length or mismatched slice lengths yield
// nil: the system is simply not configured yet.
func Generate(distances, angles []float64, length, limit float64) []geometry.Segment {
	if len(distances) == 0 || length <= 0 || len(distances) != len(angles) {
		return nil
	}

	perAxis := 1
	if limit > 0 {
		perAxis = 2
	}
	segments := make([]geometry.Segment, 0, perAxis*len(distances))

	dist := 0.0
	for i := range distances {
		dist += distances[i]
		a := angles[i] * math.Pi / 180
		sin, cos := math.Sincos(a)

		ln := length / cos
		if math.Abs(cos) < singularCos {
			ln = singularLengthFactor * length
		}

		dir := geometry.NewVector3(sin, cos, 0)
		p1 := geometry.NewVector3(dist, 0, 0)
		p2 := p1.Add(dir.Mul(ln))

		if limit > 0 {
			stub := dir.Mul(limit)
			segments = append(segments,
				geometry.NewSegment(p1, p1.Add(stub)),
				geometry.NewSegment(p2, p2.Sub(stub)),
			)
			continue
		}
		segments = append(segments, geometry.NewSegment(p1, p2))
	}

	return segments
}
