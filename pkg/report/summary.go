package report

import (
	"fmt"
	"math"

	"github.com/philipparndt/goaxis/pkg/axis"
	"github.com/philipparndt/goaxis/pkg/geometry"
)

// Summary contains measurements of a generated axis system
type Summary struct {
	AxisCount    int
	SegmentCount int
	Limited      bool
	BoundingBox  geometry.BoundingBox
	Dimensions   geometry.Vector3
	Span         float64
	MinSegment   float64
	MaxSegment   float64
	AvgSegment   float64
	FirstNumber  string
	LastNumber   string
	LongestAxis  int
	GridPoints   []geometry.Vector3
}

// Summarize measures the segments generated for def in its local frame.
// Span is the baseline distance from the first axis to the last.
func Summarize(def axis.Definition, numbering axis.Numbering) *Summary {
	segments := def.Segments()
	result := &Summary{
		AxisCount:    def.AxisCount(),
		SegmentCount: len(segments),
		Limited:      def.Limited(),
		BoundingBox:  geometry.BoundsOf(segments),
		GridPoints:   axis.GridPoints(segments),
		LongestAxis:  -1,
	}
	result.Dimensions = result.BoundingBox.Size()

	if len(segments) == 0 {
		return result
	}

	for _, d := range def.Distances {
		result.Span += d
	}
	result.Span -= def.Distances[0]

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	perAxis := len(segments) / def.AxisCount()

	for i, s := range segments {
		length := s.Length()
		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
			result.LongestAxis = i / perAxis
		}
	}

	result.MinSegment = minLength
	result.MaxSegment = maxLength
	result.AvgSegment = totalLength / float64(len(segments))
	result.FirstNumber = numbering.Number(0)
	result.LastNumber = numbering.Number(def.AxisCount() - 1)

	return result
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "mm"
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
