package plot

import (
	"math"

	"github.com/philipparndt/goaxis/pkg/geometry"
)

// Viewport maps plan coordinates (mm, Y up) onto image pixels (Y down),
// fitting a bounding box into the image with a uniform scale.
type Viewport struct {
	Scale   float64
	originX float64
	originY float64
	height  float64
}

// Fit returns the viewport that centers bbox inside a width x height image
// leaving margin pixels on every side. An empty or degenerate box is
// centered at scale 1.
func Fit(bbox geometry.BoundingBox, width, height, margin int) Viewport {
	innerW := float64(width - 2*margin)
	innerH := float64(height - 2*margin)

	if bbox.IsEmpty() {
		return Viewport{Scale: 1, originX: float64(width) / 2, originY: float64(height) / 2, height: float64(height)}
	}

	size := bbox.Size()
	scale := math.Inf(1)
	if size.X > 0 {
		scale = innerW / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, innerH/size.Y)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	center := bbox.Center()
	return Viewport{
		Scale:   scale,
		originX: float64(width)/2 - center.X*scale,
		originY: float64(height)/2 - center.Y*scale,
		height:  float64(height),
	}
}

// Project converts a plan point to pixel coordinates
func (v Viewport) Project(p geometry.Vector3) (x, y float64) {
	return v.originX + p.X*v.Scale, v.height - (v.originY + p.Y*v.Scale)
}
