package plot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goaxis/pkg/axis"
	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/config"
	"github.com/philipparndt/goaxis/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleAxis(t *testing.T) *axisfile.System {
	t.Helper()
	sys, err := axisfile.Resolve(&axisfile.Document{
		Distances: []float64{0},
		Angles:    []float64{0},
		DrawStyle: "Solid",
		Bubbles:   axisfile.BubbleSpec{Position: "None"},
	}, config.DefaultConfig())
	require.NoError(t, err)
	return sys
}

func testOptions() Options {
	return Options{
		Width:      200,
		Height:     100,
		Margin:     10,
		Background: "#ffffff",
		LineColor:  "#000000",
		LineWidth:  4,
	}
}

func TestFitCentersBox(t *testing.T) {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(0, 0, 0))
	bbox.Extend(geometry.NewVector3(100, 50, 0))

	view := Fit(bbox, 220, 220, 10)
	assert.InDelta(t, 2.0, view.Scale, 1e-9)

	x, y := view.Project(geometry.NewVector3(50, 25, 0))
	assert.InDelta(t, 110.0, x, 1e-9)
	assert.InDelta(t, 110.0, y, 1e-9)

	// Y grows upward in plan, downward in the image
	_, top := view.Project(geometry.NewVector3(50, 50, 0))
	assert.Less(t, top, y)
}

func TestFitDegenerateBox(t *testing.T) {
	view := Fit(geometry.NewBoundingBox(), 100, 80, 5)
	assert.Equal(t, 1.0, view.Scale)
	x, y := view.Project(geometry.Vector3{})
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 40.0, y)

	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(0, -100, 0))
	bbox.Extend(geometry.NewVector3(0, 100, 0))
	view = Fit(bbox, 100, 220, 10)
	assert.InDelta(t, 1.0, view.Scale, 1e-9)
}

func TestRenderDrawsAxis(t *testing.T) {
	dc, err := Render(singleAxis(t), testOptions())
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// the vertical axis runs through the image center
	r, g, b, _ := img.At(100, 50).RGBA()
	assert.Less(t, r, uint32(0x8000))
	assert.Less(t, g, uint32(0x8000))
	assert.Less(t, b, uint32(0x8000))

	corner := color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA)
	assert.Equal(t, uint8(0xff), corner.R)
	assert.Equal(t, uint8(0xff), corner.G)
	assert.Equal(t, uint8(0xff), corner.B)
}

func TestRenderWithBubbles(t *testing.T) {
	sys, err := axisfile.Resolve(&axisfile.Document{
		Distances: []float64{0, 2000, 2000},
		Angles:    []float64{0, 0, 90},
		DrawStyle: "Dashdot",
		Bubbles:   axisfile.BubbleSpec{Position: "Both"},
	}, config.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, sys.Bubbles(), 6)

	dc, err := Render(sys, testOptions())
	require.NoError(t, err)
	defer dc.Close()
	assert.Equal(t, 200, dc.Image().Bounds().Dx())
}

func TestNumberBaselineBelowCenter(t *testing.T) {
	sys := singleAxis(t)
	sys.Bubble.Position = axis.BubbleStart
	bubbles := sys.Bubbles()
	require.Len(t, bubbles, 1)

	view := Fit(extent(sys.Segments(), bubbles, nil), 200, 100, 10)
	cx, cy := view.Project(bubbles[0].Center)
	x, y := numberBaseline(view, bubbles[0])

	assert.InDelta(t, cx, x, 1e-9)
	assert.Greater(t, y, cy, "baseline sits below the bubble center in image space")
	tx, ty := view.Project(bubbles[0].TextPosition)
	assert.Equal(t, tx, x)
	assert.Equal(t, ty, y)
}

func TestRenderRejectsInvalidSize(t *testing.T) {
	opts := testOptions()
	opts.Width = 0
	_, err := Render(singleAxis(t), opts)
	assert.Error(t, err)
}

func TestRenderMissingFont(t *testing.T) {
	sys := singleAxis(t)
	sys.Bubble.Position = axis.BubbleStart

	opts := testOptions()
	opts.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	_, err := Render(sys, opts)
	assert.ErrorContains(t, err, "missing.ttf")
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axes.png")
	require.NoError(t, SavePNG(singleAxis(t), testOptions(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Text.Font = "/fonts/a.ttf"
	opts := OptionsFromConfig(cfg)
	assert.Equal(t, 1600, opts.Width)
	assert.Equal(t, 1200, opts.Height)
	assert.Equal(t, "/fonts/a.ttf", opts.FontPath)
	assert.Equal(t, cfg.Axis.LineWidth, opts.LineWidth)
}
