package axis

import (
	"testing"

	"github.com/philipparndt/goaxis/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoAxes() Definition {
	d := NewDefinition().AddAxis(0, 0, "").AddAxis(1000, 0, "")
	d.Length = 3000
	return d
}

func TestBubblesStart(t *testing.T) {
	bubbles := twoAxes().Bubbles(BubbleOptions{Position: BubbleStart, Size: 1000}, DefaultNumbering())
	require.Len(t, bubbles, 2)

	b := bubbles[0]
	assert.Equal(t, Circle, b.Shape)
	assert.Equal(t, StartSide, b.End)
	assert.Equal(t, 500.0, b.Radius)
	assert.Equal(t, geometry.NewVector3(0, 3500, 0), b.Center)
	assert.Nil(t, b.Outline)
	assert.Equal(t, "1", b.Number)
	assert.Equal(t, "2", bubbles[1].Number)
	assert.Equal(t, geometry.NewVector3(1000, 3500, 0), bubbles[1].Center)
}

func TestBubblesEnd(t *testing.T) {
	bubbles := twoAxes().Bubbles(BubbleOptions{Position: BubbleEnd, Size: 1000}, DefaultNumbering())
	require.Len(t, bubbles, 2)
	assert.Equal(t, EndSide, bubbles[0].End)
	assert.Equal(t, geometry.NewVector3(0, -500, 0), bubbles[0].Center)
}

func TestBubblesBothShareNumbers(t *testing.T) {
	numbering := Numbering{Style: UpperAlpha, StartNumber: 3}
	bubbles := twoAxes().Bubbles(BubbleOptions{Position: BubbleBoth, Size: 400}, numbering)
	require.Len(t, bubbles, 4)

	got := make([]string, len(bubbles))
	for i, b := range bubbles {
		got[i] = b.Number
	}
	assert.Equal(t, []string{"C", "C", "D", "D"}, got)
	assert.Equal(t, StartSide, bubbles[0].End)
	assert.Equal(t, EndSide, bubbles[1].End)
}

func TestBubblesNone(t *testing.T) {
	assert.Nil(t, twoAxes().Bubbles(BubbleOptions{Position: BubbleNone, Size: 400}, DefaultNumbering()))
	assert.Nil(t, NewDefinition().Bubbles(BubbleOptions{Position: BubbleStart, Size: 400}, DefaultNumbering()))
}

func TestBubblesLimited(t *testing.T) {
	d := twoAxes()
	d.Limit = 500

	bubbles := d.Bubbles(BubbleOptions{Position: BubbleStart, Size: 1000}, DefaultNumbering())
	require.Len(t, bubbles, 2)
	assert.Equal(t, geometry.NewVector3(0, 3500, 0), bubbles[0].Center)
	assert.Equal(t, geometry.NewVector3(1000, 3500, 0), bubbles[1].Center)
}

func TestBubblesArrowLeft(t *testing.T) {
	d := NewDefinition().AddAxis(0, 0, "")
	bubbles := d.Bubbles(BubbleOptions{Position: ArrowLeft, Size: 1000}, DefaultNumbering())
	require.Len(t, bubbles, 2)

	start := bubbles[0]
	assert.Equal(t, Arrow, start.Shape)
	p3 := geometry.NewVector3(-250, 3000, 0)
	p4 := geometry.NewVector3(-250, 2000, 0)
	p5 := geometry.NewVector3(-750, 2500, 0)
	assertOutline(t, []geometry.Vector3{p3, p5, p4, p3}, start.Outline)
	assert.True(t, start.Center.ApproxEqual(geometry.NewVector3(500, 2500, 0), eps), "center %v", start.Center)

	end := bubbles[1]
	assert.Equal(t, Arrow, end.Shape)
	assert.Len(t, end.Outline, 4)
	assert.Equal(t, end.Outline[0], end.Outline[3], "outline must be closed")
}

func TestBubblesBarRight(t *testing.T) {
	d := NewDefinition().AddAxis(0, 0, "")
	bubbles := d.Bubbles(BubbleOptions{Position: BarRight, Size: 1000}, DefaultNumbering())
	require.Len(t, bubbles, 2)

	start := bubbles[0]
	assert.Equal(t, Bar, start.Shape)
	// start side of a right bar points to +X
	p3 := geometry.NewVector3(250, 3000, 0)
	p4 := geometry.NewVector3(250, 2750, 0)
	p5 := geometry.NewVector3(1000, 2750, 0)
	p6 := geometry.NewVector3(1000, 3000, 0)
	assertOutline(t, []geometry.Vector3{p3, p4, p5, p6, p3}, start.Outline)
	assert.True(t, start.Center.ApproxEqual(geometry.NewVector3(-500, 2750, 0), eps), "center %v", start.Center)
}

func TestBubbleTextPosition(t *testing.T) {
	bubbles := twoAxes().Bubbles(BubbleOptions{Position: BubbleStart, Size: 1000, FontSize: 250}, DefaultNumbering())
	assert.Equal(t, geometry.NewVector3(0, 3400, 0), bubbles[0].TextPosition)

	defaults := twoAxes().Bubbles(BubbleOptions{Position: BubbleStart, Size: 1000}, DefaultNumbering())
	assert.Equal(t, geometry.NewVector3(0, 3200, 0), defaults[0].TextPosition)
}

func TestParseBubblePosition(t *testing.T) {
	tests := map[string]BubblePosition{
		"start":       BubbleStart,
		"Both":        BubbleBoth,
		"none":        BubbleNone,
		"Arrow left":  ArrowLeft,
		"arrow-right": ArrowRight,
		"bar_left":    BarLeft,
	}
	for in, want := range tests {
		got, err := ParseBubblePosition(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseBubblePosition("middle")
	assert.Error(t, err)
}

func assertOutline(t *testing.T, want, got []geometry.Vector3) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].ApproxEqual(want[i], eps), "outline[%d]: expected %v, got %v", i, want[i], got[i])
	}
}
