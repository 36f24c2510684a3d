package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameEdges(t *testing.T) {
	f := NewFrame(10, 20, 100, 50)

	assert.Equal(t, 110.0, f.Right())
	assert.Equal(t, 70.0, f.Bottom())
	assert.False(t, f.IsZero())
	assert.True(t, Frame{}.IsZero())
}

func TestFrameContains(t *testing.T) {
	f := NewFrame(10, 20, 100, 50)

	assert.True(t, f.Contains(Point{X: 10, Y: 20}), "top-left edge is inside")
	assert.True(t, f.Contains(Point{X: 50, Y: 40}))
	assert.False(t, f.Contains(Point{X: 110, Y: 40}), "right edge is outside")
	assert.False(t, f.Contains(Point{X: 50, Y: 70}), "bottom edge is outside")
	assert.False(t, f.Contains(Point{X: 9, Y: 40}))
}

func TestFrameInset(t *testing.T) {
	f := NewFrame(10, 10, 100, 40)

	got := f.Inset(5)
	assert.Equal(t, NewFrame(15, 15, 90, 30), got)

	// Over-inset clamps dimensions at zero instead of going negative.
	got = f.Inset(30)
	assert.Equal(t, 0.0, got.W)
	assert.Equal(t, 0.0, got.H)
}

func TestFrameTranslateScale(t *testing.T) {
	f := NewFrame(10, 20, 100, 50)

	assert.Equal(t, NewFrame(15, 10, 100, 50), f.Translate(5, -10))
	assert.Equal(t, NewFrame(20, 40, 200, 100), f.Scale(2))
	assert.Equal(t, f, f.Scale(1))
}

func TestMargins(t *testing.T) {
	m := Margins{Top: 10, Right: 20, Bottom: 30, Left: 40}

	assert.Equal(t, 60.0, m.Horizontal())
	assert.Equal(t, 40.0, m.Vertical())
	assert.Equal(t, UniformMargins(8), Margins{Top: 8, Right: 8, Bottom: 8, Left: 8})

	page := NewFrame(0, 0, 200, 100)
	assert.Equal(t, NewFrame(40, 10, 140, 60), m.Apply(page))

	// Margins larger than the frame clamp at zero size.
	tiny := NewFrame(0, 0, 30, 20)
	got := m.Apply(tiny)
	assert.Equal(t, 0.0, got.W)
	assert.Equal(t, 0.0, got.H)
}
