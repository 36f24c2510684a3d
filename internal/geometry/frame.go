package geometry

// Point is a position in device pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Frame is an axis-aligned rectangle in device pixels. The zero value is the
// empty frame at the origin.
type Frame struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewFrame builds a frame from origin and size.
func NewFrame(x, y, w, h float64) Frame {
	return Frame{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (f Frame) Right() float64 {
	return f.X + f.W
}

// Bottom returns the y coordinate of the bottom edge.
func (f Frame) Bottom() float64 {
	return f.Y + f.H
}

// IsZero reports whether the frame is the zero value.
func (f Frame) IsZero() bool {
	return f.X == 0 && f.Y == 0 && f.W == 0 && f.H == 0
}

// Contains reports whether the point lies inside the frame. Points on the
// top/left edges are inside, points on the bottom/right edges are not, so
// adjacent frames never claim the same point.
func (f Frame) Contains(p Point) bool {
	return p.X >= f.X && p.X < f.Right() && p.Y >= f.Y && p.Y < f.Bottom()
}

// Inset shrinks the frame by d on every side. Width and height never go
// negative.
func (f Frame) Inset(d float64) Frame {
	w := f.W - 2*d
	h := f.H - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Frame{X: f.X + d, Y: f.Y + d, W: w, H: h}
}

// Translate returns the frame moved by (dx, dy).
func (f Frame) Translate(dx, dy float64) Frame {
	return Frame{X: f.X + dx, Y: f.Y + dy, W: f.W, H: f.H}
}

// Scale multiplies every coordinate and dimension by s.
func (f Frame) Scale(s float64) Frame {
	return Frame{X: f.X * s, Y: f.Y * s, W: f.W * s, H: f.H * s}
}

// Margins is the blank border of a page, in device pixels.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// UniformMargins returns margins with the same value on every side.
func UniformMargins(d float64) Margins {
	return Margins{Top: d, Right: d, Bottom: d, Left: d}
}

// Horizontal returns the combined left and right margin.
func (m Margins) Horizontal() float64 {
	return m.Left + m.Right
}

// Vertical returns the combined top and bottom margin.
func (m Margins) Vertical() float64 {
	return m.Top + m.Bottom
}

// Apply returns the sub-frame of f that remains inside the margins.
func (m Margins) Apply(f Frame) Frame {
	w := f.W - m.Horizontal()
	h := f.H - m.Vertical()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Frame{X: f.X + m.Left, Y: f.Y + m.Top, W: w, H: h}
}
