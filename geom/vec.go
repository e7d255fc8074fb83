package geom

// Vec2 is an integer position or size on the character grid.
// Sizes never go negative: subtraction saturates at zero.
type Vec2 struct {
	X, Y int
}

// V is shorthand for Vec2{x, y}.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns (0,0).
func Zero() Vec2 {
	return Vec2{}
}

// Add returns the axis-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddXY returns v shifted by (x, y).
func (v Vec2) AddXY(x, y int) Vec2 {
	return Vec2{X: v.X + x, Y: v.Y + y}
}

// Sub returns the axis-wise difference, saturating at zero.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: satSub(v.X, o.X), Y: satSub(v.Y, o.Y)}
}

// CheckedSub returns the axis-wise difference, or false if it would go
// negative on either axis.
func (v Vec2) CheckedSub(o Vec2) (Vec2, bool) {
	if v.X < o.X || v.Y < o.Y {
		return Vec2{}, false
	}
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}, true
}

// Mul returns the axis-wise product.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

// MulScalar returns v scaled by n on both axes.
func (v Vec2) MulScalar(n int) Vec2 {
	return Vec2{X: v.X * n, Y: v.Y * n}
}

// Div returns the axis-wise quotient, rounding down.
func (v Vec2) Div(o Vec2) Vec2 {
	return Vec2{X: v.X / o.X, Y: v.Y / o.Y}
}

// DivUp returns the axis-wise quotient, rounding up.
func (v Vec2) DivUp(o Vec2) Vec2 {
	return Vec2{X: divUp(v.X, o.X), Y: divUp(v.Y, o.Y)}
}

// Min returns the axis-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the axis-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Fits returns true if v is at least as large as o on both axes.
func (v Vec2) Fits(o Vec2) bool {
	return v.X >= o.X && v.Y >= o.Y
}

// FitsIn returns true if v is no larger than o on either axis.
func (v Vec2) FitsIn(o Vec2) bool {
	return o.Fits(v)
}

// Cmp partially orders two points. It returns -1, 0 or 1 when one
// point strictly dominates the other on both axes (or they are
// equal), and ok=false when the points are incomparable. A tie on a
// single axis is incomparable.
func (v Vec2) Cmp(o Vec2) (ord int, ok bool) {
	switch {
	case v == o:
		return 0, true
	case v.X < o.X && v.Y < o.Y:
		return -1, true
	case v.X > o.X && v.Y > o.Y:
		return 1, true
	}
	return 0, false
}

// StackHorizontal returns the bounding box of v and o placed side by
// side: (sum X, max Y).
func (v Vec2) StackHorizontal(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: max(v.Y, o.Y)}
}

// StackVertical returns the bounding box of v and o stacked: (max X,
// sum Y).
func (v Vec2) StackVertical(o Vec2) Vec2 {
	return Vec2{X: max(v.X, o.X), Y: v.Y + o.Y}
}

// Get returns the component along the orientation.
func (v Vec2) Get(o Orientation) int {
	return o.Main(v)
}

// WithAxis returns a copy with the component along o replaced.
func (v Vec2) WithAxis(o Orientation, val int) Vec2 {
	if o == Horizontal {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

// KeepX returns (X, 0).
func (v Vec2) KeepX() Vec2 {
	return Vec2{X: v.X}
}

// KeepY returns (0, Y).
func (v Vec2) KeepY() Vec2 {
	return Vec2{Y: v.Y}
}

// SelectVec picks, per axis, yes where cond holds and no elsewhere.
func SelectVec(cond XY[bool], yes, no Vec2) Vec2 {
	out := no
	if cond.X {
		out.X = yes.X
	}
	if cond.Y {
		out.Y = yes.Y
	}
	return out
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func divUp(a, b int) int {
	return (a + b - 1) / b
}
