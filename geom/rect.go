package geom

// Rect is a non-empty rectangle on the character grid, stored as its
// top-left corner and size.
type Rect struct {
	topLeft Vec2
	size    Vec2
}

// RectFromSize creates a rectangle from its top-left corner and size.
// Zero-sized axes are bumped to 1: a Rect always covers at least one
// cell.
func RectFromSize(topLeft, size Vec2) Rect {
	return Rect{topLeft: topLeft, size: size.Max(V(1, 1))}
}

// RectFromCorners creates the smallest rectangle containing both
// cells. The corners may be given in any order.
func RectFromCorners(a, b Vec2) Rect {
	tl := a.Min(b)
	br := a.Max(b)
	return Rect{topLeft: tl, size: br.Sub(tl).Add(V(1, 1))}
}

// TopLeft returns the top-left cell.
func (r Rect) TopLeft() Vec2 {
	return r.topLeft
}

// BottomRight returns the bottom-right cell (inclusive).
func (r Rect) BottomRight() Vec2 {
	return r.topLeft.Add(r.size).Sub(V(1, 1))
}

// Size returns the rectangle's size.
func (r Rect) Size() Vec2 {
	return r.size
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.size.X
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.size.Y
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int {
	return r.topLeft.X
}

// Right returns the x coordinate of the right edge (inclusive).
func (r Rect) Right() int {
	return r.topLeft.X + r.size.X - 1
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int {
	return r.topLeft.Y
}

// Bottom returns the y coordinate of the bottom edge (inclusive).
func (r Rect) Bottom() int {
	return r.topLeft.Y + r.size.Y - 1
}

// Contains returns true if the cell lies inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Side returns the (lo, hi) interval covered along the orientation.
func (r Rect) Side(o Orientation) (lo, hi int) {
	if o == Horizontal {
		return r.Left(), r.Right()
	}
	return r.Top(), r.Bottom()
}

// Translate returns the rectangle shifted by the offset.
func (r Rect) Translate(offset Vec2) Rect {
	return Rect{topLeft: r.topLeft.Add(offset), size: r.size}
}
