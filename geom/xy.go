package geom

// XY is a generic pair of values, one per screen axis.
// The bool instantiation drives per-axis scroll flags.
type XY[T any] struct {
	X, Y T
}

// NewXY creates a pair from its two components.
func NewXY[T any](x, y T) XY[T] {
	return XY[T]{X: x, Y: y}
}

// Swap returns the pair with both components exchanged.
func (p XY[T]) Swap() XY[T] {
	return XY[T]{X: p.Y, Y: p.X}
}

// Get returns the component selected by the orientation.
func (p XY[T]) Get(o Orientation) T {
	if o == Horizontal {
		return p.X
	}
	return p.Y
}

// Set replaces the component selected by the orientation.
func (p *XY[T]) Set(o Orientation, v T) {
	if o == Horizontal {
		p.X = v
	} else {
		p.Y = v
	}
}

// WithAxis returns a copy with the selected component replaced.
func (p XY[T]) WithAxis(o Orientation, v T) XY[T] {
	p.Set(o, v)
	return p
}

// Map applies f to both components.
func Map[T, U any](p XY[T], f func(T) U) XY[U] {
	return XY[U]{X: f(p.X), Y: f(p.Y)}
}

// Zip combines two pairs component-wise.
func Zip[T, U, V any](a XY[T], b XY[U], f func(T, U) V) XY[V] {
	return XY[V]{X: f(a.X, b.X), Y: f(a.Y, b.Y)}
}

// Fold reduces the pair, X first.
func Fold[T, U any](p XY[T], init U, f func(U, T) U) U {
	return f(f(init, p.X), p.Y)
}

// Select picks, per axis, from yes where cond holds and from no elsewhere.
func Select[T any](cond XY[bool], yes, no XY[T]) XY[T] {
	out := no
	if cond.X {
		out.X = yes.X
	}
	if cond.Y {
		out.Y = yes.Y
	}
	return out
}

// Any returns true if either flag is set.
func Any(p XY[bool]) bool {
	return p.X || p.Y
}

// Both returns true if both flags are set.
func Both(p XY[bool]) bool {
	return p.X && p.Y
}

// And combines two flag pairs component-wise.
func And(a, b XY[bool]) XY[bool] {
	return XY[bool]{X: a.X && b.X, Y: a.Y && b.Y}
}
