package scroll

import "github.com/lixenwraith/termview/geom"

// ChildSize asks the wrapped child for its required size under a
// constraint.
type ChildSize func(constraint geom.Vec2) geom.Vec2

// sizesWhenScrolling computes candidate sizes assuming we already
// scroll on the given axes, so their scrollbars eat space on the
// orthogonal axis.
//
// strict means the outer size must never exceed the constraint.
// Returns (content size, outer size, axes that now need scrolling).
func (c *Core) sizesWhenScrolling(constraint geom.Vec2, scrolling geom.XY[bool], strict bool, childSize ChildSize) (geom.Vec2, geom.Vec2, geom.XY[bool]) {
	scrollbarSize := geom.SelectVec(
		scrolling.Swap(),
		c.scrollbarPadding.Add(geom.V(1, 1)),
		geom.Zero(),
	)
	available := constraint.Sub(scrollbarSize)

	// The child's ideal size. It may not be what it gets.
	inner := childSize(available)

	// On enabled axes accept the constraint; elsewhere just forward
	// the child's wish.
	size := geom.SelectVec(
		c.enabled,
		inner.Add(scrollbarSize).Min(constraint),
		inner.Add(scrollbarSize),
	)
	if strict {
		size = size.Min(constraint)
	}

	// Recompute what the child actually gets inside the final size.
	available = size.Sub(scrollbarSize)

	// Non-scrolling axes fill the available space instead.
	inner = geom.SelectVec(c.enabled, inner, available)

	newScrolling := geom.XY[bool]{
		X: inner.X > available.X,
		Y: inner.Y > available.Y,
	}
	return inner, size, newScrolling
}

// sizes resolves the scrollbar fixed point: whether a scrollbar is
// needed depends on the space left after reserving it. Capped at
// three attempts; if the flags still oscillate after that, the third
// result is accepted as-is. Bounded cost is preferred over perfect
// geometry in pathological cases.
func (c *Core) sizes(constraint geom.Vec2, strict, needsRelayout bool, childSize ChildSize) (geom.Vec2, geom.Vec2, geom.XY[bool]) {
	if !needsRelayout {
		if inner, outer, scrolling, ok := c.tryCache(constraint); ok {
			return inner, outer, scrolling
		}
	}

	// Attempt 1: no scrollbars reserved.
	inner, size, scrolling := c.sizesWhenScrolling(constraint, geom.XY[bool]{}, strict, childSize)

	if !geom.Any(scrolling) || !c.showScrollbars {
		return inner, size, scrolling
	}

	// Attempt 2: reserve space for the scrollbars we think we need.
	inner2, size2, newScrolling := c.sizesWhenScrolling(constraint, scrolling, strict, childSize)
	if scrolling == newScrolling {
		return inner2, size2, newScrolling
	}

	// Attempt 3: reserving a bar changed the need on the other axis.
	// Run once more with the updated flags and accept the result.
	inner3, size3, final := c.sizesWhenScrolling(constraint, newScrolling, strict, childSize)
	return inner3, size3, final
}

// RequiredSize implements View.RequiredSize for a scrollable view.
func RequiredSize(c *Core, constraint geom.Vec2, needsRelayout bool, childSize ChildSize) geom.Vec2 {
	_, size, _ := c.sizes(constraint, false, needsRelayout, childSize)
	return size
}

// Layout implements View.Layout for a scrollable view: negotiates
// sizes, lays out the child at its content size, then clamps the
// offset and applies the scroll strategy.
func Layout(c *Core, size geom.Vec2, needsRelayout bool, childSize ChildSize, childLayout func(geom.Vec2)) {
	inner, selfSize, scrolling := c.sizes(size, true, needsRelayout, childSize)

	c.setLastSize(size, scrolling)
	c.setInnerSize(inner)
	c.buildCache(selfSize, size, scrolling)

	childLayout(inner)

	c.updateOffset()
}
