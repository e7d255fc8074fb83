package scroll

import (
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
)

// OnEvent implements View.OnEvent for a scrollable view: the event is
// relativized by the offset and forwarded to the child first; if the
// child ignores it, it is interpreted as a scroll command; if the
// child consumes it, the child's important area is scrolled into view.
func OnEvent(c *Core, ev event.Event, childOnEvent func(event.Event) event.Result, importantArea func(geom.Vec2) geom.Rect) event.Result {
	relative, inside := c.relativized(ev)
	result := event.Ignored()
	if inside {
		result = childOnEvent(relative)
	}
	important := importantArea(c.innerSize)
	return c.onInnerEvent(ev, result, important)
}

// ImportantArea implements View.ImportantArea for a scrollable view:
// the child's area translated into viewport coordinates and clipped.
func ImportantArea(c *Core, size geom.Vec2, inner func(geom.Vec2) geom.Rect) geom.Rect {
	viewport := c.ContentViewport()
	area := inner(size)
	topLeft := area.TopLeft().Sub(viewport.TopLeft())
	bottomRight := area.BottomRight().Sub(viewport.TopLeft()).Min(viewport.BottomRight())
	return geom.RectFromCorners(topLeft, bottomRight)
}

// relativized returns the event as the content should see it, and
// whether it falls inside the content area at all. Mouse positions are
// shifted by the scroll offset; key events are always considered
// inside.
func (c *Core) relativized(ev event.Event) (event.Event, bool) {
	if !ev.IsMouse() {
		return ev, true
	}
	inside := false
	if p, ok := ev.Position.CheckedSub(ev.Offset); ok {
		inside = p.FitsIn(c.availableSize())
	}
	ev.Position = ev.Position.Add(c.offset)
	return ev, inside
}

// onInnerEvent combines the child's answer with the core's own
// scrolling behaviour.
func (c *Core) onInnerEvent(ev event.Event, inner event.Result, important geom.Rect) event.Result {
	if inner.IsConsumed() {
		// The child consumed the event; something may have changed,
		// so keep the interesting part visible.
		c.ScrollToRect(important)
		return inner
	}

	if !c.handleScrollEvent(ev) {
		return event.Ignored()
	}

	// Manual scrolling always overrides automatic stickiness.
	c.strategy = KeepRow
	return event.Consumed()
}

// handleScrollEvent mutates the offset for scroll-like input. Returns
// false when the event is not a scroll command, or scrolling that way
// is not possible, so silence is the observable behaviour.
func (c *Core) handleScrollEvent(ev event.Event) bool {
	avail := c.availableSize()

	canDown := c.enabled.Y && c.offset.Y+avail.Y < c.innerSize.Y
	canUp := c.enabled.Y && c.offset.Y > 0
	canRight := c.enabled.X && c.offset.X+avail.X < c.innerSize.X
	canLeft := c.enabled.X && c.offset.X > 0

	switch ev.Kind {
	case event.KindMouse:
		return c.handleMouse(ev)

	case event.KindKey:
		if ev.Mod != 0 && ev.Mod != event.ModCtrl {
			return false
		}
		switch ev.Key {
		case event.KeyHome:
			if !geom.Any(c.enabled) {
				return false
			}
			c.offset = geom.SelectVec(c.enabled, geom.Zero(), c.offset)
			return true
		case event.KeyEnd:
			if !geom.Any(c.enabled) {
				return false
			}
			maxOffset := c.innerSize.Sub(avail)
			c.offset = geom.SelectVec(c.enabled, maxOffset, c.offset)
			return true
		case event.KeyUp:
			if !canUp {
				return false
			}
			c.offset.Y--
			return true
		case event.KeyDown:
			if !canDown {
				return false
			}
			c.offset.Y++
			return true
		case event.KeyLeft:
			if !canLeft {
				return false
			}
			c.offset.X--
			return true
		case event.KeyRight:
			if !canRight {
				return false
			}
			c.offset.X++
			return true
		case event.KeyPageUp:
			if !canUp {
				return false
			}
			// A page is one viewport height.
			c.offset.Y = satSub(c.offset.Y, avail.Y)
			return true
		case event.KeyPageDown:
			if !canDown {
				return false
			}
			c.offset.Y = min(c.offset.Y+avail.Y, c.innerSize.Y-avail.Y)
			return true
		}
	}
	return false
}

// handleMouse covers wheel scrolling and the scrollbar drag state
// machine: Press on the track grabs, Hold drags, Release lets go.
func (c *Core) handleMouse(ev event.Event) bool {
	avail := c.availableSize()

	switch ev.Mouse {
	case event.WheelUp:
		if !c.enabled.Y || c.offset.Y == 0 {
			return false
		}
		c.offset.Y = satSub(c.offset.Y, 3)
		return true

	case event.WheelDown:
		if !c.enabled.Y || c.offset.Y+avail.Y >= c.innerSize.Y {
			return false
		}
		c.offset.Y = min(c.offset.Y+3, c.innerSize.Y-avail.Y)
		return true

	case event.Press:
		if ev.Btn != event.ButtonLeft || !c.showScrollbars {
			return false
		}
		pos, ok := ev.Position.CheckedSub(ev.Offset)
		if !ok {
			return false
		}
		return c.startDrag(pos)

	case event.Hold:
		if ev.Btn != event.ButtonLeft || !c.showScrollbars || c.grab == nil {
			return false
		}
		c.drag(ev.Position.Sub(ev.Offset))
		return true

	case event.Release:
		if ev.Btn != event.ButtonLeft || c.grab == nil {
			return false
		}
		c.releaseGrab()
		return true
	}
	return false
}

// startDrag begins a scrollbar drag if pos hits a bar. A hit on the
// thumb keeps the grab point; a hit on the track teleports the thumb
// middle there first.
func (c *Core) startDrag(pos geom.Vec2) bool {
	// Each bar lives on the last row/column of the outer area.
	barPos := c.LastOuterSize().Sub(geom.V(1, 1))
	lengths := c.thumbLengths()
	offsets := c.thumbOffsets(lengths)
	avail := c.availableSize()

	// grabbed.Y means the vertical bar: right column, within the
	// track's vertical extent. Symmetrically for grabbed.X.
	grabbed := geom.And(geom.XY[bool]{
		X: pos.Y == barPos.Y,
		Y: pos.X == barPos.X,
	}, geom.XY[bool]{
		X: pos.X < avail.X,
		Y: pos.Y < avail.Y,
	})
	grabbed = geom.And(grabbed, c.enabled)

	for _, o := range []geom.Orientation{geom.Horizontal, geom.Vertical} {
		if !grabbed.Get(o) {
			continue
		}
		p := pos.Get(o)
		length := lengths.Get(o)
		offset := offsets.Get(o)
		if p >= offset && p < offset+length {
			c.grab = &thumbGrab{orientation: o, grab: p - offset}
		} else {
			c.grab = &thumbGrab{orientation: o, grab: (length - 1) / 2}
			c.drag(pos)
		}
		return true
	}
	return false
}

// drag moves the thumb so the grab point follows the pointer.
func (c *Core) drag(pos geom.Vec2) {
	if c.grab == nil {
		return
	}
	c.scrollToThumb(c.grab.orientation, satSub(pos.Get(c.grab.orientation), c.grab.grab))
}

// scrollToThumb sets the offset so the thumb lands at thumbPos on the
// track.
func (c *Core) scrollToThumb(o geom.Orientation, thumbPos int) {
	lengths := c.thumbLengths()
	avail := c.availableSize()

	// Invert the thumb-offset formula: the track has
	// available+1-length steps covering inner+1-available offsets.
	extra := avail.Add(geom.V(1, 1)).Sub(lengths).Max(geom.V(1, 1))

	newOffset := c.innerSize.Add(geom.V(1, 1)).Sub(avail).MulScalar(thumbPos).DivUp(extra)
	maxOffset := c.innerSize.Sub(avail)
	c.offset = c.offset.WithAxis(o, min(newOffset.Get(o), maxOffset.Get(o)))
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
