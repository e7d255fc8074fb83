// Package scroll implements the reusable scrolling core: viewport
// offset state, the scrollbar drag state machine, and the size
// negotiation between a scrollable region and its child.
package scroll

import (
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/view"
)

// thumbGrab records an active scrollbar drag: which bar, and where on
// the thumb the pointer grabbed it.
type thumbGrab struct {
	orientation geom.Orientation
	grab        int
}

// sizeCache remembers the last negotiated sizes together with the
// scrolling flags they were computed with.
type sizeCache struct {
	cache     view.SizeCache2
	scrolling geom.XY[bool]
}

// Core is the lowest-level element handling scroll logic. Any view
// that needs to scroll embeds a Core and routes its View methods
// through the package-level RequiredSize/Layout/OnEvent/Draw helpers.
type Core struct {
	// innerSize is the size the child thinks it was given.
	innerSize geom.Vec2

	// offset into the content: our (0,0) shows the content's offset.
	offset geom.Vec2

	// lastAvailable is the space left for content on the last layout,
	// excluding any scrollbar.
	lastAvailable geom.Vec2

	// enabled flags which axes are allowed to scroll.
	enabled geom.XY[bool]

	// showScrollbars allows scrollbars; they are still hidden while
	// nothing overflows.
	showScrollbars bool

	// scrollbarPadding is the gap between content and scrollbar.
	// X pads the vertical bar, Y pads the horizontal one.
	scrollbarPadding geom.Vec2

	grab *thumbGrab

	cache *sizeCache

	strategy Strategy
}

// NewCore creates a core scrolling vertically only, with scrollbars
// shown when needed.
func NewCore() *Core {
	return &Core{
		enabled:          geom.XY[bool]{X: false, Y: true},
		showScrollbars:   true,
		scrollbarPadding: geom.V(1, 0),
	}
}

// Offset returns the current viewport offset into the content.
func (c *Core) Offset() geom.Vec2 {
	return c.offset
}

// SetOffset scrolls to the given offset, clamped to the content.
func (c *Core) SetOffset(offset geom.Vec2) {
	maxOffset := c.innerSize.Sub(c.availableSize())
	c.offset = offset.Max(geom.Zero()).Min(maxOffset)
}

// InnerSize returns the size given to the content on the last layout.
func (c *Core) InnerSize() geom.Vec2 {
	return c.innerSize
}

// Enabled returns, per axis, whether this core may scroll.
func (c *Core) Enabled() geom.XY[bool] {
	return c.enabled
}

// SetScrollX controls horizontal scrolling. Defaults to off.
func (c *Core) SetScrollX(enabled bool) {
	c.enabled.X = enabled
	c.InvalidateCache()
}

// SetScrollY controls vertical scrolling. Defaults to on.
func (c *Core) SetScrollY(enabled bool) {
	c.enabled.Y = enabled
	c.InvalidateCache()
}

// SetShowScrollbars controls whether scrollbars may appear.
func (c *Core) SetShowScrollbars(show bool) {
	c.showScrollbars = show
	c.InvalidateCache()
}

// ShowScrollbars reports whether scrollbars appear when needed.
func (c *Core) ShowScrollbars() bool {
	return c.showScrollbars
}

// SetScrollbarPadding sets the gap between content and scrollbars.
func (c *Core) SetScrollbarPadding(padding geom.Vec2) {
	c.scrollbarPadding = padding
	c.InvalidateCache()
}

// ScrollbarPadding returns the content-to-scrollbar gap.
func (c *Core) ScrollbarPadding() geom.Vec2 {
	return c.scrollbarPadding
}

// SetStrategy changes the automatic offset strategy and applies it
// immediately.
func (c *Core) SetStrategy(s Strategy) {
	c.strategy = s
	c.adjustScroll()
}

// Strategy returns the active scroll strategy.
func (c *Core) Strategy() Strategy {
	return c.strategy
}

// IsScrolling returns, per axis, whether content overflows the
// viewport.
func (c *Core) IsScrolling() geom.XY[bool] {
	avail := c.availableSize()
	return geom.XY[bool]{
		X: c.innerSize.X > avail.X,
		Y: c.innerSize.Y > avail.Y,
	}
}

// ScrollbarSize returns the space eaten by scrollbars: X is the width
// taken by the vertical bar, Y the height taken by the horizontal one.
func (c *Core) ScrollbarSize() geom.Vec2 {
	return geom.SelectVec(
		c.IsScrolling().Swap(),
		c.scrollbarPadding.Add(geom.V(1, 1)),
		geom.Zero(),
	)
}

// ContentViewport returns the rectangle of content currently visible.
func (c *Core) ContentViewport() geom.Rect {
	return geom.RectFromSize(c.offset, c.availableSize())
}

// LastOuterSize returns the total size this core occupied on the last
// layout, scrollbars included.
func (c *Core) LastOuterSize() geom.Vec2 {
	return c.availableSize().Add(c.ScrollbarSize())
}

// NeedsRelayout returns true if the next layout cannot reuse cached
// sizes, regardless of the content.
func (c *Core) NeedsRelayout() bool {
	return c.cache == nil
}

// InvalidateCache forces the next layout to renegotiate sizes.
func (c *Core) InvalidateCache() {
	c.cache = nil
}

// --- Programmatic scrolling ---

// KeepInView scrolls the minimum amount so rect stays visible.
func (c *Core) KeepInView(rect geom.Rect) {
	// The furthest top-left offset that still shows the rect's
	// bottom-right cell.
	lo := rect.BottomRight().Add(geom.V(1, 1)).Sub(c.availableSize())
	hi := rect.TopLeft()
	lo, hi = lo.Min(hi), lo.Max(hi)
	c.offset = c.offset.Max(lo).Min(hi)
}

// ScrollToRect scrolls until the given content rectangle is visible.
func (c *Core) ScrollToRect(important geom.Rect) {
	// The furthest top-left and bottom-right offsets that keep the
	// rect on screen. They may cross if the rect is larger than the
	// viewport.
	topLeft := important.BottomRight().Add(geom.V(1, 1)).Sub(c.availableSize())
	bottomRight := important.TopLeft()

	offsetMin := topLeft.Min(bottomRight)
	offsetMax := topLeft.Max(bottomRight)

	c.offset = c.offset.Max(offsetMin).Min(offsetMax)
}

// ScrollTo scrolls until the given content cell is visible.
func (c *Core) ScrollTo(pos geom.Vec2) {
	// The furthest top-left offset that still shows pos.
	lo := pos.Add(geom.V(1, 1)).Sub(c.availableSize())
	c.offset = c.offset.Max(lo).Min(pos)
}

// ScrollToX scrolls until the given column is visible.
func (c *Core) ScrollToX(x int) {
	avail := c.availableSize().X
	if x >= c.offset.X+avail {
		c.offset.X = 1 + x - avail
	} else if x < c.offset.X {
		c.offset.X = x
	}
}

// ScrollToY scrolls until the given row is visible.
func (c *Core) ScrollToY(y int) {
	avail := c.availableSize().Y
	if y >= c.offset.Y+avail {
		c.offset.Y = 1 + y - avail
	} else if y < c.offset.Y {
		c.offset.Y = y
	}
}

// ScrollToTop scrolls to the top edge.
func (c *Core) ScrollToTop() {
	c.SetOffset(geom.V(c.offset.X, 0))
}

// ScrollToBottom scrolls to the bottom edge.
func (c *Core) ScrollToBottom() {
	maxY := c.innerSize.Sub(c.availableSize()).Y
	c.SetOffset(geom.V(c.offset.X, maxY))
}

// ScrollToLeft scrolls to the left edge.
func (c *Core) ScrollToLeft() {
	c.SetOffset(geom.V(0, c.offset.Y))
}

// ScrollToRight scrolls to the right edge.
func (c *Core) ScrollToRight() {
	maxX := c.innerSize.Sub(c.availableSize()).X
	c.SetOffset(geom.V(maxX, c.offset.Y))
}

// --- Internal bookkeeping ---

// availableSize is the space the content can use, scrollbars excluded.
func (c *Core) availableSize() geom.Vec2 {
	return c.lastAvailable
}

// setLastSize records the size given at layout and the final
// scrolling decision, deriving the space left for content.
func (c *Core) setLastSize(size geom.Vec2, scrolling geom.XY[bool]) {
	c.lastAvailable = size.Sub(geom.SelectVec(
		scrolling.Swap(),
		c.scrollbarPadding.Add(geom.V(1, 1)),
		geom.Zero(),
	))
}

func (c *Core) setInnerSize(inner geom.Vec2) {
	c.innerSize = inner
}

func (c *Core) buildCache(selfSize, constraint geom.Vec2, scrolling geom.XY[bool]) {
	c.cache = &sizeCache{
		cache:     view.NewSizeCache2(selfSize, constraint),
		scrolling: scrolling,
	}
}

// tryCache returns the previously negotiated sizes if they are still
// valid for the constraint.
func (c *Core) tryCache(constraint geom.Vec2) (inner, outer geom.Vec2, scrolling geom.XY[bool], ok bool) {
	if c.cache == nil || !c.cache.cache.Accepts(constraint) {
		return geom.Vec2{}, geom.Vec2{}, geom.XY[bool]{}, false
	}
	return c.innerSize, c.cache.cache.Value(), c.cache.scrolling, true
}

// updateOffset clamps the offset to the content and applies the
// active strategy. Runs on layout only, never mid-frame.
func (c *Core) updateOffset() {
	c.offset = c.offset.Max(geom.Zero()).Min(c.innerSize.Sub(c.availableSize()))
	c.adjustScroll()
}

func (c *Core) adjustScroll() {
	switch c.strategy {
	case StickToTop:
		c.ScrollToTop()
	case StickToBottom:
		c.ScrollToBottom()
	}
}

func (c *Core) releaseGrab() {
	c.grab = nil
}
