package scroll

import (
	"testing"

	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
)

// layoutTall lays out a core with tall fixed-size content.
func layoutTall(c *Core, outer, content geom.Vec2) {
	Layout(c, outer, true, func(geom.Vec2) geom.Vec2 {
		return content
	}, func(geom.Vec2) {})
}

// The scrollbar negotiation must converge within three child queries.
func TestSizesBoundedAttempts(t *testing.T) {
	tests := []struct {
		name       string
		constraint geom.Vec2
		content    geom.Vec2
	}{
		{"fits", geom.V(20, 20), geom.V(10, 10)},
		{"tall content", geom.V(12, 10), geom.V(10, 100)},
		{"wide and tall", geom.V(10, 10), geom.V(50, 50)},
		{"exactly viewport", geom.V(10, 10), geom.V(10, 10)},
		{"one past viewport", geom.V(10, 10), geom.V(8, 11)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCore()
			c.SetScrollX(true)
			calls := 0
			Layout(c, tt.constraint, true, func(geom.Vec2) geom.Vec2 {
				calls++
				return tt.content
			}, func(geom.Vec2) {})

			if calls > 3 {
				t.Errorf("Expected at most 3 size queries, got %d", calls)
			}
		})
	}
}

// Under a strict layout, the negotiated outer size never exceeds the
// constraint.
func TestLayoutRespectsConstraint(t *testing.T) {
	contents := []geom.Vec2{
		geom.V(5, 5), geom.V(100, 3), geom.V(3, 100), geom.V(100, 100),
	}
	constraint := geom.V(15, 8)
	for _, content := range contents {
		c := NewCore()
		c.SetScrollX(true)
		var inner geom.Vec2
		Layout(c, constraint, true, func(geom.Vec2) geom.Vec2 {
			return content
		}, func(size geom.Vec2) {
			inner = size
		})

		outer := c.LastOuterSize()
		if !outer.FitsIn(constraint) {
			t.Errorf("Expected outer %v to fit in %v for content %v", outer, constraint, content)
		}
		if inner != c.InnerSize() {
			t.Errorf("Expected child laid out at inner size %v, got %v", c.InnerSize(), inner)
		}
	}
}

// RequiredSize without scrolling needs reports the content size plus
// nothing; with overflow it accepts the constraint on enabled axes.
func TestRequiredSize(t *testing.T) {
	c := NewCore()
	small := RequiredSize(c, geom.V(20, 20), true, func(geom.Vec2) geom.Vec2 {
		return geom.V(10, 10)
	})
	if small != geom.V(10, 10) {
		t.Errorf("Expected (10,10) when content fits, got %v", small)
	}

	c = NewCore()
	tall := RequiredSize(c, geom.V(12, 10), true, func(geom.Vec2) geom.Vec2 {
		return geom.V(10, 100)
	})
	if tall != geom.V(12, 10) {
		t.Errorf("Expected (12,10) with a vertical scrollbar, got %v", tall)
	}
}

// The offset always stays within [0, content-viewport] no matter the
// mutation sequence.
func TestOffsetClampInvariant(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	maxOffset := geom.V(0, 90)
	mutations := []func(){
		func() { c.SetOffset(geom.V(0, 500)) },
		func() { c.SetOffset(geom.V(-3, -7)) },
		func() { c.ScrollTo(geom.V(0, 99)) },
		func() { c.ScrollToBottom() },
		func() { c.ScrollToTop() },
		func() { c.ScrollToY(55) },
		func() { c.ScrollToRect(geom.RectFromSize(geom.V(0, 95), geom.V(1, 5))) },
	}
	for i, mutate := range mutations {
		mutate()
		off := c.Offset()
		if off.X < 0 || off.Y < 0 || off.X > maxOffset.X || off.Y > maxOffset.Y {
			t.Errorf("Expected offset within [0,%v] after mutation %d, got %v", maxOffset, i, off)
		}
	}
}

func TestScrollToMakesCellVisible(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	c.ScrollTo(geom.V(0, 42))
	viewport := c.ContentViewport()
	if !viewport.Contains(geom.V(0, 42)) {
		t.Errorf("Expected row 42 visible in %v", viewport)
	}

	// Already visible: no movement.
	before := c.Offset()
	c.ScrollTo(geom.V(0, viewport.Top()))
	if c.Offset() != before {
		t.Errorf("Expected no scroll for a visible cell, offset moved %v to %v", before, c.Offset())
	}
}

func TestKeepInViewMinimalScroll(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	// Rect below the viewport: scroll just far enough that its
	// bottom row lands on the last viewport row.
	c.KeepInView(geom.RectFromSize(geom.V(0, 38), geom.V(10, 5)))
	if c.Offset() != geom.V(0, 33) {
		t.Errorf("Expected offset (0,33), got %v", c.Offset())
	}
	if !c.ContentViewport().Contains(geom.V(9, 42)) {
		t.Errorf("Expected rect bottom-right visible in %v", c.ContentViewport())
	}

	// Already fully visible: no movement.
	c.KeepInView(geom.RectFromSize(geom.V(0, 35), geom.V(10, 3)))
	if c.Offset() != geom.V(0, 33) {
		t.Errorf("Expected no scroll for a visible rect, got %v", c.Offset())
	}

	// Rect above the viewport: its top row becomes the first row.
	c.KeepInView(geom.RectFromSize(geom.V(0, 10), geom.V(10, 2)))
	if c.Offset() != geom.V(0, 10) {
		t.Errorf("Expected offset (0,10), got %v", c.Offset())
	}
}

func TestStickToBottom(t *testing.T) {
	c := NewCore()
	c.SetStrategy(StickToBottom)
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	if c.Offset().Y != 90 {
		t.Errorf("Expected offset pinned to bottom (90), got %d", c.Offset().Y)
	}

	// Content grows; the viewport follows.
	layoutTall(c, geom.V(12, 10), geom.V(10, 120))
	if c.Offset().Y != 110 {
		t.Errorf("Expected offset to follow growth (110), got %d", c.Offset().Y)
	}
}

// Manual scrolling switches the strategy back to KeepRow.
func TestManualScrollOverridesStrategy(t *testing.T) {
	c := NewCore()
	c.SetStrategy(StickToBottom)
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	res := OnEvent(c, event.KeyPress(event.KeyUp),
		func(event.Event) event.Result { return event.Ignored() },
		func(size geom.Vec2) geom.Rect { return geom.RectFromSize(geom.Zero(), geom.V(1, 1)) },
	)
	if !res.IsConsumed() {
		t.Errorf("Expected the scroll key to be consumed")
	}
	if c.Strategy() != KeepRow {
		t.Errorf("Expected strategy reset to KeepRow, got %v", c.Strategy())
	}
	if c.Offset().Y != 89 {
		t.Errorf("Expected offset 89 after one step up, got %d", c.Offset().Y)
	}
}

func TestIsScrollingAndScrollbarSize(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	scrolling := c.IsScrolling()
	if scrolling.X || !scrolling.Y {
		t.Errorf("Expected vertical-only scrolling, got %+v", scrolling)
	}
	// Vertical bar plus one column of padding.
	if got := c.ScrollbarSize(); got != geom.V(2, 0) {
		t.Errorf("Expected scrollbar size (2,0), got %v", got)
	}
}

func TestNoScrollbarWhenContentFits(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 8))

	if geom.Any(c.IsScrolling()) {
		t.Errorf("Expected no scrolling for fitting content")
	}
	if got := c.ScrollbarSize(); got != geom.Zero() {
		t.Errorf("Expected no scrollbar space, got %v", got)
	}
}
