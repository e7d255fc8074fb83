package scroll

import (
	"testing"

	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
)

func ignoreChild(event.Event) event.Result { return event.Ignored() }

func topLeftArea(size geom.Vec2) geom.Rect {
	return geom.RectFromSize(geom.Zero(), geom.V(1, 1))
}

func send(c *Core, ev event.Event) event.Result {
	return OnEvent(c, ev, ignoreChild, topLeftArea)
}

// Paging moves by exactly one viewport height and clamps at the
// edges.
func TestPageDownMovesByViewport(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	for i, expected := range []int{10, 20, 30} {
		res := send(c, event.KeyPress(event.KeyPageDown))
		if !res.IsConsumed() {
			t.Errorf("Expected page %d to be consumed", i)
		}
		if c.Offset().Y != expected {
			t.Errorf("Expected offset %d after page %d, got %d", expected, i, c.Offset().Y)
		}
	}

	c.SetOffset(geom.V(0, 85))
	send(c, event.KeyPress(event.KeyPageDown))
	if c.Offset().Y != 90 {
		t.Errorf("Expected clamp at 90, got %d", c.Offset().Y)
	}

	// At the bottom the event is still a scroll no-op claim check:
	// nothing can move, so it must be ignored.
	res := send(c, event.KeyPress(event.KeyPageDown))
	if res.IsConsumed() {
		t.Errorf("Expected page down at the bottom to be ignored")
	}
}

func TestPageUpMovesByViewport(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))
	c.SetOffset(geom.V(0, 25))

	send(c, event.KeyPress(event.KeyPageUp))
	if c.Offset().Y != 15 {
		t.Errorf("Expected 15 after one page up, got %d", c.Offset().Y)
	}

	send(c, event.KeyPress(event.KeyPageUp))
	send(c, event.KeyPress(event.KeyPageUp))
	if c.Offset().Y != 0 {
		t.Errorf("Expected clamp at 0, got %d", c.Offset().Y)
	}
}

func TestArrowScrollSingleRow(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	send(c, event.KeyPress(event.KeyDown))
	if c.Offset().Y != 1 {
		t.Errorf("Expected offset 1, got %d", c.Offset().Y)
	}
	send(c, event.KeyPress(event.KeyUp))
	if c.Offset().Y != 0 {
		t.Errorf("Expected offset 0, got %d", c.Offset().Y)
	}
	// Nothing above: ignored.
	if send(c, event.KeyPress(event.KeyUp)).IsConsumed() {
		t.Errorf("Expected up at the top to be ignored")
	}
}

func TestHomeEndScroll(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))
	c.SetOffset(geom.V(0, 42))

	send(c, event.KeyPress(event.KeyEnd))
	if c.Offset().Y != 90 {
		t.Errorf("Expected End to reach 90, got %d", c.Offset().Y)
	}
	send(c, event.KeyPress(event.KeyHome))
	if c.Offset().Y != 0 {
		t.Errorf("Expected Home to reach 0, got %d", c.Offset().Y)
	}
}

// Alt-modified keys are not scroll commands.
func TestModifiedKeysIgnored(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	if send(c, event.Alt(event.KeyDown)).IsConsumed() {
		t.Errorf("Expected Alt+Down to be ignored")
	}
	if !send(c, event.Ctrl(event.KeyDown)).IsConsumed() {
		t.Errorf("Expected Ctrl+Down to scroll")
	}
}

func TestWheelScrollsThreeRows(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	send(c, event.Wheel(event.WheelDown, geom.Zero(), geom.V(1, 1)))
	if c.Offset().Y != 3 {
		t.Errorf("Expected offset 3 after one wheel notch, got %d", c.Offset().Y)
	}

	c.SetOffset(geom.V(0, 89))
	send(c, event.Wheel(event.WheelDown, geom.Zero(), geom.V(1, 1)))
	if c.Offset().Y != 90 {
		t.Errorf("Expected clamp at 90, got %d", c.Offset().Y)
	}

	send(c, event.Wheel(event.WheelUp, geom.Zero(), geom.V(1, 1)))
	if c.Offset().Y != 87 {
		t.Errorf("Expected 87 after wheel up, got %d", c.Offset().Y)
	}
}

// Pressing the track teleports the thumb there, holding drags it with
// the offset clamped to the content, and release ends the grab.
func TestScrollbarDragTrackPress(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	res := send(c, event.Mouse(event.Press, event.ButtonLeft, geom.Zero(), geom.V(11, 9)))
	if !res.IsConsumed() {
		t.Errorf("Expected press on the track to be consumed")
	}
	if c.Offset().Y != 82 {
		t.Errorf("Expected teleport to offset 82, got %d", c.Offset().Y)
	}

	send(c, event.Mouse(event.Hold, event.ButtonLeft, geom.Zero(), geom.V(11, 5)))
	if c.Offset().Y != 46 {
		t.Errorf("Expected drag to offset 46, got %d", c.Offset().Y)
	}

	// Dragging past the track end clamps to the bottom.
	send(c, event.Mouse(event.Hold, event.ButtonLeft, geom.Zero(), geom.V(11, 20)))
	if c.Offset().Y != 90 {
		t.Errorf("Expected clamp at 90, got %d", c.Offset().Y)
	}

	send(c, event.Mouse(event.Hold, event.ButtonLeft, geom.Zero(), geom.V(11, 0)))
	if c.Offset().Y != 0 {
		t.Errorf("Expected drag back to the top, got %d", c.Offset().Y)
	}

	res = send(c, event.Mouse(event.Release, event.ButtonLeft, geom.Zero(), geom.V(11, 0)))
	if !res.IsConsumed() {
		t.Errorf("Expected release to be consumed")
	}

	// The grab is gone; a stray hold scrolls nothing.
	res = send(c, event.Mouse(event.Hold, event.ButtonLeft, geom.Zero(), geom.V(11, 7)))
	if res.IsConsumed() {
		t.Errorf("Expected hold after release to be ignored")
	}
	if c.Offset().Y != 0 {
		t.Errorf("Expected offset untouched after release, got %d", c.Offset().Y)
	}
}

// Pressing the thumb itself does not move it; the drag keeps the grab
// point under the pointer.
func TestScrollbarDragKeepsGrabPoint(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 30))

	// Thumb covers rows 0..2; grab its last row.
	send(c, event.Mouse(event.Press, event.ButtonLeft, geom.Zero(), geom.V(11, 2)))
	if c.Offset().Y != 0 {
		t.Errorf("Expected press on the thumb to not scroll, got %d", c.Offset().Y)
	}

	send(c, event.Mouse(event.Hold, event.ButtonLeft, geom.Zero(), geom.V(11, 3)))
	if c.Offset().Y != 3 {
		t.Errorf("Expected one-step drag to offset 3, got %d", c.Offset().Y)
	}
}

// A consumed child event keeps the child's important area in view.
func TestChildConsumptionScrollsToImportantArea(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))

	res := OnEvent(c, event.Char('x'),
		func(event.Event) event.Result { return event.Consumed() },
		func(size geom.Vec2) geom.Rect {
			return geom.RectFromSize(geom.V(0, 50), geom.V(1, 1))
		},
	)
	if !res.IsConsumed() {
		t.Errorf("Expected the child's consumption to propagate")
	}
	if !c.ContentViewport().Contains(geom.V(0, 50)) {
		t.Errorf("Expected row 50 in view, viewport %v", c.ContentViewport())
	}
}

// Mouse events inside the viewport reach the child shifted into
// content coordinates.
func TestMouseRelativized(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))
	c.SetOffset(geom.V(0, 20))

	var seen geom.Vec2
	OnEvent(c, event.Mouse(event.Press, event.ButtonLeft, geom.Zero(), geom.V(3, 4)),
		func(ev event.Event) event.Result {
			seen = ev.Position
			return event.Consumed()
		},
		topLeftArea,
	)
	if seen != geom.V(3, 24) {
		t.Errorf("Expected position shifted to (3,24), got %v", seen)
	}
}

func TestImportantAreaClippedToViewport(t *testing.T) {
	c := NewCore()
	layoutTall(c, geom.V(12, 10), geom.V(10, 100))
	c.SetOffset(geom.V(0, 20))

	area := ImportantArea(c, geom.V(12, 10), func(size geom.Vec2) geom.Rect {
		return geom.RectFromSize(geom.V(0, 25), geom.V(5, 50))
	})
	if area.Top() != 5 {
		t.Errorf("Expected area to start at row 5 in viewport coordinates, got %d", area.Top())
	}
	if area.Bottom() > 29 {
		t.Errorf("Expected area clipped to the viewport, bottom %d", area.Bottom())
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		ok       bool
	}{
		{"keep_row", KeepRow, true},
		{"KeepRow", KeepRow, true},
		{"stick_to_top", StickToTop, true},
		{"stick_to_bottom", StickToBottom, true},
		{"sideways", KeepRow, false},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if tt.ok && (err != nil || got != tt.expected) {
			t.Errorf("Expected ParseStrategy(%q) = %v, got %v (err %v)", tt.input, tt.expected, got, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("Expected ParseStrategy(%q) to fail", tt.input)
		}
	}
}
