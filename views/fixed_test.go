package views

import (
	"testing"

	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/view"
)

func threeCorners() (*Fixed, *stub, *stub, *stub) {
	a, b, c := newStub(3, 1), newStub(3, 1), newStub(3, 1)
	f := NewFixed().
		Child(geom.RectFromSize(geom.V(0, 0), geom.V(3, 1)), a).
		Child(geom.RectFromSize(geom.V(10, 0), geom.V(3, 1)), b).
		Child(geom.RectFromSize(geom.V(0, 5), geom.V(3, 1)), c)
	f.Layout(geom.V(20, 10))
	return f, a, b, c
}

// Arrow keys move focus geometrically: only children on the target
// side with an overlapping footprint qualify.
func TestFixedAbsoluteNavigation(t *testing.T) {
	f, _, _, _ := threeCorners()

	if !f.OnEvent(event.KeyPress(event.KeyRight)).IsConsumed() || f.FocusIndex() != 1 {
		t.Errorf("Expected Right to land on the top-right child, got %d", f.FocusIndex())
	}
	if !f.OnEvent(event.KeyPress(event.KeyLeft)).IsConsumed() || f.FocusIndex() != 0 {
		t.Errorf("Expected Left to return to the top-left child, got %d", f.FocusIndex())
	}
	if !f.OnEvent(event.KeyPress(event.KeyDown)).IsConsumed() || f.FocusIndex() != 2 {
		t.Errorf("Expected Down to land on the bottom child, got %d", f.FocusIndex())
	}
	if !f.OnEvent(event.KeyPress(event.KeyUp)).IsConsumed() || f.FocusIndex() != 0 {
		t.Errorf("Expected Up to return to the top-left child, got %d", f.FocusIndex())
	}
}

// The bottom-left child does not overlap the top-right one on either
// axis, so they are not direct neighbours.
func TestFixedNavigationRequiresOverlap(t *testing.T) {
	f, _, _, _ := threeCorners()

	f.OnEvent(event.KeyPress(event.KeyRight)) // focus on top-right
	if f.OnEvent(event.KeyPress(event.KeyDown)).IsConsumed() {
		t.Errorf("Expected Down from the top-right child to find nothing")
	}
	if f.FocusIndex() != 1 {
		t.Errorf("Expected focus unchanged, got %d", f.FocusIndex())
	}
}

func TestFixedTabOrder(t *testing.T) {
	f, _, _, _ := threeCorners()

	f.OnEvent(event.KeyPress(event.KeyTab))
	if f.FocusIndex() != 1 {
		t.Errorf("Expected Tab to reach child 1, got %d", f.FocusIndex())
	}
	f.OnEvent(event.KeyPress(event.KeyTab))
	if f.FocusIndex() != 2 {
		t.Errorf("Expected Tab to reach child 2, got %d", f.FocusIndex())
	}
	f.OnEvent(event.Shift(event.KeyTab))
	if f.FocusIndex() != 1 {
		t.Errorf("Expected Shift+Tab to step back to child 1, got %d", f.FocusIndex())
	}
}

func TestFixedSkipsUnfocusable(t *testing.T) {
	f, _, b, _ := threeCorners()
	b.focusable = false

	f.OnEvent(event.KeyPress(event.KeyTab))
	if f.FocusIndex() != 2 {
		t.Errorf("Expected Tab to skip the unfocusable child, got %d", f.FocusIndex())
	}
}

func TestFixedRequiredSizeBoundingBox(t *testing.T) {
	f, _, _, _ := threeCorners()
	if got := f.RequiredSize(geom.V(100, 100)); got != geom.V(13, 6) {
		t.Errorf("Expected bounding box (13,6), got %v", got)
	}
}

func TestFixedMouseFocusGrab(t *testing.T) {
	f, _, _, _ := threeCorners()

	press := event.Mouse(event.Press, event.ButtonLeft, geom.Zero(), geom.V(11, 0))
	f.OnEvent(press)
	if f.FocusIndex() != 1 {
		t.Errorf("Expected the press to focus the child under it, got %d", f.FocusIndex())
	}
}

func TestFixedImportantArea(t *testing.T) {
	f, _, _, _ := threeCorners()
	f.OnEvent(event.KeyPress(event.KeyRight))

	area := f.ImportantArea(geom.V(20, 10))
	if area.TopLeft() != geom.V(10, 0) {
		t.Errorf("Expected area at the focused child's position, got %v", area.TopLeft())
	}
}

// A directionless focus request keeps the current focus when it is
// still focusable.
func TestFixedCircularTakeFocus(t *testing.T) {
	f, _, b, _ := threeCorners()
	f.OnEvent(event.KeyPress(event.KeyTab)) // focus child 1

	if _, err := f.TakeFocus(direction.NoDirection()); err != nil {
		t.Fatalf("Expected focus accepted, got %v", err)
	}
	if f.FocusIndex() != 1 {
		t.Errorf("Expected focus kept on child 1, got %d", f.FocusIndex())
	}

	// When the current focus refuses, the scan wraps around.
	b.focusable = false
	if _, err := f.TakeFocus(direction.NoDirection()); err != nil {
		t.Fatalf("Expected focus accepted, got %v", err)
	}
	if f.FocusIndex() != 2 {
		t.Errorf("Expected focus to wrap to child 2, got %d", f.FocusIndex())
	}
}

func TestFixedFocusViewByName(t *testing.T) {
	target := newStub(3, 1)
	f := NewFixed().
		Child(geom.RectFromSize(geom.V(0, 0), geom.V(3, 1)), newStub(3, 1)).
		Child(geom.RectFromSize(geom.V(5, 0), geom.V(3, 1)), NewNamed("target", target))

	if _, err := f.FocusView(view.ByName("target")); err != nil {
		t.Errorf("Expected the named child to be found, got %v", err)
	}
	if f.FocusIndex() != 1 {
		t.Errorf("Expected focus on the named child, got %d", f.FocusIndex())
	}
}
