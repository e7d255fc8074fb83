package tcellb

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
)

func TestTranslateButton(t *testing.T) {
	tests := []struct {
		name     string
		mask     tcell.ButtonMask
		expected event.MouseButton
	}{
		{"left", tcell.Button1, event.ButtonLeft},
		{"right", tcell.Button2, event.ButtonRight},
		{"middle", tcell.Button3, event.ButtonMiddle},
		{"fourth", tcell.Button4, event.Button4},
		{"fifth", tcell.Button5, event.Button5},
		{"other", tcell.Button8, event.ButtonOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateButton(tt.mask); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTranslateMousePressHoldRelease(t *testing.T) {
	b := &Backend{}

	ev, ok := b.translateMouse(tcell.NewEventMouse(3, 4, tcell.Button2, 0))
	if !ok || ev.Mouse != event.Press || ev.Btn != event.ButtonRight {
		t.Errorf("Expected right-button press, got %+v ok=%v", ev, ok)
	}
	if ev.Position != geom.V(3, 4) {
		t.Errorf("Expected position (3,4), got %v", ev.Position)
	}

	ev, ok = b.translateMouse(tcell.NewEventMouse(5, 4, tcell.Button2, 0))
	if !ok || ev.Mouse != event.Hold || ev.Btn != event.ButtonRight {
		t.Errorf("Expected right-button hold, got %+v ok=%v", ev, ok)
	}

	ev, ok = b.translateMouse(tcell.NewEventMouse(5, 4, tcell.ButtonNone, 0))
	if !ok || ev.Mouse != event.Release || ev.Btn != event.ButtonRight {
		t.Errorf("Expected right-button release, got %+v ok=%v", ev, ok)
	}

	// Plain motion with nothing held is dropped.
	if _, ok := b.translateMouse(tcell.NewEventMouse(6, 4, tcell.ButtonNone, 0)); ok {
		t.Error("Expected plain motion to be dropped")
	}
}

func TestTranslateMouseWheel(t *testing.T) {
	b := &Backend{}

	ev, ok := b.translateMouse(tcell.NewEventMouse(1, 2, tcell.WheelUp, 0))
	if !ok || ev.Mouse != event.WheelUp {
		t.Errorf("Expected wheel up, got %+v ok=%v", ev, ok)
	}
	ev, ok = b.translateMouse(tcell.NewEventMouse(1, 2, tcell.WheelDown, 0))
	if !ok || ev.Mouse != event.WheelDown {
		t.Errorf("Expected wheel down, got %+v ok=%v", ev, ok)
	}
}
