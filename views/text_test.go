package views

import (
	"testing"

	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/style"
)

func TestTextRequiredSize(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected geom.Vec2
	}{
		{"single line", "hello", geom.V(5, 1)},
		{"multi line", "a\nlonger\nxy", geom.V(6, 3)},
		{"empty", "", geom.V(0, 1)},
		{"wide runes", "日本", geom.V(4, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewText(tt.content).RequiredSize(geom.V(100, 100))
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTextDraw(t *testing.T) {
	v := NewText("ab\ncd")
	buf := render.NewBuffer(2, 2)
	v.Draw(printer.New(buf, style.DefaultTheme()))

	if buf.Row(0) != "ab" || buf.Row(1) != "cd" {
		t.Errorf("Expected rows ab/cd, got %q/%q", buf.Row(0), buf.Row(1))
	}
}

func TestTextNotFocusable(t *testing.T) {
	v := NewText("x")
	if _, err := v.TakeFocus(direction.NoDirection()); err == nil {
		t.Errorf("Expected static text to refuse focus")
	}
	if v.OnEvent(event.KeyPress(event.KeyEnter)).IsConsumed() {
		t.Errorf("Expected static text to ignore events")
	}
}

func TestTextSetContentInvalidates(t *testing.T) {
	v := NewText("a")
	v.Layout(geom.V(1, 1))
	if v.NeedsRelayout() {
		t.Errorf("Expected no relayout right after layout")
	}
	v.SetContent("bb")
	if !v.NeedsRelayout() {
		t.Errorf("Expected relayout after a content change")
	}
	v.Append("!")
	if v.Content() != "bb!" {
		t.Errorf("Expected content %q, got %q", "bb!", v.Content())
	}
}
