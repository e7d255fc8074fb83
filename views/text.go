package views

import (
	"strings"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/view"
	"github.com/mattn/go-runewidth"
)

// Text is a static, non-focusable block of text. Lines are split on
// newlines and printed as-is, without wrapping.
type Text struct {
	view.Base

	lines       []string
	invalidated bool
}

// NewText creates a text view with the given content.
func NewText(content string) *Text {
	t := &Text{}
	t.SetContent(content)
	return t
}

// SetContent replaces the content entirely.
func (t *Text) SetContent(content string) {
	t.lines = strings.Split(content, "\n")
	t.invalidated = true
}

// Append adds text at the end of the content.
func (t *Text) Append(content string) {
	t.SetContent(t.Content() + content)
}

// Content returns the current content.
func (t *Text) Content() string {
	return strings.Join(t.lines, "\n")
}

func (t *Text) Draw(p printer.Printer) {
	for y, line := range t.lines {
		p.Print(geom.V(0, y), line)
	}
}

func (t *Text) Layout(_ geom.Vec2) {
	t.invalidated = false
}

func (t *Text) NeedsRelayout() bool {
	return t.invalidated
}

func (t *Text) RequiredSize(_ geom.Vec2) geom.Vec2 {
	w := 0
	for _, line := range t.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return geom.V(w, len(t.lines))
}
