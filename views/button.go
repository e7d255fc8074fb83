package views

import (
	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/style"
	"github.com/lixenwraith/termview/view"
	"github.com/mattn/go-runewidth"
)

// Button is a single-line label firing a callback on Enter or on a
// left click.
type Button struct {
	view.Base

	label    string
	callback event.Callback
	enabled  bool

	lastSize    geom.Vec2
	invalidated bool
}

// NewButton creates a button labelled "<label>".
func NewButton(label string, cb event.Callback) *Button {
	return NewButtonRaw("<"+label+">", cb)
}

// NewButtonRaw creates a button without adding angle brackets.
func NewButtonRaw(label string, cb event.Callback) *Button {
	return &Button{
		label:       label,
		callback:    cb,
		enabled:     true,
		invalidated: true,
	}
}

// SetCallback replaces the button's callback.
func (b *Button) SetCallback(cb event.Callback) {
	b.callback = cb
}

// Label returns the label, brackets included.
func (b *Button) Label() string {
	return b.label
}

// SetLabel sets the label, adding brackets.
func (b *Button) SetLabel(label string) {
	b.SetLabelRaw("<" + label + ">")
}

// SetLabelRaw sets the label exactly as given.
func (b *Button) SetLabelRaw(label string) {
	b.label = label
	b.invalidated = true
}

// SetEnabled enables or disables the button. A disabled button
// ignores events and refuses focus.
func (b *Button) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// IsEnabled returns true if the button reacts to events.
func (b *Button) IsEnabled() bool {
	return b.enabled
}

func (b *Button) width() int {
	return runewidth.StringWidth(b.label)
}

// labelOffset centers the label in the allocated width.
func (b *Button) labelOffset() int {
	if b.lastSize.X <= b.width() {
		return 0
	}
	return (b.lastSize.X - b.width()) / 2
}

func (b *Button) Draw(p printer.Printer) {
	if p.Size.X == 0 {
		return
	}

	st := p.Theme().Default()
	switch {
	case !b.enabled:
		st.Fg = p.Theme().Color(style.RoleSecondary)
	case p.Focused:
		st = p.Theme().Highlight()
	}

	offset := 0
	if p.Size.X > b.width() {
		offset = (p.Size.X - b.width()) / 2
	}
	p.WithStyle(st, func(p printer.Printer) {
		p.Print(geom.V(offset, 0), b.label)
	})
}

func (b *Button) Layout(size geom.Vec2) {
	b.lastSize = size
	b.invalidated = false
}

func (b *Button) NeedsRelayout() bool {
	return b.invalidated
}

func (b *Button) RequiredSize(_ geom.Vec2) geom.Vec2 {
	return geom.V(b.width(), 1)
}

func (b *Button) OnEvent(ev event.Event) event.Result {
	if !b.enabled {
		return event.Ignored()
	}

	if ev == event.KeyPress(event.KeyEnter) {
		return event.ConsumedWith(b.callback)
	}
	if ev.Kind == event.KindMouse &&
		ev.Mouse == event.Release && ev.Btn == event.ButtonLeft {
		hit := geom.RectFromSize(
			ev.Offset.Add(geom.V(b.labelOffset(), 0)),
			geom.V(b.width(), 1),
		)
		if hit.Contains(ev.Position) {
			return event.ConsumedWith(b.callback)
		}
	}
	return event.Ignored()
}

func (b *Button) TakeFocus(_ direction.Direction) (event.Result, error) {
	if !b.enabled {
		return event.Ignored(), view.ErrCannotFocus
	}
	return event.Consumed(), nil
}
