package views

import (
	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/scroll"
	"github.com/lixenwraith/termview/view"
)

// Scroll wraps a child in a scrollable viewport.
type Scroll struct {
	child view.View
	core  *scroll.Core
}

// NewScroll wraps the child. Vertical scrolling is enabled by
// default.
func NewScroll(child view.View) *Scroll {
	return &Scroll{child: child, core: scroll.NewCore()}
}

// Core exposes the scrolling state, mostly for tests and for views
// composing their own behavior on top.
func (s *Scroll) Core() *scroll.Core {
	return s.core
}

// Unwrap returns the wrapped child.
func (s *Scroll) Unwrap() view.View {
	return s.child
}

// ScrollX enables or disables horizontal scrolling. Chainable.
func (s *Scroll) ScrollX(enabled bool) *Scroll {
	s.core.SetScrollX(enabled)
	return s
}

// ScrollY enables or disables vertical scrolling. Chainable.
func (s *Scroll) ScrollY(enabled bool) *Scroll {
	s.core.SetScrollY(enabled)
	return s
}

// ShowScrollbars controls whether scrollbars are drawn. Chainable.
func (s *Scroll) ShowScrollbars(show bool) *Scroll {
	s.core.SetShowScrollbars(show)
	return s
}

// Strategy sets what the viewport sticks to when content changes.
// Chainable.
func (s *Scroll) Strategy(st scroll.Strategy) *Scroll {
	s.core.SetStrategy(st)
	return s
}

func (s *Scroll) Draw(p printer.Printer) {
	scroll.Draw(s.core, p, s.child.Draw)
}

func (s *Scroll) Layout(size geom.Vec2) {
	scroll.Layout(s.core, size, s.child.NeedsRelayout(), s.child.RequiredSize, s.child.Layout)
}

func (s *Scroll) NeedsRelayout() bool {
	return s.core.NeedsRelayout() || s.child.NeedsRelayout()
}

func (s *Scroll) RequiredSize(constraint geom.Vec2) geom.Vec2 {
	return scroll.RequiredSize(s.core, constraint, s.child.NeedsRelayout(), s.child.RequiredSize)
}

func (s *Scroll) OnEvent(ev event.Event) event.Result {
	return scroll.OnEvent(s.core, ev, s.child.OnEvent, s.child.ImportantArea)
}

func (s *Scroll) TakeFocus(source direction.Direction) (event.Result, error) {
	res, err := s.child.TakeFocus(source)
	if err != nil {
		// The viewport itself can hold focus as long as there is
		// something to scroll.
		if geom.Any(s.core.IsScrolling()) {
			return event.Consumed(), nil
		}
		return event.Ignored(), view.ErrCannotFocus
	}
	s.core.ScrollToRect(s.child.ImportantArea(s.core.InnerSize()))
	return res, nil
}

func (s *Scroll) FocusView(sel view.Selector) (event.Result, error) {
	return s.child.FocusView(sel)
}

func (s *Scroll) CallOnAny(sel view.Selector, fn func(view.View)) {
	s.child.CallOnAny(sel, fn)
}

func (s *Scroll) ImportantArea(size geom.Vec2) geom.Rect {
	return scroll.ImportantArea(s.core, size, s.child.ImportantArea)
}
