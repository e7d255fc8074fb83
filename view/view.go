// Package view defines the contract every widget implements and the
// helpers shared by containers.
package view

import (
	"errors"

	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
)

// ErrCannotFocus signals that a view does not take focus. It is a
// routine negative answer consumed by containers trying the next
// candidate, not a failure.
var ErrCannotFocus = errors.New("view does not take focus")

// ErrViewNotFound signals that a selector matched no view. Like
// ErrCannotFocus it is expected control flow, never logged.
var ErrViewNotFound = errors.New("view not found")

// View is the capability set every widget implements.
//
// Layout runs in two phases each frame: the parent asks RequiredSize
// with the constraint it can offer, then commits a size with Layout
// before Draw. RequiredSize must not mutate durable state beyond a
// constraint-keyed cache; Draw must not mutate the view at all.
type View interface {
	// Draw renders the view into its window. Read-only: repeated
	// frames must be idempotent.
	Draw(p printer.Printer)

	// Layout commits the size chosen by the parent. It is called once
	// per frame before Draw, and is the place to recompute child
	// placement.
	Layout(size geom.Vec2)

	// NeedsRelayout returns true if content changed since the last
	// Layout. Views may always return true; it is an optimization
	// hint only.
	NeedsRelayout() bool

	// RequiredSize returns the size the view wants, given the largest
	// size the parent is willing to offer. It may be called several
	// times per frame with different constraints.
	RequiredSize(constraint geom.Vec2) geom.Vec2

	// OnEvent lets the view react to an input event. Mouse
	// coordinates are relative to the view's own top-left by the time
	// the event arrives.
	OnEvent(ev event.Event) event.Result

	// TakeFocus asks the view (or a descendant chosen by source) to
	// become focused. source carries where the focus comes from;
	// direction.NoDirection() means "any focusable descendant,
	// preferring the current one".
	//
	// Returns ErrCannotFocus if nothing here takes focus.
	TakeFocus(source direction.Direction) (event.Result, error)

	// FocusView moves focus to the view matched by the selector,
	// independent of spatial direction. Returns ErrViewNotFound if
	// the selector matches nothing below this view.
	FocusView(sel Selector) (event.Result, error)

	// CallOnAny runs fn on every view matched by the selector,
	// regardless of focus or layout.
	CallOnAny(sel Selector, fn func(View))

	// ImportantArea returns the sub-rectangle that should be kept
	// visible when this view is focused inside a scrolling ancestor.
	ImportantArea(size geom.Vec2) geom.Rect
}

// Selector identifies views by name for FocusView and CallOnAny.
type Selector struct {
	Name string
}

// ByName creates a selector matching views wrapped with the given
// name.
func ByName(name string) Selector {
	return Selector{Name: name}
}

// Base provides the default behaviour for leaf views: draws nothing,
// requires (1,1), ignores events and refuses focus. Embed it and
// override what the widget needs.
type Base struct{}

func (Base) Draw(printer.Printer) {}
func (Base) Layout(geom.Vec2)     {}
func (Base) NeedsRelayout() bool  { return true }
func (Base) OnEvent(event.Event) event.Result {
	return event.Ignored()
}

func (Base) RequiredSize(geom.Vec2) geom.Vec2 {
	return geom.V(1, 1)
}

func (Base) TakeFocus(direction.Direction) (event.Result, error) {
	return event.Ignored(), ErrCannotFocus
}

func (Base) FocusView(Selector) (event.Result, error) {
	return event.Ignored(), ErrViewNotFound
}

func (Base) CallOnAny(Selector, func(View)) {}

func (Base) ImportantArea(size geom.Vec2) geom.Rect {
	return geom.RectFromSize(geom.Zero(), size)
}
