package views

import (
	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/view"
)

// Named attaches an identity to its child so it can be found by
// selector from anywhere in the tree.
type Named struct {
	name  string
	child view.View
}

// NewNamed wraps the child under the given name.
func NewNamed(name string, child view.View) *Named {
	return &Named{name: name, child: child}
}

// Name returns the wrapper's name.
func (n *Named) Name() string {
	return n.name
}

// Unwrap returns the wrapped child.
func (n *Named) Unwrap() view.View {
	return n.child
}

func (n *Named) Draw(p printer.Printer)              { n.child.Draw(p) }
func (n *Named) Layout(size geom.Vec2)               { n.child.Layout(size) }
func (n *Named) NeedsRelayout() bool                 { return n.child.NeedsRelayout() }
func (n *Named) RequiredSize(c geom.Vec2) geom.Vec2  { return n.child.RequiredSize(c) }
func (n *Named) OnEvent(ev event.Event) event.Result { return n.child.OnEvent(ev) }

func (n *Named) TakeFocus(source direction.Direction) (event.Result, error) {
	return n.child.TakeFocus(source)
}

// FocusView consumes the request when the selector names this
// wrapper, otherwise forwards it.
func (n *Named) FocusView(sel view.Selector) (event.Result, error) {
	if sel.Name == n.name {
		return n.child.TakeFocus(direction.NoDirection())
	}
	return n.child.FocusView(sel)
}

// CallOnAny invokes fn on the child when the selector matches, and
// always forwards the traversal.
func (n *Named) CallOnAny(sel view.Selector, fn func(view.View)) {
	if sel.Name == n.name {
		fn(n.child)
	}
	n.child.CallOnAny(sel, fn)
}

func (n *Named) ImportantArea(size geom.Vec2) geom.Rect {
	return n.child.ImportantArea(size)
}
