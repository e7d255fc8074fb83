package views

import (
	"sort"

	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/view"
)

// fixedChild is a child view pinned to an absolute rectangle.
type fixedChild struct {
	view     view.View
	position geom.Rect
}

// Fixed arranges its children at absolute positions, usually computed
// by an external layout engine. Focus moves geometrically: arrow keys
// pick the nearest child in that direction whose footprint overlaps
// the current one.
type Fixed struct {
	children []*fixedChild
	focus    int
}

// NewFixed returns a new, empty container.
func NewFixed() *Fixed {
	return &Fixed{}
}

// Child adds a child at the given position. Chainable.
func (f *Fixed) Child(position geom.Rect, v view.View) *Fixed {
	f.AddChild(position, v)
	return f
}

// AddChild adds a child at the given position.
func (f *Fixed) AddChild(position geom.Rect, v view.View) {
	f.children = append(f.children, &fixedChild{view: v, position: position})
}

// FocusIndex returns the index of the focused child.
func (f *Fixed) FocusIndex() int {
	return f.focus
}

// SetFocusIndex attempts to focus the child at the given index.
func (f *Fixed) SetFocusIndex(index int) error {
	if index < 0 || index >= len(f.children) {
		return view.ErrViewNotFound
	}
	if _, err := f.children[index].view.TakeFocus(direction.NoDirection()); err != nil {
		return view.ErrViewNotFound
	}
	f.focus = index
	return nil
}

// Len returns the number of children.
func (f *Fixed) Len() int {
	return len(f.children)
}

// IsEmpty returns true if the container has no children.
func (f *Fixed) IsEmpty() bool {
	return len(f.children) == 0
}

// GetChild returns the child at i, or nil if out of range.
func (f *Fixed) GetChild(i int) view.View {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	return f.children[i].view
}

// SetChildPosition moves the child at i to a new rectangle.
//
// Panics if i is out of range.
func (f *Fixed) SetChildPosition(i int, position geom.Rect) {
	f.children[i].position = position
}

// RemoveChild removes and returns the child at i, or nil if out of
// range.
func (f *Fixed) RemoveChild(i int) view.View {
	if i < 0 || i >= len(f.children) {
		return nil
	}
	if f.focus > i || (f.focus != 0 && f.focus == len(f.children)-1) {
		f.focus--
	}
	removed := f.children[i].view
	f.children = append(f.children[:i], f.children[i+1:]...)
	return removed
}

// edgeCoord returns the coordinate of the rectangle's edge facing the
// given direction.
func edgeCoord(r geom.Rect, target direction.Absolute) int {
	o, rel := target.Split()
	lo, hi := r.Side(o)
	if rel == direction.Front {
		return lo
	}
	return hi
}

// searchOrder returns child indices ordered for a focus search coming
// from source: storage order for Front, reversed for Back, and sorted
// by the facing edge for an absolute direction.
func (f *Fixed) searchOrder(source direction.Direction) []int {
	order := make([]int, len(f.children))
	for i := range order {
		order[i] = i
	}
	if source.IsRelative() {
		// Orientation is irrelevant for a relative source.
		if rel, _ := source.Relative(geom.Horizontal); rel == direction.Back {
			for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
				order[i], order[j] = order[j], order[i]
			}
		}
		return order
	}
	abs := source.Absolute(geom.Horizontal)
	if abs == direction.None {
		return order
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edgeCoord(f.children[order[a]].position, abs) <
			edgeCoord(f.children[order[b]].position, abs)
	})
	return order
}

// circularOrder returns child indices starting at start and wrapping
// around.
func (f *Fixed) circularOrder(start int) []int {
	order := make([]int, 0, len(f.children))
	for i := start; i < len(f.children); i++ {
		order = append(order, i)
	}
	for i := 0; i < start; i++ {
		order = append(order, i)
	}
	return order
}

// moveFocusRel moves focus to the next child in storage order (Back
// targets the next, Front the previous).
func (f *Fixed) moveFocusRel(target direction.Relative) event.Result {
	source := direction.Rel(target.Swap())
	order := f.searchOrder(source)
	past := false
	for _, i := range order {
		if !past {
			past = i == f.focus
			continue
		}
		if _, err := f.children[i].view.TakeFocus(source); err != nil {
			continue
		}
		f.focus = i
		return event.Consumed()
	}
	return event.Ignored()
}

// moveFocusAbs moves focus geometrically: among children lying on the
// target side of the focused child whose footprint overlaps it across
// the movement axis, the nearest one wins.
func (f *Fixed) moveFocusAbs(target direction.Absolute) event.Result {
	source := direction.Abs(target.Opposite())
	o, rel := target.Split()

	current := f.children[f.focus].position
	curLo, curHi := current.Side(o.Swap())
	curEdge := edgeCoord(current, target)

	for _, i := range f.searchOrder(source) {
		c := f.children[i]
		// Candidates must sit strictly on the target side: moving
		// Right, the candidate's edge lies past the focused one.
		got, ok := direction.AToB(edgeCoord(c.position, target), curEdge)
		if !ok || got != rel {
			continue
		}
		lo, hi := c.position.Side(o.Swap())
		if hi < curLo || curHi < lo {
			continue
		}
		if _, err := c.view.TakeFocus(source); err != nil {
			continue
		}
		f.focus = i
		return event.Consumed()
	}
	return event.Ignored()
}

func (f *Fixed) checkFocusGrab(ev event.Event) {
	if ev.Kind != event.KindMouse || !ev.Mouse.GrabsFocus() {
		return
	}
	position, ok := ev.Position.CheckedSub(ev.Offset)
	if !ok {
		return
	}
	for i, c := range f.children {
		if !c.position.Contains(position) {
			continue
		}
		if _, err := c.view.TakeFocus(direction.NoDirection()); err == nil {
			f.focus = i
		}
	}
}

// Draw renders every child in its own window.
func (f *Fixed) Draw(p printer.Printer) {
	for i, c := range f.children {
		c.view.Draw(p.Windowed(c.position).FocusedIf(i == f.focus))
	}
}

// Layout forwards each child its fixed size.
func (f *Fixed) Layout(_ geom.Vec2) {
	for _, c := range f.children {
		c.view.Layout(c.position.Size())
	}
}

// NeedsRelayout returns true when any child needs a fresh layout pass.
func (f *Fixed) NeedsRelayout() bool {
	for _, c := range f.children {
		if c.view.NeedsRelayout() {
			return true
		}
	}
	return false
}

// RequiredSize returns the bounding box of all child rectangles.
func (f *Fixed) RequiredSize(_ geom.Vec2) geom.Vec2 {
	size := geom.Zero()
	for _, c := range f.children {
		size = size.Max(c.position.BottomRight().Add(geom.V(1, 1)))
	}
	return size
}

// OnEvent routes the event to the focused child, then interprets
// ignored keys as focus moves.
func (f *Fixed) OnEvent(ev event.Event) event.Result {
	if f.IsEmpty() {
		return event.Ignored()
	}

	f.checkFocusGrab(ev)

	child := f.children[f.focus]
	result := child.view.OnEvent(ev.Relativized(child.position.TopLeft()))
	if result.IsConsumed() {
		return result
	}

	switch ev {
	case event.Shift(event.KeyTab):
		return f.moveFocusRel(direction.Front)
	case event.KeyPress(event.KeyTab):
		return f.moveFocusRel(direction.Back)
	case event.KeyPress(event.KeyLeft):
		return f.moveFocusAbs(direction.Left)
	case event.KeyPress(event.KeyRight):
		return f.moveFocusAbs(direction.Right)
	case event.KeyPress(event.KeyUp):
		return f.moveFocusAbs(direction.Up)
	case event.KeyPress(event.KeyDown):
		return f.moveFocusAbs(direction.Down)
	}
	return event.Ignored()
}

// TakeFocus focuses the first child accepting focus when searched in
// the order implied by source. A directionless source prefers the
// current focus and scans circularly.
func (f *Fixed) TakeFocus(source direction.Direction) (event.Result, error) {
	var order []int
	if !source.IsRelative() && source.Absolute(geom.Horizontal) == direction.None {
		order = f.circularOrder(f.focus)
	} else {
		order = f.searchOrder(source)
	}
	for _, i := range order {
		res, err := f.children[i].view.TakeFocus(source)
		if err != nil {
			continue
		}
		f.focus = i
		return res, nil
	}
	return event.Ignored(), view.ErrCannotFocus
}

// FocusView searches children for the selector.
func (f *Fixed) FocusView(sel view.Selector) (event.Result, error) {
	for i, c := range f.children {
		res, err := c.view.FocusView(sel)
		if err == nil {
			f.focus = i
			return res, nil
		}
	}
	return event.Ignored(), view.ErrViewNotFound
}

// CallOnAny forwards the traversal to every child.
func (f *Fixed) CallOnAny(sel view.Selector, fn func(view.View)) {
	for _, c := range f.children {
		c.view.CallOnAny(sel, fn)
	}
}

// ImportantArea returns the focused child's important area in our
// coordinates.
func (f *Fixed) ImportantArea(size geom.Vec2) geom.Rect {
	if f.IsEmpty() {
		return geom.RectFromSize(geom.Zero(), size)
	}
	child := f.children[f.focus]
	return child.view.ImportantArea(child.position.Size()).
		Translate(child.position.TopLeft())
}
