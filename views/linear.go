// Package views provides the containers and leaf widgets built on the
// view contract.
package views

import (
	"sort"

	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/view"
)

// linearChild tracks a child view together with its last negotiated
// sizes.
type linearChild struct {
	view view.View

	// requiredSize is the child's last RequiredSize answer. Not
	// necessarily what the child actually got.
	requiredSize geom.Vec2
	lastSize     geom.Vec2

	weight int
}

func (c *linearChild) computeRequiredSize(req geom.Vec2) geom.Vec2 {
	c.requiredSize = c.view.RequiredSize(req)
	return c.requiredSize
}

func (c *linearChild) layout(size geom.Vec2) {
	c.lastSize = size
	c.view.Layout(size)
}

// childItem is a child with its placement along the main axis.
type childItem struct {
	index  int
	child  *linearChild
	offset int
	length int
}

// Linear arranges its children in a row or a column and owns the
// focus bookkeeping between them.
type Linear struct {
	children    []*linearChild
	orientation geom.Orientation
	focus       int

	cache *view.SizeCache2
}

// NewLinear creates an empty container with the given orientation.
func NewLinear(o geom.Orientation) *Linear {
	return &Linear{orientation: o}
}

// Horizontal creates an empty row container.
func Horizontal() *Linear {
	return NewLinear(geom.Horizontal)
}

// Vertical creates an empty column container.
func Vertical() *Linear {
	return NewLinear(geom.Vertical)
}

// Add appends a child. Chainable.
func (l *Linear) Add(v view.View) *Linear {
	l.AddChild(v)
	return l
}

// AddChild appends a child.
func (l *Linear) AddChild(v view.View) {
	l.children = append(l.children, &linearChild{view: v})
	l.invalidate()
}

// InsertChild inserts a child at the given position.
//
// Panics if i is out of range; that is a caller bookkeeping bug.
func (l *Linear) InsertChild(i int, v view.View) {
	l.children = append(l.children, nil)
	copy(l.children[i+1:], l.children[i:])
	l.children[i] = &linearChild{view: v}
	l.invalidate()
}

// RemoveChild removes and returns the child at i, or nil if out of
// range.
func (l *Linear) RemoveChild(i int) view.View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	l.invalidate()
	// Keep the same view focused.
	if l.focus > i || (l.focus != 0 && l.focus == len(l.children)-1) {
		l.focus--
	}
	removed := l.children[i].view
	l.children = append(l.children[:i], l.children[i+1:]...)
	return removed
}

// Len returns the number of children.
func (l *Linear) Len() int {
	return len(l.children)
}

// IsEmpty returns true if the container has no children.
func (l *Linear) IsEmpty() bool {
	return len(l.children) == 0
}

// GetChild returns the child at i, or nil if out of range.
func (l *Linear) GetChild(i int) view.View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i].view
}

// SetWeight sets the distribution weight of the child at i. Currently
// recorded but unused by the layout pass.
//
// Panics if i is out of range.
func (l *Linear) SetWeight(i, weight int) {
	l.children[i].weight = weight
}

// FocusIndex returns the index of the focused child.
func (l *Linear) FocusIndex() int {
	return l.focus
}

// SetFocusIndex attempts to focus the child at the given index.
// Returns ErrViewNotFound if the index is out of range or the child
// refuses focus.
func (l *Linear) SetFocusIndex(index int) (event.Result, error) {
	if index < 0 || index >= len(l.children) {
		return event.Ignored(), view.ErrViewNotFound
	}
	res, err := l.children[index].view.TakeFocus(direction.NoDirection())
	if err != nil {
		return event.Ignored(), view.ErrViewNotFound
	}
	return res.And(l.setFocusUnchecked(index)), nil
}

// setFocusUnchecked moves focus, letting the old child know.
func (l *Linear) setFocusUnchecked(index int) event.Result {
	if index == l.focus {
		return event.Consumed()
	}
	result := l.children[l.focus].view.OnEvent(event.FocusLost())
	l.focus = index
	return result
}

func (l *Linear) invalidate() {
	l.cache = nil
}

// childItems places children along the main axis: each takes its
// required length, capped by what remains of available.
func (l *Linear) childItems(available int) []childItem {
	items := make([]childItem, 0, len(l.children))
	offset := 0
	for i, c := range l.children {
		length := min(available, c.requiredSize.Get(l.orientation))
		available -= length
		items = append(items, childItem{index: i, child: c, offset: offset, length: length})
		offset += length
	}
	return items
}

// focusOrder returns child indices in traversal order: storage order
// for Front, reversed for Back. With fromFocus, the scan starts at the
// focused child.
func (l *Linear) focusOrder(fromFocus bool, rel direction.Relative) []int {
	var order []int
	if rel == direction.Front {
		start := 0
		if fromFocus {
			start = l.focus
		}
		for i := start; i < len(l.children); i++ {
			order = append(order, i)
		}
	} else {
		end := len(l.children) - 1
		if fromFocus {
			end = l.focus
		}
		for i := end; i >= 0; i-- {
			order = append(order, i)
		}
	}
	return order
}

// moveFocus moves focus to the next child accepting it, scanning away
// from the current focus in the order implied by source.
func (l *Linear) moveFocus(source direction.Direction) event.Result {
	rel, ok := source.Relative(l.orientation)
	if !ok {
		return event.Ignored()
	}
	order := l.focusOrder(true, rel)
	for _, i := range order[1:] {
		res, err := l.children[i].view.TakeFocus(source)
		if err != nil {
			continue
		}
		return res.And(l.setFocusUnchecked(i))
	}
	return event.Ignored()
}

// checkFocusGrab hands focus to the child under a focus-grabbing
// mouse event.
func (l *Linear) checkFocusGrab(ev event.Event) event.Result {
	if ev.Kind != event.KindMouse || !ev.Mouse.GrabsFocus() {
		return event.Ignored()
	}
	position, ok := ev.Position.CheckedSub(ev.Offset)
	if !ok {
		return event.Ignored()
	}
	// Only the coordinate along our orientation matters.
	target := position.Get(l.orientation)
	for _, item := range l.childItems(maxInt) {
		if item.offset+item.child.lastSize.Get(l.orientation) <= target {
			continue
		}
		res, err := item.child.view.TakeFocus(direction.NoDirection())
		if err != nil {
			return event.Ignored()
		}
		return res.And(l.setFocusUnchecked(item.index))
	}
	return event.Ignored()
}

const maxInt = int(^uint(0) >> 1)

// Draw renders every child in its computed slot.
func (l *Linear) Draw(p printer.Printer) {
	for _, item := range l.childItems(p.Size.Get(l.orientation)) {
		cp := p.Offset(l.orientation.MakeVec(item.offset, 0)).
			Cropped(item.child.lastSize).
			FocusedIf(item.index == l.focus)
		item.child.view.Draw(cp)
	}
}

// NeedsRelayout returns true when the container or any child needs a
// fresh layout pass.
func (l *Linear) NeedsRelayout() bool {
	if l.cache == nil {
		return true
	}
	return !l.childrenAreSleeping()
}

func (l *Linear) childrenAreSleeping() bool {
	for _, c := range l.children {
		if c.view.NeedsRelayout() {
			return false
		}
	}
	return true
}

// Layout commits slot sizes to the children.
func (l *Linear) Layout(size geom.Vec2) {
	if l.getCache(size) == nil {
		// Rebuild the distribution for this size.
		l.RequiredSize(size)
	}
	o := l.orientation
	for _, item := range l.childItems(size.Get(o)) {
		// Every child gets the full size orthogonal to the layout.
		item.child.layout(size.WithAxis(o, item.length))
	}
}

func (l *Linear) getCache(req geom.Vec2) *geom.Vec2 {
	if l.cache == nil || !l.cache.Accepts(req) || !l.childrenAreSleeping() {
		return nil
	}
	v := l.cache.Value()
	return &v
}

// RequiredSize stacks the children's ideal sizes; when they overflow
// the constraint along the orientation, the shortfall is distributed
// as a compromise between each child's ideal and minimum size,
// feeding the smallest requests first.
func (l *Linear) RequiredSize(req geom.Vec2) geom.Vec2 {
	if cached := l.getCache(req); cached != nil {
		return *cached
	}

	o := l.orientation

	// The naive scenario: everything fits.
	idealSizes := make([]geom.Vec2, len(l.children))
	for i, c := range l.children {
		idealSizes[i] = c.computeRequiredSize(req)
	}
	ideal := o.Stack(idealSizes...)

	if ideal.FitsIn(req) {
		cache := view.NewSizeCache2(ideal, req)
		l.cache = &cache
		return ideal
	}

	// It doesn't fit. Ask everyone their size under an extreme
	// budget: that is the least they will accept.
	budgetReq := req.WithAxis(o, 1)
	minSizes := make([]geom.Vec2, len(l.children))
	for i, c := range l.children {
		minSizes[i] = c.computeRequiredSize(budgetReq)
	}
	desperate := o.Stack(minSizes...)

	if desperate.Get(o) > req.Get(o) {
		// Even the minimum overflows; hard-cap the recorded sizes so
		// drawing stays within bounds, and skip the cache.
		available := req.Get(o)
		for _, c := range l.children {
			length := min(c.requiredSize.Get(o), available)
			c.requiredSize = c.requiredSize.WithAxis(o, length)
			available -= length
		}
		l.cache = nil
		return desperate
	}

	// Distribute the leftover between minimum and ideal, feeding the
	// children that ask the least first.
	available := req.Get(o) - desperate.Get(o)

	type allocation struct {
		index  int
		wanted int
	}
	overweight := make([]allocation, len(l.children))
	for i := range l.children {
		overweight[i] = allocation{
			index:  i,
			wanted: satSub(idealSizes[i].Get(o), minSizes[i].Get(o)),
		}
	}
	sort.SliceStable(overweight, func(a, b int) bool {
		return overweight[a].wanted < overweight[b].wanted
	})

	allocations := make([]int, len(l.children))
	for i, a := range overweight {
		remaining := len(overweight) - i
		budget := available / remaining
		spent := min(budget, a.wanted)
		allocations[a.index] = spent
		available -= spent
	}

	// One last pass at the compromise lengths; children may still ask
	// for more on the other axis.
	finalSizes := make([]geom.Vec2, len(l.children))
	for i, c := range l.children {
		length := minSizes[i].Get(o) + allocations[i]
		finalSizes[i] = c.computeRequiredSize(req.WithAxis(o, length))
	}
	compromise := o.Stack(finalSizes...)

	cache := view.NewSizeCache2(compromise, req)
	l.cache = &cache
	return compromise
}

// TakeFocus enters the container from the given direction, focusing
// the first child that accepts.
func (l *Linear) TakeFocus(source direction.Direction) (event.Result, error) {
	rel, ok := source.Relative(l.orientation)
	if !ok {
		rel = direction.Front
	}
	// Coming from the sides (no relative meaning), prefer the child
	// already focused.
	for _, i := range l.focusOrder(!ok, rel) {
		res, err := l.children[i].view.TakeFocus(source)
		if err != nil {
			continue
		}
		// No FocusLost: we did not have focus before.
		l.focus = i
		return res, nil
	}
	return event.Ignored(), view.ErrCannotFocus
}

// OnEvent routes the event to the focused child first, then falls
// back to focus navigation.
func (l *Linear) OnEvent(ev event.Event) event.Result {
	if l.IsEmpty() {
		return event.Ignored()
	}

	grab := l.checkFocusGrab(ev)

	var result event.Result
	{
		items := l.childItems(maxInt)
		item := items[l.focus]
		offset := l.orientation.MakeVec(item.offset, 0)
		result = item.child.view.OnEvent(ev.Relativized(offset))
	}

	if !result.IsConsumed() {
		result = l.navigate(ev)
	}
	return grab.And(result)
}

// navigate interprets an event the focused child ignored as a focus
// move.
func (l *Linear) navigate(ev event.Event) event.Result {
	if ev.Kind != event.KindKey {
		return event.Ignored()
	}
	horizontal := l.orientation == geom.Horizontal
	last := len(l.children) - 1

	switch {
	case ev == event.Shift(event.KeyTab) && l.focus > 0:
		return l.moveFocus(direction.FromBack())
	case ev == event.KeyPress(event.KeyTab) && l.focus < last:
		return l.moveFocus(direction.FromFront())
	case ev == event.KeyPress(event.KeyLeft) && horizontal && l.focus > 0:
		return l.moveFocus(direction.FromRight())
	case ev == event.KeyPress(event.KeyRight) && horizontal && l.focus < last:
		return l.moveFocus(direction.FromLeft())
	case ev == event.KeyPress(event.KeyUp) && !horizontal && l.focus > 0:
		return l.moveFocus(direction.FromDown())
	case ev == event.KeyPress(event.KeyDown) && !horizontal && l.focus < last:
		return l.moveFocus(direction.FromUp())
	}
	return event.Ignored()
}

// FocusView searches children for the selector and focuses the branch
// containing it.
func (l *Linear) FocusView(sel view.Selector) (event.Result, error) {
	for i, c := range l.children {
		res, err := c.view.FocusView(sel)
		if err == nil {
			return res.And(l.setFocusUnchecked(i)), nil
		}
	}
	return event.Ignored(), view.ErrViewNotFound
}

// CallOnAny forwards the traversal to every child.
func (l *Linear) CallOnAny(sel view.Selector, fn func(view.View)) {
	for _, c := range l.children {
		c.view.CallOnAny(sel, fn)
	}
}

// ImportantArea returns the focused child's important area, shifted by
// its slot.
func (l *Linear) ImportantArea(size geom.Vec2) geom.Rect {
	if l.IsEmpty() {
		return geom.RectFromSize(geom.Zero(), size)
	}
	items := l.childItems(maxInt)
	item := items[l.focus]
	offset := l.orientation.MakeVec(item.offset, 0)
	rect := item.child.view.ImportantArea(item.child.lastSize)
	return rect.Translate(offset)
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
