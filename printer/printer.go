// Package printer provides the scoped drawing context handed to views.
//
// A Printer is bound to a rectangle of the render buffer. Derived
// printers (offset, cropped, windowed) are plain copies, so any style
// or geometry change is automatically undone when the caller's printer
// is used again; there is no restore step to forget.
package printer

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/style"
)

// Printer draws into a window of the render buffer on behalf of one
// view.
type Printer struct {
	buf   *render.Buffer
	theme *style.Theme

	// offset is the buffer position of this view's (0,0).
	offset geom.Vec2
	// contentOffset shifts content coordinates for scrolled views:
	// the cell drawn at contentOffset lands on the window's top-left.
	contentOffset geom.Vec2
	// outputSize is the physical window size cells can land in.
	outputSize geom.Vec2

	// Size is the size the view should assume it has. Under scrolling
	// this is the content size, which may exceed outputSize.
	Size geom.Vec2

	// Focused tells the view whether it is on the focused path.
	Focused bool

	current style.Style
}

// New creates a printer covering the whole buffer.
func New(buf *render.Buffer, theme *style.Theme) Printer {
	size := buf.Size()
	return Printer{
		buf:        buf,
		theme:      theme,
		outputSize: size,
		Size:       size,
		Focused:    true,
		current:    theme.Default(),
	}
}

// Theme returns the active theme.
func (p Printer) Theme() *style.Theme {
	return p.theme
}

// Style returns the current drawing style.
func (p Printer) Style() style.Style {
	return p.current
}

// Print writes text starting at pos, in content coordinates. Anything
// outside the window is clipped. Returns nothing; drawing is the only
// side effect.
func (p Printer) Print(pos geom.Vec2, text string) {
	x := pos.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.PrintRune(geom.V(x, pos.Y), r)
		x += w
	}
}

// PrintRune writes a single rune at pos, in content coordinates.
func (p Printer) PrintRune(pos geom.Vec2, r rune) {
	// Shift into window coordinates; cells scrolled out on the
	// top/left are dropped.
	win, ok := pos.CheckedSub(p.contentOffset)
	if !ok {
		return
	}
	w := runewidth.RuneWidth(r)
	if win.X+w > p.outputSize.X || win.Y >= p.outputSize.Y {
		return
	}
	cell := geom.V(p.offset.X+win.X, p.offset.Y+win.Y)
	p.buf.SetCell(cell.X, cell.Y, render.Cell{Rune: r, Style: p.current})
	// Wide runes own the following cell too.
	for i := 1; i < w; i++ {
		p.buf.SetCell(cell.X+i, cell.Y, render.Cell{Rune: 0, Style: p.current})
	}
}

// PrintHLine draws len copies of r in a row starting at pos.
func (p Printer) PrintHLine(pos geom.Vec2, length int, r rune) {
	for i := 0; i < length; i++ {
		p.PrintRune(pos.AddXY(i, 0), r)
	}
}

// PrintVLine draws len copies of r in a column starting at pos.
func (p Printer) PrintVLine(pos geom.Vec2, length int, r rune) {
	for i := 0; i < length; i++ {
		p.PrintRune(pos.AddXY(0, i), r)
	}
}

// PrintLine draws a line along the orientation.
func (p Printer) PrintLine(o geom.Orientation, pos geom.Vec2, length int, r rune) {
	if o == geom.Horizontal {
		p.PrintHLine(pos, length, r)
	} else {
		p.PrintVLine(pos, length, r)
	}
}

// Fill covers the visible window with r in the current style.
func (p Printer) Fill(r rune) {
	for y := 0; y < p.outputSize.Y; y++ {
		for x := 0; x < p.outputSize.X; x++ {
			p.PrintRune(p.contentOffset.AddXY(x, y), r)
		}
	}
}

// Offset returns a printer shifted by v: the child's (0,0) is the
// parent's v. Size shrinks accordingly.
func (p Printer) Offset(v geom.Vec2) Printer {
	p.offset = p.offset.Add(v)
	p.outputSize = p.outputSize.Sub(v)
	p.Size = p.Size.Sub(v)
	p.contentOffset = geom.Zero()
	return p
}

// Cropped returns a printer restricted to the given size.
func (p Printer) Cropped(size geom.Vec2) Printer {
	p.outputSize = p.outputSize.Min(size)
	p.Size = p.Size.Min(size)
	return p
}

// ContentOffset returns a printer whose content is scrolled by v.
func (p Printer) ContentOffset(v geom.Vec2) Printer {
	p.contentOffset = v
	return p
}

// GetContentOffset returns the current scroll shift.
func (p Printer) GetContentOffset() geom.Vec2 {
	return p.contentOffset
}

// InnerSize returns a printer that reports the given size to the view
// while keeping the physical window unchanged. Used by scrolling
// wrappers so children lay out against their full content size.
func (p Printer) InnerSize(size geom.Vec2) Printer {
	p.Size = size
	return p
}

// Windowed returns a printer bound to the given sub-rectangle.
func (p Printer) Windowed(r geom.Rect) Printer {
	return p.Offset(r.TopLeft()).Cropped(r.Size())
}

// FocusedIf returns a printer with the focus flag set accordingly.
// Focus only ever narrows: a child cannot be focused under an
// unfocused parent.
func (p Printer) FocusedIf(focused bool) Printer {
	p.Focused = p.Focused && focused
	return p
}

// WithStyle runs f with the given style active. The caller's style is
// untouched.
func (p Printer) WithStyle(st style.Style, f func(Printer)) {
	p.current = st
	f(p)
}

// WithAttrs runs f with extra attributes on the current style.
func (p Printer) WithAttrs(a style.Attr, f func(Printer)) {
	p.current = p.current.WithAttrs(a)
	f(p)
}

// OutputSize returns the physical window size.
func (p Printer) OutputSize() geom.Vec2 {
	return p.outputSize
}
