// Package render holds the cell grid views draw into before it is
// flushed to a backend.
package render

import (
	"strings"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/style"
)

// Cell is a single character cell with its resolved style.
type Cell struct {
	Rune  rune
	Style style.Style
}

// Buffer is a 2D grid of cells with dirty tracking, so a backend can
// flush only what changed between frames.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	dirty  map[geom.Vec2]bool
}

// NewBuffer creates a cleared buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		dirty:  make(map[geom.Vec2]bool),
	}
	b.Clear(style.Style{})
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() geom.Vec2 {
	return geom.V(b.width, b.height)
}

// Resize regrows the buffer, preserving content where possible. All
// cells are marked dirty since the backend screen is stale after a
// resize.
func (b *Buffer) Resize(width, height int) {
	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x < b.width && y < b.height {
				cells[y*width+x] = b.cells[y*b.width+x]
			} else {
				cells[y*width+x] = Cell{Rune: ' '}
			}
		}
	}
	b.width = width
	b.height = height
	b.cells = cells
	b.MarkAllDirty()
}

// SetCell writes one cell, ignoring out-of-bounds coordinates.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	if b.cells[idx] == c {
		return
	}
	b.cells[idx] = c
	b.dirty[geom.V(x, y)] = true
}

// GetCell reads one cell; ok is false out of bounds.
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Clear fills the buffer with spaces in the given style. Cells
// already blank stay clean, so clearing between frames does not
// force a full flush.
func (b *Buffer) Clear(st style.Style) {
	blank := Cell{Rune: ' ', Style: st}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetCell(x, y, blank)
		}
	}
}

// Dirty returns the changed cell positions since the last ClearDirty.
func (b *Buffer) Dirty() []geom.Vec2 {
	out := make([]geom.Vec2, 0, len(b.dirty))
	for p := range b.dirty {
		out = append(out, p)
	}
	return out
}

// ClearDirty forgets recorded changes, typically after a flush.
func (b *Buffer) ClearDirty() {
	b.dirty = make(map[geom.Vec2]bool)
}

// MarkAllDirty flags every cell as changed.
func (b *Buffer) MarkAllDirty() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.dirty[geom.V(x, y)] = true
		}
	}
}

// Row renders one row as plain text, for tests and debugging.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.cells[y*b.width+x].Rune)
	}
	return sb.String()
}
