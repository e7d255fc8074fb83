// Package dummy provides an in-memory backend for tests and headless
// runs.
package dummy

import (
	"time"

	"github.com/lixenwraith/termview/backend"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/style"
)

// Backend renders to an in-memory grid and replays a scripted event
// queue.
type Backend struct {
	size   geom.Vec2
	runes  []rune
	styles []style.Style

	queue   []event.Event
	flushes int
	closed  bool
}

var _ backend.Backend = (*Backend)(nil)

// New creates a dummy backend with the given screen size.
func New(size geom.Vec2) *Backend {
	b := &Backend{size: size}
	b.reset()
	return b
}

func (b *Backend) reset() {
	n := b.size.X * b.size.Y
	b.runes = make([]rune, n)
	b.styles = make([]style.Style, n)
	for i := range b.runes {
		b.runes[i] = ' '
	}
}

// Feed appends events to the replay queue.
func (b *Backend) Feed(evs ...event.Event) {
	b.queue = append(b.queue, evs...)
}

// SetSize resizes the screen. The next poll returns a resize event.
func (b *Backend) SetSize(size geom.Vec2) {
	b.size = size
	b.reset()
	b.queue = append([]event.Event{event.Resize()}, b.queue...)
}

// Flushes reports how many times Refresh ran.
func (b *Backend) Flushes() int {
	return b.flushes
}

// Closed reports whether Fini ran.
func (b *Backend) Closed() bool {
	return b.closed
}

func (b *Backend) inBounds(pos geom.Vec2) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < b.size.X && pos.Y < b.size.Y
}

// RuneAt returns the rune last written at pos, or space.
func (b *Backend) RuneAt(pos geom.Vec2) rune {
	if !b.inBounds(pos) {
		return ' '
	}
	return b.runes[pos.Y*b.size.X+pos.X]
}

// StyleAt returns the style last written at pos.
func (b *Backend) StyleAt(pos geom.Vec2) style.Style {
	if !b.inBounds(pos) {
		return style.Style{}
	}
	return b.styles[pos.Y*b.size.X+pos.X]
}

// Row returns the screen row as a string, for assertions.
func (b *Backend) Row(y int) string {
	if y < 0 || y >= b.size.Y {
		return ""
	}
	return string(b.runes[y*b.size.X : (y+1)*b.size.X])
}

func (b *Backend) Init() error { return nil }

func (b *Backend) Fini() { b.closed = true }

func (b *Backend) Name() string { return "dummy" }

func (b *Backend) Size() geom.Vec2 { return b.size }

func (b *Backend) PollEvent(_ time.Duration) (event.Event, bool) {
	if len(b.queue) == 0 {
		return event.Event{}, false
	}
	ev := b.queue[0]
	b.queue = b.queue[1:]
	return ev, true
}

func (b *Backend) SetCell(pos geom.Vec2, r rune, st style.Style) {
	if !b.inBounds(pos) {
		return
	}
	i := pos.Y*b.size.X + pos.X
	b.runes[i] = r
	b.styles[i] = st
}

func (b *Backend) Refresh() { b.flushes++ }

func (b *Backend) Clear(bg style.Color) {
	for i := range b.runes {
		b.runes[i] = ' '
		b.styles[i] = style.Style{Bg: bg}
	}
}
