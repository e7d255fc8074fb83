// Package backend abstracts the terminal so the view tree can run
// against a real screen or an in-memory one.
package backend

import (
	"time"

	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/style"
)

// Backend is the surface the application draws to and reads input
// from. Implementations are not safe for concurrent use; the event
// loop owns the backend.
type Backend interface {
	// Init claims the terminal. No other method may be called before
	// Init succeeds.
	Init() error

	// Fini releases the terminal. The backend is unusable afterwards.
	Fini()

	// Name identifies the implementation in logs.
	Name() string

	// Size returns the current screen size in cells.
	Size() geom.Vec2

	// PollEvent blocks for up to timeout waiting for an input event.
	// Returns ok=false on timeout.
	PollEvent(timeout time.Duration) (event.Event, bool)

	// SetCell places a rune at the given position. Out-of-bounds
	// writes are dropped.
	SetCell(pos geom.Vec2, r rune, st style.Style)

	// Refresh pushes pending cell writes to the screen.
	Refresh()

	// Clear fills the screen with the given background color.
	Clear(bg style.Color)
}
