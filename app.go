// Package termview is a terminal UI toolkit built around a view tree
// with size negotiation, direction-aware focus and scrolling.
package termview

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/termview/backend"
	"github.com/lixenwraith/termview/direction"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/printer"
	"github.com/lixenwraith/termview/render"
	"github.com/lixenwraith/termview/style"
	"github.com/lixenwraith/termview/view"
)

// pollInterval bounds how long the loop blocks waiting for input, so
// refresh events and Quit from callbacks are picked up promptly.
const pollInterval = 30 * time.Millisecond

type globalCallback struct {
	trigger event.Trigger
	cb      event.Callback
}

// App owns the backend, the root view and the event loop. It is
// single-threaded: all view access happens on the loop goroutine,
// callbacks included.
type App struct {
	backend backend.Backend
	theme   *style.Theme
	buffer  *render.Buffer
	root    view.View
	logger  *log.Logger

	globals []globalCallback
	running bool
}

// New creates an application on the given backend with an empty root.
func New(b backend.Backend) *App {
	return &App{
		backend: b,
		theme:   style.DefaultTheme(),
		buffer:  render.NewBuffer(1, 1),
		root:    &view.Base{},
		logger:  log.New(log.Writer(), "termview: ", log.LstdFlags),
	}
}

// SetRoot replaces the root view.
func (a *App) SetRoot(root view.View) {
	a.root = root
	if _, err := root.TakeFocus(direction.NoDirection()); err != nil {
		// A root with nothing focusable is fine; events for it will
		// simply be ignored.
		a.logger.Printf("root view refused focus: %v", err)
	}
}

// Root returns the current root view.
func (a *App) Root() view.View {
	return a.root
}

// Theme returns the active theme.
func (a *App) Theme() *style.Theme {
	return a.theme
}

// SetTheme replaces the theme and forces a full redraw.
func (a *App) SetTheme(t *style.Theme) {
	a.theme = t
	a.buffer.MarkAllDirty()
}

// AddGlobalCallback registers a callback fired before the view tree
// sees a matching event.
func (a *App) AddGlobalCallback(trigger event.Trigger, cb event.Callback) {
	a.globals = append(a.globals, globalCallback{trigger: trigger, cb: cb})
}

// ClearGlobalCallbacks removes every callback whose trigger carries
// the given tag, typically the event it was registered with.
func (a *App) ClearGlobalCallbacks(tag any) {
	kept := a.globals[:0]
	for _, g := range a.globals {
		if !g.trigger.HasTag(tag) {
			kept = append(kept, g)
		}
	}
	a.globals = kept
}

// Quit makes the loop exit after the current iteration.
func (a *App) Quit() {
	a.running = false
}

// FocusName moves focus to the named view.
func (a *App) FocusName(name string) error {
	res, err := a.root.FocusView(view.ByName(name))
	if err != nil {
		return fmt.Errorf("focus %q: %w", name, err)
	}
	res.Process()
	return nil
}

// CallOnName runs fn on every view registered under name.
func (a *App) CallOnName(name string, fn func(view.View)) {
	a.root.CallOnAny(view.ByName(name), fn)
}

// Run claims the terminal and processes events until Quit.
func (a *App) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("backend %s: %w", a.backend.Name(), err)
	}
	defer a.backend.Fini()

	a.resize(a.backend.Size())
	a.running = true
	a.Refresh()

	for a.running {
		a.Step(pollInterval)
	}
	return nil
}

// Step waits for one event and processes it. Exposed so tests and
// embedding loops can drive the application manually.
func (a *App) Step(timeout time.Duration) {
	ev, ok := a.backend.PollEvent(timeout)
	if !ok {
		return
	}
	a.ProcessEvent(ev)
	a.Refresh()
}

// ProcessEvent routes a single event: exit and resize first, then
// global callbacks, then the view tree.
func (a *App) ProcessEvent(ev event.Event) {
	switch ev.Kind {
	case event.KindExit:
		a.running = false
		return
	case event.KindResize:
		a.resize(a.backend.Size())
		return
	}

	for _, g := range a.globals {
		if g.trigger.Apply(ev) {
			g.cb()
			return
		}
	}

	a.root.OnEvent(ev).Process()
}

// Refresh lays out the tree and pushes dirty cells to the backend.
func (a *App) Refresh() {
	size := a.buffer.Size()
	a.root.Layout(size)

	a.buffer.Clear(a.theme.Default())
	a.root.Draw(printer.New(a.buffer, a.theme))

	for _, pos := range a.buffer.Dirty() {
		cell, ok := a.buffer.GetCell(pos.X, pos.Y)
		if !ok {
			continue
		}
		a.backend.SetCell(pos, cell.Rune, cell.Style)
	}
	a.buffer.ClearDirty()
	a.backend.Refresh()
}

func (a *App) resize(size geom.Vec2) {
	a.buffer.Resize(size.X, size.Y)
}
