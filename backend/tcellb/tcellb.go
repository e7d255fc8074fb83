// Package tcellb implements the backend on top of tcell.
package tcellb

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/termview/backend"
	"github.com/lixenwraith/termview/event"
	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/style"
)

// Backend drives a real terminal through a tcell.Screen.
type Backend struct {
	screen tcell.Screen

	// events is pumped by a goroutine owning screen.PollEvent.
	events chan tcell.Event
	stop   chan struct{}

	// buttons remembers the pressed mask from the previous mouse
	// event, so motion can be told apart from press and release.
	buttons tcell.ButtonMask
}

var _ backend.Backend = (*Backend)(nil)

// New creates an uninitialized tcell backend.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellb: create screen: %w", err)
	}
	return &Backend{screen: screen}, nil
}

// NewFromScreen wraps an existing screen, such as a simulation screen
// in tests.
func NewFromScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tcellb: init: %w", err)
	}
	b.screen.EnableMouse()

	b.events = make(chan tcell.Event, 8)
	b.stop = make(chan struct{})
	go b.pump()
	return nil
}

func (b *Backend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.stop:
			return
		}
	}
}

func (b *Backend) Fini() {
	close(b.stop)
	b.screen.Fini()
}

func (b *Backend) Name() string { return "tcell" }

func (b *Backend) Size() geom.Vec2 {
	w, h := b.screen.Size()
	return geom.V(w, h)
}

func (b *Backend) PollEvent(timeout time.Duration) (event.Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-b.events:
			if out, ok := b.translate(ev); ok {
				return out, true
			}
			// Unmapped event, keep waiting.
		case <-timer.C:
			return event.Event{}, false
		}
	}
}

func (b *Backend) SetCell(pos geom.Vec2, r rune, st style.Style) {
	b.screen.SetContent(pos.X, pos.Y, r, nil, toTcellStyle(st))
}

func (b *Backend) Refresh() {
	b.screen.Show()
}

func (b *Backend) Clear(bg style.Color) {
	b.screen.Fill(' ', tcell.StyleDefault.Background(toTcellColor(bg)))
}

// translate converts a tcell event to ours. Events with no mapping
// report ok=false.
func (b *Backend) translate(ev tcell.Event) (event.Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		return event.Resize(), true
	case *tcell.EventKey:
		return b.translateKey(tev)
	case *tcell.EventMouse:
		return b.translateMouse(tev)
	case *tcell.EventFocus:
		if !tev.Focused {
			return event.FocusLost(), true
		}
		return event.Refresh(), true
	case *tcell.EventInterrupt:
		return event.Refresh(), true
	}
	return event.Event{}, false
}

func (b *Backend) translateKey(tev *tcell.EventKey) (event.Event, bool) {
	mod := translateMod(tev.Modifiers())

	if tev.Key() == tcell.KeyRune {
		ch := tev.Rune()
		switch {
		case mod&event.ModAlt != 0:
			return event.AltChar(ch), true
		default:
			return event.Char(ch), true
		}
	}

	// Control characters arrive as dedicated tcell keys.
	if k := tev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return event.CtrlChar(rune('a' + k - tcell.KeyCtrlA)), true
	}

	if tev.Key() == tcell.KeyBacktab {
		return event.KeyPressMod(event.KeyTab, mod|event.ModShift), true
	}
	if k, ok := keyMap[tev.Key()]; ok {
		return event.KeyPressMod(k, mod), true
	}
	if f, ok := functionKey(tev.Key()); ok {
		return event.KeyPressMod(f, mod), true
	}
	return event.Unknown([]byte(tev.Name())), true
}

func functionKey(k tcell.Key) (event.Key, bool) {
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return event.FunctionKey(int(k-tcell.KeyF1) + 1), true
	}
	return 0, false
}

var keyMap = map[tcell.Key]event.Key{
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyEsc:        event.KeyEsc,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyDelete:     event.KeyDel,
	tcell.KeyInsert:     event.KeyIns,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
}

func translateMod(m tcell.ModMask) event.Mod {
	var mod event.Mod
	if m&tcell.ModShift != 0 {
		mod |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= event.ModAlt
	}
	return mod
}

func (b *Backend) translateMouse(tev *tcell.EventMouse) (event.Event, bool) {
	x, y := tev.Position()
	pos := geom.V(x, y)

	mask := tev.Buttons()
	if mask&tcell.WheelUp != 0 {
		return event.Wheel(event.WheelUp, geom.Zero(), pos), true
	}
	if mask&tcell.WheelDown != 0 {
		return event.Wheel(event.WheelDown, geom.Zero(), pos), true
	}

	pressed := mask &^ b.buttons
	released := b.buttons &^ mask
	b.buttons = mask

	switch {
	case pressed != 0:
		return event.Mouse(event.Press, translateButton(pressed), geom.Zero(), pos), true
	case released != 0:
		return event.Mouse(event.Release, translateButton(released), geom.Zero(), pos), true
	case mask != 0:
		return event.Mouse(event.Hold, translateButton(mask), geom.Zero(), pos), true
	}
	// Plain motion with no buttons held.
	return event.Event{}, false
}

func translateButton(mask tcell.ButtonMask) event.MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return event.ButtonLeft
	// tcell numbers buttons by convention: Button2 is the secondary
	// (right) button, Button3 the middle one.
	case mask&tcell.Button2 != 0:
		return event.ButtonRight
	case mask&tcell.Button3 != 0:
		return event.ButtonMiddle
	case mask&tcell.Button4 != 0:
		return event.Button4
	case mask&tcell.Button5 != 0:
		return event.Button5
	}
	return event.ButtonOther
}

func toTcellStyle(st style.Style) tcell.Style {
	out := tcell.StyleDefault.
		Foreground(toTcellColor(st.Fg)).
		Background(toTcellColor(st.Bg))
	if st.Attrs&style.AttrBold != 0 {
		out = out.Bold(true)
	}
	if st.Attrs&style.AttrDim != 0 {
		out = out.Dim(true)
	}
	if st.Attrs&style.AttrItalic != 0 {
		out = out.Italic(true)
	}
	if st.Attrs&style.AttrUnderline != 0 {
		out = out.Underline(true)
	}
	if st.Attrs&style.AttrBlink != 0 {
		out = out.Blink(true)
	}
	if st.Attrs&style.AttrReverse != 0 {
		out = out.Reverse(true)
	}
	return out
}

func toTcellColor(c style.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
