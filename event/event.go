// Package event defines user-input events, the consumed/ignored result
// protocol, and callbacks attached to consumed events.
//
// Every input the application receives is converted to an Event. The
// event is given to the root view and descends the tree to the view in
// focus. A view either consumes the event, optionally returning a
// callback to run after routing, or ignores it and lets its parent try
// instead.
package event

import "github.com/lixenwraith/termview/geom"

// Kind discriminates the event variants.
//
// Switches over Kind must keep a default branch: new kinds may be
// added, and KindExit is reserved for the run loop.
type Kind uint8

const (
	// KindResize fires when the terminal window is resized.
	KindResize Kind = iota
	// KindFocusLost is sent to a view about to lose focus.
	KindFocusLost
	// KindRefresh fires on the auto-refresh timer.
	KindRefresh
	// KindChar carries a printable character, possibly with Ctrl/Alt.
	KindChar
	// KindKey carries a non-character key with any modifier set.
	KindKey
	// KindMouse carries a mouse event with its coordinates.
	KindMouse
	// KindUnknown carries raw bytes the backend could not decode.
	KindUnknown
	// KindExit is reserved: the run loop uses it to unwind. Views
	// should never consume it.
	KindExit
)

// Mod is a bitmask of key modifiers.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
)

// Key is a non-character key on the keyboard.
type Key uint8

const (
	KeyEnter Key = iota
	KeyTab
	KeyBackspace
	KeyEsc

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyIns
	KeyDel
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyPauseBreak
	KeyNumpadCenter

	KeyF0
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// FunctionKey returns the key for Fn.
//
// Panics if n > 12; that is a bug in the backend decoding, not a
// runtime condition.
func FunctionKey(n int) Key {
	if n < 0 || n > 12 {
		panic("event: unknown function key")
	}
	return KeyF0 + Key(n)
}

// MouseButton is one of the buttons present on the mouse.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	Button4
	Button5
	ButtonOther
)

// MouseEvent is the kind of a mouse interaction.
type MouseEvent uint8

const (
	Press MouseEvent = iota
	Release
	Hold
	WheelUp
	WheelDown
)

// GrabsFocus returns true for events that should move focus to the
// view under the pointer: Press, WheelUp and WheelDown.
//
// Release and Hold never grab focus, so a view keeps mouse capture
// while the pointer leaves its bounds during a drag.
func (m MouseEvent) GrabsFocus() bool {
	switch m {
	case Press, WheelUp, WheelDown:
		return true
	}
	return false
}

// Event is a single input event as seen by the view tree.
//
// Events are plain comparable values; only the fields relevant to the
// Kind are set. Mouse coordinates are relativized by each container on
// the way down, so a view always sees positions relative to itself.
type Event struct {
	Kind Kind

	// Ch is set for KindChar.
	Ch rune
	// Key is set for KindKey.
	Key Key
	// Mod applies to KindChar and KindKey.
	Mod Mod

	// Mouse fields, set for KindMouse.
	Mouse MouseEvent
	Btn   MouseButton
	// Offset is the position of the receiving view's top-left corner.
	Offset geom.Vec2
	// Position is where the mouse event fired, in the same frame as
	// Offset.
	Position geom.Vec2

	// Raw is set for KindUnknown.
	Raw string
}

// Char creates a plain character event.
func Char(r rune) Event {
	return Event{Kind: KindChar, Ch: r}
}

// CtrlChar creates a character event with Ctrl held.
func CtrlChar(r rune) Event {
	return Event{Kind: KindChar, Ch: r, Mod: ModCtrl}
}

// AltChar creates a character event with Alt held.
func AltChar(r rune) Event {
	return Event{Kind: KindChar, Ch: r, Mod: ModAlt}
}

// KeyPress creates a plain non-character key event.
func KeyPress(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// KeyPressMod creates a key event with the given modifiers.
func KeyPressMod(k Key, m Mod) Event {
	return Event{Kind: KindKey, Key: k, Mod: m}
}

// Shift creates a key event with Shift held.
func Shift(k Key) Event {
	return KeyPressMod(k, ModShift)
}

// Ctrl creates a key event with Ctrl held.
func Ctrl(k Key) Event {
	return KeyPressMod(k, ModCtrl)
}

// Alt creates a key event with Alt held.
func Alt(k Key) Event {
	return KeyPressMod(k, ModAlt)
}

// Mouse creates a mouse event at the given position.
func Mouse(m MouseEvent, btn MouseButton, offset, position geom.Vec2) Event {
	return Event{Kind: KindMouse, Mouse: m, Btn: btn, Offset: offset, Position: position}
}

// Wheel creates a wheel event at the given position.
func Wheel(m MouseEvent, offset, position geom.Vec2) Event {
	return Event{Kind: KindMouse, Mouse: m, Offset: offset, Position: position}
}

// Resize creates a window-resize event.
func Resize() Event {
	return Event{Kind: KindResize}
}

// FocusLost creates the event sent to a view losing focus.
func FocusLost() Event {
	return Event{Kind: KindFocusLost}
}

// Refresh creates an auto-refresh tick event.
func Refresh() Event {
	return Event{Kind: KindRefresh}
}

// Unknown wraps raw bytes the backend could not decode.
func Unknown(raw []byte) Event {
	return Event{Kind: KindUnknown, Raw: string(raw)}
}

// Exit creates the reserved loop-unwind event.
func Exit() Event {
	return Event{Kind: KindExit}
}

// IsMouse reports whether the event carries mouse coordinates.
func (e Event) IsMouse() bool {
	return e.Kind == KindMouse
}

// MousePosition returns the mouse position, or ok=false for
// non-mouse events.
func (e Event) MousePosition() (geom.Vec2, bool) {
	if e.Kind != KindMouse {
		return geom.Vec2{}, false
	}
	return e.Position, true
}

// Relativized returns the event as seen by a child whose top-left
// corner is at topLeft: for mouse events the offset grows by topLeft,
// other events are returned unchanged.
func (e Event) Relativized(topLeft geom.Vec2) Event {
	if e.Kind == KindMouse {
		e.Offset = e.Offset.Add(topLeft)
	}
	return e
}
