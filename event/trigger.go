package event

import "fmt"

// Trigger selects some types of events, for configurable key and
// mouse bindings. It pairs a predicate with an opaque tag used only
// for equality checks and debugging, never for behaviour.
type Trigger struct {
	fn  func(Event) bool
	tag any
}

// TriggerFunc creates a trigger from a bare predicate.
func TriggerFunc(f func(Event) bool) Trigger {
	return TriggerTagged(f, "free function")
}

// TriggerTagged creates a trigger from a predicate and a tag.
func TriggerTagged(f func(Event) bool, tag any) Trigger {
	return Trigger{fn: f, tag: tag}
}

// On returns a trigger matching exactly the given event.
func On(ev Event) Trigger {
	return TriggerTagged(func(e Event) bool { return e == ev }, ev)
}

// OnChar returns a trigger matching the plain character.
func OnChar(r rune) Trigger {
	return On(Char(r))
}

// OnKey returns a trigger matching the plain key.
func OnKey(k Key) Trigger {
	return On(KeyPress(k))
}

// ArrowKeys returns a trigger accepting bare arrow keys, without
// modifiers.
func ArrowKeys() Trigger {
	return TriggerTagged(func(e Event) bool {
		if e.Kind != KindKey || e.Mod != 0 {
			return false
		}
		switch e.Key {
		case KeyLeft, KeyRight, KeyUp, KeyDown:
			return true
		}
		return false
	}, "arrows")
}

// MouseEvents returns a trigger accepting any mouse event.
func MouseEvents() Trigger {
	return TriggerTagged(func(e Event) bool { return e.Kind == KindMouse }, "mouse")
}

// AnyEvent returns a trigger accepting every event.
func AnyEvent() Trigger {
	return TriggerTagged(func(Event) bool { return true }, "any")
}

// NoEvent returns a trigger accepting no event.
func NoEvent() Trigger {
	return TriggerTagged(func(Event) bool { return false }, "none")
}

// Apply reports whether the trigger accepts the event.
func (t Trigger) Apply(ev Event) bool {
	return t.fn(ev)
}

// HasTag reports whether the trigger carries the given tag.
func (t Trigger) HasTag(tag any) bool {
	return t.tag == tag
}

// Or returns a trigger accepting events matched by either operand.
func (t Trigger) Or(other Trigger) Trigger {
	a, b := t.fn, other.fn
	return TriggerTagged(
		func(e Event) bool { return a(e) || b(e) },
		fmt.Sprintf("(%v or %v)", t.tag, other.tag),
	)
}

// String describes the trigger by its tag.
func (t Trigger) String() string {
	return fmt.Sprint(t.tag)
}
