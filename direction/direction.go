// Package direction models orientation-relative and screen-absolute
// directions.
//
// Relative directions (Front/Back) describe movement along a
// container's own orientation: Tab-style focus cycling uses them.
// Absolute directions (Left/Up/Right/Down) describe screen movement:
// arrow keys use them. Containers convert between the two through
// their orientation when routing focus changes.
package direction

import "github.com/lixenwraith/termview/geom"

// Absolute is a screen-absolute direction.
type Absolute uint8

const (
	Left Absolute = iota
	Up
	Right
	Down

	// None marks a focus request with no spatial origin, such as the
	// initial focus or a focus grabbed by a mouse press.
	None
)

// String returns the lowercase name of the direction.
func (a Absolute) String() string {
	switch a {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "none"
}

// ParseAbsolute converts text to an Absolute direction.
func ParseAbsolute(s string) (Absolute, error) {
	switch s {
	case "left", "Left":
		return Left, nil
	case "up", "Up":
		return Up, nil
	case "right", "Right":
		return Right, nil
	case "down", "Down":
		return Down, nil
	case "none", "None":
		return None, nil
	}
	return None, &geom.ParseError{Type: "direction", Value: s}
}

// Relative returns the relative direction for the given orientation,
// or ok=false when the combination has no meaning (Left under
// Vertical, Up under Horizontal, or None).
func (a Absolute) Relative(o geom.Orientation) (Relative, bool) {
	switch {
	case o == geom.Horizontal && a == Left, o == geom.Vertical && a == Up:
		return Front, true
	case o == geom.Horizontal && a == Right, o == geom.Vertical && a == Down:
		return Back, true
	}
	return Front, false
}

// Opposite returns the reversed direction. Involutive; None maps to
// itself.
func (a Absolute) Opposite() Absolute {
	switch a {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	}
	return None
}

// Split decomposes the direction into an orientation and a relative
// direction, e.g. Right gives (Horizontal, Back).
//
// Panics on None: callers route None before reaching here, so hitting
// it means a container's own bookkeeping is broken.
func (a Absolute) Split() (geom.Orientation, Relative) {
	switch a {
	case Left:
		return geom.Horizontal, Front
	case Right:
		return geom.Horizontal, Back
	case Up:
		return geom.Vertical, Front
	case Down:
		return geom.Vertical, Back
	}
	panic("direction: cannot split Absolute None")
}

// Relative is a direction along a container's orientation.
type Relative uint8

const (
	// Front is Left horizontally, Up vertically.
	Front Relative = iota
	// Back is Right horizontally, Down vertically.
	Back
)

// Absolute returns the screen direction in the given orientation.
func (r Relative) Absolute(o geom.Orientation) Absolute {
	if o == geom.Horizontal {
		if r == Front {
			return Left
		}
		return Right
	}
	if r == Front {
		return Up
	}
	return Down
}

// Swap returns the other relative direction.
func (r Relative) Swap() Relative {
	if r == Front {
		return Back
	}
	return Front
}

// AToB returns the relative position of a with respect to b along one
// axis: Front when a < b, Back when a > b, ok=false when equal.
func AToB(a, b int) (Relative, bool) {
	switch {
	case a < b:
		return Front, true
	case a > b:
		return Back, true
	}
	return Front, false
}

// Direction is either an absolute or a relative direction.
type Direction struct {
	abs   Absolute
	rel   Relative
	isRel bool
}

// Abs wraps an absolute direction.
func Abs(a Absolute) Direction {
	return Direction{abs: a}
}

// Rel wraps a relative direction.
func Rel(r Relative) Direction {
	return Direction{rel: r, isRel: true}
}

// Shorthand constructors, matching the common call sites.
func FromLeft() Direction  { return Abs(Left) }
func FromRight() Direction { return Abs(Right) }
func FromUp() Direction    { return Abs(Up) }
func FromDown() Direction  { return Abs(Down) }
func NoDirection() Direction {
	return Abs(None)
}
func FromFront() Direction { return Rel(Front) }
func FromBack() Direction  { return Rel(Back) }

// IsRelative reports whether the direction is orientation-relative.
func (d Direction) IsRelative() bool {
	return d.isRel
}

// Relative returns the relative direction in the given orientation,
// or ok=false when the absolute direction has no meaning there.
func (d Direction) Relative(o geom.Orientation) (Relative, bool) {
	if d.isRel {
		return d.rel, true
	}
	return d.abs.Relative(o)
}

// Absolute returns the screen direction in the given orientation.
func (d Direction) Absolute(o geom.Orientation) Absolute {
	if d.isRel {
		return d.rel.Absolute(o)
	}
	return d.abs
}

// Opposite returns the reversed direction. Involutive.
func (d Direction) Opposite() Direction {
	if d.isRel {
		return Rel(d.rel.Swap())
	}
	return Abs(d.abs.Opposite())
}

// String names the direction for debugging.
func (d Direction) String() string {
	if d.isRel {
		if d.rel == Front {
			return "front"
		}
		return "back"
	}
	return d.abs.String()
}
