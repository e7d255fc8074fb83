package geom

import "fmt"

// Orientation is a horizontal or vertical axis selector.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// Swap returns the other orientation. Involutive.
func (o Orientation) Swap() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseError reports an unrecognized textual value for a geometry or
// direction type.
type ParseError struct {
	Type  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no such %s: %q", e.Type, e.Value)
}

// ParseOrientation converts text to an Orientation.
// Accepts "horizontal"/"Horizontal" and "vertical"/"Vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "Horizontal":
		return Horizontal, nil
	case "vertical", "Vertical":
		return Vertical, nil
	}
	return 0, &ParseError{Type: "orientation", Value: s}
}

// Main returns the component of v along this orientation.
func (o Orientation) Main(v Vec2) int {
	if o == Horizontal {
		return v.X
	}
	return v.Y
}

// Second returns the component of v along the other orientation.
func (o Orientation) Second(v Vec2) int {
	return o.Swap().Main(v)
}

// MakeVec builds a Vec2 with main along this orientation and second
// along the other.
func (o Orientation) MakeVec(main, second int) Vec2 {
	if o == Horizontal {
		return Vec2{X: main, Y: second}
	}
	return Vec2{X: second, Y: main}
}

// Stack folds sizes into the bounding box of their stacking along this
// orientation: horizontally (sum X, max Y), vertically (max X, sum Y).
func (o Orientation) Stack(sizes ...Vec2) Vec2 {
	var acc Vec2
	for _, s := range sizes {
		if o == Horizontal {
			acc = acc.StackHorizontal(s)
		} else {
			acc = acc.StackVertical(s)
		}
	}
	return acc
}
