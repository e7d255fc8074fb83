package scroll

import "github.com/lixenwraith/termview/geom"

// Strategy defines how the offset is adjusted automatically when the
// content or the view size changes. It is reset to KeepRow whenever
// the user scrolls manually.
type Strategy uint8

const (
	// KeepRow leaves the offset untouched.
	KeepRow Strategy = iota
	// StickToTop snaps the viewport to the top edge.
	StickToTop
	// StickToBottom snaps the viewport to the bottom edge, following
	// appended content.
	StickToBottom
)

// String returns the snake_case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StickToTop:
		return "stick_to_top"
	case StickToBottom:
		return "stick_to_bottom"
	}
	return "keep_row"
}

// ParseStrategy converts text to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "keep_row", "KeepRow":
		return KeepRow, nil
	case "stick_to_top", "StickToTop":
		return StickToTop, nil
	case "stick_to_bottom", "StickToBottom":
		return StickToBottom, nil
	}
	return KeepRow, &geom.ParseError{Type: "scroll strategy", Value: s}
}
