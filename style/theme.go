package style

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// PaletteRole names a slot in the theme palette.
type PaletteRole string

const (
	RoleBackground        PaletteRole = "background"
	RoleView              PaletteRole = "view"
	RolePrimary           PaletteRole = "primary"
	RoleSecondary         PaletteRole = "secondary"
	RoleHighlight         PaletteRole = "highlight"
	RoleHighlightInactive PaletteRole = "highlight_inactive"
	RoleHighlightText     PaletteRole = "highlight_text"
	RoleShadow            PaletteRole = "shadow"
)

// Theme resolves palette roles to concrete colors.
type Theme struct {
	palette map[PaletteRole]Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{palette: map[PaletteRole]Color{
		RoleBackground:        {0, 0, 128},
		RoleView:              {220, 220, 220},
		RolePrimary:           {0, 0, 0},
		RoleSecondary:         {0, 0, 128},
		RoleHighlight:         {128, 0, 0},
		RoleHighlightInactive: {0, 0, 86},
		RoleHighlightText:     {255, 255, 255},
		RoleShadow:            {0, 0, 0},
	}}
}

// Color returns the color for a role, falling back to primary for
// unknown roles.
func (t *Theme) Color(role PaletteRole) Color {
	if c, ok := t.palette[role]; ok {
		return c
	}
	return t.palette[RolePrimary]
}

// SetColor overrides one palette slot.
func (t *Theme) SetColor(role PaletteRole, c Color) {
	t.palette[role] = c
}

// Highlight returns the focused-selection style.
func (t *Theme) Highlight() Style {
	return Style{Fg: t.Color(RoleHighlightText), Bg: t.Color(RoleHighlight)}
}

// HighlightInactive returns the unfocused-selection style.
func (t *Theme) HighlightInactive() Style {
	return Style{Fg: t.Color(RoleHighlightText), Bg: t.Color(RoleHighlightInactive)}
}

// Default returns the regular text style.
func (t *Theme) Default() Style {
	return Style{Fg: t.Color(RolePrimary), Bg: t.Color(RoleView)}
}

// themeFile mirrors the on-disk TOML layout:
//
//	[colors]
//	background = "#000080"
//	highlight = "red"
type themeFile struct {
	Colors map[string]string `toml:"colors"`
}

// LoadTheme reads a TOML theme file and applies it over the default
// palette. Unknown roles are accepted so themes can carry extra slots
// for custom widgets.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return parseTheme(data)
}

func parseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	t := DefaultTheme()
	for role, value := range file.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return nil, err
		}
		t.SetColor(PaletteRole(role), c)
	}
	return t, nil
}
