// Package color provides a curated palette of lipgloss colors for terminal output.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tinge-cli/tinge/colour"
	"github.com/tinge-cli/tinge/palette"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// FromColour initializes a lipgloss.Color from a core colour value.
func FromColour(c colour.Colour) lipgloss.Color {
	return New(c.ToHex())
}

// fromMariana resolves a named entry of the built-in Mariana palette.
func fromMariana(name string) lipgloss.Color {
	c, ok := palette.Mariana.Get(name)
	if !ok {
		panic("unknown mariana colour: " + name)
	}
	return FromColour(c)
}

// Accent colors, rendered from the built-in Mariana palette so the CLI wears
// the theme it ships.
var (
	Red    = fromMariana("RED")
	Orange = fromMariana("ORANGE")
	Yellow = fromMariana("YELLOW")
	Green  = fromMariana("MINT")
	Cyan   = fromMariana("TEAL")
	Blue   = fromMariana("BLUE")
	Purple = fromMariana("PURPLE")
)

// Neutral shades.
var (
	Faint = fromMariana("MEDIUM_2")
	Light = fromMariana("LIGHT_1")
	Gray  = New("#808080")
)
