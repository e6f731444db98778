// Package style provides a functional API for composing and applying lipgloss-based CLI styles.
package style

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tinge-cli/tinge/color"
)

// Swatch renders label on a background of the given hex colour, picking a
// legible foreground by the background's lightness.
func Swatch(hexcode, label string) string {
	opaque := hexcode
	if len(opaque) == 9 {
		// lipgloss and colorful both want #rrggbb, drop the alpha digits
		opaque = opaque[:7]
	}

	fg := color.New("#000000")
	if bg, err := colorful.Hex(opaque); err == nil {
		if _, _, l := bg.Hsl(); l < 0.5 {
			fg = color.New("#ffffff")
		}
	}

	return Colored(fg, color.New(opaque)).Padding(0, 1).Render(label)
}
