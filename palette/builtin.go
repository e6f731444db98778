package palette

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/colour"
)

// Construction shorthands for the registration tables below. All built-in
// values are static, so a failure here is a programming error and panics at
// package initialization.

func hsl(h int, s, l float64) colour.HSLA {
	return lo.Must(colour.HSL(h, s, l))
}

func rgb(r, g, b int) colour.RGBA {
	return lo.Must(colour.RGB(r, g, b))
}

// shade derives a clone of c with a different lightness and, optionally, alpha.
func shade(c colour.HSLA, l, a mo.Option[float64]) colour.HSLA {
	return lo.Must(c.Clone(mo.None[int](), mo.None[float64](), l, a))
}

// fade derives a clone of c with the given alpha percentage.
func fade(c colour.RGBA, a float64) colour.RGBA {
	return lo.Must(c.Clone(mo.None[int](), mo.None[int](), mo.None[int](), mo.Some(a)))
}

var (
	black = rgb(0, 0, 0)

	// mariana is the base tone of the Sublime Text Mariana scheme; most of
	// the theme's neutral shades are lightness clones of it.
	mariana = hsl(210, 15, 22)
)

// Default is the base palette every built-in theme extends.
var Default = New("default",
	Entry{"BLACK", black},
	Entry{"WHITE", rgb(255, 255, 255)},
	Entry{"SHADOW", fade(black, 50)},
	Entry{"TRANSPARENT", fade(black, 0)},
)

// Mariana is the Mariana colour scheme from Sublime Text.
var Mariana = Default.Extend("mariana",
	Entry{"MARIANA", mariana},
	Entry{"DARK_0", shade(mariana, mo.Some(11.0), mo.None[float64]())},
	Entry{"DARK_1", shade(mariana, mo.Some(13.0), mo.None[float64]())},
	Entry{"DARK_2", shade(mariana, mo.Some(19.0), mo.None[float64]())},
	Entry{"MEDIUM_0", mariana},
	Entry{"MEDIUM_1", shade(mariana, mo.Some(40.0), mo.Some(75.0))},
	Entry{"MEDIUM_2", shade(mariana, mo.Some(45.0), mo.None[float64]())},
	Entry{"LIGHT_0", hsl(220, 12, 69)},
	Entry{"LIGHT_1", hsl(220, 28, 88)},
	Entry{"RED", hsl(357, 79, 65)},
	Entry{"CORAL", hsl(13, 93, 66)},
	Entry{"ORANGE", hsl(32, 93, 66)},
	Entry{"YELLOW", hsl(40, 94, 68)},
	Entry{"MINT", hsl(114, 31, 68)},
	Entry{"TEAL", hsl(180, 36, 54)},
	Entry{"BLUE", hsl(210, 50, 60)},
	Entry{"PURPLE", hsl(300, 30, 68)},
)

// Builtins returns every palette shipped with the application.
func Builtins() []*Palette {
	return []*Palette{Default, Mariana}
}
