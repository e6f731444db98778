package colour

import (
	"math"

	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/util"
)

// RGBA is a colour in the red/green/blue/alpha space.
//
// Red, green and blue are stored as integers [0, 255]. Alpha is stored as a
// unit fraction [0.0, 1.0], accepting the percentage scale on input like the
// HSLA channels do.
type RGBA struct {
	R mo.Option[int]
	G mo.Option[int]
	B mo.Option[int]
	A mo.Option[float64]
}

// NewRGBA constructs an RGBA value, validating every channel that is present.
func NewRGBA(r, g, b mo.Option[int], a mo.Option[float64]) (RGBA, error) {
	for _, channel := range []struct {
		field string
		opt   mo.Option[int]
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	} {
		if v, ok := channel.opt.Get(); ok && (v < 0 || v > 255) {
			return RGBA{}, &ValidationError{Field: channel.field, Value: float64(v), Range: "[0, 255]"}
		}
	}

	if v, ok := a.Get(); ok {
		v, err := fraction("alpha", v)
		if err != nil {
			return RGBA{}, err
		}
		a = mo.Some(v)
	}

	return RGBA{R: r, G: g, B: b, A: a}, nil
}

// RGB constructs a fully specified, fully opaque RGBA value.
func RGB(r, g, b int) (RGBA, error) {
	return NewRGBA(mo.Some(r), mo.Some(g), mo.Some(b), mo.None[float64]())
}

// Clone derives a new value from the receiver. Present arguments are
// validated like at construction; absent arguments inherit the receiver's
// fields. The receiver is never modified.
func (c RGBA) Clone(r, g, b mo.Option[int], a mo.Option[float64]) (RGBA, error) {
	if r.IsAbsent() {
		r = c.R
	}
	if g.IsAbsent() {
		g = c.G
	}
	if b.IsAbsent() {
		b = c.B
	}
	if a.IsAbsent() {
		a = c.A
	}

	return NewRGBA(r, g, b, a)
}

// Normalise scales the red, green and blue channels into [0.0, 1.0].
// Unset channels normalise to zero.
func (c RGBA) Normalise() (r, g, b float64) {
	return float64(c.R.OrElse(0)) / 255,
		float64(c.G.OrElse(0)) / 255,
		float64(c.B.OrElse(0)) / 255
}

// ToHSLA converts to the HSLA space.
//
// Hue is rounded to the nearest degree; saturation and lightness are rounded
// to two decimal places. When the channel extrema coincide (grays, including
// pure black and white) both hue and saturation are defined as zero rather
// than leaving a 0/0 to the arithmetic. Alpha passes through unchanged.
// Formula: https://www.rapidtables.com/convert/color/rgb-to-hsl.html
func (c RGBA) ToHSLA() HSLA {
	r, g, b := c.Normalise()

	max := util.Max(r, g, b)
	min := util.Min(r, g, b)
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}

	l := round2((max + min) / 2)

	var s float64
	if denom := 1 - math.Abs(2*l-1); delta != 0 && denom != 0 {
		s = round2(delta / denom)
	}

	return HSLA{
		H: mo.Some(int(math.Round(h))),
		S: mo.Some(s),
		L: mo.Some(l),
		A: c.A,
	}
}

// ToRGBA returns the value unchanged.
func (c RGBA) ToRGBA() RGBA {
	return c
}

// ToHex renders the colour as a lowercase hexadecimal string.
func (c RGBA) ToHex() string {
	return Hex(c)
}
