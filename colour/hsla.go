package colour

import (
	"math"

	"github.com/samber/mo"
)

// HSLA is a colour in the hue/saturation/lightness/alpha space.
//
// Hue is stored in degrees [0, 359]. Saturation, lightness and alpha are
// stored as unit fractions [0.0, 1.0] regardless of whether they were
// supplied on the percentage scale. Unset fields stay unset through Clone
// and are treated as zero by the conversions.
type HSLA struct {
	H mo.Option[int]
	S mo.Option[float64]
	L mo.Option[float64]
	A mo.Option[float64]
}

// NewHSLA constructs an HSLA value, validating every channel that is present.
// Saturation, lightness and alpha accept either the percentage scale [0, 100]
// or the unit scale [0.0, 1.0].
func NewHSLA(h mo.Option[int], s, l, a mo.Option[float64]) (HSLA, error) {
	if v, ok := h.Get(); ok && (v < 0 || v > 359) {
		return HSLA{}, &ValidationError{Field: "hue", Value: float64(v), Range: "[0, 359]"}
	}

	for _, channel := range []struct {
		field string
		opt   *mo.Option[float64]
	}{
		{"saturation", &s},
		{"lightness", &l},
		{"alpha", &a},
	} {
		v, ok := channel.opt.Get()
		if !ok {
			continue
		}

		v, err := fraction(channel.field, v)
		if err != nil {
			return HSLA{}, err
		}
		*channel.opt = mo.Some(v)
	}

	return HSLA{H: h, S: s, L: l, A: a}, nil
}

// HSL constructs a fully specified, fully opaque HSLA value.
func HSL(h int, s, l float64) (HSLA, error) {
	return NewHSLA(mo.Some(h), mo.Some(s), mo.Some(l), mo.None[float64]())
}

// Clone derives a new value from the receiver. Present arguments are
// normalized and validated like at construction; absent arguments inherit
// the receiver's fields. The receiver is never modified.
func (c HSLA) Clone(h mo.Option[int], s, l, a mo.Option[float64]) (HSLA, error) {
	if h.IsAbsent() {
		h = c.H
	}
	if s.IsAbsent() {
		s = c.S
	}
	if l.IsAbsent() {
		l = c.L
	}
	if a.IsAbsent() {
		a = c.A
	}

	return NewHSLA(h, s, l, a)
}

// ToHSLA returns the value unchanged.
func (c HSLA) ToHSLA() HSLA {
	return c
}

// ToRGBA converts to the RGBA space.
//
// The hue's 60 degree sextant selects the channel ordering, then each channel
// is scaled to [0, 255] and rounded independently. Alpha passes through
// unchanged. Formula: https://www.rapidtables.com/convert/color/hsl-to-rgb.html
func (c HSLA) ToRGBA() RGBA {
	var (
		h = float64(c.H.OrElse(0))
		s = c.S.OrElse(0)
		l = c.L.OrElse(0)
	)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	scale := func(v float64) mo.Option[int] {
		return mo.Some(int(math.Round((v + m) * 255)))
	}

	return RGBA{R: scale(r), G: scale(g), B: scale(b), A: c.A}
}

// ToHex renders the colour as a lowercase hexadecimal string.
func (c HSLA) ToHex() string {
	return Hex(c)
}
