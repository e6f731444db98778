// Package colour implements the HSLA and RGBA colour spaces and the
// conversion arithmetic between them.
//
// Values are immutable: construction validates and normalizes every supplied
// channel, and Clone derives new values instead of mutating in place. Channels
// are presence-tracked with mo.Option so an explicit zero is distinguishable
// from an unset field.
package colour

import (
	"fmt"
	"math"
)

// Colour is the capability shared by both colour space representations.
type Colour interface {
	// ToHSLA converts the colour to the HSLA space.
	ToHSLA() HSLA

	// ToRGBA converts the colour to the RGBA space.
	ToRGBA() RGBA

	// ToHex renders the colour as a lowercase hexadecimal string.
	ToHex() string
}

// Hex is the canonical hexadecimal renderer backing every ToHex
// implementation. It is expressed purely in terms of the ToRGBA contract, so
// any Colour gets correct rendering without duplicating the format logic.
//
// The output is #rrggbb, extended to #rrggbbaa when alpha is present and not
// exactly 1. Unset channels render as zero.
func Hex(c Colour) string {
	v := c.ToRGBA()

	hex := fmt.Sprintf("#%02x%02x%02x", v.R.OrElse(0), v.G.OrElse(0), v.B.OrElse(0))
	if a, ok := v.A.Get(); ok && a != 1 {
		hex += fmt.Sprintf("%02x", int(math.Round(a*255)))
	}

	return hex
}

// round2 rounds to two decimal places, matching the precision the RGBA to
// HSLA conversion stores for saturation and lightness.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// mod is a floored modulo that is never negative, unlike math.Mod.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
