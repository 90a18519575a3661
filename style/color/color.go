package color

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.color'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.color")
}

// Color is an RGBA color value as used by CSS. Channels are 8-bit,
// the alpha component is a fraction in [0,1]. Colors are immutable value
// types and compare structurally.
//
// Alpha is not clamped during construction; callers are responsible for
// providing sensible values.
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// RGB creates an opaque color from three 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 1.0)
}

// RGBA creates a color from three 8-bit channel values and an alpha
// fraction in [0,1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, Alpha: a}
}

// HSL creates an opaque color from hue (in degrees), saturation and
// lightness (both fractions in [0,1]).
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1.0)
}

// HSLA creates a color from hue (in degrees), saturation, lightness and
// alpha. Conversion to RGB follows the CSS3 color module,
// http://www.w3.org/TR/2003/CR-css3-color-20030514/#hsl-color .
func HSLA(h, s, l, a float64) Color {
	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1.0)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2.0 - m2
	h = h / 360.0
	r := math.Round(255.0 * hueToChannel(m1, m2, h+1.0/3.0))
	g := math.Round(255.0 * hueToChannel(m1, m2, h))
	b := math.Round(255.0 * hueToChannel(m1, m2, h-1.0/3.0))
	return RGBA(uint8(r), uint8(g), uint8(b), a)
}

// hueToChannel is the piecewise hue-to-channel function from the CSS3
// color module. h must be in [-1/3, 4/3]; it is wrapped into [0,1] once.
// A hue outside of [0,1] after wrapping is a programming error.
func hueToChannel(m1, m2, h float64) float64 {
	if h < 0.0 {
		h += 1.0
	} else if h > 1.0 {
		h -= 1.0
	}
	switch {
	case 0.0 <= h && h < 1.0/6.0:
		return m1 + (m2-m1)*h*6.0
	case h < 1.0/2.0:
		return m2
	case h < 2.0/3.0:
		return m1 + (m2-m1)*(4.0-6.0*h)
	case h <= 1.0:
		return m1
	}
	panic(fmt.Sprintf("color: unexpected hue value %g", h))
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.Alpha)
}
