package unit

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Unit is the measurement unit of a Length.
type Unit uint8

// Units understood by the style resolver.
const (
	UnitEm Unit = iota // relative to the font size
	UnitPx             // absolute
	UnitPt             // absolute, converted to px at a fixed ratio
)

// PxPerPt is the fixed point-to-pixel conversion ratio of the host
// environment (CSS reference pixel: 96 px per inch, 72 pt per inch).
const PxPerPt = 96.0 / 72.0

// Length is a CSS length, tagged by its unit. Lengths are immutable value
// types and compare structurally.
//
// An em-length is relative to a font size and must be resolved against a
// reference font size before an absolute value may be read from it.
type Length struct {
	Unit  Unit
	Value float64
}

// Em creates a font-size-relative length.
func Em(x float64) Length {
	return Length{Unit: UnitEm, Value: x}
}

// Px creates an absolute length in pixels.
func Px(x float64) Length {
	return Length{Unit: UnitPx, Value: x}
}

// Pt creates an absolute length in points.
func Pt(x float64) Length {
	return Length{Unit: UnitPt, Value: x}
}

// IsRelative is true for lengths which require resolution against a
// reference font size.
func (l Length) IsRelative() bool {
	return l.Unit == UnitEm
}

// Rel returns the font-size factor of a relative length.
// Calling Rel on an absolute length is a programming error.
func (l Length) Rel() float64 {
	if l.Unit != UnitEm {
		panic(fmt.Sprintf("unit: attempted to access relative factor of absolute length %s", l))
	}
	return l.Value
}

// AsPx returns the value of an absolute length in pixels, converting
// points at the fixed host ratio. Reading an unresolved relative length
// as an absolute one is a programming error: the resolver must have
// substituted it beforehand.
func (l Length) AsPx() float64 {
	switch l.Unit {
	case UnitPx:
		return l.Value
	case UnitPt:
		return l.Value * PxPerPt
	}
	panic(fmt.Sprintf("unit: attempted to access unresolved relative length %s as absolute", l))
}

// DU converts an absolute length to a tyse dimension unit for consumption
// by layout engines. Like AsPx, DU must not be called on a relative length.
func (l Length) DU() dimen.DU {
	return dimen.DU(math.Round(l.AsPx() * 0.75 * float64(dimen.PT)))
}

func (l Length) String() string {
	switch l.Unit {
	case UnitEm:
		return fmt.Sprintf("%gem", l.Value)
	case UnitPt:
		return fmt.Sprintf("%gpt", l.Value)
	}
	return fmt.Sprintf("%gpx", l.Value)
}

// AsPercent wraps a percentage value (in percent-of-reference terms, i.e.
// 150 for “150%”) into a tyse percentage for layout consumers.
func AsPercent(pct float64) percent.Percent {
	return percent.FromInt(int(math.Round(pct)))
}

// --- Font size keywords ----------------------------------------------------

// AbsoluteSize is a CSS 2.1 absolute-size keyword for property font-size.
type AbsoluteSize uint8

// Absolute-size keywords, xx-small … xx-large.
const (
	XXSmall AbsoluteSize = iota
	XSmall
	Small
	Medium
	Large
	XLarge
	XXLarge
)

// absoluteSizePx maps absolute-size keywords to pixel values, using the
// CSS 2.1 suggested scaling factors on a 16px medium.
var absoluteSizePx = [...]float64{
	XXSmall: 16.0 * 3 / 5,
	XSmall:  16.0 * 3 / 4,
	Small:   16.0 * 8 / 9,
	Medium:  16.0,
	Large:   16.0 * 6 / 5,
	XLarge:  16.0 * 3 / 2,
	XXLarge: 16.0 * 2,
}

// Px returns the pixel equivalent of an absolute-size keyword.
func (a AbsoluteSize) Px() float64 {
	return absoluteSizePx[a]
}

func (a AbsoluteSize) String() string {
	return [...]string{"xx-small", "x-small", "small", "medium", "large",
		"x-large", "xx-large"}[a]
}

// RelativeSize is a CSS 2.1 relative-size keyword for property font-size.
type RelativeSize uint8

// Relative-size keywords.
const (
	Larger RelativeSize = iota
	Smaller
)

// Factor returns the scaling factor a relative-size keyword applies to the
// parent font size.
func (r RelativeSize) Factor() float64 {
	if r == Smaller {
		return 1.0 / 1.2
	}
	return 1.2
}

func (r RelativeSize) String() string {
	if r == Smaller {
		return "smaller"
	}
	return "larger"
}

// --- Generic font families --------------------------------------------------

// GenericFontFamily is one of the five CSS 2.1 generic font families.
type GenericFontFamily uint8

// Generic font families.
const (
	Serif GenericFontFamily = iota
	SansSerif
	Cursive
	Fantasy
	Monospace
)

func (g GenericFontFamily) String() string {
	return [...]string{"serif", "sans-serif", "cursive", "fantasy",
		"monospace"}[g]
}
