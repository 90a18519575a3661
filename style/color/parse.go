package color

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
)

// Parse parses a textual CSS color specification. Colors are supported in
// functional notation — rgb(…), rgba(…), hsl(…), hsla(…) — and as
// case-insensitive CSS3 color keywords.
//
// Malformed input yields ok=false. This mirrors CSS error recovery:
// a declaration with an unparsable color simply does not apply.
func Parse(colspec string) (Color, bool) {
	switch {
	case strings.HasPrefix(colspec, "rgb("):
		return parseRGB(colspec)
	case strings.HasPrefix(colspec, "rgba("):
		return parseRGBA(colspec)
	case strings.HasPrefix(colspec, "hsl("):
		return parseHSL(colspec)
	case strings.HasPrefix(colspec, "hsla("):
		return parseHSLA(colspec)
	}
	return Lookup(colspec)
}

// parseRGB parses a specification in the form rgb(r,g,b).
func parseRGB(colspec string) (Color, bool) {
	args, ok := funcArgs(colspec, "rgb(", 3)
	if !ok {
		return unrecognized(colspec)
	}
	r, ok1 := channel(args[0])
	g, ok2 := channel(args[1])
	b, ok3 := channel(args[2])
	if !ok1 || !ok2 || !ok3 {
		return unrecognized(colspec)
	}
	return RGB(r, g, b), true
}

// parseRGBA parses a specification in the form rgba(r,g,b,a).
func parseRGBA(colspec string) (Color, bool) {
	args, ok := funcArgs(colspec, "rgba(", 4)
	if !ok {
		return unrecognized(colspec)
	}
	r, ok1 := channel(args[0])
	g, ok2 := channel(args[1])
	b, ok3 := channel(args[2])
	a, ok4 := fraction(args[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return unrecognized(colspec)
	}
	return RGBA(r, g, b, a), true
}

// parseHSL parses a specification in the form hsl(h,s,l).
func parseHSL(colspec string) (Color, bool) {
	args, ok := funcArgs(colspec, "hsl(", 3)
	if !ok {
		return unrecognized(colspec)
	}
	h, ok1 := fraction(args[0])
	s, ok2 := fraction(args[1])
	l, ok3 := fraction(args[2])
	if !ok1 || !ok2 || !ok3 {
		return unrecognized(colspec)
	}
	return HSL(h, s, l), true
}

// parseHSLA parses a specification in the form hsla(h,s,l,a).
func parseHSLA(colspec string) (Color, bool) {
	args, ok := funcArgs(colspec, "hsla(", 4)
	if !ok {
		return unrecognized(colspec)
	}
	h, ok1 := fraction(args[0])
	s, ok2 := fraction(args[1])
	l, ok3 := fraction(args[2])
	a, ok4 := fraction(args[3])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return unrecognized(colspec)
	}
	return HSLA(h, s, l, a), true
}

// funcArgs shaves off the function prefix and the closing parenthesis and
// splits the remainder on commas, trimming whitespace around every token.
// ok is false on arity mismatch.
func funcArgs(colspec string, prefix string, arity int) ([]string, bool) {
	if !strings.HasSuffix(colspec, ")") {
		return nil, false
	}
	inner := colspec[len(prefix) : len(colspec)-1]
	args := strings.Split(inner, ",")
	if len(args) != arity {
		return nil, false
	}
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return args, true
}

// channel parses an 8-bit color channel value. Leading zeros are tolerated.
func channel(tok string) (uint8, bool) {
	n, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// fraction parses a floating point token, accepting forms like “.5”, “1”
// and “1.00”.
func fraction(tok string) (float64, bool) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func unrecognized(colspec string) (Color, bool) {
	tracer().Debugf("unrecognized color %q", colspec)
	return Color{}, false
}
