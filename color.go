package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Paint is a translucent colour: red, green and blue in 0..255 and alpha
// in 0..1. Channels decoded from malformed hex are NaN.
type Paint struct {
	R, G, B float64
	A       float64
}

// Valid reports whether every channel is a number.
func (p Paint) Valid() bool {
	return !math.IsNaN(p.R) && !math.IsNaN(p.G) && !math.IsNaN(p.B) && !math.IsNaN(p.A)
}

// NRGBA converts p to a non-premultiplied colour, clamping out of range
// channels. The result is meaningless when p is not Valid.
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(math.Round(p.R), 0, 255)),
		G: uint8(clamp(math.Round(p.G), 0, 255)),
		B: uint8(clamp(math.Round(p.B), 0, 255)),
		A: uint8(math.Round(clamp(p.A, 0, 1) * 255)),
	}
}

func (p Paint) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", p.R, p.G, p.B, p.A)
}

// Ink is what a stroke segment applies: either a paint, or erasure.
type Ink struct {
	Erase bool
	Paint Paint
}

func PaintInk(p Paint) Ink { return Ink{Paint: p} }

func EraseInk() Ink { return Ink{Erase: true} }

// resolvePaint decodes a "#RRGGBB" colour and combines it with alpha.
// No validation is done: a pair without a leading hex digit decodes to NaN.
func resolvePaint(hex string, alpha float64) Paint {
	return Paint{
		R: parseHexPrefix(sliceBytes(hex, 1, 3)),
		G: parseHexPrefix(sliceBytes(hex, 3, 5)),
		B: parseHexPrefix(sliceBytes(hex, 5, 7)),
		A: alpha,
	}
}

// parseHexPrefix reads the leading run of hex digits of s, after optional
// whitespace and sign, and returns NaN when there is none.
func parseHexPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	value, digits := 0.0, 0
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			break
		}
		value = value*16 + float64(d)
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return sign * value
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// sliceBytes returns s[start:end] clipped to the length of s.
func sliceBytes(s string, start, end int) string {
	if start > len(s) {
		start = len(s)
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// hexOf formats a display colour as "#rrggbb".
func hexOf(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
