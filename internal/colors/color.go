// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when user text cannot be turned into a Color
var ErrInvalidColor = errors.New("invalid color")

var hexPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// Color is a normalized sRGB color in the form "#rrggbb" (always lowercase)
type Color string

// Fixed colors used for readable text over a swatch
const (
	Black Color = "#000000"
	White Color = "#ffffff"
)

// Palette is an ordered list of colors. Order is the gradient stop order.
type Palette []Color

// NormalizeHex validates hex input and returns its canonical form.
// Accepts 3 or 6 hex digits, any case, with or without a leading '#'.
func NormalizeHex(input string) (Color, bool) {
	hex := strings.ToLower(strings.TrimSpace(input))
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) == 3 {
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	}

	if !hexPattern.MatchString(hex) {
		return "", false
	}
	return Color("#" + hex), true
}

// FromRGB builds a Color from 8-bit channels
func FromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// RGB returns the 8-bit channels of the color
func (c Color) RGB() (r, g, b uint8) {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(c), "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Upper returns the display label, e.g. "#FF6B6B"
func (c Color) Upper() string {
	return strings.ToUpper(string(c))
}

func (c Color) String() string {
	return string(c)
}

// Clone returns an independent copy of the palette
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Strings returns the palette as plain strings
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

// Equal reports whether two palettes hold the same colors in the same order
func (p Palette) Equal(other Palette) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// FilterValid normalizes every entry and drops empty or invalid ones
func FilterValid(inputs []string) Palette {
	out := make(Palette, 0, len(inputs))
	for _, in := range inputs {
		if in == "" {
			continue
		}
		if c, ok := NormalizeHex(in); ok {
			out = append(out, c)
		}
	}
	return out
}
