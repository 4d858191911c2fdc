// SPDX-License-Identifier: MIT
package colors

import "math/rand/v2"

// RandomColor returns a color drawn uniformly from the full 24-bit range
func RandomColor() Color {
	return FromUint(rand.IntN(0xffffff + 1))
}

// RandomColorFrom is RandomColor with a caller-supplied source
func RandomColorFrom(r *rand.Rand) Color {
	return FromUint(r.IntN(0xffffff + 1))
}

// FromUint formats the low 24 bits of v as a Color
func FromUint(v int) Color {
	return FromRGB(uint8(v>>16), uint8(v>>8), uint8(v))
}
