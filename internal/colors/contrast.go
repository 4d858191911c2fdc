// SPDX-License-Identifier: MIT
package colors

import "math"

// ReadableContrast is the WCAG AA minimum contrast ratio for normal text
const ReadableContrast = 4.5

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance in [0, 1]
func RelativeLuminance(c Color) float64 {
	r, g, b := c.RGB()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1, 21]
func ContrastRatio(a, b Color) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// PickReadableTextColor returns white when white text clears the AA
// threshold over the background, black otherwise
func PickReadableTextColor(background Color) Color {
	if ContrastRatio(background, White) > ReadableContrast {
		return White
	}
	return Black
}
