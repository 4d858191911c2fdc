// SPDX-License-Identifier: MIT
package colors

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(-?[\d.]+)(?:deg)?\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*(?:,\s*[\d.]+\s*)?\)$`)
)

// ParseColor turns user-entered text into a Color.
// Hex input goes through NormalizeHex; rgb() and hsl() notation is converted
// so that nothing but "#rrggbb" ever reaches the palette. Alpha is ignored.
func ParseColor(input string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidColor)
	}

	if c, ok := NormalizeHex(text); ok {
		return c, nil
	}

	if m := rgbPattern.FindStringSubmatch(text); m != nil {
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(m[i+1])
			if err != nil || v > 255 {
				return "", fmt.Errorf("%w: channel out of range in %q", ErrInvalidColor, input)
			}
			ch[i] = uint8(v)
		}
		return FromRGB(ch[0], ch[1], ch[2]), nil
	}

	if m := hslPattern.FindStringSubmatch(text); m != nil {
		h, errH := strconv.ParseFloat(m[1], 64)
		s, errS := strconv.ParseFloat(m[2], 64)
		l, errL := strconv.ParseFloat(m[3], 64)
		if errH != nil || errS != nil || errL != nil || s > 100 || l > 100 {
			return "", fmt.Errorf("%w: bad hsl value %q", ErrInvalidColor, input)
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
		return FromRGB(r, g, b), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidColor, input)
}
