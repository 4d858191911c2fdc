// SPDX-License-Identifier: MIT
package colors

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"f00", "#ff0000", true},
		{"#F00", "#ff0000", true},
		{"  #3498DB  ", "#3498db", true},
		{"3498db", "#3498db", true},
		{"#6bcB77", "#6bcb77", true},
		{"#abc", "#aabbcc", true},
		{"not-a-color", "", false},
		{"", "", false},
		{"#", "", false},
		{"#12345", "", false},
		{"#1234567", "", false},
		{"##ff0000", "", false},
		{"ggg", "", false},
		{"#ff00zz", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeHex(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NormalizeHex(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeHexCanonicalForAllShorthands(t *testing.T) {
	digits := "0123456789abcdefABCDEF"
	for _, d := range digits {
		in := string([]rune{d, d, d})
		c, ok := NormalizeHex(in)
		if !ok {
			t.Fatalf("expected %q to be valid", in)
		}
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("non-canonical result %q for %q", c, in)
		}
		again, ok := NormalizeHex(string(c))
		if !ok || again != c {
			t.Errorf("normalizing %q twice changed it to %q", c, again)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"f00", "#ff0000"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"RGB(0,128,255)", "#0080ff"},
		{"rgba(1, 2, 3, 0.5)", "#010203"},
		{"hsl(0, 100%, 50%)", "#ff0000"},
		{"hsl(120, 100%, 50%)", "#00ff00"},
		{"hsl(480deg, 100%, 50%)", "#00ff00"},
		{"hsl(0, 0%, 100%)", "#ffffff"},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseColorRejects(t *testing.T) {
	inputs := []string{"", "not-a-color", "rgb(256, 0, 0)", "rgb(1,2)", "hsl(10, 120%, 50%)", "blue"}
	for _, in := range inputs {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestRGBRoundTrip(t *testing.T) {
	c := FromRGB(0x12, 0xab, 0xef)
	if c != "#12abef" {
		t.Fatalf("FromRGB = %q", c)
	}
	r, g, b := c.RGB()
	if r != 0x12 || g != 0xab || b != 0xef {
		t.Errorf("RGB() = %d,%d,%d", r, g, b)
	}
	if c.Upper() != "#12ABEF" {
		t.Errorf("Upper() = %q", c.Upper())
	}
}

func TestRandomColorIsNormalized(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		c := RandomColorFrom(r)
		if got, ok := NormalizeHex(string(c)); !ok || got != c {
			t.Fatalf("random color %q is not normalized", c)
		}
	}
	if c := RandomColor(); len(c) != 7 {
		t.Errorf("RandomColor() = %q", c)
	}
}

func TestFromUintZeroPads(t *testing.T) {
	if got := FromUint(0); got != "#000000" {
		t.Errorf("FromUint(0) = %q", got)
	}
	if got := FromUint(0xff); got != "#0000ff" {
		t.Errorf("FromUint(0xff) = %q", got)
	}
	if got := FromUint(0xffffff); got != "#ffffff" {
		t.Errorf("FromUint(0xffffff) = %q", got)
	}
}

func TestRelativeLuminanceBounds(t *testing.T) {
	if l := RelativeLuminance(White); math.Abs(l-1) > 1e-9 {
		t.Errorf("luminance(white) = %v, want 1", l)
	}
	if l := RelativeLuminance(Black); math.Abs(l) > 1e-9 {
		t.Errorf("luminance(black) = %v, want 0", l)
	}
	// Pure red: 0.2126
	if l := RelativeLuminance("#ff0000"); math.Abs(l-0.2126) > 1e-9 {
		t.Errorf("luminance(red) = %v, want 0.2126", l)
	}
	// Channel 10/255 falls on the linear segment
	want := 0.7152 * (10.0 / 255 / 12.92)
	if l := RelativeLuminance("#000a00"); math.Abs(l-want) > 1e-12 {
		t.Errorf("luminance(#000a00) = %v, want %v", l, want)
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(Black, White); math.Abs(got-21) > 1e-9 {
		t.Errorf("contrast(black, white) = %v, want 21", got)
	}

	r := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 200; i++ {
		a, b := RandomColorFrom(r), RandomColorFrom(r)
		if ContrastRatio(a, b) != ContrastRatio(b, a) {
			t.Fatalf("contrast not symmetric for %s, %s", a, b)
		}
		if got := ContrastRatio(a, a); got != 1 {
			t.Fatalf("contrast(%s, %s) = %v, want 1", a, a, got)
		}
		if got := ContrastRatio(a, b); got < 1 || got > 21+1e-9 {
			t.Fatalf("contrast(%s, %s) = %v out of range", a, b, got)
		}
	}
}

func TestPickReadableTextColor(t *testing.T) {
	if got := PickReadableTextColor(Black); got != White {
		t.Errorf("text over black = %s, want white", got)
	}
	if got := PickReadableTextColor(White); got != Black {
		t.Errorf("text over white = %s, want black", got)
	}
	// #3498db against white is about 3.1, below the threshold
	if got := PickReadableTextColor("#3498db"); got != Black {
		t.Errorf("text over #3498db = %s, want black", got)
	}
	if got := PickReadableTextColor("#000080"); got != White {
		t.Errorf("text over navy = %s, want white", got)
	}
}

func TestFilterValid(t *testing.T) {
	got := FilterValid([]string{"", "f00", "nope", "#00FF00"})
	want := Palette{"#ff0000", "#00ff00"}
	if !got.Equal(want) {
		t.Errorf("FilterValid = %v, want %v", got, want)
	}
}

func TestPaletteClone(t *testing.T) {
	p := Palette{"#ff0000", "#00ff00"}
	c := p.Clone()
	c[0] = "#000000"
	if p[0] != "#ff0000" {
		t.Error("Clone shares backing array with original")
	}
}
