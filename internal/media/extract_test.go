// SPDX-License-Identifier: MIT
package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

// splitImage fills the left 3/4 with a and the rest with b
func splitImage(w, h int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w*3/4 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

func encode(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return &buf
}

func TestExtractPaletteDominantFirst(t *testing.T) {
	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	buf := encode(t, splitImage(40, 20, red, blue))

	got, err := ExtractPalette(buf, 4)
	if err != nil {
		t.Fatalf("ExtractPalette failed: %v", err)
	}
	if len(got) < 2 {
		t.Fatalf("Expected at least 2 colors, got %v", got)
	}
	if got[0] != colors.Color("#ff0000") {
		t.Errorf("Expected dominant color #ff0000, got %s", got[0])
	}

	found := false
	for _, c := range got {
		if c == colors.Color("#0000ff") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected #0000ff in %v", got)
	}
}

func TestExtractPaletteSkipsNearDuplicates(t *testing.T) {
	a := color.RGBA{0x80, 0x80, 0x80, 0xff}
	b := color.RGBA{0x81, 0x80, 0x80, 0xff}
	buf := encode(t, splitImage(8, 8, a, b))

	got, err := ExtractPalette(buf, 5)
	if err != nil {
		t.Fatalf("ExtractPalette failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Expected near-identical grays to collapse to one color, got %v", got)
	}
}

func TestExtractPaletteClampsCount(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), uint8((x + y) * 8), 0xff})
		}
	}

	got, err := ExtractPalette(encode(t, img), 100)
	if err != nil {
		t.Fatalf("ExtractPalette failed: %v", err)
	}
	if len(got) > MaxExtract {
		t.Errorf("Expected at most %d colors, got %d", MaxExtract, len(got))
	}

	got, err = ExtractPalette(encode(t, img), 0)
	if err != nil {
		t.Fatalf("ExtractPalette failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Expected n<=0 to yield one color, got %d", len(got))
	}
}

func TestExtractPaletteTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	_, err := ExtractPalette(encode(t, img), 3)
	if err == nil {
		t.Error("Expected error for fully transparent image")
	}
}

func TestExtractPaletteRejectsGarbage(t *testing.T) {
	_, err := ExtractPalette(strings.NewReader("not an image"), 3)
	if err == nil {
		t.Error("Expected decode error")
	}
}

func TestExtractPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.png")
	green := color.RGBA{0, 0xff, 0, 0xff}
	if err := os.WriteFile(path, encode(t, splitImage(200, 50, green, green)).Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	got, err := ExtractPaletteFile(path, 3)
	if err != nil {
		t.Fatalf("ExtractPaletteFile failed: %v", err)
	}
	if len(got) != 1 || got[0] != colors.Color("#00ff00") {
		t.Errorf("Expected [#00ff00], got %v", got)
	}

	if _, err := ExtractPaletteFile(filepath.Join(t.TempDir(), "missing.png"), 3); err == nil {
		t.Error("Expected error for missing file")
	}
}
