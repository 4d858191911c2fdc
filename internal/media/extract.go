// SPDX-License-Identifier: MIT
package media

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/thatcatcamp/colorstudio/internal/colors"
)

const (
	// sampleSize bounds the longest edge of the working copy
	sampleSize = 96
	// minDistance is the CIE Lab distance below which two picks count as the same color
	minDistance = 0.12
	// MaxExtract caps how many colors one image yields
	MaxExtract = 8
)

type bucket struct {
	count   int
	r, g, b int
}

// ExtractPaletteFile opens an image file and extracts up to n dominant colors
func ExtractPaletteFile(path string, n int) (colors.Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return ExtractPalette(f, n)
}

// ExtractPalette decodes a PNG, JPEG, GIF or WebP image and returns up to n
// dominant colors, most common first. Near-duplicate colors are skipped so
// the result spans the image rather than repeating its largest area.
func ExtractPalette(r io.Reader, n int) (colors.Palette, error) {
	if n <= 0 {
		n = 1
	}
	if n > MaxExtract {
		n = MaxExtract
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	sample := downsample(src)
	buckets := histogram(sample)

	var picked []colorful.Color
	out := make(colors.Palette, 0, n)
	for _, b := range buckets {
		if len(out) == n {
			break
		}
		c := colorful.Color{
			R: float64(b.r/b.count) / 255,
			G: float64(b.g/b.count) / 255,
			B: float64(b.b/b.count) / 255,
		}
		if tooClose(c, picked) {
			continue
		}
		picked = append(picked, c)
		r8, g8, b8 := c.RGB255()
		out = append(out, colors.FromRGB(r8, g8, b8))
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}
	return out, nil
}

// downsample scales the image so its longest edge is at most sampleSize
func downsample(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > sampleSize || h > sampleSize {
		if w >= h {
			h = max(1, h*sampleSize/w)
			w = sampleSize
		} else {
			w = max(1, w*sampleSize/h)
			h = sampleSize
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// histogram groups pixels into 4-bit-per-channel buckets, most populated first.
// Mostly transparent pixels are ignored.
func histogram(img *image.RGBA) []bucket {
	bins := make(map[int]*bucket)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A < 128 {
				continue
			}
			// Undo premultiplication for partly transparent pixels
			r, g, b := int(px.R), int(px.G), int(px.B)
			if px.A < 255 {
				r, g, b = r*255/int(px.A), g*255/int(px.A), b*255/int(px.A)
			}

			key := (r>>4)<<8 | (g>>4)<<4 | b>>4
			bk, ok := bins[key]
			if !ok {
				bk = &bucket{}
				bins[key] = bk
			}
			bk.count++
			bk.r += r
			bk.g += g
			bk.b += b
		}
	}

	out := make([]bucket, 0, len(bins))
	for _, b := range bins {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		// Stable order for equal counts
		return out[i].r*65536+out[i].g*256+out[i].b < out[j].r*65536+out[j].g*256+out[j].b
	})
	return out
}

func tooClose(c colorful.Color, picked []colorful.Color) bool {
	for _, p := range picked {
		if c.DistanceLab(p) < minDistance {
			return true
		}
	}
	return false
}
