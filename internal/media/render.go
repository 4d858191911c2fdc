// SPDX-License-Identifier: MIT
package media

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/thatcatcamp/colorstudio/internal/colors"
	"github.com/thatcatcamp/colorstudio/internal/palette"
)

const (
	// ExportWidth is the default export width
	ExportWidth = 1200
	// ExportHeight is the default export height
	ExportHeight = 800
	// Watermark is drawn near the bottom-left corner of every export
	Watermark = "Color Studio • export"
	// DefaultFilename is used when no output path is given
	DefaultFilename = "color-studio.png"

	watermarkX      = 20
	watermarkOffset = 28 // baseline distance from the bottom edge
	watermarkSize   = 22 // pixel height of the scaled text
)

// watermarkColor is white at 8% opacity
var watermarkColor = color.NRGBA{R: 255, G: 255, B: 255, A: 20}

// ExportOptions controls the rendered image
type ExportOptions struct {
	Width     int
	Height    int
	Watermark string
}

// DefaultExportOptions returns the standard 1200x800 export settings
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Width: ExportWidth, Height: ExportHeight, Watermark: Watermark}
}

// RenderImage draws the snapshot the way the preview shows it: a solid fill,
// or a linear gradient with evenly spaced stops along the mode's angle.
func RenderImage(snap palette.Snapshot, opts ExportOptions) *image.RGBA {
	if opts.Width <= 0 {
		opts.Width = ExportWidth
	}
	if opts.Height <= 0 {
		opts.Height = ExportHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	stops := snap.Colors
	if len(stops) == 0 {
		stops = colors.Palette{palette.FallbackColor}
	}

	if snap.Mode.Gradient && len(stops) > 1 {
		fillGradient(img, stops, snap.Mode.Angle)
	} else {
		draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(stops[0])), image.Point{}, draw.Src)
	}

	if opts.Watermark != "" {
		drawWatermark(img, opts.Watermark)
	}
	return img
}

// EncodePNG renders the snapshot and writes it as PNG
func EncodePNG(w io.Writer, snap palette.Snapshot, opts ExportOptions) error {
	if err := png.Encode(w, RenderImage(snap, opts)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG renders the snapshot into a PNG file, creating parent directories
func SavePNG(path string, snap palette.Snapshot, opts ExportOptions) error {
	if path == "" {
		path = DefaultFilename
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	return EncodePNG(f, snap, opts)
}

// fillGradient projects every pixel onto the vector (cos a * W, sin a * H)
// from the top-left corner. Positions outside the vector clamp to the end stops.
func fillGradient(img *image.RGBA, stops colors.Palette, angle int) {
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	rad := float64(angle) * math.Pi / 180
	vx, vy := math.Cos(rad)*w, math.Sin(rad)*h
	length2 := vx*vx + vy*vy

	cs := make([]colorful.Color, len(stops))
	for i, c := range stops {
		cs[i] = toColorful(c)
	}
	segments := float64(len(cs) - 1)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t := 0.0
			if length2 > 0 {
				t = ((float64(x)+0.5)*vx + (float64(y)+0.5)*vy) / length2
			}
			t = math.Max(0, math.Min(1, t))

			pos := t * segments
			i := int(pos)
			if i >= len(cs)-1 {
				i = len(cs) - 2
			}
			c := cs[i].BlendRgb(cs[i+1], pos-float64(i))
			r, g, b := c.Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
}

// drawWatermark renders text with the fixed bitmap face, then scales it up
// to the watermark size so it reads the same on every platform.
func drawWatermark(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	advance := font.MeasureString(face, text).Ceil()
	if advance == 0 {
		return
	}

	mask := image.NewRGBA(image.Rect(0, 0, advance, lineHeight))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(watermarkColor),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	scale := float64(watermarkSize) / float64(lineHeight)
	baseline := dst.Bounds().Max.Y - watermarkOffset
	top := baseline - int(float64(ascent)*scale)
	target := image.Rect(
		watermarkX, top,
		watermarkX+int(float64(advance)*scale), top+int(float64(lineHeight)*scale),
	)
	draw.CatmullRom.Scale(dst, target, mask, mask.Bounds(), draw.Over, nil)
}

func toRGBA(c colors.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func toColorful(c colors.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
