// Package icon renders the application's base raster: a vertical
// dark-blue to purple gradient with a circular play-button emblem at
// the center, written as an opaque 1024x1024 PNG.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// File is the fixed output path, relative to the working directory.
const File = "icon_1024.png"

const (
	// Size is the side length of the square canvas.
	Size = 1024

	center     = Size / 2
	discRadius = Size / 3
	glyphSize  = discRadius / 2

	ringCount  = 5
	ringStep   = 20
	ringStroke = 3
	rimStroke  = 8
)

var (
	gradientTop    = color.RGBA{10, 10, 50, 255}
	gradientBottom = color.RGBA{80, 40, 140, 255}
	ringColor      = color.RGBA{100, 150, 255, 255}
	discFill       = color.RGBA{30, 30, 60, 255}
	discRim        = color.RGBA{120, 180, 255, 255}
	glyphFill      = color.RGBA{150, 200, 255, 255}
)

// Render draws the full icon into a fresh canvas.
func Render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	drawGradient(img)
	for i := 0; i < ringCount; i++ {
		// The source design fades each ring (alpha 40 - i*8), but the
		// canvas is opaque RGB so the rings land at full strength.
		drawRing(img, discRadius+i*ringStep)
	}
	drawDisc(img)
	drawGlyph(img)
	return img
}

// GradientAt returns the background color of row y: a linear blend from
// gradientTop to gradientBottom at ratio y/Size, channels truncated.
func GradientAt(y int) color.RGBA {
	t := float64(y) / Size
	return color.RGBA{
		R: lerp(gradientTop.R, gradientBottom.R, t),
		G: lerp(gradientTop.G, gradientBottom.G, t),
		B: lerp(gradientTop.B, gradientBottom.B, t),
		A: 255,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func drawGradient(img *image.RGBA) {
	for y := 0; y < Size; y++ {
		c := GradientAt(y)
		for x := 0; x < Size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawRing draws an unfilled glow circle of radius r centered on the
// canvas, the stroke covering (r-ringStroke, r] in distance from the
// center. Integer squared distances keep the ring mirror-symmetric
// about the center row and column.
func drawRing(img *image.RGBA, r int) {
	inner := (r - ringStroke) * (r - ringStroke)
	outer := r * r
	for y := center - r; y <= center+r; y++ {
		for x := center - r; x <= center+r; x++ {
			dx, dy := x-center, y-center
			if d2 := dx*dx + dy*dy; d2 > inner && d2 <= outer {
				img.SetRGBA(x, y, ringColor)
			}
		}
	}
}

// drawDisc fills the main circle and its rim band.
func drawDisc(img *image.RGBA) {
	inner := (discRadius - rimStroke) * (discRadius - rimStroke)
	outer := discRadius * discRadius
	for y := center - discRadius; y <= center+discRadius; y++ {
		for x := center - discRadius; x <= center+discRadius; x++ {
			dx, dy := x-center, y-center
			switch d2 := dx*dx + dy*dy; {
			case d2 <= inner:
				img.SetRGBA(x, y, discFill)
			case d2 <= outer:
				img.SetRGBA(x, y, discRim)
			}
		}
	}
}

// drawGlyph fills the right-pointing play triangle. Rows are emitted in
// mirrored pairs about the center row, so the glyph is exactly
// top-bottom symmetric.
func drawGlyph(img *image.RGBA) {
	left := center - glyphSize/2
	tip := center + glyphSize
	for dy := 0; dy <= glyphSize; dy++ {
		right := left + (tip-left)*(glyphSize-dy)/glyphSize
		for x := left; x <= right; x++ {
			img.SetRGBA(x, center-dy, glyphFill)
			img.SetRGBA(x, center+dy, glyphFill)
		}
	}
}

// Save renders the icon and writes it as a PNG at path, replacing any
// existing file. The canvas is fully opaque, so the encoder emits 8-bit
// truecolor with no alpha channel.
func Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, Render()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
