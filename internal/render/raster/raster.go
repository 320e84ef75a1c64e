// Package raster implements render.Canvas on an in-memory RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"chosenoffset.com/roomtiler/internal/render"
)

// Canvas is a render.Canvas backed by an *image.RGBA.
type Canvas struct {
	img *image.RGBA
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill fills the entire canvas with the given color.
func (c *Canvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{clr}, image.Point{}, draw.Src)
}

// DrawSprite composites a sprite with a scale, a clockwise rotation and a
// translation of its centre to (cx, cy).
func (c *Canvas) DrawSprite(sprite image.Image, cx, cy, size, angle float64) {
	b := sprite.Bounds()
	if b.Empty() || size <= 0 {
		return
	}
	draw.NearestNeighbor.Transform(c.img, spriteTransform(b, cx, cy, size, angle), sprite, b, draw.Over, nil)
}

// spriteTransform maps sprite space to canvas space: centre the sprite on
// the origin, scale it to size, rotate it and move it to (cx, cy).
func spriteTransform(b image.Rectangle, cx, cy, size, angle float64) f64.Aff3 {
	k := size / float64(b.Dx())
	sin, cos := math.Sincos(angle)
	// Snap quarter turns so edges stay pixel aligned.
	sin, cos = math.Round(sin*1e9)/1e9, math.Round(cos*1e9)/1e9

	hx := float64(b.Min.X) + float64(b.Dx())/2
	hy := float64(b.Min.Y) + float64(b.Dy())/2
	return f64.Aff3{
		k * cos, -k * sin, cx - k*(cos*hx-sin*hy),
		k * sin, k * cos, cy - k*(sin*hx+cos*hy),
	}
}

// Encode writes the canvas as a PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Render draws a scene onto a new canvas sized to fit it.
func Render(scene *render.Scene, sprites *render.Sprites, opts render.Options) *Canvas {
	w, h := scene.PixelSize(opts)
	c := NewCanvas(w, h)
	scene.Draw(c, sprites, opts)
	return c
}

// WritePNG renders a scene to a PNG file.
func WritePNG(path string, scene *render.Scene, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Render(scene, render.NewSprites(), opts).Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
