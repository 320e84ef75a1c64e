// Package render draws room layouts as flat 2D debug images. It abstracts
// the underlying graphics backend so the same scene can be written to a PNG
// or shown in a window.
package render

import (
	"image"
	"image/color"

	"chosenoffset.com/roomtiler/internal/footprint"
	"chosenoffset.com/roomtiler/internal/layout"
)

// Canvas is a drawing surface provided by a backend.
type Canvas interface {
	// Fill fills the entire surface with the given color.
	Fill(clr color.Color)

	// DrawSprite draws a square sprite scaled to size pixels, rotated
	// clockwise by angle radians about its centre, with its centre at
	// (cx, cy).
	DrawSprite(sprite image.Image, cx, cy, size, angle float64)
}

// Options controls scene geometry.
type Options struct {
	TileSize   int // pixels per grid cell
	Padding    int // pixels around the scene
	Background color.Color
}

// DefaultOptions returns the options used by the tools.
func DefaultOptions() Options {
	return Options{
		TileSize:   32,
		Padding:    16,
		Background: Palette.Background,
	}
}

// Scene is a set of layouts drawn together, framed by the cells they use.
type Scene struct {
	Layouts []*layout.Layout
	Origin  footprint.Cell // top-left cell of the frame
	Width   int            // frame size in cells
	Height  int
}

// NewScene frames the layouts. Nil layouts are skipped.
func NewScene(layouts ...*layout.Layout) *Scene {
	s := &Scene{}
	var box footprint.Box
	for _, l := range layouts {
		if l == nil {
			continue
		}
		s.Layouts = append(s.Layouts, l)
		for _, p := range l.Placements {
			box.Add(p.Cell)
		}
	}
	if !box.Empty() {
		s.Origin = box.Min
		s.Width = box.Width()
		s.Height = box.Height()
	}
	return s
}

// PixelSize returns the surface size needed to draw the scene.
func (s *Scene) PixelSize(opts Options) (width, height int) {
	return s.Width*opts.TileSize + 2*opts.Padding, s.Height*opts.TileSize + 2*opts.Padding
}

// Point returns the pixel position of a placement's centre.
func (s *Scene) Point(p layout.Placement, opts Options) (x, y float64) {
	tile := float64(opts.TileSize)
	pad := float64(opts.Padding)
	x = pad + (float64(p.Cell.X-s.Origin.X)+0.5+p.Offset.X)*tile
	y = pad + (float64(p.Cell.Y-s.Origin.Y)+0.5+p.Offset.Z)*tile
	return x, y
}

// Draw paints the background and then every placement in layout order.
func (s *Scene) Draw(c Canvas, sprites *Sprites, opts Options) {
	if opts.Background != nil {
		c.Fill(opts.Background)
	}
	for _, l := range s.Layouts {
		for _, p := range l.Placements {
			x, y := s.Point(p, opts)
			size := p.Extent * float64(opts.TileSize)
			c.DrawSprite(sprites.Sprite(p.Layer, p.Piece), x, y, size, p.Rotation.Radians())
		}
	}
}
