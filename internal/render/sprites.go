package render

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"

	"chosenoffset.com/roomtiler/internal/layout"
)

// SpriteSize is the edge length of generated sprites in pixels.
const SpriteSize = 32

// Palette defines the base color of each layer
var Palette = struct {
	Floor    color.RGBA
	Wall     color.RGBA
	Pillar   color.RGBA
	Door     color.RGBA
	Ornament color.RGBA

	Marker     color.RGBA
	Border     color.RGBA
	Background color.RGBA
}{
	Floor:    color.RGBA{80, 85, 95, 255},    // Medium gray-blue
	Wall:     color.RGBA{140, 145, 155, 255}, // Light gray-blue
	Pillar:   color.RGBA{200, 150, 0, 255},   // Gold
	Door:     color.RGBA{139, 90, 60, 255},   // Brown
	Ornament: color.RGBA{200, 0, 200, 255},   // Magenta

	Marker:     color.RGBA{0, 255, 100, 255}, // Bright green, marks the authored north edge
	Border:     color.RGBA{40, 40, 45, 255},   // Very dark gray
	Background: color.RGBA{20, 20, 24, 255},   // Near black
}

type spriteKey struct {
	layer layout.Layer
	piece int
}

// Sprites generates and caches one placeholder sprite per layer and piece.
// Every sprite is drawn facing north so rotations are visible. It is safe
// for concurrent use.
type Sprites struct {
	mu    sync.Mutex
	cache map[spriteKey]*image.RGBA
}

// NewSprites creates an empty sprite cache.
func NewSprites() *Sprites {
	return &Sprites{cache: make(map[spriteKey]*image.RGBA)}
}

// Sprite returns the sprite for a piece on a layer.
func (s *Sprites) Sprite(layer layout.Layer, piece int) image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := spriteKey{layer, piece}
	if img, ok := s.cache[key]; ok {
		return img
	}
	img := newSprite(layer, piece)
	s.cache[key] = img
	return img
}

func newSprite(layer layout.Layer, piece int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	fill := func(r image.Rectangle, c color.RGBA) {
		draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
	}

	switch layer {
	case layout.LayerWall, layout.LayerDoor:
		// A band across the middle lies on the cell edge once the sprite is
		// offset half a tile toward the wall's facing.
		base, band := Palette.Wall, SpriteSize/4
		if layer == layout.LayerDoor {
			base, band = Palette.Door, SpriteSize/3
		}
		top := (SpriteSize - band) / 2
		fill(image.Rect(0, top, SpriteSize, top+band), shade(base, piece))
		fill(image.Rect(SpriteSize/2-1, top, SpriteSize/2+1, top+band/2), Palette.Marker)

	case layout.LayerPillar:
		fill(img.Bounds(), shade(Palette.Pillar, piece))
		fill(image.Rect(0, 0, SpriteSize, SpriteSize/4), Palette.Marker)

	default:
		base := Palette.Floor
		if layer == layout.LayerOrnament {
			base = Palette.Ornament
		}
		fill(img.Bounds(), Palette.Border)
		fill(image.Rect(1, 1, SpriteSize-1, SpriteSize-1), shade(base, piece))
		fill(image.Rect(SpriteSize/4, 1, 3*SpriteSize/4, 1+SpriteSize/8), Palette.Marker)
	}
	return img
}

// shade lightens a color in steps by piece index so neighboring pieces are
// distinguishable.
func shade(c color.RGBA, piece int) color.RGBA {
	step := uint8((piece % 6) * 14)
	lift := func(v uint8) uint8 {
		if int(v)+int(step) > 255 {
			return 255
		}
		return v + step
	}
	return color.RGBA{lift(c.R), lift(c.G), lift(c.B), c.A}
}
