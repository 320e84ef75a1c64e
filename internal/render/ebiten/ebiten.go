// Package ebiten implements render.Canvas with Ebiten and provides an
// interactive scene viewer.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/roomtiler/internal/footprint"
	"chosenoffset.com/roomtiler/internal/render"
)

// Canvas wraps an ebiten.Image to implement the render.Canvas interface.
type Canvas struct {
	img    *ebiten.Image
	cache  *SpriteCache
	ox, oy float64 // pan offset added to every sprite position
}

var _ render.Canvas = (*Canvas)(nil)

// NewCanvas wraps an existing ebiten.Image. Sprites are uploaded through
// cache, which may be shared between frames.
func NewCanvas(img *ebiten.Image, cache *SpriteCache) *Canvas {
	return &Canvas{img: img, cache: cache}
}

// Fill fills the entire image with the given color.
func (c *Canvas) Fill(clr color.Color) {
	c.img.Fill(clr)
}

// DrawSprite draws a sprite scaled, rotated about its centre and moved to
// (cx, cy).
func (c *Canvas) DrawSprite(sprite image.Image, cx, cy, size, angle float64) {
	b := sprite.Bounds()
	if b.Empty() || size <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = spriteGeoM(b, cx+c.ox, cy+c.oy, size, angle)
	c.img.DrawImage(c.cache.Image(sprite), opts)
}

// spriteGeoM centres the sprite on the origin, scales it to size, rotates it
// clockwise and moves it to (cx, cy).
func spriteGeoM(b image.Rectangle, cx, cy, size, angle float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	k := size / float64(b.Dx())
	g.Scale(k, k)
	g.Rotate(angle)
	g.Translate(cx, cy)
	return g
}

// SpriteCache converts generated sprites to ebiten images once.
type SpriteCache struct {
	images map[image.Image]*ebiten.Image
}

// NewSpriteCache creates an empty cache.
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{images: make(map[image.Image]*ebiten.Image)}
}

// Image returns the ebiten image for a sprite.
func (s *SpriteCache) Image(sprite image.Image) *ebiten.Image {
	if img, ok := s.images[sprite]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(sprite)
	s.images[sprite] = img
	return img
}

// panSpeed is the pan distance per tick in pixels.
const panSpeed = 6

// Viewer shows a scene in a window. Arrow keys pan, +/- zoom and Escape
// quits.
type Viewer struct {
	scene   *render.Scene
	sprites *render.Sprites
	cache   *SpriteCache
	opts    render.Options
	panX    float64
	panY    float64
}

// NewViewer creates a viewer for a scene.
func NewViewer(scene *render.Scene, opts render.Options) *Viewer {
	return &Viewer{
		scene:   scene,
		sprites: render.NewSprites(),
		cache:   NewSpriteCache(),
		opts:    opts,
	}
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.panX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.panX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.panY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.panY -= panSpeed
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		v.opts.TileSize = zoom(v.opts.TileSize, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		v.opts.TileSize = zoom(v.opts.TileSize, -1)
	}
	return nil
}

// zoom steps the tile size by 8 pixels, keeping it between 8 and 128.
func zoom(tile, dir int) int {
	return footprint.Clamp(tile+8*dir, 8, 128)
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	c := NewCanvas(screen, v.cache)
	c.ox, c.oy = v.panX, v.panY
	v.scene.Draw(c, v.sprites, v.opts)
}

// Layout implements ebiten.Game.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window sized to the scene and blocks until it is closed.
func Run(title string, v *Viewer) error {
	w, h := v.scene.PixelSize(v.opts)
	ebiten.SetWindowSize(footprint.Clamp(w, 320, 1600), footprint.Clamp(h, 240, 1000))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}
