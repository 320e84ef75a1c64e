package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/roomtiler/internal/catalog"
	"chosenoffset.com/roomtiler/internal/layout"
	"chosenoffset.com/roomtiler/internal/render"
)

// SavePNG writes an image to a PNG file, creating missing directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// WriteSprites saves the placeholder sprite of every piece the archetype
// emits under dir, at the path named by the piece's catalog resource.
// Resources without an extension get ".png". It returns the files written.
func WriteSprites(dir string, arch layout.Archetype, cat *catalog.Catalog, sprites *render.Sprites) ([]string, error) {
	layers := arch.PieceLayers()
	var written []string
	for _, idx := range arch.RequiredPieces() {
		res, ok := cat.Resource(idx)
		if !ok {
			return written, fmt.Errorf("archetype %s: piece %d: %w", arch.Name, idx, layout.ErrUnknownPiece)
		}
		path := filepath.Join(dir, filepath.FromSlash(res))
		if filepath.Ext(path) == "" {
			path += ".png"
		}
		if err := SavePNG(sprites.Sprite(layers[idx], idx), path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
