// Package layout selects, orients and positions the pre-authored mesh pieces
// that tile a room footprint.
//
// An Engine is built from one Archetype and is immutable afterwards; Layout
// is a pure function of the footprint and may be called from many
// goroutines at once.
package layout

import (
	"fmt"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// Engine lays out rooms of one archetype.
type Engine struct {
	arch Archetype
}

// New validates the archetype and returns an engine for it.
func New(arch Archetype) (*Engine, error) {
	arch = arch.withDefaults()
	if err := arch.Validate(); err != nil {
		return nil, err
	}
	return &Engine{arch: arch}, nil
}

// Archetype returns the engine's configuration with defaults applied.
func (e *Engine) Archetype() Archetype {
	return e.arch
}

// Layout computes the placements for one footprint. Floor pieces come first,
// followed by walls, pillars and the door. The door cell is left out of the
// wall section it sits in.
func (e *Engine) Layout(fp *footprint.Footprint) (*Layout, error) {
	out := &Layout{Archetype: e.arch.Name}
	if fp == nil || fp.IsEmpty() {
		return out, nil
	}

	b := &builder{arch: &e.arch, fp: fp, out: out}
	if e.arch.Door == DoorDetect {
		if door, ok := FindDoor(fp); ok {
			b.door = &door
		}
	}

	var err error
	switch e.arch.Floor {
	case AlgorithmQuad:
		err = b.quadFloor()
	case AlgorithmDoubleQuad:
		err = b.doubleQuadFloor()
	case AlgorithmThreeByThree:
		err = b.fixedFloor(threeByThree)
	case AlgorithmFiveByFiveRotated:
		err = b.fixedFloor(fiveByFive)
	}
	if err != nil {
		return nil, err
	}

	if e.arch.Walls != WallsNone {
		if err := b.walls(); err != nil {
			return nil, err
		}
	}

	if err := b.pillars(); err != nil {
		return nil, err
	}

	if err := b.doorway(); err != nil {
		return nil, err
	}

	return out, nil
}

// builder accumulates the placements of a single Layout call.
type builder struct {
	arch *Archetype
	fp   *footprint.Footprint
	out  *Layout
	door *Door // detected before walls are dressed
}

// emit appends a placement for local cell (x,y). Unknown pieces fail the room.
func (b *builder) emit(piece int, layer Layer, x, y int, rot Rotation, offset Vec3, extent float64) error {
	mesh, ok := b.arch.Catalog.Mesh(piece)
	if !ok {
		return fmt.Errorf("archetype %s: %s piece %d at %v: %w",
			b.arch.Name, layer, piece, b.fp.ToWorld(x, y), ErrUnknownPiece)
	}
	b.out.Placements = append(b.out.Placements, Placement{
		Piece:    piece,
		Mesh:     mesh,
		Layer:    layer,
		Cell:     b.fp.ToWorld(x, y),
		Rotation: rot,
		Offset:   offset,
		Extent:   extent,
	})
	return nil
}

// bigTiles is a per-call scratch matrix recording where big floor tiles went.
type bigTiles struct {
	width int
	cells []bool
}

func newBigTiles(fp *footprint.Footprint) *bigTiles {
	return &bigTiles{width: fp.Width(), cells: make([]bool, fp.Width()*fp.Height())}
}

func (t *bigTiles) has(x, y int) bool {
	if x < 0 || y < 0 || x >= t.width || y*t.width+x >= len(t.cells) {
		return false
	}
	return t.cells[y*t.width+x]
}

func (t *bigTiles) mark(x, y int) {
	t.cells[y*t.width+x] = true
}

// allows applies the big tile policy to a cell that qualifies for one.
func (t *bigTiles) allows(policy BigTilePolicy, x, y int) bool {
	switch policy {
	case BigTileNever:
		return false
	case BigTileStaggered:
		return !t.has(x-1, y-1) && !t.has(x+1, y-1) && !t.has(x-1, y+1) && !t.has(x+1, y+1)
	default:
		return true
	}
}
