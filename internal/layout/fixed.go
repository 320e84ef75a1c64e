package layout

import (
	"fmt"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// ringPieces are the corner and edge pieces of one concentric ring.
type ringPieces struct {
	Corner int
	Edge   int
}

// fixedSquare describes a floor made of a fixed square of concentric rings
// around a centre piece. Rings are listed from the outside in.
type fixedSquare struct {
	size   int
	rings  []ringPieces
	centre int
}

// Three-by-three catalog indices.
const (
	ThreeCorner = 0
	ThreeEdge   = 1
	ThreeCentre = 2
)

// Five-by-five catalog indices.
const (
	FiveOuterCorner = 0
	FiveOuterEdge   = 1
	FiveInnerCorner = 2
	FiveInnerEdge   = 3
	FiveCentre      = 4
)

var (
	threeByThree = fixedSquare{
		size:   3,
		rings:  []ringPieces{{Corner: ThreeCorner, Edge: ThreeEdge}},
		centre: ThreeCentre,
	}
	fiveByFive = fixedSquare{
		size: 5,
		rings: []ringPieces{
			{Corner: FiveOuterCorner, Edge: FiveOuterEdge},
			{Corner: FiveInnerCorner, Edge: FiveInnerEdge},
		},
		centre: FiveCentre,
	}
)

func (s fixedSquare) pieces() []int {
	out := make([]int, 0, len(s.rings)*2+1)
	for _, r := range s.rings {
		out = append(out, r.Corner, r.Edge)
	}
	return append(out, s.centre)
}

// piece returns the piece and rotation for local cell (x,y) of the square.
func (s fixedSquare) piece(x, y int) (int, Rotation) {
	mid := s.size / 2
	dx, dy := x-mid, y-mid
	ring := max(footprint.Abs(dx), footprint.Abs(dy))
	if ring == 0 {
		return s.centre, Rot0
	}
	pieces := s.rings[mid-ring]

	if footprint.Abs(dx) == ring && footprint.Abs(dy) == ring {
		switch {
		case dx < 0 && dy < 0:
			return pieces.Corner, NW.Base()
		case dx > 0 && dy < 0:
			return pieces.Corner, NE.Base()
		case dx > 0 && dy > 0:
			return pieces.Corner, SE.Base()
		default:
			return pieces.Corner, SW.Base()
		}
	}

	switch {
	case dy == -ring:
		return pieces.Edge, Facing(footprint.North)
	case dx == ring:
		return pieces.Edge, Facing(footprint.East)
	case dy == ring:
		return pieces.Edge, Facing(footprint.South)
	default:
		return pieces.Edge, Facing(footprint.West)
	}
}

func (b *builder) fixedFloor(s fixedSquare) error {
	fp := b.fp
	if fp.Width() != s.size || fp.Height() != s.size || fp.Count() != s.size*s.size {
		return fmt.Errorf("archetype %s needs a full %dx%d footprint, got %dx%d with %d cells: %w",
			b.arch.Name, s.size, s.size, fp.Width(), fp.Height(), fp.Count(), ErrFootprintShape)
	}

	for _, c := range fp.Cells() {
		piece, rot := s.piece(c.X, c.Y)
		if err := b.emit(piece, LayerFloor, c.X, c.Y, rot, Vec3{}, 1); err != nil {
			return err
		}
	}
	return nil
}
