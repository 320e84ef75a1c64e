package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// PillarSpec is a pillar decision for one cell.
type PillarSpec struct {
	Cell     footprint.Cell // world coordinates
	Corner   Quadrant       // corner of the cell the pillar stands in
	Rotation Rotation       // faces diagonally into the two free directions
}

// cornerOf returns the quadrant between the free cardinals when exactly two
// adjacent cardinals are free.
func cornerOf(n footprint.Neighbors) (Quadrant, bool) {
	free := n.FreeCardinals()
	if len(free) != 2 {
		return NW, false
	}
	return QuadrantBetween(free[0], free[1])
}

// lookaheadClear reports whether the 3x3 block that has (x,y) as its corner
// and extends away from corner q is fully occupied.
func lookaheadClear(fp *footprint.Footprint, x, y int, q Quadrant) bool {
	// A free west side means the block extends east, a free north side
	// means it extends south.
	sx, sy := 1, 1
	if q == NE || q == SE {
		sx = -1
	}
	if q == SE || q == SW {
		sy = -1
	}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if !fp.Occupied(x+i*sx, y+j*sy) {
				return false
			}
		}
	}
	return true
}

// CornerPillars places one pillar on every cell whose free cardinals are
// exactly two adjacent directions. With lookahead set, the 3x3 block
// extending away from that corner must also be fully occupied; without it the
// corner test alone decides. The two variants give different results on
// narrow rooms and are kept as separate strategies.
func CornerPillars(fp *footprint.Footprint, lookahead bool) []PillarSpec {
	var pillars []PillarSpec
	for _, c := range fp.Cells() {
		q, ok := cornerOf(fp.Neighbors(c.X, c.Y))
		if !ok {
			continue
		}
		if lookahead && !lookaheadClear(fp, c.X, c.Y, q) {
			continue
		}
		pillars = append(pillars, PillarSpec{
			Cell:     fp.ToWorld(c.X, c.Y),
			Corner:   q,
			Rotation: q.Base(),
		})
	}
	return pillars
}

func (b *builder) pillars() error {
	switch b.arch.Pillars {
	case PillarsCornerLookahead, PillarsCornerDirect:
		start := b.fp.Start()
		for _, p := range CornerPillars(b.fp, b.arch.Pillars == PillarsCornerLookahead) {
			local := p.Cell.Sub(start)
			if err := b.emit(b.arch.PillarPiece, LayerPillar, local.X, local.Y, p.Rotation, p.Corner.Offset(), quarter); err != nil {
				return err
			}
		}
	case PillarsLargestSquare:
		sq, ok := LargestSquare(b.fp)
		if !ok || sq.Size < b.arch.MinSquare {
			return nil
		}
		cell, offset := sq.Centre()
		return b.emit(b.arch.CentrePiece, LayerOrnament, cell.X, cell.Y, Rot0, offset, float64(sq.Size))
	}
	return nil
}
