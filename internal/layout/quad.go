package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// Quad catalog indices.
const (
	QuadNotched  = 0 // both cardinals occupied, diagonal empty
	QuadEdge     = 1 // one cardinal occupied
	QuadIsolated = 2 // neither cardinal occupied
	QuadFull     = 3 // both cardinals and the diagonal occupied
	QuadInterior = 4 // whole-cell big tile
)

// QuadPiece selects the piece and rotation of one quadrant from the cell's
// neighbor flags.
func QuadPiece(n footprint.Neighbors, q Quadrant) (int, Rotation) {
	a := n.Cardinal(q.CCW())
	b := n.Cardinal(q.CW())
	d := n.Diagonal(q.CCW())

	switch {
	case a && b && d:
		return QuadFull, Rot0
	case a && b:
		return QuadNotched, q.Base()
	case a:
		return QuadEdge, Facing(q.CW())
	case b:
		return QuadEdge, Facing(q.CCW())
	default:
		return QuadIsolated, q.Base()
	}
}

func (b *builder) quadFloor() error {
	big := newBigTiles(b.fp)
	for _, c := range b.fp.Cells() {
		n := b.fp.Neighbors(c.X, c.Y)

		if n.All() && big.allows(b.arch.BigTile, c.X, c.Y) {
			big.mark(c.X, c.Y)
			if err := b.emit(QuadInterior, LayerFloor, c.X, c.Y, Rot0, Vec3{}, 1); err != nil {
				return err
			}
			continue
		}

		for _, q := range quadrantOrder {
			piece, rot := QuadPiece(n, q)
			if err := b.emit(piece, LayerFloor, c.X, c.Y, rot, q.Offset(), half); err != nil {
				return err
			}
		}
	}
	return nil
}
