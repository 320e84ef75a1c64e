package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// Double-quad catalog indices. These rooms have thick walls, so besides plain
// occupancy the selector looks at whether neighbors are themselves fully
// surrounded ("inside").
const (
	DQInterior       = 0  // both cardinals and the diagonal inside
	DQStraightWall   = 1  // both cardinals inside
	DQTJunctionCCW   = 2  // diagonal and counter-clockwise cardinal inside
	DQTJunctionCW    = 3  // diagonal and clockwise cardinal inside
	DQWallSideCCW    = 4  // only the counter-clockwise cardinal inside
	DQWallSideCW     = 5  // only the clockwise cardinal inside
	DQDiagonalInside = 6  // only the diagonal inside
	DQConcaveCorner  = 7  // cardinals and diagonal occupied, none inside
	DQConvexCorner   = 8  // cardinals occupied, diagonal empty
	DQEdge           = 9  // one cardinal occupied
	DQIsolated       = 10 // neither cardinal occupied
	DQInteriorBig    = 11 // whole-cell big tile, all eight neighbors inside
)

// tileState classifies a neighbor for the double-quad selector.
type tileState uint8

const (
	stateEmpty tileState = iota
	stateOccupied
	stateInside
)

func classify(fp *footprint.Footprint, x, y int) tileState {
	switch {
	case !fp.Occupied(x, y):
		return stateEmpty
	case fp.Inside(x, y):
		return stateInside
	default:
		return stateOccupied
	}
}

// DoubleQuadPiece selects the piece and rotation of quadrant q of local cell
// (x,y). Branches are evaluated in priority order.
func DoubleQuadPiece(fp *footprint.Footprint, x, y int, q Quadrant) (int, Rotation) {
	da, db := q.CCW().Delta(), q.CW().Delta()
	sa := classify(fp, x+da.X, y+da.Y)
	sb := classify(fp, x+db.X, y+db.Y)
	sd := classify(fp, x+da.X+db.X, y+da.Y+db.Y)

	ai, bi, di := sa == stateInside, sb == stateInside, sd == stateInside
	a, b, d := sa != stateEmpty, sb != stateEmpty, sd != stateEmpty

	switch {
	case ai && bi && di:
		return DQInterior, Rot0
	case ai && bi:
		return DQStraightWall, q.Base()
	case di && ai:
		return DQTJunctionCCW, q.Base()
	case di && bi:
		return DQTJunctionCW, q.Base()
	case ai:
		return DQWallSideCCW, q.Base()
	case bi:
		return DQWallSideCW, q.Base()
	case di:
		return DQDiagonalInside, q.Base()
	case a && b && d:
		return DQConcaveCorner, q.Base()
	case a && b:
		return DQConvexCorner, q.Base()
	case a:
		return DQEdge, Facing(q.CW())
	case b:
		return DQEdge, Facing(q.CCW())
	default:
		return DQIsolated, q.Base()
	}
}

// allInside reports whether all eight neighbors of (x,y) are inside cells.
func allInside(fp *footprint.Footprint, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !fp.Inside(x+dx, y+dy) {
				return false
			}
		}
	}
	return true
}

func (b *builder) doubleQuadFloor() error {
	big := newBigTiles(b.fp)
	for _, c := range b.fp.Cells() {
		if allInside(b.fp, c.X, c.Y) && big.allows(b.arch.BigTile, c.X, c.Y) {
			big.mark(c.X, c.Y)
			if err := b.emit(DQInteriorBig, LayerFloor, c.X, c.Y, Rot0, Vec3{}, 1); err != nil {
				return err
			}
			continue
		}

		for _, q := range quadrantOrder {
			piece, rot := DoubleQuadPiece(b.fp, c.X, c.Y, q)
			if err := b.emit(piece, LayerFloor, c.X, c.Y, rot, q.Offset(), half); err != nil {
				return err
			}
		}
	}
	return nil
}
