package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// Door is a door aperture on the room perimeter.
type Door struct {
	Cell   footprint.Cell      `json:"cell"` // world coordinates
	Facing footprint.Direction `json:"facing"`
}

// Outside returns the world cell just beyond the door.
func (d Door) Outside() footprint.Cell {
	return d.Cell.Add(d.Facing.Delta())
}

// doorSignature reports whether the neighbor flags match a straight wall
// with the cell in the middle of it facing d: the cardinal toward d and both
// diagonals beside it are empty, every other neighbor is occupied. For north
// this is !N && !NE && E && SE && S && SW && W && !NW.
func doorSignature(n footprint.Neighbors, d footprint.Direction) bool {
	left, right := d.CounterClockwise(), d.Clockwise()
	back := d.Opposite()
	return !n.Cardinal(d) &&
		!n.Diagonal(d) && !n.Diagonal(left) &&
		n.Cardinal(left) && n.Cardinal(right) && n.Cardinal(back) &&
		n.Diagonal(right) && n.Diagonal(back)
}

// DoorCandidates returns every cell matching the door signature, in
// row-major order and north, east, south, west within a cell.
func DoorCandidates(fp *footprint.Footprint) []Door {
	var doors []Door
	for _, c := range fp.Cells() {
		n := fp.Neighbors(c.X, c.Y)
		for _, d := range footprint.Directions {
			if doorSignature(n, d) {
				doors = append(doors, Door{Cell: fp.ToWorld(c.X, c.Y), Facing: d})
			}
		}
	}
	return doors
}

// FindDoor returns the first door candidate.
func FindDoor(fp *footprint.Footprint) (Door, bool) {
	doors := DoorCandidates(fp)
	if len(doors) == 0 {
		return Door{}, false
	}
	return doors[0], true
}

func (b *builder) doorway() error {
	if b.door == nil {
		return nil
	}
	door := *b.door
	b.out.Door = &door

	d := door.Facing.Delta()
	local := door.Cell.Sub(b.fp.Start())
	offset := Vec3{X: half * float64(d.X), Z: half * float64(d.Y)}
	return b.emit(b.arch.DoorPiece, LayerDoor, local.X, local.Y, Facing(door.Facing), offset, 1)
}
