package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// Access answers movement questions for a room with a single door: moving
// between two room cells or between two outside cells is unrestricted, but
// crossing the room boundary is only possible through the door.
type Access struct {
	fp   *footprint.Footprint
	door *Door
}

// NewAccess builds the accessibility rule. A nil door seals the room.
func NewAccess(fp *footprint.Footprint, door *Door) Access {
	return Access{fp: fp, door: door}
}

// Step reports whether a single cardinal step between two world cells is
// permitted. Diagonal or longer steps are never permitted.
func (a Access) Step(from, to footprint.Cell) bool {
	if from.Manhattan(to) != 1 {
		return from == to
	}

	fromIn := a.fp.OccupiedWorld(from)
	toIn := a.fp.OccupiedWorld(to)
	if fromIn == toIn {
		return true
	}
	if a.door == nil {
		return false
	}

	inner, outer := from, to
	if toIn {
		inner, outer = to, from
	}
	return inner == a.door.Cell && outer == a.door.Outside()
}

// Path reports whether every step of a path is permitted.
func (a Access) Path(cells []footprint.Cell) bool {
	for i := 1; i < len(cells); i++ {
		if !a.Step(cells[i-1], cells[i]) {
			return false
		}
	}
	return true
}
