package footprint

import "fmt"

// Direction is one of the four cardinal directions. North is -Y.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinals in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

var directionDeltas = [4]Cell{
	North: {X: 0, Y: -1},
	East:  {X: 1, Y: 0},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
}

var directionNames = [4]string{"north", "east", "south", "west"}

// Delta returns the unit step toward the direction.
func (d Direction) Delta() Cell { return directionDeltas[d&3] }

// Opposite returns the direction rotated half a turn.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Clockwise returns the direction rotated a quarter turn clockwise.
func (d Direction) Clockwise() Direction { return (d + 1) & 3 }

// CounterClockwise returns the direction rotated a quarter turn counter-clockwise.
func (d Direction) CounterClockwise() Direction { return (d + 3) & 3 }

func (d Direction) String() string { return directionNames[d&3] }

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("invalid direction %q", text)
	}
	*d = parsed
	return nil
}

// ParseDirection parses "north", "east", "south" or "west".
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return North, false
}

// Neighbors holds the occupancy of the eight cells around a cell.
type Neighbors struct {
	N, NE, E, SE, S, SW, W, NW bool
}

// Neighbors evaluates the eight neighbor flags of local cell (x,y).
func (f *Footprint) Neighbors(x, y int) Neighbors {
	return Neighbors{
		N:  f.Occupied(x, y-1),
		NE: f.Occupied(x+1, y-1),
		E:  f.Occupied(x+1, y),
		SE: f.Occupied(x+1, y+1),
		S:  f.Occupied(x, y+1),
		SW: f.Occupied(x-1, y+1),
		W:  f.Occupied(x-1, y),
		NW: f.Occupied(x-1, y-1),
	}
}

// Cardinal returns the flag for a cardinal direction.
func (n Neighbors) Cardinal(d Direction) bool {
	switch d {
	case North:
		return n.N
	case East:
		return n.E
	case South:
		return n.S
	default:
		return n.W
	}
}

// Diagonal returns the flag for the diagonal between d and its clockwise
// neighbor, e.g. North gives NE and West gives NW.
func (n Neighbors) Diagonal(d Direction) bool {
	switch d {
	case North:
		return n.NE
	case East:
		return n.SE
	case South:
		return n.SW
	default:
		return n.NW
	}
}

// All reports whether all eight neighbors are occupied.
func (n Neighbors) All() bool {
	return n.N && n.NE && n.E && n.SE && n.S && n.SW && n.W && n.NW
}

// FreeCardinals returns the unoccupied cardinals in clockwise order.
func (n Neighbors) FreeCardinals() []Direction {
	var free []Direction
	for _, d := range Directions {
		if !n.Cardinal(d) {
			free = append(free, d)
		}
	}
	return free
}

// Inside reports whether local cell (x,y) is occupied and all eight of its
// neighbors are occupied as well.
func (f *Footprint) Inside(x, y int) bool {
	return f.Occupied(x, y) && f.Neighbors(x, y).All()
}
