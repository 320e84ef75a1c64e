package layout

import (
	"encoding/json"
	"fmt"
	"math"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// Rotation is a quarter-turn rotation about the vertical axis, clockwise when
// viewed from above. Piece art is authored facing north at Rot0.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Rotations lists all rotations in ascending order.
var Rotations = [4]Rotation{Rot0, Rot90, Rot180, Rot270}

// Facing returns the rotation that turns north-facing art toward d.
func Facing(d footprint.Direction) Rotation {
	return Rotation(d & 3)
}

// Add composes two rotations.
func (r Rotation) Add(o Rotation) Rotation {
	return (r + o) & 3
}

// Degrees returns the rotation in degrees: 0, 90, 180 or 270.
func (r Rotation) Degrees() int {
	return int(r&3) * 90
}

// Radians returns the clockwise rotation angle in radians.
func (r Rotation) Radians() float64 {
	return float64(r&3) * math.Pi / 2
}

// Direction returns the direction north-facing art faces after rotation.
func (r Rotation) Direction() footprint.Direction {
	return footprint.Direction(r & 3)
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// RotationFromDegrees converts 0, 90, 180 or 270 (or any multiple of 90,
// including negatives) to a Rotation.
func RotationFromDegrees(deg int) (Rotation, error) {
	if deg%90 != 0 {
		return Rot0, fmt.Errorf("rotation %d is not a multiple of 90 degrees", deg)
	}
	q := (deg / 90) % 4
	if q < 0 {
		q += 4
	}
	return Rotation(q), nil
}

// MarshalJSON encodes the rotation as degrees.
func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Degrees())
}

// UnmarshalJSON decodes a rotation given in degrees.
func (r *Rotation) UnmarshalJSON(data []byte) error {
	var deg int
	if err := json.Unmarshal(data, &deg); err != nil {
		return err
	}
	rot, err := RotationFromDegrees(deg)
	if err != nil {
		return err
	}
	*r = rot
	return nil
}

// Quadrant is one of the four quarter-tile sub-cells of a cell. Quadrants are
// numbered clockwise from north-west so a quadrant's value is also its base
// rotation.
type Quadrant uint8

const (
	NW Quadrant = iota
	NE
	SE
	SW
)

// quadrantOrder is the emission order of quadrant pieces within a cell.
var quadrantOrder = [4]Quadrant{NW, NE, SW, SE}

var quadrantNames = [4]string{"NW", "NE", "SE", "SW"}

func (q Quadrant) String() string { return quadrantNames[q&3] }

// Base returns the rotation that turns north-west-authored corner art into
// this quadrant.
func (q Quadrant) Base() Rotation { return Rotation(q & 3) }

// Clockwise returns the next quadrant clockwise.
func (q Quadrant) Clockwise() Quadrant { return (q + 1) & 3 }

// CCW returns the counter-clockwise cardinal bordering the quadrant
// (west for NW).
func (q Quadrant) CCW() footprint.Direction {
	return footprint.Direction((q + 3) & 3)
}

// CW returns the clockwise cardinal bordering the quadrant (north for NW).
func (q Quadrant) CW() footprint.Direction {
	return footprint.Direction(q & 3)
}

// Offset returns the quadrant centre relative to the cell centre.
func (q Quadrant) Offset() Vec3 {
	switch q & 3 {
	case NW:
		return Vec3{X: -quarter, Z: -quarter}
	case NE:
		return Vec3{X: quarter, Z: -quarter}
	case SE:
		return Vec3{X: quarter, Z: quarter}
	default:
		return Vec3{X: -quarter, Z: quarter}
	}
}

// QuadrantBetween returns the quadrant bordered by two adjacent cardinals.
func QuadrantBetween(a, b footprint.Direction) (Quadrant, bool) {
	for q := NW; q <= SW; q++ {
		if (q.CCW() == a && q.CW() == b) || (q.CCW() == b && q.CW() == a) {
			return q, true
		}
	}
	return NW, false
}

const (
	quarter = 0.25
	half    = 0.5
)
