package layout

import (
	"fmt"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// Layer groups placements by what they represent.
type Layer uint8

const (
	LayerFloor Layer = iota
	LayerWall
	LayerPillar
	LayerDoor
	LayerOrnament
)

var layerNames = [...]string{"floor", "wall", "pillar", "door", "ornament"}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("layer(%d)", l)
}

// MarshalText encodes the layer by name.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a layer name.
func (l *Layer) UnmarshalText(text []byte) error {
	for i, name := range layerNames {
		if name == string(text) {
			*l = Layer(i)
			return nil
		}
	}
	return fmt.Errorf("unknown layer %q", text)
}

// Vec3 is an offset in tile units. X runs east, Z runs south (grid Y) and Y
// is vertical.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Placement is one piece to instantiate.
type Placement struct {
	Piece    int            `json:"piece"`
	Mesh     string         `json:"mesh"`
	Layer    Layer          `json:"layer"`
	Cell     footprint.Cell `json:"cell"`     // world coordinates
	Rotation Rotation       `json:"rotation"` // degrees in JSON
	Offset   Vec3           `json:"offset"`   // from the cell centre
	Extent   float64        `json:"extent"`   // edge length in tiles
}

// Layout is the result of laying out one room.
type Layout struct {
	Archetype  string        `json:"archetype"`
	Placements []Placement   `json:"placements"`
	Walls      []WallSection `json:"walls,omitempty"`
	Door       *Door         `json:"door,omitempty"`
}

// ByLayer returns the placements of one layer in layout order.
func (l *Layout) ByLayer(layer Layer) []Placement {
	var out []Placement
	for _, p := range l.Placements {
		if p.Layer == layer {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of placements using a piece on a layer.
func (l *Layout) Count(layer Layer, piece int) int {
	n := 0
	for _, p := range l.Placements {
		if p.Layer == layer && p.Piece == piece {
			n++
		}
	}
	return n
}
