package layout

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownPiece is returned when an archetype refers to a piece index
	// its catalog does not define.
	ErrUnknownPiece = errors.New("unknown piece")
	// ErrFootprintShape is returned when a fixed-shape algorithm receives a
	// footprint of the wrong shape.
	ErrFootprintShape = errors.New("footprint shape not supported")
	// ErrInvalidArchetype is returned for malformed archetype records.
	ErrInvalidArchetype = errors.New("invalid archetype")
)

// Catalog resolves piece indices to mesh names. Catalogs are read-only during
// layout and may be shared between engines.
type Catalog interface {
	Mesh(index int) (string, bool)
}

// Algorithm selects how the floor of a room is tiled.
type Algorithm string

const (
	AlgorithmNone              Algorithm = "none"
	AlgorithmQuad              Algorithm = "quad"
	AlgorithmDoubleQuad        Algorithm = "double-quad"
	AlgorithmThreeByThree      Algorithm = "three-by-three"
	AlgorithmFiveByFiveRotated Algorithm = "five-by-five-rotated"
)

// BigTilePolicy decides whether a fully surrounded cell is covered by one
// large interior piece instead of four quadrants.
type BigTilePolicy string

const (
	BigTileAlways BigTilePolicy = "always"
	BigTileNever  BigTilePolicy = "never"
	// BigTileStaggered never puts two big tiles diagonally adjacent.
	BigTileStaggered BigTilePolicy = "staggered"
)

// PillarStrategy selects the pillar placement algorithm.
type PillarStrategy string

const (
	PillarsNone            PillarStrategy = "none"
	PillarsCornerLookahead PillarStrategy = "corner-lookahead"
	PillarsCornerDirect    PillarStrategy = "corner-direct"
	PillarsLargestSquare   PillarStrategy = "largest-square"
)

// WallStyle selects how wall sections are dressed.
type WallStyle string

const (
	WallsNone   WallStyle = "none"
	WallsThree  WallStyle = "three"
	WallsSingle WallStyle = "single"
)

// DoorPolicy selects whether a door aperture is detected and dressed.
type DoorPolicy string

const (
	DoorNone   DoorPolicy = "none"
	DoorDetect DoorPolicy = "detect"
)

// DefaultMinSquare is the smallest square side that receives a centrepiece
// under PillarsLargestSquare.
const DefaultMinSquare = 5

// WallPieces names the catalog indices used to dress wall sections.
type WallPieces struct {
	Left    int `json:"left" yaml:"left"`
	Right   int `json:"right" yaml:"right"`
	MiddleA int `json:"middle_a" yaml:"middle_a"`
	MiddleB int `json:"middle_b" yaml:"middle_b"`
	Short   int `json:"short" yaml:"short"`
	Single  int `json:"single" yaml:"single"`
}

// Archetype is the full configuration of one room type.
type Archetype struct {
	Name    string
	Catalog Catalog

	Floor   Algorithm
	BigTile BigTilePolicy

	Pillars     PillarStrategy
	PillarPiece int
	CentrePiece int
	MinSquare   int

	Walls      WallStyle
	WallPieces WallPieces

	Door      DoorPolicy
	DoorPiece int
}

// withDefaults fills zero-valued enums with their defaults.
func (a Archetype) withDefaults() Archetype {
	if a.Floor == "" {
		a.Floor = AlgorithmQuad
	}
	if a.BigTile == "" {
		a.BigTile = BigTileAlways
	}
	if a.Pillars == "" {
		a.Pillars = PillarsNone
	}
	if a.MinSquare <= 0 {
		a.MinSquare = DefaultMinSquare
	}
	if a.Walls == "" {
		a.Walls = WallsNone
	}
	if a.Door == "" {
		a.Door = DoorNone
	}
	return a
}

// Validate checks that the archetype is well formed and that every piece it
// can emit exists in its catalog.
func (a Archetype) Validate() error {
	a = a.withDefaults()
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArchetype)
	}
	if a.Catalog == nil {
		return fmt.Errorf("%w: archetype %s has no catalog", ErrInvalidArchetype, a.Name)
	}

	switch a.Floor {
	case AlgorithmNone, AlgorithmQuad, AlgorithmDoubleQuad, AlgorithmThreeByThree, AlgorithmFiveByFiveRotated:
	default:
		return fmt.Errorf("%w: archetype %s: unknown floor algorithm %q", ErrInvalidArchetype, a.Name, a.Floor)
	}
	switch a.BigTile {
	case BigTileAlways, BigTileNever, BigTileStaggered:
	default:
		return fmt.Errorf("%w: archetype %s: unknown big tile policy %q", ErrInvalidArchetype, a.Name, a.BigTile)
	}
	switch a.Pillars {
	case PillarsNone, PillarsCornerLookahead, PillarsCornerDirect, PillarsLargestSquare:
	default:
		return fmt.Errorf("%w: archetype %s: unknown pillar strategy %q", ErrInvalidArchetype, a.Name, a.Pillars)
	}
	switch a.Walls {
	case WallsNone, WallsThree, WallsSingle:
	default:
		return fmt.Errorf("%w: archetype %s: unknown wall style %q", ErrInvalidArchetype, a.Name, a.Walls)
	}
	switch a.Door {
	case DoorNone, DoorDetect:
	default:
		return fmt.Errorf("%w: archetype %s: unknown door policy %q", ErrInvalidArchetype, a.Name, a.Door)
	}

	for _, idx := range a.RequiredPieces() {
		if _, ok := a.Catalog.Mesh(idx); !ok {
			return fmt.Errorf("archetype %s: piece %d: %w", a.Name, idx, ErrUnknownPiece)
		}
	}
	return nil
}

// RequiredPieces returns, in ascending order, every catalog index the
// archetype can emit.
func (a Archetype) RequiredPieces() []int {
	layers := a.PieceLayers()
	out := make([]int, 0, len(layers))
	for i := range layers {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// PieceLayers maps every catalog index the archetype can emit to the layer
// it is placed on. A piece reused across layers reports the later of floor,
// pillar, ornament, wall and door.
func (a Archetype) PieceLayers() map[int]Layer {
	a = a.withDefaults()
	layers := make(map[int]Layer)
	add := func(layer Layer, idx ...int) {
		for _, i := range idx {
			layers[i] = layer
		}
	}

	switch a.Floor {
	case AlgorithmQuad:
		add(LayerFloor, QuadNotched, QuadEdge, QuadIsolated, QuadFull)
		if a.BigTile != BigTileNever {
			add(LayerFloor, QuadInterior)
		}
	case AlgorithmDoubleQuad:
		for i := DQInterior; i <= DQIsolated; i++ {
			add(LayerFloor, i)
		}
		if a.BigTile != BigTileNever {
			add(LayerFloor, DQInteriorBig)
		}
	case AlgorithmThreeByThree:
		add(LayerFloor, threeByThree.pieces()...)
	case AlgorithmFiveByFiveRotated:
		add(LayerFloor, fiveByFive.pieces()...)
	}

	switch a.Pillars {
	case PillarsCornerLookahead, PillarsCornerDirect:
		add(LayerPillar, a.PillarPiece)
	case PillarsLargestSquare:
		add(LayerOrnament, a.CentrePiece)
	}

	switch a.Walls {
	case WallsThree:
		w := a.WallPieces
		add(LayerWall, w.Left, w.Right, w.MiddleA, w.MiddleB, w.Short)
	case WallsSingle:
		add(LayerWall, a.WallPieces.Single)
	}

	if a.Door == DoorDetect {
		add(LayerDoor, a.DoorPiece)
	}
	return layers
}
