package archetype

import (
	"strings"

	"chosenoffset.com/roomtiler/internal/catalog"
	"chosenoffset.com/roomtiler/internal/layout"
)

// Standard slot piece names used by the built-in archetypes and by
// generated catalogs.
const (
	PiecePillar      = "pillar"
	PieceCentrepiece = "centrepiece"
	PieceDoor        = "door"
	PieceWallLeft    = "wall_left"
	PieceWallRight   = "wall_right"
	PieceWallMiddleA = "wall_middle_a"
	PieceWallMiddleB = "wall_middle_b"
	PieceWallShort   = "wall_short"
	PieceWallSingle  = "wall_single"
)

var threeWalls = WallSlots{
	Left:    PieceWallLeft,
	Right:   PieceWallRight,
	MiddleA: PieceWallMiddleA,
	MiddleB: PieceWallMiddleB,
	Short:   PieceWallShort,
}

// Builtin returns the standard room archetypes.
func Builtin() []Definition {
	return []Definition{
		{Name: "Normal", Floor: layout.AlgorithmQuad},
		{Name: "Lair", Floor: layout.AlgorithmDoubleQuad},
		{
			Name:    "Workshop",
			Floor:   layout.AlgorithmQuad,
			BigTile: layout.BigTileStaggered,
			Pillars: layout.PillarsCornerDirect,
			Pillar:  PiecePillar,
		},
		{
			Name:        "Temple",
			Floor:       layout.AlgorithmDoubleQuad,
			Pillars:     layout.PillarsLargestSquare,
			Centrepiece: PieceCentrepiece,
		},
		{
			Name:      "Prison",
			Floor:     layout.AlgorithmQuad,
			BigTile:   layout.BigTileNever,
			Walls:     layout.WallsThree,
			WallSlots: threeWalls,
			Door:      layout.DoorDetect,
			DoorPiece: PieceDoor,
		},
		{
			Name:      "CombatPit",
			Floor:     layout.AlgorithmDoubleQuad,
			Door:      layout.DoorDetect,
			DoorPiece: PieceDoor,
		},
		{
			Name:    "Library",
			Floor:   layout.AlgorithmQuad,
			Pillars: layout.PillarsCornerLookahead,
			Pillar:  PiecePillar,
		},
		{Name: "DungeonHeart", Floor: layout.AlgorithmFiveByFiveRotated},
		{Name: "Portal", Floor: layout.AlgorithmThreeByThree},
		{
			Name:      "HeroGate",
			Floor:     layout.AlgorithmQuad,
			BigTile:   layout.BigTileNever,
			Walls:     layout.WallsThree,
			WallSlots: threeWalls,
		},
		{Name: "WaterBed", Floor: layout.AlgorithmQuad, BigTile: layout.BigTileNever},
		{Name: "LavaBed", Floor: layout.AlgorithmQuad, BigTile: layout.BigTileNever},
	}
}

// floorPieceNames returns the catalog names of an algorithm's floor pieces,
// positioned at their fixed indices.
func floorPieceNames(alg layout.Algorithm) []string {
	switch alg {
	case layout.AlgorithmNone:
		return nil
	case layout.AlgorithmDoubleQuad:
		return []string{
			"dq_interior", "dq_straight_wall", "dq_t_junction_ccw", "dq_t_junction_cw",
			"dq_wall_side_ccw", "dq_wall_side_cw", "dq_diagonal_inside", "dq_concave_corner",
			"dq_convex_corner", "dq_edge", "dq_isolated", "dq_interior_big",
		}
	case layout.AlgorithmThreeByThree:
		return []string{"corner", "edge", "centre"}
	case layout.AlgorithmFiveByFiveRotated:
		return []string{"outer_corner", "outer_edge", "inner_corner", "inner_edge", "centre"}
	default:
		return []string{"quad_notched", "quad_edge", "quad_isolated", "quad_full", "quad_interior"}
	}
}

// DefaultCatalog generates a catalog for a definition: the floor pieces of
// its algorithm at their fixed indices, followed by each named slot piece in
// declaration order. Resources are "<archetype>/<piece>.png".
func DefaultCatalog(d Definition) (*catalog.Catalog, error) {
	dir := strings.ToLower(d.CatalogKey())

	var pieces []catalog.Piece
	seen := map[string]bool{}
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		pieces = append(pieces, catalog.Piece{
			Index:    len(pieces),
			Name:     name,
			Resource: dir + "/" + name + ".png",
		})
	}

	for _, name := range floorPieceNames(d.Floor) {
		add(name)
	}
	for _, s := range d.slots() {
		add(s.name)
	}
	return catalog.New(d.CatalogKey(), pieces)
}
