package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/roomtiler/internal/footprint"
)

var gatePieces = WallPieces{Left: 5, Right: 6, MiddleA: 7, MiddleB: 8, Short: 9, Single: 10}

func TestWallSectionsCorridor(t *testing.T) {
	fp := footprint.MustParse(footprint.Cell{X: 10, Y: 20}, "#", "#", "#", "#", "#")
	sections := WallSections(fp)
	require.Len(t, sections, 4)

	assert.Equal(t, footprint.North, sections[0].Facing)
	assert.Equal(t, []footprint.Cell{{X: 10, Y: 20}}, sections[0].Cells)

	assert.Equal(t, footprint.East, sections[1].Facing)
	assert.Equal(t, []footprint.Cell{{X: 10, Y: 20}, {X: 10, Y: 21}, {X: 10, Y: 22}, {X: 10, Y: 23}, {X: 10, Y: 24}}, sections[1].Cells)

	// West walls read left to right from inside the room: south to north.
	assert.Equal(t, footprint.West, sections[2].Facing)
	assert.Equal(t, []footprint.Cell{{X: 10, Y: 24}, {X: 10, Y: 23}, {X: 10, Y: 22}, {X: 10, Y: 21}, {X: 10, Y: 20}}, sections[2].Cells)

	assert.Equal(t, footprint.South, sections[3].Facing)
	assert.Equal(t, []footprint.Cell{{X: 10, Y: 24}}, sections[3].Cells)
}

func TestWallSectionsLShape(t *testing.T) {
	fp := parse(
		"#..",
		"###",
	)
	sections := WallSections(fp)

	got := map[footprint.Direction][]int{}
	for _, s := range sections {
		got[s.Facing] = append(got[s.Facing], s.Len())
	}
	assert.Equal(t, []int{1, 2}, got[footprint.North])
	assert.Equal(t, []int{1, 1}, got[footprint.East])
	assert.Equal(t, []int{3}, got[footprint.South])
	assert.Equal(t, []int{2}, got[footprint.West])

	// South walls read east to west.
	for _, s := range sections {
		if s.Facing == footprint.South {
			assert.Equal(t, []footprint.Cell{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}, s.Cells)
		}
	}
}

func TestSectionPiece(t *testing.T) {
	var got []int
	for i := 0; i < 6; i++ {
		got = append(got, SectionPiece(WallsThree, gatePieces, i, 6))
	}
	assert.Equal(t, []int{5, 7, 8, 7, 8, 6}, got)

	assert.Equal(t, 9, SectionPiece(WallsThree, gatePieces, 0, 1))
	assert.Equal(t, 5, SectionPiece(WallsThree, gatePieces, 0, 2))
	assert.Equal(t, 6, SectionPiece(WallsThree, gatePieces, 1, 2))
	assert.Equal(t, 10, SectionPiece(WallsSingle, gatePieces, 3, 6))
}

func TestWallPlacementsCorridor(t *testing.T) {
	fp := parse("#", "#", "#", "#", "#")
	e := mustEngine(t, Archetype{Floor: AlgorithmNone, Walls: WallsThree, WallPieces: gatePieces})
	l := mustLayout(t, e, fp)

	walls := l.ByLayer(LayerWall)
	require.Len(t, walls, 12)
	require.Len(t, l.Walls, 4)

	// End caps only at section endpoints, short pieces only on 1-cell runs.
	i := 0
	for _, s := range l.Walls {
		for j, cell := range s.Cells {
			p := walls[i]
			i++
			assert.Equal(t, cell, p.Cell)
			assert.Equal(t, Facing(s.Facing), p.Rotation)
			isEnd := j == 0 || j == len(s.Cells)-1
			switch p.Piece {
			case gatePieces.Left, gatePieces.Right:
				assert.True(t, isEnd && s.Len() > 1, "end cap in the middle of %v", s)
			case gatePieces.Short:
				assert.Equal(t, 1, s.Len())
			default:
				assert.False(t, isEnd, "middle piece at an end of %v", s)
			}
		}
	}

	north := walls[0]
	assert.Equal(t, gatePieces.Short, north.Piece)
	assert.Equal(t, Vec3{Z: -0.5}, north.Offset)

	east := walls[1:6]
	assert.Equal(t, []int{5, 7, 8, 7, 6}, []int{east[0].Piece, east[1].Piece, east[2].Piece, east[3].Piece, east[4].Piece})
	assert.Equal(t, Vec3{X: 0.5}, east[0].Offset)
	assert.Equal(t, Rot90, east[0].Rotation)
}

func TestWallPlacementsSingle(t *testing.T) {
	e := mustEngine(t, Archetype{Floor: AlgorithmQuad, Walls: WallsSingle, WallPieces: gatePieces})
	l := mustLayout(t, e, parse("###", "###"))

	assert.Equal(t, 10, l.Count(LayerWall, gatePieces.Single))
	assert.Len(t, l.ByLayer(LayerWall), 10)
	assert.Len(t, l.ByLayer(LayerFloor), 6*4)
}

func TestCutDoor(t *testing.T) {
	fp := parse("#####", "#####", "#####")
	door, ok := FindDoor(fp)
	require.True(t, ok)
	require.Equal(t, Door{Cell: footprint.Cell{X: 1, Y: 0}, Facing: footprint.North}, door)

	sections := CutDoor(WallSections(fp), door)
	require.Len(t, sections, 5)
	assert.Equal(t, WallSection{Facing: footprint.North, Cells: []footprint.Cell{{X: 0, Y: 0}}}, sections[0])
	assert.Equal(t, WallSection{Facing: footprint.North, Cells: []footprint.Cell{{X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}}, sections[1])

	// Other facings through the door cell are untouched.
	side := CutDoor(WallSections(fp), Door{Cell: footprint.Cell{X: 1, Y: 0}, Facing: footprint.West})
	assert.Equal(t, WallSections(fp), side)
}

func TestWallsSkipDoorCell(t *testing.T) {
	e := mustEngine(t, Archetype{
		Floor:      AlgorithmQuad,
		Walls:      WallsThree,
		WallPieces: gatePieces,
		Door:       DoorDetect,
		DoorPiece:  11,
	})

	l := mustLayout(t, e, parse("#####", "#####", "#####"))
	require.NotNil(t, l.Door)
	north := map[footprint.Cell]int{}
	for _, p := range l.ByLayer(LayerWall) {
		if p.Rotation == Rot0 {
			north[p.Cell] = p.Piece
		}
	}
	// The door splits the north wall into a short piece and a three-cell run.
	assert.Equal(t, map[footprint.Cell]int{
		{X: 0, Y: 0}: gatePieces.Short,
		{X: 2, Y: 0}: gatePieces.Left,
		{X: 3, Y: 0}: gatePieces.MiddleA,
		{X: 4, Y: 0}: gatePieces.Right,
	}, north)

	for _, rows := range [][]string{
		{"###", "###", "###"},
		{"#####", "#####", "#####"},
		{"#..", "#..", "###", "###"},
		keyhole,
	} {
		l := mustLayout(t, e, parse(rows...))
		require.NotNil(t, l.Door, "%v", rows)
		for _, p := range l.ByLayer(LayerWall) {
			overlaps := p.Cell == l.Door.Cell && p.Rotation == Facing(l.Door.Facing)
			assert.False(t, overlaps, "%v: wall piece %d covers the door at %v", rows, p.Piece, p.Cell)
		}
		for _, s := range l.Walls {
			if s.Facing == l.Door.Facing {
				assert.NotContains(t, s.Cells, l.Door.Cell, "%v", rows)
			}
		}
	}
}
