package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/roomtiler/internal/footprint"
)

func TestThreeByThree(t *testing.T) {
	e := mustEngine(t, Archetype{Floor: AlgorithmThreeByThree})
	l := mustLayout(t, e, footprint.MustParse(footprint.Cell{X: 7, Y: 2}, "###", "###", "###"))
	require.Len(t, l.Placements, 9)

	want := []struct {
		piece int
		rot   Rotation
	}{
		{ThreeCorner, Rot0}, {ThreeEdge, Rot0}, {ThreeCorner, Rot90},
		{ThreeEdge, Rot270}, {ThreeCentre, Rot0}, {ThreeEdge, Rot90},
		{ThreeCorner, Rot270}, {ThreeEdge, Rot180}, {ThreeCorner, Rot180},
	}
	for i, p := range l.Placements {
		assert.Equal(t, want[i].piece, p.Piece, "placement %d", i)
		assert.Equal(t, want[i].rot, p.Rotation, "placement %d", i)
		assert.Equal(t, footprint.Cell{X: 7 + i%3, Y: 2 + i/3}, p.Cell)
		assert.Equal(t, 1.0, p.Extent)
	}
}

func TestFiveByFiveRotated(t *testing.T) {
	for _, tc := range []struct {
		x, y  int
		piece int
		rot   Rotation
	}{
		{0, 0, FiveOuterCorner, Rot0},
		{4, 0, FiveOuterCorner, Rot90},
		{4, 4, FiveOuterCorner, Rot180},
		{0, 4, FiveOuterCorner, Rot270},
		{2, 0, FiveOuterEdge, Rot0},
		{0, 2, FiveOuterEdge, Rot270},
		{1, 1, FiveInnerCorner, Rot0},
		{3, 3, FiveInnerCorner, Rot180},
		{2, 1, FiveInnerEdge, Rot0},
		{3, 2, FiveInnerEdge, Rot90},
		{2, 2, FiveCentre, Rot0},
	} {
		piece, rot := fiveByFive.piece(tc.x, tc.y)
		assert.Equal(t, tc.piece, piece, "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.rot, rot, "(%d,%d)", tc.x, tc.y)
	}

	e := mustEngine(t, Archetype{Floor: AlgorithmFiveByFiveRotated})
	l := mustLayout(t, e, parse("#####", "#####", "#####", "#####", "#####"))
	assert.Len(t, l.Placements, 25)
	assert.Equal(t, 1, l.Count(LayerFloor, FiveCentre))
	assert.Equal(t, 4, l.Count(LayerFloor, FiveOuterCorner))
	assert.Equal(t, 12, l.Count(LayerFloor, FiveOuterEdge))
	assert.Equal(t, 4, l.Count(LayerFloor, FiveInnerCorner))
	assert.Equal(t, 4, l.Count(LayerFloor, FiveInnerEdge))
}

func TestFixedShapeRejectsOtherFootprints(t *testing.T) {
	three := mustEngine(t, Archetype{Floor: AlgorithmThreeByThree})
	five := mustEngine(t, Archetype{Floor: AlgorithmFiveByFiveRotated})

	for _, tc := range []struct {
		name string
		e    *Engine
		rows []string
	}{
		{"too small", three, []string{"##", "##"}},
		{"holed", three, []string{"###", "#.#", "###"}},
		{"too wide", three, []string{"####", "####", "####"}},
		{"three for five", five, []string{"###", "###", "###"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.e.Layout(parse(tc.rows...))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFootprintShape))
		})
	}
}
