package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fp, err := Parse(Cell{X: 10, Y: 20},
		"##.",
		".#",
	)
	require.NoError(t, err)

	assert.Equal(t, Cell{X: 10, Y: 20}, fp.Start())
	assert.Equal(t, 3, fp.Width())
	assert.Equal(t, 2, fp.Height())
	assert.Equal(t, 3, fp.Count())
	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}}, fp.Cells())
	assert.Equal(t, []Cell{{10, 20}, {11, 20}, {11, 21}}, fp.WorldCells())
	assert.Equal(t, "##.\n.#.", fp.String())

	_, err = Parse(Cell{}, "#?#")
	assert.Error(t, err)

	empty, err := Parse(Cell{}, "...")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFromCells(t *testing.T) {
	fp := FromCells(Cell{5, 5}, Cell{7, 6}, Cell{5, 5})

	assert.Equal(t, Cell{5, 5}, fp.Start())
	assert.Equal(t, 3, fp.Width())
	assert.Equal(t, 2, fp.Height())
	assert.Equal(t, 2, fp.Count())
	assert.True(t, fp.OccupiedWorld(Cell{7, 6}))
	assert.False(t, fp.OccupiedWorld(Cell{6, 6}))

	assert.True(t, FromCells().IsEmpty())
}

func TestOccupiedOutOfBounds(t *testing.T) {
	fp := MustParse(Cell{}, "#")

	for _, c := range []Cell{{-1, 0}, {0, -1}, {1, 0}, {0, 1}, {-100, 100}} {
		assert.False(t, fp.Occupied(c.X, c.Y), "cell %v", c)
	}
	assert.False(t, Empty.Occupied(0, 0))
}

func TestOccupiedIsPure(t *testing.T) {
	fp := MustParse(Cell{},
		"##",
		"#.",
	)
	before := fp.String()
	for y := -1; y <= 2; y++ {
		for x := -1; x <= 2; x++ {
			first := fp.Occupied(x, y)
			assert.Equal(t, first, fp.Occupied(x, y))
			assert.Equal(t, fp.Neighbors(x, y), fp.Neighbors(x, y))
		}
	}
	assert.Equal(t, before, fp.String())
}

func TestNeighbors(t *testing.T) {
	fp := MustParse(Cell{},
		"#.#",
		".##",
		"#..",
	)

	n := fp.Neighbors(1, 1)
	assert.Equal(t, Neighbors{N: false, NE: true, E: true, SE: false, S: false, SW: true, W: false, NW: true}, n)
	assert.Equal(t, []Direction{North, South, West}, n.FreeCardinals())
	assert.True(t, n.Diagonal(North))
	assert.False(t, n.Diagonal(East))
	assert.True(t, n.Diagonal(South))
	assert.True(t, n.Diagonal(West))

	corner := fp.Neighbors(0, 0)
	assert.False(t, corner.N)
	assert.False(t, corner.W)
	assert.False(t, corner.NW)
}

func TestInside(t *testing.T) {
	fp := MustParse(Cell{},
		"####",
		"####",
		"####",
	)
	assert.True(t, fp.Inside(1, 1))
	assert.True(t, fp.Inside(2, 1))
	assert.False(t, fp.Inside(0, 1))
	assert.False(t, fp.Inside(1, 0))
	assert.False(t, fp.Inside(5, 5))
}

func TestRotate90(t *testing.T) {
	fp := MustParse(Cell{3, 4},
		"##",
		"#.",
		"#.",
	)
	r := fp.Rotate90()

	assert.Equal(t, Cell{3, 4}, r.Start())
	assert.Equal(t, "###\n..#", r.String())
	assert.Equal(t, fp.Count(), r.Count())

	full := fp.Rotate90().Rotate90().Rotate90().Rotate90()
	assert.Equal(t, fp.String(), full.String())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, East, North.Clockwise())
	assert.Equal(t, West, North.CounterClockwise())
	assert.Equal(t, Cell{0, -1}, North.Delta())
	assert.Equal(t, "west", West.String())

	d, ok := ParseDirection("south")
	assert.True(t, ok)
	assert.Equal(t, South, d)
	_, ok = ParseDirection("up")
	assert.False(t, ok)
}

func TestComponents(t *testing.T) {
	cells := []Cell{
		{0, 0}, {1, 0},
		{5, 0},
		{1, 1},
		{5, 1}, {5, 2},
		{3, 3}, {4, 4}, // diagonal cells are separate rooms
	}

	groups := Components(cells)
	require.Len(t, groups, 4)

	assert.Equal(t, []Cell{{0, 0}, {1, 0}, {1, 1}}, groups[0].WorldCells())
	assert.Equal(t, []Cell{{5, 0}, {5, 1}, {5, 2}}, groups[1].WorldCells())
	assert.Equal(t, []Cell{{3, 3}}, groups[2].WorldCells())
	assert.Equal(t, []Cell{{4, 4}}, groups[3].WorldCells())
}
