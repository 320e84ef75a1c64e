// Package footprint models the set of grid cells a room instance occupies.
//
// A Footprint is an immutable occupancy matrix anchored at a world origin.
// Every lookup is bounds-checked: coordinates outside the matrix read as
// unoccupied, so callers never need to pad their grids.
package footprint

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Cell is a grid coordinate.
type Cell struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns the cell offset by another cell.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the cell minus another cell.
func (c Cell) Sub(o Cell) Cell {
	return Cell{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Footprint is an occupancy matrix plus the world origin of its (0,0) entry.
type Footprint struct {
	start  Cell
	width  int
	height int
	tiles  []bool // row-major [y*width+x]
	count  int
}

// Empty is a footprint with no cells.
var Empty = &Footprint{}

// FromCells builds a footprint from a list of world coordinates. Duplicates
// are ignored. The matrix is the tight bounding box of the cells.
func FromCells(cells ...Cell) *Footprint {
	set := mapset.New[Cell]()
	for _, c := range cells {
		set.Put(c)
	}
	return FromSet(set)
}

// FromSet builds a footprint from a set of world coordinates.
func FromSet(set mapset.Set[Cell]) *Footprint {
	if set.Size() == 0 {
		return Empty
	}

	var box Box
	set.Each(box.Add)

	fp := newMatrix(box.Min, box.Width(), box.Height())
	set.Each(func(c Cell) {
		fp.set(c.X-box.Min.X, c.Y-box.Min.Y)
	})
	return fp
}

// Parse builds a footprint from ASCII rows. '#', 'X' and 'x' mark occupied
// cells; '.' and ' ' mark empty ones. Short rows are padded with empty cells.
func Parse(start Cell, rows ...string) (*Footprint, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return Empty, nil
	}

	fp := newMatrix(start, width, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#', 'X', 'x':
				fp.set(x, y)
			case '.', ' ':
			default:
				return nil, fmt.Errorf("footprint row %d column %d: unexpected character %q", y, x, ch)
			}
		}
	}
	if fp.count == 0 {
		return Empty, nil
	}
	return fp, nil
}

// MustParse is Parse that panics on malformed input. Intended for tests and
// built-in fixtures.
func MustParse(start Cell, rows ...string) *Footprint {
	fp, err := Parse(start, rows...)
	if err != nil {
		panic(err)
	}
	return fp
}

func newMatrix(start Cell, width, height int) *Footprint {
	return &Footprint{
		start:  start,
		width:  width,
		height: height,
		tiles:  make([]bool, width*height),
	}
}

func (f *Footprint) set(x, y int) {
	i := y*f.width + x
	if !f.tiles[i] {
		f.tiles[i] = true
		f.count++
	}
}

// Start returns the world coordinate of local (0,0).
func (f *Footprint) Start() Cell { return f.start }

// Width returns the matrix width in cells.
func (f *Footprint) Width() int { return f.width }

// Height returns the matrix height in cells.
func (f *Footprint) Height() int { return f.height }

// Count returns the number of occupied cells.
func (f *Footprint) Count() int { return f.count }

// IsEmpty reports whether no cell is occupied.
func (f *Footprint) IsEmpty() bool { return f.count == 0 }

// Occupied reports whether the local cell (x,y) belongs to the room.
// Out-of-bounds coordinates are unoccupied.
func (f *Footprint) Occupied(x, y int) bool {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return false
	}
	return f.tiles[y*f.width+x]
}

// OccupiedWorld is Occupied for a world coordinate.
func (f *Footprint) OccupiedWorld(c Cell) bool {
	return f.Occupied(c.X-f.start.X, c.Y-f.start.Y)
}

// ToWorld converts a local coordinate to a world coordinate.
func (f *Footprint) ToWorld(x, y int) Cell {
	return Cell{X: f.start.X + x, Y: f.start.Y + y}
}

// Cells returns the occupied local coordinates in row-major order.
func (f *Footprint) Cells() []Cell {
	cells := make([]Cell, 0, f.count)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.tiles[y*f.width+x] {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// WorldCells returns the occupied world coordinates in row-major order.
func (f *Footprint) WorldCells() []Cell {
	cells := f.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(f.start)
	}
	return cells
}

// Rotate90 returns the footprint rotated a quarter turn clockwise about its
// origin. Local (x,y) maps to (height-1-y, x).
func (f *Footprint) Rotate90() *Footprint {
	if f.count == 0 {
		return Empty
	}
	r := newMatrix(f.start, f.height, f.width)
	for _, c := range f.Cells() {
		r.set(f.height-1-c.Y, c.X)
	}
	return r
}

// String renders the footprint as ASCII rows joined by newlines.
func (f *Footprint) String() string {
	var b strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			if f.Occupied(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
