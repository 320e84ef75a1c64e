package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// WallSection is a maximal straight run of boundary cells facing the same
// way. Cells are in world coordinates, ordered left to right as seen from
// inside the room looking at the wall.
type WallSection struct {
	Facing footprint.Direction `json:"facing"`
	Cells  []footprint.Cell    `json:"cells"`
}

// Len returns the number of cells in the section.
func (s WallSection) Len() int { return len(s.Cells) }

// WallSections groups the footprint boundary into sections. Sections are
// ordered by their first cell in row-major order, facings north, east,
// south, west within a cell.
func WallSections(fp *footprint.Footprint) []WallSection {
	var sections []WallSection
	for _, c := range fp.Cells() {
		for _, facing := range footprint.Directions {
			if !faces(fp, c, facing) {
				continue
			}

			// Runs along x for north/south walls and along y for east/west
			// walls; only start at the row-major first cell of a run.
			step := footprint.Cell{X: 1}
			if facing == footprint.East || facing == footprint.West {
				step = footprint.Cell{Y: 1}
			}
			if faces(fp, c.Sub(step), facing) {
				continue
			}

			var cells []footprint.Cell
			for cur := c; faces(fp, cur, facing); cur = cur.Add(step) {
				cells = append(cells, fp.ToWorld(cur.X, cur.Y))
			}
			if facing == footprint.South || facing == footprint.West {
				reverse(cells)
			}
			sections = append(sections, WallSection{Facing: facing, Cells: cells})
		}
	}
	return sections
}

// faces reports whether local cell c is occupied and has no neighbor toward
// facing.
func faces(fp *footprint.Footprint, c footprint.Cell, facing footprint.Direction) bool {
	if !fp.Occupied(c.X, c.Y) {
		return false
	}
	n := c.Add(facing.Delta())
	return !fp.Occupied(n.X, n.Y)
}

func reverse(cells []footprint.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

// SectionPiece picks the wall piece for position i of a section of length n.
func SectionPiece(style WallStyle, pieces WallPieces, i, n int) int {
	if style == WallsSingle {
		return pieces.Single
	}
	switch {
	case n == 1:
		return pieces.Short
	case i == 0:
		return pieces.Left
	case i == n-1:
		return pieces.Right
	case i%2 == 1:
		return pieces.MiddleA
	default:
		return pieces.MiddleB
	}
}

// CutDoor removes the door cell from the section that holds it and splits
// that section in two. End-caps and parity restart on each side.
func CutDoor(sections []WallSection, door Door) []WallSection {
	out := make([]WallSection, 0, len(sections)+1)
	for _, s := range sections {
		at := -1
		if s.Facing == door.Facing {
			for i, c := range s.Cells {
				if c == door.Cell {
					at = i
					break
				}
			}
		}
		if at < 0 {
			out = append(out, s)
			continue
		}
		if at > 0 {
			out = append(out, WallSection{Facing: s.Facing, Cells: s.Cells[:at:at]})
		}
		if at < len(s.Cells)-1 {
			out = append(out, WallSection{Facing: s.Facing, Cells: s.Cells[at+1:]})
		}
	}
	return out
}

func (b *builder) walls() error {
	sections := WallSections(b.fp)
	if b.door != nil {
		sections = CutDoor(sections, *b.door)
	}
	b.out.Walls = sections

	start := b.fp.Start()
	for _, s := range sections {
		d := s.Facing.Delta()
		offset := Vec3{X: half * float64(d.X), Z: half * float64(d.Y)}
		for i, cell := range s.Cells {
			piece := SectionPiece(b.arch.Walls, b.arch.WallPieces, i, len(s.Cells))
			local := cell.Sub(start)
			if err := b.emit(piece, LayerWall, local.X, local.Y, Facing(s.Facing), offset, 1); err != nil {
				return err
			}
		}
	}
	return nil
}
