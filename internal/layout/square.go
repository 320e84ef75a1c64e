package layout

import "chosenoffset.com/roomtiler/internal/footprint"

// Square is an axis-aligned square of occupied cells in local coordinates.
type Square struct {
	X, Y int // top-left cell
	Size int
}

// Centre returns the local cell holding the square's centre and the offset
// from that cell's centre. Even-sized squares centre on a cell corner.
func (s Square) Centre() (footprint.Cell, Vec3) {
	c := footprint.Cell{X: s.X + (s.Size-1)/2, Y: s.Y + (s.Size-1)/2}
	if s.Size%2 == 0 {
		return c, Vec3{X: half, Z: half}
	}
	return c, Vec3{}
}

// LargestSquare finds the largest fully occupied square with a dynamic
// programming scan. Ties go to the square whose bottom-right cell comes first
// in row-major order. It reports false for an empty footprint.
func LargestSquare(fp *footprint.Footprint) (Square, bool) {
	w, h := fp.Width(), fp.Height()
	if fp.IsEmpty() {
		return Square{}, false
	}

	prev := make([]int, w)
	cur := make([]int, w)
	best := Square{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !fp.Occupied(x, y) {
				cur[x] = 0
				continue
			}
			side := 1
			if x > 0 && y > 0 {
				side = 1 + min(prev[x], cur[x-1], prev[x-1])
			}
			cur[x] = side
			if side > best.Size {
				best = Square{X: x - side + 1, Y: y - side + 1, Size: side}
			}
		}
		prev, cur = cur, prev
	}
	return best, true
}
