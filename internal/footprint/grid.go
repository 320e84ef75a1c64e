package footprint

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Manhattan returns the number of cardinal steps between two cells.
func (c Cell) Manhattan(o Cell) int {
	d := c.Sub(o)
	return Abs(d.X) + Abs(d.Y)
}

// Box is the bounding rectangle of the cells added to it. The zero Box is
// empty.
type Box struct {
	Min, Max Cell
	ok       bool
}

// Add grows the box to include c.
func (b *Box) Add(c Cell) {
	if !b.ok {
		b.Min, b.Max, b.ok = c, c, true
		return
	}
	b.Min = Cell{X: min(b.Min.X, c.X), Y: min(b.Min.Y, c.Y)}
	b.Max = Cell{X: max(b.Max.X, c.X), Y: max(b.Max.Y, c.Y)}
}

// Empty reports whether no cell was added.
func (b Box) Empty() bool { return !b.ok }

// Width returns the number of columns the box spans.
func (b Box) Width() int {
	if !b.ok {
		return 0
	}
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows the box spans.
func (b Box) Height() int {
	if !b.ok {
		return 0
	}
	return b.Max.Y - b.Min.Y + 1
}
