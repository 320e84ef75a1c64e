package footprint

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Components splits a set of world coordinates into 4-connected groups, one
// footprint per room instance. Groups are ordered by their first cell in
// row-major order.
func Components(cells []Cell) []*Footprint {
	remaining := mapset.New[Cell]()
	for _, c := range cells {
		remaining.Put(c)
	}

	ordered := make([]Cell, 0, remaining.Size())
	remaining.Each(func(c Cell) {
		ordered = append(ordered, c)
	})
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y < ordered[j].Y
		}
		return ordered[i].X < ordered[j].X
	})

	visited := mapset.New[Cell]()
	var result []*Footprint
	for _, seed := range ordered {
		if visited.Has(seed) {
			continue
		}

		group := mapset.New[Cell]()
		queue := []Cell{seed}
		visited.Put(seed)
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			group.Put(current)

			for _, d := range Directions {
				n := current.Add(d.Delta())
				if remaining.Has(n) && !visited.Has(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
		result = append(result, FromSet(group))
	}
	return result
}
