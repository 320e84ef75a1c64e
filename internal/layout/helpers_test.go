package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// testCatalog maps indices 0..n-1 to "piece00".."piece<n-1>".
type testCatalog int

func (c testCatalog) Mesh(index int) (string, bool) {
	if index < 0 || index >= int(c) {
		return "", false
	}
	return fmt.Sprintf("piece%02d", index), true
}

func mustEngine(t *testing.T, arch Archetype) *Engine {
	t.Helper()
	if arch.Name == "" {
		arch.Name = "Test"
	}
	if arch.Catalog == nil {
		arch.Catalog = testCatalog(16)
	}
	e, err := New(arch)
	require.NoError(t, err)
	return e
}

func mustLayout(t *testing.T, e *Engine, fp *footprint.Footprint) *Layout {
	t.Helper()
	l, err := e.Layout(fp)
	require.NoError(t, err)
	return l
}

func parse(rows ...string) *footprint.Footprint {
	return footprint.MustParse(footprint.Cell{}, rows...)
}

// placementsAt returns the placements of a layer on one world cell.
func placementsAt(l *Layout, layer Layer, c footprint.Cell) []Placement {
	var out []Placement
	for _, p := range l.Placements {
		if p.Layer == layer && p.Cell == c {
			out = append(out, p)
		}
	}
	return out
}
