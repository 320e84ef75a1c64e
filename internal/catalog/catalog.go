// Package catalog holds the per-archetype piece catalogs: ordered mappings
// from small integer indices to mesh names and the resources that back them.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"chosenoffset.com/roomtiler/internal/layout"
)

// ErrInvalidCatalog is returned for malformed catalog definitions.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Piece is a single catalog entry.
type Piece struct {
	Index    int    `json:"index" yaml:"index"`                           // Index referenced by the layout engine
	Name     string `json:"name" yaml:"name"`                             // Mesh name (e.g., "floor_quad_edge")
	Resource string `json:"resource,omitempty" yaml:"resource,omitempty"` // Asset path, optional
}

// Config is the file representation of a catalog
type Config struct {
	Archetype string  `json:"archetype" yaml:"archetype"`
	Pieces    []Piece `json:"pieces" yaml:"pieces"`
}

// Catalog is an immutable piece catalog for one archetype. It is safe for
// concurrent use.
type Catalog struct {
	archetype string
	pieces    []Piece // sorted by index
	byIndex   map[int]int
	byName    map[string]int
}

var _ layout.Catalog = (*Catalog)(nil)

// New builds a catalog from its pieces. Indices must be non-negative and
// unique; names must be non-empty and unique.
func New(archetype string, pieces []Piece) (*Catalog, error) {
	if archetype == "" {
		return nil, fmt.Errorf("%w: archetype is required", ErrInvalidCatalog)
	}

	sorted := make([]Piece, len(pieces))
	copy(sorted, pieces)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	c := &Catalog{
		archetype: archetype,
		pieces:    sorted,
		byIndex:   make(map[int]int, len(sorted)),
		byName:    make(map[string]int, len(sorted)),
	}
	for i, p := range sorted {
		if p.Index < 0 {
			return nil, fmt.Errorf("%w: %s: negative index %d", ErrInvalidCatalog, archetype, p.Index)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("%w: %s: piece %d has no name", ErrInvalidCatalog, archetype, p.Index)
		}
		if _, dup := c.byIndex[p.Index]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate index %d", ErrInvalidCatalog, archetype, p.Index)
		}
		if prev, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("%w: %s: name %q used by pieces %d and %d",
				ErrInvalidCatalog, archetype, p.Name, sorted[prev].Index, p.Index)
		}
		c.byIndex[p.Index] = i
		c.byName[p.Name] = i
	}
	return c, nil
}

// FromConfig builds a catalog from its file representation
func FromConfig(cfg Config) (*Catalog, error) {
	return New(cfg.Archetype, cfg.Pieces)
}

// Archetype returns the name of the archetype the catalog belongs to.
func (c *Catalog) Archetype() string { return c.archetype }

// Len returns the number of pieces.
func (c *Catalog) Len() int { return len(c.pieces) }

// Pieces returns a copy of the pieces in index order.
func (c *Catalog) Pieces() []Piece {
	out := make([]Piece, len(c.pieces))
	copy(out, c.pieces)
	return out
}

// Piece returns the piece at an index.
func (c *Catalog) Piece(index int) (Piece, bool) {
	i, ok := c.byIndex[index]
	if !ok {
		return Piece{}, false
	}
	return c.pieces[i], true
}

// Mesh returns the mesh name for an index.
func (c *Catalog) Mesh(index int) (string, bool) {
	p, ok := c.Piece(index)
	return p.Name, ok
}

// Resource returns the asset path for an index. Pieces without an explicit
// resource fall back to their name.
func (c *Catalog) Resource(index int) (string, bool) {
	p, ok := c.Piece(index)
	if !ok {
		return "", false
	}
	if p.Resource == "" {
		return p.Name, true
	}
	return p.Resource, true
}

// Index resolves a piece name to its index. Misses wrap
// layout.ErrUnknownPiece and list the closest names.
func (c *Catalog) Index(name string) (int, error) {
	if i, ok := c.byName[name]; ok {
		return c.pieces[i].Index, nil
	}

	names := make([]string, len(c.pieces))
	for i, p := range c.pieces {
		names[i] = p.Name
	}
	if near := Suggest(name, names); len(near) > 0 {
		return -1, fmt.Errorf("catalog %s: piece %q (did you mean %s?): %w",
			c.archetype, name, quoteJoin(near), layout.ErrUnknownPiece)
	}
	return -1, fmt.Errorf("catalog %s: piece %q: %w", c.archetype, name, layout.ErrUnknownPiece)
}

// Config returns the file representation of the catalog.
func (c *Catalog) Config() Config {
	return Config{Archetype: c.archetype, Pieces: c.Pieces()}
}

func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, " or ")
}
