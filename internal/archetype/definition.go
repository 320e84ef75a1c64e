// Package archetype provides room archetype configuration. Archetypes are
// loaded from data files so each map can define its own room types; piece
// slots are referenced by name and resolved against the archetype's catalog.
package archetype

import (
	"errors"
	"fmt"

	"chosenoffset.com/roomtiler/internal/catalog"
	"chosenoffset.com/roomtiler/internal/layout"
)

// ErrUnknownArchetype is returned when a room type has no archetype.
var ErrUnknownArchetype = errors.New("unknown archetype")

// WallSlots names the catalog pieces used to dress wall sections
type WallSlots struct {
	Left    string `json:"left,omitempty" yaml:"left,omitempty"`         // Left end-cap
	Right   string `json:"right,omitempty" yaml:"right,omitempty"`       // Right end-cap
	MiddleA string `json:"middle_a,omitempty" yaml:"middle_a,omitempty"` // Odd middle cells
	MiddleB string `json:"middle_b,omitempty" yaml:"middle_b,omitempty"` // Even middle cells
	Short   string `json:"short,omitempty" yaml:"short,omitempty"`       // One-cell sections
	Single  string `json:"single,omitempty" yaml:"single,omitempty"`     // Every cell with the single style
}

// Definition is the file form of one archetype
type Definition struct {
	Name    string `json:"name" yaml:"name"`
	Catalog string `json:"catalog,omitempty" yaml:"catalog,omitempty"` // Catalog archetype key, defaults to Name

	// Floor tiling
	Floor   layout.Algorithm     `json:"floor,omitempty" yaml:"floor,omitempty"`
	BigTile layout.BigTilePolicy `json:"big_tile,omitempty" yaml:"big_tile,omitempty"`

	// Pillars and centrepieces
	Pillars     layout.PillarStrategy `json:"pillars,omitempty" yaml:"pillars,omitempty"`
	Pillar      string                `json:"pillar,omitempty" yaml:"pillar,omitempty"`
	Centrepiece string                `json:"centrepiece,omitempty" yaml:"centrepiece,omitempty"`
	MinSquare   int                   `json:"min_square,omitempty" yaml:"min_square,omitempty"`

	// Walls
	Walls     layout.WallStyle `json:"walls,omitempty" yaml:"walls,omitempty"`
	WallSlots WallSlots        `json:"wall_pieces,omitempty" yaml:"wall_pieces,omitempty"`

	// Door
	Door      layout.DoorPolicy `json:"door,omitempty" yaml:"door,omitempty"`
	DoorPiece string            `json:"door_piece,omitempty" yaml:"door_piece,omitempty"`
}

// CatalogKey returns the name the archetype's catalog is registered under.
func (d *Definition) CatalogKey() string {
	if d.Catalog != "" {
		return d.Catalog
	}
	return d.Name
}

// Validate checks that every piece slot the strategies need is named
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: archetype name is required", layout.ErrInvalidArchetype)
	}
	if d.MinSquare < 0 {
		return fmt.Errorf("%w: archetype %s: min_square must not be negative", layout.ErrInvalidArchetype, d.Name)
	}

	for _, slot := range d.slots() {
		if slot.name == "" {
			return fmt.Errorf("%w: archetype %s: %s piece is required", layout.ErrInvalidArchetype, d.Name, slot.label)
		}
	}
	return nil
}

type slot struct {
	label string
	name  string
	dst   *int
}

// slotsInto lists the named pieces the configured strategies emit. Each dst
// points into a, or into scratch storage when a is nil.
func (d *Definition) slotsInto(a *layout.Archetype) []slot {
	var pillar, centre, door *int
	var w *layout.WallPieces
	if a != nil {
		pillar, centre, door, w = &a.PillarPiece, &a.CentrePiece, &a.DoorPiece, &a.WallPieces
	} else {
		pillar, centre, door, w = new(int), new(int), new(int), &layout.WallPieces{}
	}

	var out []slot
	switch d.Pillars {
	case layout.PillarsCornerLookahead, layout.PillarsCornerDirect:
		out = append(out, slot{"pillar", d.Pillar, pillar})
	case layout.PillarsLargestSquare:
		out = append(out, slot{"centrepiece", d.Centrepiece, centre})
	}
	switch d.Walls {
	case layout.WallsThree:
		out = append(out,
			slot{"wall left", d.WallSlots.Left, &w.Left},
			slot{"wall right", d.WallSlots.Right, &w.Right},
			slot{"wall middle A", d.WallSlots.MiddleA, &w.MiddleA},
			slot{"wall middle B", d.WallSlots.MiddleB, &w.MiddleB},
			slot{"wall short", d.WallSlots.Short, &w.Short},
		)
	case layout.WallsSingle:
		out = append(out, slot{"wall single", d.WallSlots.Single, &w.Single})
	}
	if d.Door == layout.DoorDetect {
		out = append(out, slot{"door", d.DoorPiece, door})
	}
	return out
}

func (d *Definition) slots() []slot { return d.slotsInto(nil) }

// Resolve turns the definition into an engine archetype, looking every named
// piece up in the catalog.
func (d *Definition) Resolve(cat *catalog.Catalog) (layout.Archetype, error) {
	if err := d.Validate(); err != nil {
		return layout.Archetype{}, err
	}

	a := layout.Archetype{
		Name:      d.Name,
		Catalog:   cat,
		Floor:     d.Floor,
		BigTile:   d.BigTile,
		Pillars:   d.Pillars,
		MinSquare: d.MinSquare,
		Walls:     d.Walls,
		Door:      d.Door,
	}
	for _, s := range d.slotsInto(&a) {
		idx, err := cat.Index(s.name)
		if err != nil {
			return layout.Archetype{}, fmt.Errorf("archetype %s: %s: %w", d.Name, s.label, err)
		}
		*s.dst = idx
	}
	return a, nil
}
