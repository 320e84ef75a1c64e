package catalog

import (
	"fmt"
	"sort"
)

// Manager holds catalogs keyed by archetype, one catalog per archetype.
// Register every catalog before sharing the manager between goroutines.
type Manager struct {
	byArchetype map[string]*Catalog
}

// NewManager creates an empty catalog manager
func NewManager() *Manager {
	return &Manager{byArchetype: make(map[string]*Catalog)}
}

// LoadFile loads a catalog file and registers it
func (m *Manager) LoadFile(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	return m.Register(c)
}

// Register adds a catalog. Each archetype may have only one catalog.
func (m *Manager) Register(c *Catalog) error {
	if existing, exists := m.byArchetype[c.Archetype()]; exists {
		return fmt.Errorf("archetype %s already has a catalog registered (%d pieces)", c.Archetype(), existing.Len())
	}
	m.byArchetype[c.Archetype()] = c
	return nil
}

// Get returns the catalog for an archetype
func (m *Manager) Get(archetype string) (*Catalog, bool) {
	c, ok := m.byArchetype[archetype]
	return c, ok
}

// Archetypes returns the registered archetype names in sorted order.
func (m *Manager) Archetypes() []string {
	names := make([]string, 0, len(m.byArchetype))
	for name := range m.byArchetype {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
