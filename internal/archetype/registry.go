package archetype

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/roomtiler/internal/catalog"
	"chosenoffset.com/roomtiler/internal/layout"
)

// File is an archetype configuration file. Catalog paths are relative to the
// file.
type File struct {
	Catalogs   []string     `json:"catalogs,omitempty" yaml:"catalogs,omitempty"`
	Archetypes []Definition `json:"archetypes" yaml:"archetypes"`
}

// LoadFile reads an archetype file in YAML (.yaml, .yml) or JSON (.json).
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetypes %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("unsupported archetype file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse archetypes %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, c := range f.Catalogs {
		if !filepath.IsAbs(c) {
			f.Catalogs[i] = filepath.Join(dir, c)
		}
	}
	return &f, nil
}

// Registry holds one validated engine per archetype. It is immutable and
// safe for concurrent use.
type Registry struct {
	engines  map[string]*layout.Engine
	catalogs map[string]*catalog.Catalog
	names    []string
}

// NewRegistry resolves definitions against the catalogs in m. A definition
// whose catalog is not registered gets a generated default catalog.
func NewRegistry(defs []Definition, m *catalog.Manager) (*Registry, error) {
	r := &Registry{
		engines:  make(map[string]*layout.Engine, len(defs)),
		catalogs: make(map[string]*catalog.Catalog, len(defs)),
	}
	for i := range defs {
		d := &defs[i]
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.engines[d.Name]; dup {
			return nil, fmt.Errorf("%w: archetype %s is defined twice", layout.ErrInvalidArchetype, d.Name)
		}

		cat, ok := m.Get(d.CatalogKey())
		if !ok {
			if d.Catalog != "" {
				return nil, fmt.Errorf("archetype %s: no catalog registered for %s", d.Name, d.Catalog)
			}
			var err error
			if cat, err = DefaultCatalog(*d); err != nil {
				return nil, fmt.Errorf("archetype %s: %w", d.Name, err)
			}
		}

		arch, err := d.Resolve(cat)
		if err != nil {
			return nil, err
		}
		e, err := layout.New(arch)
		if err != nil {
			return nil, err
		}
		r.engines[d.Name] = e
		r.catalogs[d.Name] = cat
		r.names = append(r.names, d.Name)
	}
	return r, nil
}

// Open loads an archetype file together with the catalogs it lists.
func Open(path string) (*Registry, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	m := catalog.NewManager()
	for _, c := range f.Catalogs {
		if err := m.LoadFile(c); err != nil {
			return nil, err
		}
	}
	return NewRegistry(f.Archetypes, m)
}

// BuiltinRegistry returns a registry of the built-in archetypes with
// generated catalogs.
func BuiltinRegistry() (*Registry, error) {
	return NewRegistry(Builtin(), catalog.NewManager())
}

// Names returns the archetype names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Engine returns the engine for a room type. Misses wrap ErrUnknownArchetype
// and list the closest names.
func (r *Registry) Engine(name string) (*layout.Engine, error) {
	if e, ok := r.engines[name]; ok {
		return e, nil
	}
	if near := catalog.Suggest(name, r.names); len(near) > 0 {
		return nil, fmt.Errorf("room type %q (did you mean %q?): %w", name, near[0], ErrUnknownArchetype)
	}
	return nil, fmt.Errorf("room type %q: %w", name, ErrUnknownArchetype)
}

// Catalog returns the catalog an archetype was resolved against.
func (r *Registry) Catalog(name string) (*catalog.Catalog, bool) {
	c, ok := r.catalogs[name]
	return c, ok
}
