// Package maploader reads dungeon maps whose tiles are room-type names and
// splits them into per-room footprints.
package maploader

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"chosenoffset.com/roomtiler/internal/footprint"
)

// Empty marks a tile that belongs to no room. An empty string works too.
const Empty = "."

// MapData represents the loaded map file
type MapData struct {
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  [][]string `json:"tiles"` // 2D array of room-type names [y][x]
}

// Room is one connected room instance of a single type.
type Room struct {
	ID        int                  `json:"id"` // position in row-major order of the first cell
	Type      string               `json:"type"`
	Footprint *footprint.Footprint `json:"-"`
}

// Map is a loaded map
type Map struct {
	Data *MapData
}

// LoadMap loads a map from a JSON file
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}
	return m, nil
}

// Parse decodes and validates a JSON map
func Parse(data []byte) (*Map, error) {
	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	if err := validateMapData(&mapData); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}
	return &Map{Data: &mapData}, nil
}

// validateMapData checks if the map data is valid
func validateMapData(data *MapData) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
	}

	return nil
}

// GetTileAt returns the room type at the given grid coordinates. Empty tiles
// return "".
func (m *Map) GetTileAt(x, y int) (string, error) {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return "", fmt.Errorf("coordinates out of bounds: (%d, %d)", x, y)
	}
	t := m.Data.Tiles[y][x]
	if t == Empty {
		return "", nil
	}
	return t, nil
}

// RoomTypes returns the distinct room types on the map in sorted order.
func (m *Map) RoomTypes() []string {
	seen := map[string]bool{}
	var types []string
	for _, row := range m.Data.Tiles {
		for _, t := range row {
			if t == "" || t == Empty || seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// Rooms splits the map into 4-connected room instances, one per group of
// same-typed tiles. Rooms are ordered by their first cell in row-major order
// and numbered from zero.
func (m *Map) Rooms() []Room {
	cellsByType := map[string][]footprint.Cell{}
	for y, row := range m.Data.Tiles {
		for x, t := range row {
			if t == "" || t == Empty {
				continue
			}
			cellsByType[t] = append(cellsByType[t], footprint.Cell{X: x, Y: y})
		}
	}

	var rooms []Room
	for t, cells := range cellsByType {
		for _, fp := range footprint.Components(cells) {
			rooms = append(rooms, Room{Type: t, Footprint: fp})
		}
	}

	sort.Slice(rooms, func(i, j int) bool {
		a, b := rooms[i].Footprint.WorldCells()[0], rooms[j].Footprint.WorldCells()[0]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	for i := range rooms {
		rooms[i].ID = i
	}
	return rooms
}
