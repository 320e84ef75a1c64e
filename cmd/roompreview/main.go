// Command roompreview lays out the rooms of a map and shows them in a
// window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/roomtiler/internal/archetype"
	"chosenoffset.com/roomtiler/internal/layout"
	"chosenoffset.com/roomtiler/internal/logging"
	"chosenoffset.com/roomtiler/internal/maploader"
	"chosenoffset.com/roomtiler/internal/render"
	ebitenrender "chosenoffset.com/roomtiler/internal/render/ebiten"
	"chosenoffset.com/roomtiler/internal/roombuilder"
)

func main() {
	var (
		mapPath    = flag.String("map", "", "map file (JSON)")
		archetypes = flag.String("archetypes", "", "archetype file (YAML or JSON); built-in archetypes when empty")
		room       = flag.Int("room", -1, "show only the room with this id")
		tileSize   = flag.Int("tile", 32, "tile size in pixels")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log, err := logging.New(logging.Config{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "usage: roompreview -map map.json [-archetypes rooms.yaml] [-room id]")
		os.Exit(2)
	}

	scene, title, err := load(log, *mapPath, *archetypes, *room)
	if err != nil {
		log.Fatal("failed to lay out map", zap.Error(err))
	}

	opts := render.DefaultOptions()
	opts.TileSize = *tileSize
	log.Info("starting preview", zap.Int("layouts", len(scene.Layouts)))
	if err := ebitenrender.Run(title, ebitenrender.NewViewer(scene, opts)); err != nil {
		log.Fatal("preview failed", zap.Error(err))
	}
}

func load(log *zap.Logger, mapPath, archetypePath string, only int) (*render.Scene, string, error) {
	var registry *archetype.Registry
	var err error
	if archetypePath == "" {
		registry, err = archetype.BuiltinRegistry()
	} else {
		registry, err = archetype.Open(archetypePath)
	}
	if err != nil {
		return nil, "", err
	}

	m, err := maploader.LoadMap(mapPath)
	if err != nil {
		return nil, "", err
	}

	var rooms []maploader.Room
	for _, r := range m.Rooms() {
		if only < 0 || r.ID == only {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == 0 {
		return nil, "", fmt.Errorf("map %s has no room %d", m.Data.Name, only)
	}

	results, err := roombuilder.New(registry, roombuilder.WithLogger(log)).BuildAll(context.Background(), rooms)
	if err != nil {
		return nil, "", err
	}
	var layouts []*layout.Layout
	for _, r := range results {
		if r.Err == nil {
			layouts = append(layouts, r.Layout)
		}
	}

	title := "Room Tiler - " + m.Data.Name
	if only >= 0 {
		title = fmt.Sprintf("%s (room %d, %s)", title, only, rooms[0].Type)
	}
	return render.NewScene(layouts...), title, nil
}
