// Command roomtiler lays out every room of a map and writes the placements
// as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"chosenoffset.com/roomtiler/internal/archetype"
	"chosenoffset.com/roomtiler/internal/footprint"
	"chosenoffset.com/roomtiler/internal/layout"
	"chosenoffset.com/roomtiler/internal/logging"
	"chosenoffset.com/roomtiler/internal/maploader"
	"chosenoffset.com/roomtiler/internal/render"
	"chosenoffset.com/roomtiler/internal/render/raster"
	"chosenoffset.com/roomtiler/internal/roombuilder"
)

type roomOutput struct {
	ID        int            `json:"id"`
	Type      string         `json:"type"`
	Start     footprint.Cell `json:"start"`
	Footprint []string       `json:"footprint"`
	Layout    *layout.Layout `json:"layout,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type output struct {
	Map   string       `json:"map"`
	Rooms []roomOutput `json:"rooms"`
}

type config struct {
	mapPath       string
	archetypePath string
	pngPath       string
	outPath       string
	workers       int
}

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status so deferred log syncing runs first.
func realMain() int {
	var cfg config
	flag.StringVar(&cfg.mapPath, "map", "", "map file (JSON), or a directory of map files")
	flag.StringVar(&cfg.archetypePath, "archetypes", "", "archetype file (YAML or JSON); built-in archetypes when empty")
	flag.StringVar(&cfg.pngPath, "png", "", "also draw the laid out rooms to this PNG file (a directory when -map is one)")
	flag.StringVar(&cfg.outPath, "out", "", "write placements to this file instead of stdout")
	flag.IntVar(&cfg.workers, "workers", 0, "rooms laid out at once (0 = GOMAXPROCS)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "log format: console or json")
	flag.Parse()

	log, err := logging.New(logging.Config{Level: *logLevel, Format: *logFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Sync()

	if cfg.mapPath == "" {
		fmt.Fprintln(os.Stderr, "usage: roomtiler -map map.json [-archetypes rooms.yaml] [-png out.png]")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed, err := run(ctx, log, cfg)
	if err != nil {
		log.Error("roomtiler failed", zap.Error(err))
		return 1
	}
	if failed > 0 {
		log.Warn("some rooms could not be laid out", zap.Int("failed", failed))
		return 1
	}
	return 0
}

func run(ctx context.Context, log *zap.Logger, cfg config) (int, error) {
	registry, err := openRegistry(cfg.archetypePath)
	if err != nil {
		return 0, err
	}
	log.Info("archetypes loaded", zap.Strings("names", registry.Names()))
	b := roombuilder.New(registry, roombuilder.WithLogger(log), roombuilder.WithWorkers(cfg.workers))

	info, err := os.Stat(cfg.mapPath)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		out, failed, err := tileMap(ctx, log, b, cfg.mapPath, cfg.pngPath)
		if err != nil {
			return failed, err
		}
		return failed, writeJSON(cfg.outPath, out)
	}

	paths, err := maploader.Scan(cfg.mapPath)
	if err != nil {
		return 0, err
	}
	outs := make([]output, 0, len(paths))
	failed := 0
	for _, path := range paths {
		pngPath := ""
		if cfg.pngPath != "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			pngPath = filepath.Join(cfg.pngPath, base+".png")
		}
		out, n, err := tileMap(ctx, log, b, path, pngPath)
		if err != nil {
			return failed, fmt.Errorf("%s: %w", path, err)
		}
		failed += n
		outs = append(outs, out)
	}
	return failed, writeJSON(cfg.outPath, outs)
}

// tileMap lays out one map and optionally draws it. It returns the number of
// rooms that could not be laid out.
func tileMap(ctx context.Context, log *zap.Logger, b *roombuilder.Builder, mapPath, pngPath string) (output, int, error) {
	m, err := maploader.LoadMap(mapPath)
	if err != nil {
		return output{}, 0, err
	}
	rooms := m.Rooms()
	log.Info("map loaded", zap.String("map", m.Data.Name), zap.Int("rooms", len(rooms)))

	results, err := b.BuildAll(ctx, rooms)
	if err != nil {
		return output{}, 0, err
	}

	out := output{Map: m.Data.Name, Rooms: make([]roomOutput, 0, len(results))}
	var layouts []*layout.Layout
	failed := 0
	for _, r := range results {
		ro := roomOutput{
			ID:        r.Room.ID,
			Type:      r.Room.Type,
			Start:     r.Room.Footprint.Start(),
			Footprint: strings.Split(r.Room.Footprint.String(), "\n"),
			Layout:    r.Layout,
		}
		if r.Err != nil {
			ro.Error = r.Err.Error()
			failed++
		} else {
			layouts = append(layouts, r.Layout)
		}
		out.Rooms = append(out.Rooms, ro)
	}

	if pngPath != "" {
		if err := os.MkdirAll(filepath.Dir(pngPath), 0755); err != nil {
			return out, failed, err
		}
		if err := raster.WritePNG(pngPath, render.NewScene(layouts...), render.DefaultOptions()); err != nil {
			return out, failed, err
		}
		log.Info("preview written", zap.String("path", pngPath))
	}
	return out, failed, nil
}

func openRegistry(path string) (*archetype.Registry, error) {
	if path == "" {
		return archetype.BuiltinRegistry()
	}
	return archetype.Open(path)
}

func writeJSON(path string, v any) error {
	if path == "" {
		return encodeJSON(os.Stdout, v)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encodeJSON(f, v); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
