// Command gensprites writes a placeholder sprite for every piece of every
// archetype catalog, at the paths the catalogs name as resources.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/roomtiler/internal/archetype"
	"chosenoffset.com/roomtiler/internal/logging"
	"chosenoffset.com/roomtiler/internal/render"
	"chosenoffset.com/roomtiler/internal/render/raster"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit status so deferred log syncing runs first.
func realMain() int {
	var (
		archetypes = flag.String("archetypes", "", "archetype file (YAML or JSON); built-in archetypes when empty")
		outDir     = flag.String("out", "assets", "directory the sprites are written under")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	log, err := logging.New(logging.Config{Level: *logLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Sync()

	if err := generate(log, *archetypes, *outDir); err != nil {
		log.Error("sprite generation failed", zap.Error(err))
		return 1
	}
	return 0
}

func generate(log *zap.Logger, archetypePath, outDir string) error {
	var registry *archetype.Registry
	var err error
	if archetypePath == "" {
		registry, err = archetype.BuiltinRegistry()
	} else {
		registry, err = archetype.Open(archetypePath)
	}
	if err != nil {
		return err
	}

	sprites := render.NewSprites()
	total := 0
	for _, name := range registry.Names() {
		e, err := registry.Engine(name)
		if err != nil {
			return err
		}
		cat, _ := registry.Catalog(name)
		written, err := raster.WriteSprites(outDir, e.Archetype(), cat, sprites)
		if err != nil {
			return err
		}
		log.Debug("sprites written", zap.String("archetype", name), zap.Strings("files", written))
		total += len(written)
	}

	log.Info("placeholder sprites generated", zap.String("dir", outDir), zap.Int("files", total))
	return nil
}
