// Package roombuilder runs the layout engine over the rooms of a map.
package roombuilder

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/roomtiler/internal/archetype"
	"chosenoffset.com/roomtiler/internal/layout"
	"chosenoffset.com/roomtiler/internal/maploader"
)

// Result is the outcome of building one room. A failed room carries its
// error and no layout; it does not stop the other rooms.
type Result struct {
	Room   maploader.Room
	Layout *layout.Layout
	Err    error
}

// Builder resolves each room's archetype and lays it out.
type Builder struct {
	registry *archetype.Registry
	log      *zap.Logger
	workers  int
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithWorkers bounds the number of rooms built at once. Values below one
// select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// New creates a builder over an archetype registry.
func New(registry *archetype.Registry, opts ...Option) *Builder {
	b := &Builder{registry: registry, log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	if b.workers < 1 {
		b.workers = runtime.GOMAXPROCS(0)
	}
	return b
}

// Build lays out a single room. Rooms that should have a door but have no
// matching wall are still laid out; the miss is logged as a warning.
func (b *Builder) Build(room maploader.Room) (*layout.Layout, error) {
	log := b.log.With(zap.Int("room", room.ID), zap.String("type", room.Type))

	e, err := b.registry.Engine(room.Type)
	if err != nil {
		log.Error("no archetype for room", zap.Error(err))
		return nil, err
	}

	l, err := e.Layout(room.Footprint)
	if err != nil {
		log.Error("layout failed", zap.Error(err))
		return nil, err
	}

	if e.Archetype().Door == layout.DoorDetect && l.Door == nil {
		log.Warn("room has no door position",
			zap.Stringer("start", room.Footprint.Start()),
			zap.Int("cells", room.Footprint.Count()))
	}
	log.Debug("room laid out",
		zap.Int("cells", room.Footprint.Count()),
		zap.Int("placements", len(l.Placements)),
		zap.Int("walls", len(l.Walls)))
	return l, nil
}

// BuildAll lays out rooms concurrently and returns one result per room in
// input order. The returned error is only set when ctx is cancelled.
func (b *Builder) BuildAll(ctx context.Context, rooms []maploader.Room) ([]Result, error) {
	results := make([]Result, len(rooms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, room := range rooms {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := b.Build(room)
			results[i] = Result{Room: room, Layout: l, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	b.log.Info("rooms built", zap.Int("rooms", len(rooms)), zap.Int("failed", failed))
	return results, nil
}
