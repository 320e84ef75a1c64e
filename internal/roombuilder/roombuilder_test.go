package roombuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chosenoffset.com/roomtiler/internal/archetype"
	"chosenoffset.com/roomtiler/internal/layout"
	"chosenoffset.com/roomtiler/internal/maploader"
)

const dungeon = `{
	"name": "dungeon",
	"width": 7,
	"height": 5,
	"tiles": [
		["Prison", "Prison", "Prison", ".", "Portal", "Portal", "Portal"],
		["Prison", "Prison", "Prison", ".", "Portal", "Portal", "Portal"],
		["Prison", "Prison", "Prison", ".", "Portal", "Portal", "Portal"],
		[".",      ".",      ".",      ".", ".",      ".",      "."],
		["Prison", "Prison", "Hatchery", ".", "Portal", "Portal", "."]
	]
}`

func setup(t *testing.T) (*archetype.Registry, []maploader.Room) {
	t.Helper()
	reg, err := archetype.BuiltinRegistry()
	require.NoError(t, err)
	m, err := maploader.Parse([]byte(dungeon))
	require.NoError(t, err)
	return reg, m.Rooms()
}

func TestBuild(t *testing.T) {
	reg, rooms := setup(t)
	core, logs := observer.New(zapcore.DebugLevel)
	b := New(reg, WithLogger(zap.New(core)))

	require.Equal(t, "Prison", rooms[0].Type)
	l, err := b.Build(rooms[0])
	require.NoError(t, err)
	require.NotNil(t, l.Door)
	assert.Equal(t, "Prison", l.Archetype)
	assert.Len(t, l.ByLayer(layout.LayerDoor), 1)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterMessage("room laid out").Len())
}

func TestBuildWarnsOnMissingDoor(t *testing.T) {
	reg, rooms := setup(t)
	core, logs := observer.New(zapcore.InfoLevel)
	b := New(reg, WithLogger(zap.New(core)))

	var corridor maploader.Room
	for _, r := range rooms {
		if r.Type == "Prison" && r.Footprint.Count() == 2 {
			corridor = r
		}
	}
	require.NotNil(t, corridor.Footprint)

	l, err := b.Build(corridor)
	require.NoError(t, err)
	assert.Nil(t, l.Door)
	assert.NotEmpty(t, l.ByLayer(layout.LayerFloor))

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "room has no door position", warnings[0].Message)
	assert.Equal(t, "Prison", warnings[0].ContextMap()["type"])
	assert.Equal(t, int64(2), warnings[0].ContextMap()["cells"])
}

func TestBuildAll(t *testing.T) {
	reg, rooms := setup(t)
	core, logs := observer.New(zapcore.InfoLevel)
	b := New(reg, WithLogger(zap.New(core)), WithWorkers(2))

	results, err := b.BuildAll(context.Background(), rooms)
	require.NoError(t, err)
	require.Len(t, results, len(rooms))

	byType := map[string][]Result{}
	for i, r := range results {
		assert.Equal(t, rooms[i].ID, r.Room.ID, "results keep input order")
		byType[r.Room.Type] = append(byType[r.Room.Type], r)
	}

	for _, r := range byType["Prison"] {
		assert.NoError(t, r.Err)
	}

	// A full 3x3 portal works; the 2-cell one has the wrong shape.
	require.Len(t, byType["Portal"], 2)
	assert.NoError(t, byType["Portal"][0].Err)
	assert.Len(t, byType["Portal"][0].Layout.Placements, 9)
	assert.True(t, errors.Is(byType["Portal"][1].Err, layout.ErrFootprintShape))
	assert.Nil(t, byType["Portal"][1].Layout)

	require.Len(t, byType["Hatchery"], 1)
	assert.True(t, errors.Is(byType["Hatchery"][0].Err, archetype.ErrUnknownArchetype))

	summary := logs.FilterMessage("rooms built").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(len(rooms)), summary[0].ContextMap()["rooms"])
	assert.Equal(t, int64(2), summary[0].ContextMap()["failed"])
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestBuildAllMatchesSequential(t *testing.T) {
	reg, rooms := setup(t)
	b := New(reg, WithWorkers(8))

	results, err := b.BuildAll(context.Background(), rooms)
	require.NoError(t, err)
	for i, r := range results {
		l, err := b.Build(rooms[i])
		assert.Equal(t, err, r.Err)
		assert.Equal(t, l, r.Layout)
	}
}

func TestBuildAllCancelled(t *testing.T) {
	reg, rooms := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(reg).BuildAll(ctx, rooms)
	assert.ErrorIs(t, err, context.Canceled)
}
