package layout

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/roomtiler/internal/footprint"
)

func TestRotationFromDegrees(t *testing.T) {
	for deg, want := range map[int]Rotation{0: Rot0, 90: Rot90, 180: Rot180, 270: Rot270, 360: Rot0, -90: Rot270, 450: Rot90} {
		got, err := RotationFromDegrees(deg)
		require.NoError(t, err, "%d", deg)
		assert.Equal(t, want, got, "%d", deg)
	}

	_, err := RotationFromDegrees(45)
	assert.Error(t, err)
}

func TestRotationArithmetic(t *testing.T) {
	assert.Equal(t, Rot0, Rot270.Add(Rot90))
	assert.Equal(t, Rot90, Rot180.Add(Rot180).Add(Rot90))
	assert.Equal(t, 270, Rot270.Degrees())
	assert.InDelta(t, math.Pi, Rot180.Radians(), 1e-9)
	assert.Equal(t, footprint.West, Rot270.Direction())
	assert.Equal(t, Rot90, Facing(footprint.East))
	assert.Equal(t, "180°", Rot180.String())
}

func TestRotationJSON(t *testing.T) {
	data, err := json.Marshal(Placement{Rotation: Rot270, Layer: LayerWall})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rotation":270`)

	var p Placement
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, Rot270, p.Rotation)
	assert.Equal(t, LayerWall, p.Layer)

	var r Rotation
	assert.Error(t, json.Unmarshal([]byte("100"), &r))
}

func TestQuadrants(t *testing.T) {
	for _, tc := range []struct {
		q        Quadrant
		ccw, cw  footprint.Direction
		base     Rotation
		next     Quadrant
	}{
		{NW, footprint.West, footprint.North, Rot0, NE},
		{NE, footprint.North, footprint.East, Rot90, SE},
		{SE, footprint.East, footprint.South, Rot180, SW},
		{SW, footprint.South, footprint.West, Rot270, NW},
	} {
		assert.Equal(t, tc.ccw, tc.q.CCW(), "%s", tc.q)
		assert.Equal(t, tc.cw, tc.q.CW(), "%s", tc.q)
		assert.Equal(t, tc.base, tc.q.Base(), "%s", tc.q)
		assert.Equal(t, tc.next, tc.q.Clockwise(), "%s", tc.q)

		got, ok := QuadrantBetween(tc.cw, tc.ccw)
		require.True(t, ok)
		assert.Equal(t, tc.q, got)
	}

	_, ok := QuadrantBetween(footprint.North, footprint.South)
	assert.False(t, ok)
	assert.Equal(t, Vec3{X: 0.25, Z: -0.25}, NE.Offset())
}
