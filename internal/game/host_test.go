package game

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/arc-bounce-go/internal/arc"
	"github.com/olivierh59500/arc-bounce-go/internal/config"
	"github.com/olivierh59500/arc-bounce-go/internal/geom"
	"github.com/olivierh59500/arc-bounce-go/internal/logging"
)

func newTestGame(t *testing.T, buf *bytes.Buffer, clock *time.Duration) *Game {
	t.Helper()
	cfg, err := config.Load(viper.New())
	require.NoError(t, err)
	cfg.Bodies.Seed = 1

	g := New(cfg, logging.New(buf, "debug", "json"))
	g.now = func() time.Duration { return *clock }
	return g
}

func TestGame_NarrowViewportIgnoresSelection(t *testing.T) {
	var buf bytes.Buffer
	var clock time.Duration
	g := newTestGame(t, &buf, &clock)

	g.resize(80, 600)
	assert.Nil(t, g.geometry)
	assert.ErrorIs(t, g.geometryErr, arc.ErrDegenerateGeometry)
	assert.Contains(t, buf.String(), "viewport too narrow")

	g.clickAt(geom.V(50, 300))
	g.selectAnchor(arc.End)
	assert.False(t, g.marker.Animating())
	assert.Equal(t, arc.Start, g.marker.Anchor())
}

func TestGame_GeometryRestoredAfterWidening(t *testing.T) {
	var buf bytes.Buffer
	var clock time.Duration
	g := newTestGame(t, &buf, &clock)

	g.resize(80, 600)
	buf.Reset()

	g.resize(1000, 800)
	require.NotNil(t, g.geometry)
	assert.NoError(t, g.geometryErr)
	assert.Contains(t, buf.String(), "arc geometry restored")
	assert.Len(t, g.sim.Bodies(), 80)

	g.clickAt(g.geometry.End)
	assert.True(t, g.marker.Animating())
	assert.Equal(t, arc.End, g.marker.Anchor())
}

func TestGame_ResizeSettlesMarker(t *testing.T) {
	var buf bytes.Buffer
	var clock time.Duration
	g := newTestGame(t, &buf, &clock)

	g.resize(1000, 800)
	g.selectAnchor(arc.Mid)
	clock = 500 * time.Millisecond
	require.True(t, g.marker.Animating())

	g.resize(1200, 800)
	assert.False(t, g.marker.Animating())
	assert.Equal(t, arc.Mid, g.marker.Anchor())

	L := g.geometry.PathLength()
	assert.Equal(t, L/2, g.marker.Offset(clock, L))
}

func TestAnchorKeysOrdered(t *testing.T) {
	require.Len(t, anchorKeys, 3)
	for i, k := range anchorKeys {
		assert.Equal(t, arc.Anchors[i], k.anchor)
	}
}
