package bodies

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/arc-bounce-go/internal/geom"
)

func TestCount(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 80, Count(1000, 800, cfg))
	assert.Equal(t, 2, Count(100, 100, cfg))
	assert.Equal(t, 2, Count(0, 0, cfg))
	assert.Equal(t, 207, Count(1920, 1080, cfg))
}

func TestInitialize_Ranges(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	bodies := Initialize(1000, 800, cfg, rng)
	require.Len(t, bodies, 80)
	for i, b := range bodies {
		assert.True(t, b.Pos.X >= 0 && b.Pos.X <= 1000, "body %d x", i)
		assert.True(t, b.Pos.Y >= 0 && b.Pos.Y <= 800, "body %d y", i)
		assert.True(t, b.Vel.X >= -2 && b.Vel.X <= 2, "body %d vx", i)
		assert.True(t, b.Vel.Y >= -2 && b.Vel.Y <= 2, "body %d vy", i)
		assert.True(t, b.Radius >= 10 && b.Radius <= 25, "body %d r", i)
	}
}

func TestInitialize_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := Initialize(640, 480, cfg, rand.New(rand.NewSource(42)))
	b := Initialize(640, 480, cfg, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestTick_Empty(t *testing.T) {
	out := Tick(nil, Bounds{Width: 100, Height: 100})
	assert.Empty(t, out)

	out = Tick([]Body{}, Bounds{Width: 100, Height: 100})
	assert.Empty(t, out)
}

func TestTick_Integrates(t *testing.T) {
	bodies := []Body{{Pos: geom.V(50, 50), Vel: geom.V(1.5, -0.5), Radius: 5}}
	Tick(bodies, Bounds{Width: 100, Height: 100})

	assert.Equal(t, geom.V(51.5, 49.5), bodies[0].Pos)
	assert.Equal(t, geom.V(1.5, -0.5), bodies[0].Vel)
}

func TestTick_WallReflection(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		wantVel geom.Vec
	}{
		{"right edge", Body{Pos: geom.V(99, 50), Vel: geom.V(3, 0), Radius: 5}, geom.V(-3, 0)},
		{"left edge", Body{Pos: geom.V(6, 50), Vel: geom.V(-2, 1), Radius: 5}, geom.V(2, 1)},
		{"bottom edge", Body{Pos: geom.V(50, 94), Vel: geom.V(0, 2), Radius: 5}, geom.V(0, -2)},
		{"top edge", Body{Pos: geom.V(50, 5), Vel: geom.V(1, -1), Radius: 5}, geom.V(1, 1)},
		{"corner", Body{Pos: geom.V(98, 98), Vel: geom.V(1, 1), Radius: 5}, geom.V(-1, -1)},
		{"clear of walls", Body{Pos: geom.V(50, 50), Vel: geom.V(2, 2), Radius: 5}, geom.V(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies := []Body{tt.body}
			Tick(bodies, Bounds{Width: 100, Height: 100})
			assert.Equal(t, tt.wantVel, bodies[0].Vel)
		})
	}
}

func TestTick_ReflectsAfterMoving(t *testing.T) {
	// The edge is not yet crossed before moving; only the moved position is checked.
	bodies := []Body{{Pos: geom.V(94, 50), Vel: geom.V(2, 0), Radius: 5}}
	Tick(bodies, Bounds{Width: 100, Height: 100})

	assert.Equal(t, 96.0, bodies[0].Pos.X)
	assert.Equal(t, -2.0, bodies[0].Vel.X)
}

func TestTick_CollisionReversesBoth(t *testing.T) {
	bodies := []Body{
		{Pos: geom.V(100, 100), Vel: geom.V(1, 0.5), Radius: 10},
		{Pos: geom.V(115, 100), Vel: geom.V(-1, -0.5), Radius: 10},
	}
	Tick(bodies, Bounds{Width: 400, Height: 400})

	assert.Equal(t, geom.V(-1, -0.5), bodies[0].Vel)
	assert.Equal(t, geom.V(1, 0.5), bodies[1].Vel)
}

func TestTick_NoCollisionWhenApart(t *testing.T) {
	bodies := []Body{
		{Pos: geom.V(100, 100), Vel: geom.V(1, 0), Radius: 10},
		{Pos: geom.V(150, 100), Vel: geom.V(-1, 0), Radius: 10},
	}
	Tick(bodies, Bounds{Width: 400, Height: 400})

	assert.Equal(t, geom.V(1, 0), bodies[0].Vel)
	assert.Equal(t, geom.V(-1, 0), bodies[1].Vel)
}

func TestTick_OverlapKeepsFlipping(t *testing.T) {
	bodies := []Body{
		{Pos: geom.V(200, 200), Vel: geom.V(0.1, 0), Radius: 20},
		{Pos: geom.V(205, 200), Vel: geom.V(-0.1, 0), Radius: 20},
	}
	b := Bounds{Width: 400, Height: 400}

	Tick(bodies, b)
	assert.Equal(t, -0.1, bodies[0].Vel.X)
	Tick(bodies, b)
	assert.Equal(t, 0.1, bodies[0].Vel.X)
}

func TestTick_RadiusUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bodies := Initialize(300, 200, DefaultConfig(), rng)
	radii := make([]float64, len(bodies))
	for i, b := range bodies {
		radii[i] = b.Radius
	}

	for range 200 {
		Tick(bodies, Bounds{Width: 300, Height: 200})
	}
	for i, b := range bodies {
		assert.Equal(t, radii[i], b.Radius)
	}
}
