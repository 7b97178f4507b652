// Package bodies simulates circles that drift in a box, bounce off its walls
// and reverse when they touch each other.
//
// The collision response is deliberately simple: overlapping bodies both
// reverse their full velocity. There is no mass, impulse or separation, so
// bodies that stay overlapped keep flipping.
package bodies

import (
	"math"
	"math/rand"

	"github.com/olivierh59500/arc-bounce-go/internal/geom"
)

// Body is a circle with a position, a per-tick velocity and a fixed radius.
type Body struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

// Bounds is the box bodies bounce inside, with its origin at (0, 0).
type Bounds struct {
	Width, Height float64
}

// Config controls how many bodies exist and how they are generated.
type Config struct {
	MinBodies   int
	AreaDivisor float64
	// Velocity components are drawn from [-MaxSpeed, MaxSpeed].
	MaxSpeed  float64
	MinRadius float64
	MaxRadius float64
}

// DefaultConfig returns the reference setup: at least two bodies, one per
// 10000 square pixels, speeds up to 2 px/tick, radii 10 to 25.
func DefaultConfig() Config {
	return Config{
		MinBodies:   2,
		AreaDivisor: 10000,
		MaxSpeed:    2,
		MinRadius:   10,
		MaxRadius:   25,
	}
}

// Count returns max(MinBodies, floor(width*height/AreaDivisor)).
func Count(width, height float64, cfg Config) int {
	n := 0
	if cfg.AreaDivisor > 0 && width > 0 && height > 0 {
		n = int(math.Floor(width * height / cfg.AreaDivisor))
	}
	if n < cfg.MinBodies {
		n = cfg.MinBodies
	}
	return n
}

// Initialize generates Count(width, height) bodies scattered over the
// width x height box.
func Initialize(width, height float64, cfg Config, rng *rand.Rand) []Body {
	return Spawn(Bounds{Width: width, Height: height}, Count(width, height, cfg), cfg, rng)
}

// Spawn generates n bodies with uniformly random position inside b and
// uniformly random velocity and radius within cfg's ranges.
func Spawn(b Bounds, n int, cfg Config, rng *rand.Rand) []Body {
	out := make([]Body, n)
	for i := range out {
		out[i] = Body{
			Pos:    geom.V(rng.Float64()*b.Width, rng.Float64()*b.Height),
			Vel:    geom.V(rng.Float64()*2-1, rng.Float64()*2-1).Scale(cfg.MaxSpeed),
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		}
	}
	return out
}

// Tick advances every body by one step, in place.
//
// All bodies move and bounce off the walls first, in slice order. Wall
// checks use the already-moved position, so a reflection takes effect one
// tick after the edge is crossed. Then every unordered pair (i < j) is
// tested on the moved positions, and both members of an overlapping pair
// reverse both velocity components.
func Tick(bodies []Body, b Bounds) []Body {
	for i := range bodies {
		p := &bodies[i]
		p.Pos = p.Pos.Add(p.Vel)

		if p.Pos.X+p.Radius > b.Width || p.Pos.X-p.Radius < 0 {
			p.Vel.X = -p.Vel.X
		}
		if p.Pos.Y+p.Radius > b.Height || p.Pos.Y-p.Radius < 0 {
			p.Vel.Y = -p.Vel.Y
		}
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, c := &bodies[i], &bodies[j]
			if a.Pos.Dist(c.Pos) < a.Radius+c.Radius {
				a.Vel = a.Vel.Neg()
				c.Vel = c.Vel.Neg()
			}
		}
	}
	return bodies
}
