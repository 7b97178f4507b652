package bodies

import (
	"math/rand"
)

// Canvas fractions of the viewport used for the bounce box.
const (
	DefaultCanvasWidth  = 0.9
	DefaultCanvasHeight = 0.7
)

// Simulation is one bouncing session. It owns its bodies until the next
// Resize or Respawn replaces them wholesale.
type Simulation struct {
	cfg          Config
	canvasWidth  float64
	canvasHeight float64

	rng    *rand.Rand
	bounds Bounds
	bodies []Body
	ticks  uint64
}

// NewSimulation creates an empty session. Bodies appear on the first Resize.
// canvasWidth and canvasHeight are the fractions of the viewport the box
// occupies; non-positive values select the defaults.
func NewSimulation(cfg Config, canvasWidth, canvasHeight float64, seed int64) *Simulation {
	if canvasWidth <= 0 {
		canvasWidth = DefaultCanvasWidth
	}
	if canvasHeight <= 0 {
		canvasHeight = DefaultCanvasHeight
	}
	return &Simulation{
		cfg:          cfg,
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Resize rebuilds the session for a new viewport. The body count follows the
// whole viewport area; bodies are placed inside the canvas box.
func (s *Simulation) Resize(viewportWidth, viewportHeight float64) {
	s.bounds = Bounds{
		Width:  viewportWidth * s.canvasWidth,
		Height: viewportHeight * s.canvasHeight,
	}
	n := Count(viewportWidth, viewportHeight, s.cfg)
	s.bodies = Spawn(s.bounds, n, s.cfg, s.rng)
	s.ticks = 0
}

// Respawn regenerates bodies for the current box from a new seed.
func (s *Simulation) Respawn(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.bodies = Spawn(s.bounds, len(s.bodies), s.cfg, s.rng)
	s.ticks = 0
}

// Step advances the session by one tick.
func (s *Simulation) Step() {
	s.bodies = Tick(s.bodies, s.bounds)
	s.ticks++
}

// Bodies returns the live body slice. Callers may read it between steps.
func (s *Simulation) Bodies() []Body {
	return s.bodies
}

func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Ticks counts steps since the last rebuild.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}
