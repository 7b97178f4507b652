package game

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/olivierh59500/arc-bounce-go/internal/arc"
	"github.com/olivierh59500/arc-bounce-go/internal/bodies"
	"github.com/olivierh59500/arc-bounce-go/internal/config"
	"github.com/olivierh59500/arc-bounce-go/internal/geom"
)

// Drawing constants
const (
	ArcSegments   = 96
	ArcStroke     = 2.0
	TrailLength   = 10
	HitSlop       = 6.0
	NoiseScale    = 200.0
	NoiseTimeStep = 1.0 / 300
)

type view int

const (
	viewArc view = iota
	viewBodies
	viewCount
)

// anchorKeys is checked in order; the highest-numbered key pressed in a frame wins.
var anchorKeys = []struct {
	key    ebiten.Key
	anchor arc.Anchor
}{
	{ebiten.Key1, arc.Start},
	{ebiten.Key2, arc.Mid},
	{ebiten.Key3, arc.End},
}

var (
	colorBackground = color.RGBA{250, 250, 250, 255}
	colorPath       = color.RGBA{0, 0, 0, 255}
	colorAnchor     = color.RGBA{220, 30, 30, 255}
	colorMarker     = color.RGBA{30, 60, 230, 255}
	colorCanvas     = color.RGBA{180, 180, 180, 255}
)

// Game hosts both kernels inside ebiten: it tracks the viewport, turns input
// into kernel calls and draws their output once per frame.
type Game struct {
	cfg config.Config
	log zerolog.Logger
	now func() time.Duration

	width, height float64
	pendingW      int
	pendingH      int
	view          view
	paused        bool
	trails        bool
	trailBuf      [][]geom.Vec
	geometry      *arc.Geometry
	geometryErr   error
	marker        *arc.Marker
	sim           *bodies.Simulation
	noise         *perlin.Perlin
	seed          int64
}

// New creates a game from a validated config. The viewport is taken from the
// first Layout call.
func New(cfg config.Config, log zerolog.Logger) *Game {
	seed := cfg.Bodies.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	g := &Game{
		cfg:    cfg,
		log:    log,
		now:    func() time.Duration { return time.Since(start) },
		marker: arc.NewMarker(cfg.StartAnchor(), cfg.SpeedPolicy()),
		sim:    bodies.NewSimulation(cfg.BodyConfig(), cfg.Bodies.CanvasWidth, cfg.Bodies.CanvasHeight, seed),
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		seed:   seed,
	}
	g.log.Info().
		Str("speedPolicy", fmt.Sprint(g.marker.Policy())).
		Stringer("startAnchor", g.marker.Anchor()).
		Float64("angle", cfg.Arc.AngleDegrees).
		Int64("seed", seed).
		Msg("game created")
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.pendingW > 0 && g.pendingH > 0 &&
		(float64(g.pendingW) != g.width || float64(g.pendingH) != g.height) {
		g.resize(float64(g.pendingW), float64(g.pendingH))
	}

	g.handleInput()

	if g.view == viewBodies && !g.paused {
		g.sim.Step()
		if g.trails {
			g.recordTrails()
		}
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	switch g.view {
	case viewArc:
		g.drawArc(screen)
	case viewBodies:
		g.drawBodies(screen)
	}
}

// Layout reports the window size back as the logical screen size and queues
// a rebuild when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// resize rebuilds all viewport-derived state.
func (g *Game) resize(w, h float64) {
	g.width, g.height = w, h

	geo, err := arc.Compute(w, h, g.cfg.ArcParams())
	switch {
	case err == nil:
		if g.geometry == nil && g.geometryErr != nil {
			g.log.Info().Msg("arc geometry restored")
		}
		g.geometry, g.geometryErr = geo, nil
	case errors.Is(err, arc.ErrDegenerateGeometry):
		if g.geometryErr == nil {
			g.log.Warn().Err(err).Msg("viewport too narrow, arc hidden")
		}
		g.geometry, g.geometryErr = nil, err
	default:
		g.log.Error().Err(err).Msg("arc geometry")
		g.geometry, g.geometryErr = nil, err
	}
	g.marker.Settle()

	g.sim.Resize(w, h)
	g.trailBuf = nil

	g.log.Debug().
		Float64("width", w).
		Float64("height", h).
		Int("bodies", len(g.sim.Bodies())).
		Msg("viewport resized")
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.view = (g.view + 1) % viewCount
	}

	switch g.view {
	case viewArc:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.clickAt(geom.V(float64(mx), float64(my)))
		}
		for _, k := range anchorKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				g.selectAnchor(k.anchor)
			}
		}
	case viewBodies:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.paused = !g.paused
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.seed++
			g.sim.Respawn(g.seed)
			g.trailBuf = nil
			g.log.Info().Int64("seed", g.seed).Int("bodies", len(g.sim.Bodies())).Msg("bodies respawned")
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.trails = !g.trails
			g.trailBuf = nil
		}
	}
}

func (g *Game) clickAt(p geom.Vec) {
	if g.geometry == nil {
		return
	}
	if a, ok := g.geometry.AnchorAt(p, anchorRadius(g.width)+HitSlop); ok {
		g.selectAnchor(a)
	}
}

func (g *Game) selectAnchor(a arc.Anchor) {
	if g.geometry == nil {
		return
	}
	if g.marker.Select(a, g.now(), g.geometry.PathLength()) {
		g.log.Debug().Stringer("anchor", a).Msg("marker moving")
	}
}

func (g *Game) drawArc(screen *ebiten.Image) {
	if g.geometry == nil {
		ebitenutil.DebugPrintAt(screen, "window too narrow to draw the arc", 10, 10)
		return
	}
	geo := g.geometry

	pts := geo.Sample(ArcSegments)
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(screen,
			float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y),
			ArcStroke, colorPath, true)
	}

	r := float32(anchorRadius(g.width))
	fs := labelSize(g.width)
	for _, a := range arc.Anchors {
		p := geo.AnchorPoint(a)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, colorAnchor, true)

		lx, ly := p.X, p.Y-fs
		switch a {
		case arc.Start:
			lx -= fs
		case arc.End:
			lx += fs / 2
		}
		ebitenutil.DebugPrintAt(screen, a.Label(), int(lx), int(ly))
	}

	m := geo.PointAt(g.marker.Offset(g.now(), geo.PathLength()))
	vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), r, colorMarker, true)
}

func (g *Game) drawBodies(screen *ebiten.Image) {
	b := g.sim.Bounds()
	ox := (g.width - b.Width) / 2
	oy := (g.height - b.Height) / 2
	vector.StrokeRect(screen, float32(ox), float32(oy), float32(b.Width), float32(b.Height), 1, colorCanvas, false)

	t := float64(g.sim.Ticks()) * NoiseTimeStep
	for i, body := range g.sim.Bodies() {
		col := g.tint(body.Pos, t)
		if g.trails && i < len(g.trailBuf) {
			trail := g.trailBuf[i]
			for k := 1; k < len(trail); k++ {
				vector.StrokeLine(screen,
					float32(ox+trail[k-1].X), float32(oy+trail[k-1].Y),
					float32(ox+trail[k].X), float32(oy+trail[k].Y),
					1, col, true)
			}
		}
		vector.DrawFilledCircle(screen, float32(ox+body.Pos.X), float32(oy+body.Pos.Y), float32(body.Radius), col, true)
	}

	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", 10, 10)
	}
}

// recordTrails appends each body's position to its trail, keeping the last
// TrailLength points.
func (g *Game) recordTrails() {
	bs := g.sim.Bodies()
	if len(g.trailBuf) != len(bs) {
		g.trailBuf = make([][]geom.Vec, len(bs))
	}
	for i, b := range bs {
		tr := append(g.trailBuf[i], b.Pos)
		if len(tr) > TrailLength {
			tr = tr[1:]
		}
		g.trailBuf[i] = tr
	}
}

// tint returns a shade of blue that drifts smoothly with position and time.
func (g *Game) tint(p geom.Vec, t float64) color.RGBA {
	n := g.noise.Noise3D(p.X/NoiseScale, p.Y/NoiseScale, t)
	h := 225 + 35*n
	r, gr, b := hsvToRGB(h, 0.85, 0.9)
	return color.RGBA{uint8(r * 255), uint8(gr * 255), uint8(b * 255), 255}
}

// anchorRadius sizes the anchor and marker dots: width/150 within [5, 10].
func anchorRadius(width float64) float64 {
	return math.Max(5, math.Min(width/150, 10))
}

// labelSize is the label offset: width/40 within [12, 24].
func labelSize(width float64) float64 {
	return math.Max(12, math.Min(width/40, 24))
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
