// Package arc lays out a shallow circular arc across the viewport with three
// selectable anchors, and animates a marker along it by arc-length offset.
package arc

import (
	"errors"
	"fmt"
	"math"

	"github.com/olivierh59500/arc-bounce-go/internal/geom"
)

// Layout defaults
const (
	DefaultHorizontalMargin = 50.0
	DefaultAngleDegrees     = 30.0
)

var (
	// ErrDegenerateGeometry is returned when the viewport is not wider than both margins.
	ErrDegenerateGeometry = errors.New("arc: viewport too narrow for margins")
	// ErrInvalidAngle is returned for arc angles outside (0, 180] degrees.
	ErrInvalidAngle = errors.New("arc: angle must be in (0, 180] degrees")
)

// Params are the fixed layout inputs that do not depend on the viewport.
type Params struct {
	HorizontalMargin float64
	AngleDegrees     float64
}

// DefaultParams returns a 50px margin and a 30 degree arc.
func DefaultParams() Params {
	return Params{
		HorizontalMargin: DefaultHorizontalMargin,
		AngleDegrees:     DefaultAngleDegrees,
	}
}

// Validate checks the parameters independently of any viewport.
func (p Params) Validate() error {
	if p.HorizontalMargin < 0 || math.IsNaN(p.HorizontalMargin) {
		return fmt.Errorf("arc: negative margin %v", p.HorizontalMargin)
	}
	if !(p.AngleDegrees > 0 && p.AngleDegrees <= 180) {
		return fmt.Errorf("%w: got %v", ErrInvalidAngle, p.AngleDegrees)
	}
	return nil
}

// Geometry is the arc derived from one viewport size. It is recomputed on
// every resize and never modified afterwards.
type Geometry struct {
	Width, Height float64
	Params        Params

	Radius    float64
	ArcHeight float64
	Start     geom.Vec
	Mid       geom.Vec
	End       geom.Vec
	// Center of the circle the arc lies on; below the chord.
	Center geom.Vec

	startAngle float64
	sweep      float64
}

// Compute derives the arc for a width x height viewport. The arc runs from
// the left margin to the right margin, bulging upward, with its chord placed
// arcHeight below the vertical centre so the apex sits on the centre line.
func Compute(width, height float64, p Params) (*Geometry, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(width > 2*p.HorizontalMargin) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: width %v, margin %v", ErrDegenerateGeometry, width, p.HorizontalMargin)
	}

	theta := p.AngleDegrees * math.Pi / 180
	half := theta / 2
	chord := width - 2*p.HorizontalMargin
	radius := chord / (2 * math.Sin(half))
	arcHeight := radius * (1 - math.Cos(half))

	startY := height/2 + arcHeight
	g := &Geometry{
		Width:     width,
		Height:    height,
		Params:    p,
		Radius:    radius,
		ArcHeight: arcHeight,
		Start:     geom.V(p.HorizontalMargin, startY),
		Mid:       geom.V(width/2, startY-arcHeight),
		End:       geom.V(width-p.HorizontalMargin, startY),
		Center:    geom.V(width/2, startY+radius*math.Cos(half)),
		// Screen y points down, so increasing angle is clockwise on screen:
		// from the left end over the top to the right end.
		startAngle: -math.Pi/2 - half,
		sweep:      theta,
	}
	return g, nil
}

// PathLength is the arc length from Start to End.
func (g *Geometry) PathLength() float64 {
	return g.Radius * g.sweep
}

// PointAt maps an arc-length offset to a point on the arc. Offsets outside
// the path are clamped; the end offsets return Start and End exactly.
func (g *Geometry) PointAt(offset float64) geom.Vec {
	length := g.PathLength()
	switch {
	case offset <= 0 || math.IsNaN(offset):
		return g.Start
	case offset >= length:
		return g.End
	}
	a := g.startAngle + offset/g.Radius
	return geom.V(g.Center.X+g.Radius*math.Cos(a), g.Center.Y+g.Radius*math.Sin(a))
}

// AnchorPoint returns the on-path position of an anchor.
func (g *Geometry) AnchorPoint(a Anchor) geom.Vec {
	return g.PointAt(a.Offset(g.PathLength()))
}

// AnchorAt returns the anchor whose point lies within tolerance of p. When
// several do, the closest wins.
func (g *Geometry) AnchorAt(p geom.Vec, tolerance float64) (Anchor, bool) {
	best, found := Start, false
	bestDist := math.Inf(1)
	for _, a := range Anchors {
		d := g.AnchorPoint(a).Dist(p)
		if d <= tolerance && d < bestDist {
			best, bestDist, found = a, d, true
		}
	}
	return best, found
}

// Sample returns n+1 evenly spaced points along the arc, including both ends.
func (g *Geometry) Sample(n int) []geom.Vec {
	if n < 1 {
		n = 1
	}
	pts := make([]geom.Vec, n+1)
	length := g.PathLength()
	for i := 0; i <= n; i++ {
		pts[i] = g.PointAt(length * float64(i) / float64(n))
	}
	return pts
}

// PathData renders the arc as an SVG path: minor arc, positive sweep.
func (g *Geometry) PathData() string {
	return fmt.Sprintf("M %g,%g A %g,%g 0 0 1 %g,%g",
		g.Start.X, g.Start.Y, g.Radius, g.Radius, g.End.X, g.End.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
