package arc

import "time"

// Marker is the caller-held state of the moving dot: either resting at an
// anchor or travelling towards one. Times are offsets from any monotonic
// epoch chosen by the caller.
//
// Selecting the anchor the marker rests at, or the one it is already heading
// to, does nothing. Selecting another anchor mid-flight retargets: the new
// move starts at the marker's current offset.
type Marker struct {
	policy SpeedPolicy

	anchor    Anchor // resting anchor, or destination while animating
	animating bool
	from, to  float64
	started   time.Duration
}

func NewMarker(at Anchor, policy SpeedPolicy) *Marker {
	return &Marker{anchor: at, policy: policy}
}

// Anchor is where the marker rests, or where it is heading.
func (m *Marker) Anchor() Anchor {
	return m.anchor
}

func (m *Marker) Animating() bool {
	return m.animating
}

// Policy returns the speed policy used for new moves.
func (m *Marker) Policy() SpeedPolicy {
	return m.policy
}

// Select requests a move to target at time now on a path of the given
// length. It reports whether a new move started.
func (m *Marker) Select(target Anchor, now time.Duration, pathLength float64) bool {
	if target == m.anchor {
		return false
	}
	from := m.Offset(now, pathLength)
	m.anchor = target
	m.from = from
	m.to = target.Offset(pathLength)
	m.started = now
	m.animating = true
	return true
}

// Offset evaluates the marker at time now. When the current move completes
// the marker becomes idle at its destination.
func (m *Marker) Offset(now time.Duration, pathLength float64) float64 {
	if !m.animating {
		return m.anchor.Offset(pathLength)
	}
	offset, done := Advance(m.from, m.to, now-m.started, pathLength, m.policy)
	if done {
		m.animating = false
		return m.anchor.Offset(pathLength)
	}
	return offset
}

// Settle finishes any move immediately. Used when the path is rebuilt and
// in-flight offsets no longer refer to the same path.
func (m *Marker) Settle() {
	m.animating = false
}
