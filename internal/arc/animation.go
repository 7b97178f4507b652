package arc

import (
	"fmt"
	"math"
	"time"
)

// Animation defaults
const (
	DefaultDuration        = 2 * time.Second
	DefaultPixelsPerSecond = 300.0
)

// SpeedPolicy decides how long a move of the given arc-length distance takes.
type SpeedPolicy interface {
	Duration(distance float64) time.Duration
}

// FixedDuration makes every move take the same wall-clock time.
type FixedDuration time.Duration

func (d FixedDuration) Duration(float64) time.Duration {
	return time.Duration(d)
}

func (d FixedDuration) String() string {
	return fmt.Sprintf("fixed(%s)", time.Duration(d))
}

// ConstantSpeed moves the marker at a fixed number of pixels per second.
type ConstantSpeed float64

func (s ConstantSpeed) Duration(distance float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(math.Abs(distance) / float64(s) * float64(time.Second))
}

func (s ConstantSpeed) String() string {
	return fmt.Sprintf("distance(%gpx/s)", float64(s))
}

// Advance returns the marker offset elapsed time after leaving from on its
// way to to. Both ends are clamped to [0, pathLength] and the result moves
// linearly in elapsed time. done reports that the move has finished; the
// returned offset is then exactly the clamped destination.
func Advance(from, to float64, elapsed time.Duration, pathLength float64, policy SpeedPolicy) (offset float64, done bool) {
	if !(pathLength > 0) {
		return 0, true
	}
	from = clamp(from, 0, pathLength)
	to = clamp(to, 0, pathLength)

	duration := policy.Duration(math.Abs(to - from))
	if duration <= 0 {
		return to, true
	}
	progress := clamp(float64(elapsed)/float64(duration), 0, 1)
	if progress >= 1 {
		return to, true
	}
	return from + (to-from)*progress, false
}
