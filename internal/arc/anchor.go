package arc

import (
	"fmt"
	"strings"
)

// Anchor names one of the three selectable points on the arc.
type Anchor int

const (
	Start Anchor = iota
	Mid
	End
)

// Anchors lists every anchor in path order.
var Anchors = [...]Anchor{Start, Mid, End}

// Offset maps the anchor to an arc-length offset on a path of the given
// length. Mid is the half-length point, not a fixed coordinate.
func (a Anchor) Offset(pathLength float64) float64 {
	switch a {
	case Mid:
		return pathLength * 0.5
	case End:
		return pathLength
	default:
		return 0
	}
}

// Label is the single letter drawn next to the anchor.
func (a Anchor) Label() string {
	switch a {
	case Mid:
		return "B"
	case End:
		return "C"
	default:
		return "A"
	}
}

func (a Anchor) String() string {
	switch a {
	case Start:
		return "start"
	case Mid:
		return "mid"
	case End:
		return "end"
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// ParseAnchor accepts the String or Label form, case-insensitively.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "a":
		return Start, nil
	case "mid", "b":
		return Mid, nil
	case "end", "c":
		return End, nil
	}
	return Start, fmt.Errorf("arc: unknown anchor %q", s)
}
