// Package arrangement holds the Arrangement type that crosses the core
// engine's boundary (spec.md §4.5.2): a solved packing tagged with each
// display's resolved mode, plus the equality operator the daemon uses to
// suppress self-triggered feedback (spec.md §4.5's self-move suppression).
package arrangement

import (
	"fmt"

	"github.com/dshills/outlayd/pkg/geom"
)

// Mode is a display's active resolution/timing, passed through unchanged
// by the layout engine — it neither chooses nor validates modes.
type Mode struct {
	Width, Height int
	RefreshMilliHz int // refresh rate in mHz (60000 == 60.000 Hz), 0 if unknown
}

func (m Mode) String() string {
	if m.RefreshMilliHz == 0 {
		return fmt.Sprintf("%dx%d", m.Width, m.Height)
	}
	return fmt.Sprintf("%dx%d@%.3f", m.Width, m.Height, float64(m.RefreshMilliHz)/1000)
}

// Output is one display's position and mode within an Arrangement.
type Output struct {
	ID       string
	Position geom.Pair
	Mode     Mode
}

// Arrangement is the core's sole output type: a virtual-screen size and
// one Output per display (spec.md §4.5.2, "Solved Packing → Backend
// Arrangement: straight pass-through").
type Arrangement struct {
	VirtualScreen geom.Size
	Outputs       []Output
}

// FromSolved builds an Arrangement by pairing solved positions with the
// caller-supplied output IDs and modes, in the same order the solve was
// given. It is a pure pass-through per spec.md §4.5.2 — the layout engine
// never inspects or alters a Mode.
func FromSolved(w, h int, positions []geom.Pair, ids []string, modes []Mode) (Arrangement, error) {
	if len(positions) != len(ids) || len(positions) != len(modes) {
		return Arrangement{}, fmt.Errorf(
			"arrangement: mismatched lengths: %d positions, %d ids, %d modes",
			len(positions), len(ids), len(modes))
	}
	outputs := make([]Output, len(positions))
	for i := range positions {
		outputs[i] = Output{ID: ids[i], Position: positions[i], Mode: modes[i]}
	}
	return Arrangement{VirtualScreen: geom.Size{W: w, H: h}, Outputs: outputs}, nil
}

// Equal reports whether two arrangements are identical: same virtual
// screen size and, for every output ID present in either, the same
// position and mode. Output order does not matter — the daemon compares
// against backend-reported state, which carries no ordering guarantee.
func (a Arrangement) Equal(b Arrangement) bool {
	if a.VirtualScreen != b.VirtualScreen {
		return false
	}
	if len(a.Outputs) != len(b.Outputs) {
		return false
	}
	byID := make(map[string]Output, len(b.Outputs))
	for _, o := range b.Outputs {
		byID[o.ID] = o
	}
	for _, o := range a.Outputs {
		other, ok := byID[o.ID]
		if !ok || other.Position != o.Position || other.Mode != o.Mode {
			return false
		}
	}
	return true
}

// ByID returns the Output for id and whether it was present.
func (a Arrangement) ByID(id string) (Output, bool) {
	for _, o := range a.Outputs {
		if o.ID == id {
			return o, true
		}
	}
	return Output{}, false
}
