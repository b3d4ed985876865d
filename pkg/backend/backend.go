// Package backend defines the windowing-system boundary the daemon talks
// through: reading the currently connected outputs, applying a solved
// arrangement, and subscribing to hotplug/reconfiguration events. Two
// implementations are provided: X11Adapter (xgb/xgbutil/xinerama) and
// FakeAdapter (in-memory, for tests and dry runs).
package backend

import (
	"context"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/geom"
)

// Mode is an alias of arrangement.Mode: the backend reports modes in the
// same shape the core passes back through untouched.
type Mode = arrangement.Mode

// Output is one physically connected display as reported by the backend.
type Output struct {
	ID       string // stable output name, e.g. "DP-1"
	EDID     string // hex-encoded EDID block, "" if unavailable
	Modes    []Mode // available modes, first is preferred/native
	Mode     Mode   // currently active mode
	Position geom.Pair
	Primary  bool
}

// EventKind classifies a ChangeEvent.
type EventKind int

const (
	// Hotplug means the set of connected outputs changed.
	Hotplug EventKind = iota
	// ManualReconfigure means the same outputs moved without daemon
	// involvement (e.g. the user dragged a display in a GUI tool).
	ManualReconfigure
)

// ChangeEvent is one notification from Subscribe.
type ChangeEvent struct {
	Kind EventKind
}

// Adapter is the windowing-system boundary spec.md §6 describes only as
// "backend": it owns mode/rotation/primary-output selection, which the
// layout engine never touches.
type Adapter interface {
	// CurrentOutputs returns every connected output and the virtual
	// screen's maximum size as reported by the windowing system.
	CurrentOutputs(ctx context.Context) ([]Output, geom.Size, error)

	// Apply moves/resizes the virtual screen to match arr. outputs is
	// the set CurrentOutputs most recently returned, passed back so the
	// adapter can resolve arr's output IDs without a second round trip.
	Apply(ctx context.Context, arr arrangement.Arrangement, outputs []Output) error

	// Subscribe returns a channel of change notifications. The channel
	// is closed when ctx is done.
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}
