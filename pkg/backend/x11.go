package backend

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xinerama"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/geom"
)

// X11Adapter talks to an X server through xgbutil/xinerama, the same
// stack other_examples/…danielcranford-go-to-monitor__main.go.go uses to
// enumerate monitors and reposition windows across them.
//
// Read path (CurrentOutputs) is fully implemented via Xinerama, which
// every RandR-capable X server also populates. Apply/Subscribe are
// stubs: RandR mode-setting and event subscription are a protocol
// binding this daemon's scope excludes (see DESIGN.md), so both return an
// error and change neither the monitor geometry nor any adapter state.
type X11Adapter struct {
	conn *xgbutil.XUtil
}

// NewX11Adapter connects to the X server named by the DISPLAY environment
// variable.
func NewX11Adapter() (*X11Adapter, error) {
	conn, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("backend: connecting to X display: %w", err)
	}
	return &X11Adapter{conn: conn}, nil
}

// Close releases the underlying X connection.
func (a *X11Adapter) Close() {
	a.conn.Conn().Close()
}

// CurrentOutputs enumerates physical heads via Xinerama and reports the
// root window's dimensions as the virtual-screen maximum. EDID and mode
// lists are not exposed over Xinerama, so Output.EDID is left empty
// (Fingerprint falls back to ID in that case) and Modes holds only the
// head's current geometry as its sole (native) entry.
func (a *X11Adapter) CurrentOutputs(ctx context.Context) ([]Output, geom.Size, error) {
	heads, err := xinerama.PhysicalHeads(a.conn)
	if err != nil {
		return nil, geom.Size{}, fmt.Errorf("backend: enumerating Xinerama heads: %w", err)
	}

	outputs := make([]Output, len(heads))
	vmax := geom.Size{}
	for i, h := range heads {
		mode := arrangement.Mode{Width: h.Width(), Height: h.Height()}
		outputs[i] = Output{
			ID:       fmt.Sprintf("head-%d", i),
			Modes:    []Mode{mode},
			Mode:     mode,
			Position: geom.Pair{X: h.X(), Y: h.Y()},
			Primary:  i == 0,
		}
		if right := h.X() + h.Width(); right > vmax.W {
			vmax.W = right
		}
		if bottom := h.Y() + h.Height(); bottom > vmax.H {
			vmax.H = bottom
		}
	}
	return outputs, vmax, nil
}

// Apply is a documented stub: this daemon's scope excludes reimplementing
// RandR mode-setting (spec.md's non-goals list "protocol-specific
// bindings beyond the adapter's read/write surface"). A full
// implementation would issue RRSetCrtcConfig calls per changed output
// here; wiring that extension binding is left to the caller.
func (a *X11Adapter) Apply(ctx context.Context, arr arrangement.Arrangement, outputs []Output) error {
	return fmt.Errorf("backend: X11Adapter.Apply requires a RandR extension binding not vendored here")
}

// Subscribe is a documented stub for the same reason as Apply: RandR
// screen-change event subscription requires binding the RandR extension,
// which this daemon's scope does not vendor. Callers that need live
// hotplug notification on X11 should poll CurrentOutputs instead.
func (a *X11Adapter) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	return nil, fmt.Errorf("backend: X11Adapter.Subscribe requires a RandR extension binding not vendored here")
}
