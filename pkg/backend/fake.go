package backend

import (
	"context"
	"sync"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/geom"
)

// FakeAdapter is an in-memory Adapter for tests and outlayctl's
// "-backend fake" dry-run mode: it holds a fixed output set, records
// every Apply call, and lets the caller inject ChangeEvents.
type FakeAdapter struct {
	mu      sync.Mutex
	outputs []Output
	vmax    geom.Size
	applied []arrangement.Arrangement
	events  chan ChangeEvent
}

// NewFakeAdapter returns a FakeAdapter reporting outputs and a virtual
// screen maximum of vmax.
func NewFakeAdapter(outputs []Output, vmax geom.Size) *FakeAdapter {
	return &FakeAdapter{
		outputs: outputs,
		vmax:    vmax,
		events:  make(chan ChangeEvent, 8),
	}
}

// CurrentOutputs returns the fixed output set and virtual screen maximum.
func (f *FakeAdapter) CurrentOutputs(ctx context.Context) ([]Output, geom.Size, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Output, len(f.outputs))
	copy(out, f.outputs)
	return out, f.vmax, nil
}

// Apply records arr and updates the fake outputs' positions to match it.
func (f *FakeAdapter) Apply(ctx context.Context, arr arrangement.Arrangement, outputs []Output) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applied = append(f.applied, arr)
	for i, o := range f.outputs {
		if pos, ok := arr.ByID(o.ID); ok {
			f.outputs[i].Position = pos.Position
			f.outputs[i].Mode = pos.Mode
		}
	}
	return nil
}

// Subscribe returns the FakeAdapter's event channel. Tests send on it via
// Emit; it is closed when ctx is done.
func (f *FakeAdapter) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	go func() {
		<-ctx.Done()
		f.mu.Lock()
		defer f.mu.Unlock()
		close(f.events)
	}()
	return f.events, nil
}

// Emit injects a ChangeEvent as if the backend had observed it, for
// driving the Supervisor's event loop in tests.
func (f *FakeAdapter) Emit(ev ChangeEvent) {
	f.events <- ev
}

// Applied returns every Arrangement passed to Apply, in call order.
func (f *FakeAdapter) Applied() []arrangement.Arrangement {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]arrangement.Arrangement, len(f.applied))
	copy(out, f.applied)
	return out
}

// SetOutputs replaces the fake's reported output set, e.g. to simulate a
// hotplug between CurrentOutputs calls.
func (f *FakeAdapter) SetOutputs(outputs []Output, vmax geom.Size) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs = outputs
	f.vmax = vmax
}
