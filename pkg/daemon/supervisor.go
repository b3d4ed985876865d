package daemon

import (
	"context"
	"fmt"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/backend"
	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/geom"
	"github.com/dshills/outlayd/pkg/packer"
	"github.com/dshills/outlayd/pkg/search"
	"github.com/dshills/outlayd/pkg/store"
)

// Supervisor is the daemon's event loop. On every ChangeEvent from its
// Adapter it runs a five-stage pipeline, the same stage-by-stage shape
// the teacher's DefaultGenerator.Generate uses (synthesize → embed →
// carve → populate → validate), with different stages:
//
//  1. Classify  - inspect the event kind and current outputs
//  2. Fingerprint - derive the stable identity of the connected output set
//  3. Recall-or-solve - look up a stored arrangement, or run ComputeLayout
//  4. Suppress  - compare against the last-applied arrangement
//  5. Apply     - push the result to the backend, if it changed anything
type Supervisor struct {
	adapter backend.Adapter
	store   *store.Store
	cfg     Config
	log     *Logger

	lastApplied arrangement.Arrangement
	hasApplied  bool
}

// NewSupervisor builds a Supervisor from a config, adapter, and store.
func NewSupervisor(cfg Config, adapter backend.Adapter, st *store.Store, log *Logger) *Supervisor {
	return &Supervisor{adapter: adapter, store: st, cfg: cfg, log: log}
}

// Run subscribes to the adapter and processes events until ctx is done.
func (s *Supervisor) Run(ctx context.Context) error {
	events, err := s.adapter.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("daemon: subscribing to backend: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.handle(ctx, ev); err != nil {
				s.log.Errorf("handling event %v: %v", ev.Kind, err)
			}
		}
	}
}

// handle runs one pass of the pipeline for a single ChangeEvent.
func (s *Supervisor) handle(ctx context.Context, ev backend.ChangeEvent) error {
	outputs, vmax, err := s.adapter.CurrentOutputs(ctx)
	if err != nil {
		return fmt.Errorf("fetching current outputs: %w", err)
	}

	fp := store.Fingerprint(toStoreOutputs(outputs))
	s.log.Debugf("event %v: fingerprint %s, %d outputs", ev.Kind, fp, len(outputs))

	var arr arrangement.Arrangement
	switch {
	case ev.Kind == backend.ManualReconfigure:
		arr, err = s.learnFromManualEdit(outputs, vmax)
		if err != nil {
			return err
		}
		if err := s.store.Put(fp, arr); err != nil {
			return fmt.Errorf("storing learned arrangement: %w", err)
		}
	default: // Hotplug, or any unrecognized kind: recall-or-solve
		if stored, ok := s.store.Get(fp); ok {
			s.log.Infof("recalled stored arrangement for fingerprint %s", fp)
			arr = stored
		} else {
			arr, err = s.solveFresh(outputs, vmax)
			if err != nil {
				return err
			}
			if err := s.store.Put(fp, arr); err != nil {
				return fmt.Errorf("storing solved arrangement: %w", err)
			}
		}
	}

	if s.hasApplied && s.lastApplied.Equal(arr) {
		s.log.Debugf("arrangement unchanged, suppressing re-apply")
		return nil
	}

	if err := s.adapter.Apply(ctx, arr, outputs); err != nil {
		return fmt.Errorf("applying arrangement: %w", err)
	}
	s.lastApplied = arr
	s.hasApplied = true
	return nil
}

// solveFresh runs compute_layout with an all-None constraint matrix: the
// common case for a newly seen output set, where spec.md §8 property 3
// guarantees a one-row layout exists whenever the displays fit.
func (s *Supervisor) solveFresh(outputs []backend.Output, vmax geom.Size) (arrangement.Arrangement, error) {
	return SolveOnce(s.cfg, outputs, vmax)
}

// SolveOnce runs compute_layout with an all-None constraint matrix for a
// fixed output set, independent of any Supervisor or stored arrangement.
// It is the entry point outlayctl's `solve` subcommand uses for a single
// one-shot layout, and the one solveFresh delegates to for the running
// daemon.
func SolveOnce(cfg Config, outputs []backend.Output, vmax geom.Size) (arrangement.Arrangement, error) {
	n := len(outputs)
	if n == 0 {
		return arrangement.Arrangement{}, fmt.Errorf("no outputs to arrange")
	}
	sizes := make([]geom.Size, n)
	ids := make([]string, n)
	modes := make([]arrangement.Mode, n)
	for i, o := range outputs {
		sizes[i] = geom.Size{W: o.Mode.Width, H: o.Mode.Height}
		ids[i] = o.ID
		modes[i] = o.Mode
	}

	m, err := constraint.New(n)
	if err != nil {
		return arrangement.Arrangement{}, fmt.Errorf("building constraint matrix: %w", err)
	}

	b := packer.Bounds{
		WMin: cfg.Bounds.WMin, HMin: cfg.Bounds.HMin,
		WMax: cfg.Bounds.WMax, HMax: cfg.Bounds.HMax,
	}
	if vmax.W > 0 && vmax.W < b.WMax {
		b.WMax = vmax.W
	}
	if vmax.H > 0 && vmax.H < b.HMax {
		b.HMax = vmax.H
	}
	coef := packer.Coefficients{Gap: cfg.GapCoefficient, Center: cfg.CenterCoefficient}

	layout, ok, err := search.ComputeLayout(sizes, b, m, coef)
	if err != nil {
		return arrangement.Arrangement{}, fmt.Errorf("compute_layout: %w", err)
	}
	if !ok {
		return arrangement.Arrangement{}, fmt.Errorf("no layout found for %d outputs within %dx%d", n, b.WMax, b.HMax)
	}

	return arrangement.FromSolved(layout.W, layout.H, layout.Positions, ids, modes)
}

// learnFromManualEdit normalizes the outputs' currently observed
// positions into a constraint matrix (spec.md §4.5's "learn from manual
// edit") and re-solves against it, so the daemon's stored arrangement
// captures the user's intent rather than just their literal pixel
// coordinates (which may not have been chosen by this daemon's packer).
func (s *Supervisor) learnFromManualEdit(outputs []backend.Output, vmax geom.Size) (arrangement.Arrangement, error) {
	n := len(outputs)
	rects := make([]geom.Rect, n)
	sizes := make([]geom.Size, n)
	ids := make([]string, n)
	modes := make([]arrangement.Mode, n)
	for i, o := range outputs {
		sz := geom.Size{W: o.Mode.Width, H: o.Mode.Height}
		rects[i] = geom.Rect{Pos: o.Position, Size: sz}
		sizes[i] = sz
		ids[i] = o.ID
		modes[i] = o.Mode
	}

	m, err := constraint.FromPositions(rects)
	if err != nil {
		return arrangement.Arrangement{}, fmt.Errorf("normalizing manual arrangement: %w", err)
	}

	b := packer.Bounds{
		WMin: s.cfg.Bounds.WMin, HMin: s.cfg.Bounds.HMin,
		WMax: s.cfg.Bounds.WMax, HMax: s.cfg.Bounds.HMax,
	}
	if vmax.W > 0 && vmax.W < b.WMax {
		b.WMax = vmax.W
	}
	if vmax.H > 0 && vmax.H < b.HMax {
		b.HMax = vmax.H
	}
	coef := packer.Coefficients{Gap: s.cfg.GapCoefficient, Center: s.cfg.CenterCoefficient}

	layout, ok, err := search.ComputeLayout(sizes, b, m, coef)
	if err != nil {
		return arrangement.Arrangement{}, fmt.Errorf("compute_layout for learned constraints: %w", err)
	}
	if !ok {
		return arrangement.Arrangement{}, fmt.Errorf("learned constraints for %d outputs are unsatisfiable", n)
	}

	return arrangement.FromSolved(layout.W, layout.H, layout.Positions, ids, modes)
}

func toStoreOutputs(outputs []backend.Output) []store.Output {
	out := make([]store.Output, len(outputs))
	for i, o := range outputs {
		out[i] = store.Output{ID: o.ID, EDID: o.EDID}
	}
	return out
}
