// Package search implements the Layout Search driver of spec.md §4.4: the
// outer loop that iterates every sequence-pair template, filters it
// against a constraint matrix, invokes the packer, and keeps the best
// solution seen so far.
package search

import (
	"fmt"

	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/geom"
	"github.com/dshills/outlayd/pkg/packer"
	"github.com/dshills/outlayd/pkg/template"
)

// Layout is the winning arrangement: a virtual-screen size and one
// position per display, plus the objective it was chosen under.
type Layout struct {
	Objective int
	W, H      int
	Positions []geom.Pair
}

// ComputeLayout is the core's sole entry point (spec.md §6). It returns
// the best arrangement across every template accepted by m, or ok ==
// false if no template is both accepted and packer-feasible.
//
// An error is returned only for invalid input — n <= 0, a malformed
// matrix, a non-positive size, or inverted bounds — never for "no
// layout", which is a normal negative result (ok == false, err == nil).
func ComputeLayout(sizes []geom.Size, b packer.Bounds, m *constraint.Matrix, coef packer.Coefficients) (Layout, bool, error) {
	n := len(sizes)
	if n <= 0 {
		return Layout{}, false, fmt.Errorf("search: n must be > 0, got %d", n)
	}
	if m.N() != n {
		return Layout{}, false, fmt.Errorf("search: matrix size %d does not match %d displays", m.N(), n)
	}
	if err := m.Validate(); err != nil {
		return Layout{}, false, fmt.Errorf("search: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Layout{}, false, err
	}
	for k, s := range sizes {
		if err := s.Validate(); err != nil {
			return Layout{}, false, fmt.Errorf("search: display %d: %w", k, err)
		}
	}

	e, err := template.NewEnumerator(n)
	if err != nil {
		return Layout{}, false, fmt.Errorf("search: %w", err)
	}

	var best Layout
	found := false

	for {
		if template.Accepts(e, m) {
			res, ok, err := packer.Solve(sizes, b, e, coef)
			if err != nil {
				return Layout{}, false, fmt.Errorf("search: %w", err)
			}
			if ok && (!found || better(res, best)) {
				best = Layout{Objective: res.Objective, W: res.W, H: res.H, Positions: res.Positions}
				found = true
			}
		}
		if !e.Advance() {
			break
		}
	}

	if !found {
		return Layout{}, false, nil
	}
	return best, true, nil
}

// better reports whether candidate res improves on the current best
// per spec.md §4.4's outer tie-break: strictly lower objective wins
// outright; an equal objective is broken by lexicographically smaller
// (W, H).
func better(res packer.Result, best Layout) bool {
	if res.Objective != best.Objective {
		return res.Objective < best.Objective
	}
	if res.W != best.W {
		return res.W < best.W
	}
	return res.H < best.H
}
