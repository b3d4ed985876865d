// Package packer implements the Packer component of spec.md §4.3: given
// display sizes, virtual-screen bounds, and one accepted sequence-pair
// template, it builds the induced integer packing and returns the
// optimal point, or reports the template infeasible.
//
// No integer-programming library ships anywhere in the reference corpus
// this daemon was built against (see DESIGN.md), so the solver below is
// the hand-written, structure-exploiting kind spec.md §9 explicitly
// allows: a per-axis critical-path compaction derived straight from the
// sequence-pair table, followed by a bounded coordinate-descent pass that
// improves the center-alignment term without ever violating an ordering
// or bounding invariant.
package packer

import (
	"fmt"

	"github.com/dshills/outlayd/pkg/direction"
	"github.com/dshills/outlayd/pkg/geom"
)

// Bounds specifies the virtual-screen bounding box the packing must fit
// inside (W_max, H_max) and, optionally, expand up to (W_min, H_min).
type Bounds struct {
	WMin, HMin int
	WMax, HMax int
}

// Validate checks that the bounds are internally consistent.
func (b Bounds) Validate() error {
	if b.WMin > b.WMax {
		return fmt.Errorf("packer: WMin (%d) > WMax (%d)", b.WMin, b.WMax)
	}
	if b.HMin > b.HMax {
		return fmt.Errorf("packer: HMin (%d) > HMax (%d)", b.HMin, b.HMax)
	}
	return nil
}

// Template is the minimal view the packer needs of a sequence-pair
// template: the induced direction for every ordered pair of indices.
// template.Enumerator satisfies it directly through its Direction method,
// so the packer does not import the template package and stays decoupled
// from the enumeration strategy.
type Template interface {
	Direction(i, j int) direction.Direction
}

// Coefficients are the objective's linear weights (spec.md §4.3). Both
// default to 1.
type Coefficients struct {
	Gap    int
	Center int
}

// DefaultCoefficients returns the spec-mandated default weights.
func DefaultCoefficients() Coefficients { return Coefficients{Gap: 1, Center: 1} }

// Result is a feasible packing for one template.
type Result struct {
	Objective int
	W, H      int
	Positions []geom.Pair
}

// Solve computes the optimal packing for the given template, or reports
// infeasible (ok == false) when no point in the feasible set exists —
// e.g. the combined size exceeds the bounding box. Solve never mutates
// sizes or tmpl; all working state is local to the call (spec.md §5).
func Solve(sizes []geom.Size, b Bounds, tmpl Template, coef Coefficients) (Result, bool, error) {
	n := len(sizes)
	if err := b.Validate(); err != nil {
		return Result{}, false, err
	}
	for k, s := range sizes {
		if err := s.Validate(); err != nil {
			return Result{}, false, fmt.Errorf("packer: display %d: %w", k, err)
		}
	}

	if n == 0 {
		return Result{W: max(0, b.WMin), H: max(0, b.HMin)}, true, nil
	}

	order := topoOrderByA(n, tmpl)

	xEdges, yEdges := axisEdges(n, tmpl)

	x := compact(order, xEdges, widths(sizes))
	y := compact(order, yEdges, heights(sizes))

	w := boundingExtent(x, widths(sizes))
	h := boundingExtent(y, heights(sizes))
	if w > b.WMax || h > b.HMax {
		return Result{}, false, nil
	}

	relax(n, xEdges, yEdges, x, widths(sizes), b.WMax)
	relax(n, yEdges, xEdges, y, heights(sizes), b.HMax)

	// Recompute after relaxation (coordinates may have grown, never shrunk).
	w = boundingExtent(x, widths(sizes))
	h = boundingExtent(y, heights(sizes))
	if w > b.WMax || h > b.HMax {
		return Result{}, false, nil
	}
	if w < b.WMin {
		w = b.WMin
	}
	if h < b.HMin {
		h = b.HMin
	}

	obj := objective(n, tmpl, x, y, sizes, coef)

	positions := make([]geom.Pair, n)
	for k := 0; k < n; k++ {
		positions[k] = geom.Pair{X: x[k], Y: y[k]}
	}

	return Result{Objective: obj, W: w, H: h, Positions: positions}, true, nil
}

func widths(sizes []geom.Size) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = s.W
	}
	return out
}

func heights(sizes []geom.Size) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = s.H
	}
	return out
}

func boundingExtent(pos, size []int) int {
	m := 0
	for i := range pos {
		if v := pos[i] + size[i]; v > m {
			m = v
		}
	}
	return m
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
