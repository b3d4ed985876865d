// Package validate checks a computed arrangement.Arrangement against
// spec.md §3's five invariants and produces a human-readable report, in
// the same hard-constraint-result shape the teacher's pkg/validation
// uses for its own post-generation checks.
package validate

import (
	"fmt"
	"strings"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/direction"
)

// CheckResult is one invariant's pass/fail outcome.
type CheckResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// Report collects every invariant check for one arrangement.
type Report struct {
	Passed  bool
	Results []CheckResult
}

// Sizes gives the validator each output's display size, keyed by ID, since
// Arrangement itself carries only position and Mode.
type Sizes map[string]struct{ W, H int }

// DisplaySizes builds a Sizes map from parallel ID/width/height slices.
func DisplaySizes(ids []string, w, h []int) Sizes {
	out := make(Sizes, len(ids))
	for i, id := range ids {
		out[id] = struct{ W, H int }{w[i], h[i]}
	}
	return out
}

// Check runs every invariant in spec.md §3 against arr. bounds is the
// virtual-screen bounding box the arrangement was solved within (WMin may
// be 0 to skip the minimum check). matrix is the constraint matrix the
// arrangement was solved for — pass nil to skip invariant 5 (no
// user-supplied constraints to check against).
func Check(arr arrangement.Arrangement, sizes Sizes, wMin, hMin, wMax, hMax int, matrix *constraint.Matrix) Report {
	r := Report{Passed: true}
	add := func(name string, ok bool, details string) {
		r.Results = append(r.Results, CheckResult{Name: name, Satisfied: ok, Details: details})
		if !ok {
			r.Passed = false
		}
	}

	add("bounds", checkBounds(arr, sizes, wMax, hMax), fmt.Sprintf("virtual screen %dx%d", arr.VirtualScreen.W, arr.VirtualScreen.H))
	add("minimum-size", checkMinimum(arr, wMin, hMin), fmt.Sprintf("wanted >= %dx%d", wMin, hMin))
	add("in-bounds", checkInBounds(arr, sizes), "every output within the virtual screen")
	add("no-overlap", checkNoOverlap(arr, sizes), "no two outputs overlap")

	if matrix != nil {
		add("constraints-honored", checkConstraints(arr, sizes, matrix), "induced directions match the pinned constraint matrix")
	}

	return r
}

func checkBounds(arr arrangement.Arrangement, sizes Sizes, wMax, hMax int) bool {
	return arr.VirtualScreen.W <= wMax && arr.VirtualScreen.H <= hMax
}

func checkMinimum(arr arrangement.Arrangement, wMin, hMin int) bool {
	return arr.VirtualScreen.W >= wMin && arr.VirtualScreen.H >= hMin
}

func checkInBounds(arr arrangement.Arrangement, sizes Sizes) bool {
	for _, o := range arr.Outputs {
		s, ok := sizes[o.ID]
		if !ok {
			continue
		}
		if o.Position.X < 0 || o.Position.Y < 0 {
			return false
		}
		if o.Position.X+s.W > arr.VirtualScreen.W || o.Position.Y+s.H > arr.VirtualScreen.H {
			return false
		}
	}
	return true
}

func checkNoOverlap(arr arrangement.Arrangement, sizes Sizes) bool {
	n := len(arr.Outputs)
	for i := 0; i < n; i++ {
		si, ok := sizes[arr.Outputs[i].ID]
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			sj, ok := sizes[arr.Outputs[j].ID]
			if !ok {
				continue
			}
			if separated(arr.Outputs[i].Position.X, si.W, arr.Outputs[j].Position.X, sj.W) {
				continue
			}
			if separated(arr.Outputs[i].Position.Y, si.H, arr.Outputs[j].Position.Y, sj.H) {
				continue
			}
			return false
		}
	}
	return true
}

func separated(aPos, aExtent, bPos, bExtent int) bool {
	return aPos+aExtent <= bPos || bPos+bExtent <= aPos
}

// checkConstraints verifies invariant 5: every pinned (non-None) entry in
// matrix matches the direction actually induced by the solved positions.
// Outputs are matched to matrix indices positionally, by arr.Outputs'
// order — callers must solve and validate with the same ordering.
func checkConstraints(arr arrangement.Arrangement, sizes Sizes, matrix *constraint.Matrix) bool {
	n := len(arr.Outputs)
	if matrix.N() != n {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			want := matrix.At(i, j)
			if want == direction.None {
				continue
			}
			got := inducedDirection(arr, sizes, i, j)
			if got != want {
				return false
			}
		}
	}
	return true
}

func inducedDirection(arr arrangement.Arrangement, sizes Sizes, i, j int) direction.Direction {
	oi, oj := arr.Outputs[i], arr.Outputs[j]
	si, sj := sizes[oi.ID], sizes[oj.ID]
	if oi.Position.X+si.W <= oj.Position.X {
		return direction.Left
	}
	if oj.Position.X+sj.W <= oi.Position.X {
		return direction.Right
	}
	if oi.Position.Y+si.H <= oj.Position.Y {
		return direction.Above
	}
	if oj.Position.Y+sj.H <= oi.Position.Y {
		return direction.Below
	}
	return direction.None
}

// Summary renders a human-readable report, mirroring the teacher's
// pkg/validation.Summary layout.
func Summary(r Report) string {
	var b strings.Builder
	b.WriteString("=== Arrangement Validation ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}
	for i, res := range r.Results {
		status := "PASS"
		if !res.Satisfied {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %d. [%s] %s: %s\n", i+1, status, res.Name, res.Details)
	}
	return b.String()
}
