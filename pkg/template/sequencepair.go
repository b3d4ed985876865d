// Package template enumerates sequence-pair layout templates (spec.md
// §4.1) and filters them against a user constraint matrix (§4.2).
//
// A sequence pair is a pair of permutations (a, b) of {0..n-1} that
// together induce, for every unordered pair of rectangle indices, exactly
// one of the four directional relations. Enumerating every sequence pair
// is a complete (if superexponential) enumeration of non-overlapping
// rectangle packing topologies — the classical VLSI floorplanning
// encoding this package is named after.
package template

import (
	"fmt"

	"github.com/dshills/outlayd/pkg/direction"
)

// Enumerator produces every one of the (n!)^2 sequence-pair templates for
// n labeled rectangles, one at a time via Advance.
type Enumerator struct {
	n int
	a []int
	b []int

	// done is set once both a and b have wrapped back to identity, i.e.
	// enumeration is exhausted.
	done bool
}

// NewEnumerator returns an Enumerator positioned at the first template
// (both permutations at identity). n must be >= 0; n == 0 or n == 1
// produces exactly one template (the only one there is).
func NewEnumerator(n int) (*Enumerator, error) {
	if n < 0 {
		return nil, fmt.Errorf("template: n must be >= 0, got %d", n)
	}
	return &Enumerator{
		n: n,
		a: identityPermutation(n),
		b: identityPermutation(n),
	}, nil
}

// N returns the number of rectangles this enumerator produces templates
// for.
func (e *Enumerator) N() int { return e.n }

// Direction returns the direction of i relative to j under the
// enumerator's current sequence pair. i must differ from j. This is the
// sole definition of the induced-relation table in spec.md §3: given the
// signs of a[j]-a[i] and b[j]-b[i],
//
//	(+, +) -> i left-of j
//	(+, -) -> i above j
//	(-, +) -> i below j
//	(-, -) -> i right-of j
func (e *Enumerator) Direction(i, j int) direction.Direction {
	da := e.a[j] - e.a[i]
	db := e.b[j] - e.b[i]
	switch {
	case da > 0 && db > 0:
		return direction.Left
	case da > 0 && db < 0:
		return direction.Above
	case da < 0 && db > 0:
		return direction.Below
	default:
		return direction.Right
	}
}

// A returns a copy of the current 'a' permutation.
func (e *Enumerator) A() []int {
	out := make([]int, len(e.a))
	copy(out, e.a)
	return out
}

// B returns a copy of the current 'b' permutation.
func (e *Enumerator) B() []int {
	out := make([]int, len(e.b))
	copy(out, e.b)
	return out
}

// Advance moves the enumerator to the next template and reports whether
// one exists. It advances 'a' to its next lexicographic permutation; if
// that wraps back to identity (meaning 'a' was at its last permutation),
// it instead advances 'b' and resets 'a' to identity. Enumeration is
// complete — Advance returns false — once 'b' itself would wrap, i.e.
// after exactly (n!)^2 templates have been produced in total (including
// the initial one NewEnumerator already positions at).
func (e *Enumerator) Advance() bool {
	if e.done {
		return false
	}
	if e.n <= 1 {
		// A single identity permutation is the only permutation there is;
		// there is exactly one template for n <= 1.
		e.done = true
		return false
	}

	if nextPermutation(e.a) {
		return true
	}
	// 'a' wrapped back to identity; roll 'b' forward.
	if nextPermutation(e.b) {
		return true
	}
	// 'b' also wrapped: every (n!)^2 template has been visited.
	e.done = true
	return false
}
