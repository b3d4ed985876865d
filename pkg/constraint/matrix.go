// Package constraint holds the user/inferred pairwise Direction matrix that
// the layout engine's template filter and solver consult, plus the
// Normalizer that converts between absolute positions and this relational
// model at the system boundary.
package constraint

import (
	"fmt"

	"github.com/dshills/outlayd/pkg/direction"
)

// Matrix is an n x n table of Directions, symmetric under inversion:
// M.At(i,j) == M.At(j,i).Inv() for all i, j, and M.At(i,i) == direction.None.
// It is stored densely for simple indexing (spec §9 permits either a dense
// or triangular representation; dense keeps At/Set trivial).
type Matrix struct {
	n    int
	rels []direction.Direction
}

// New returns an n x n Matrix with every entry set to direction.None.
func New(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("constraint: n must be >= 0, got %d", n)
	}
	return &Matrix{n: n, rels: make([]direction.Direction, n*n)}, nil
}

// N returns the dimension of the matrix.
func (m *Matrix) N() int { return m.n }

func (m *Matrix) index(i, j int) int { return i*m.n + j }

// At returns the direction of i relative to j. The caller is responsible
// for i, j being in [0, N).
func (m *Matrix) At(i, j int) direction.Direction {
	return m.rels[m.index(i, j)]
}

// Set records that i is d relative to j, and keeps the inverse entry (j
// relative to i) consistent automatically.
func (m *Matrix) Set(i, j int, d direction.Direction) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("constraint: index (%d,%d) out of range for %dx%d matrix", i, j, m.n, m.n)
	}
	if i == j {
		if d != direction.None {
			return fmt.Errorf("constraint: diagonal entry (%d,%d) must be None, got %v", i, j, d)
		}
		return nil
	}
	m.rels[m.index(i, j)] = d
	m.rels[m.index(j, i)] = d.Inv()
	return nil
}

// Validate checks that the matrix is well-formed: square, symmetric under
// inversion, a None diagonal, and every entry a valid Direction. This is
// the "malformed matrix" precondition check described in spec.md §7.
func (m *Matrix) Validate() error {
	for i := 0; i < m.n; i++ {
		if m.At(i, i) != direction.None {
			return fmt.Errorf("constraint: diagonal entry (%d,%d) must be None, got %v", i, i, m.At(i, i))
		}
		for j := 0; j < m.n; j++ {
			d := m.At(i, j)
			if !d.Valid() {
				return fmt.Errorf("constraint: entry (%d,%d) is not a valid direction: %v", i, j, d)
			}
			if i == j {
				continue
			}
			if m.At(j, i) != d.Inv() {
				return fmt.Errorf("constraint: entry (%d,%d)=%v is not the inverse of (%d,%d)=%v", i, j, d, j, i, m.At(j, i))
			}
		}
	}
	return nil
}

// FromRows builds a Matrix from a dense n x n slice of Directions, useful
// for tests and literal construction. The diagonal and symmetry are
// enforced through Set, so an inconsistent input row order is corrected
// automatically for off-diagonal pairs processed later — callers should
// still prefer a self-consistent input.
func FromRows(rows [][]direction.Direction) (*Matrix, error) {
	n := len(rows)
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("constraint: row %d has length %d, want %d", i, len(rows[i]), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i >= j {
				continue
			}
			if err := m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
