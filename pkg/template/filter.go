package template

import (
	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/direction"
)

// Accepts reports whether the enumerator's current template is compatible
// with every user-supplied constraint in m: for every unordered pair
// (a, b) with a < b, either C[a][b] is direction.None, or it equals the
// direction the template induces for that pair. This is strictly cheaper
// than invoking the packer, so it runs first and prunes solver calls down
// to only the templates whose topology agrees with every pinned relation
// (spec.md §4.2).
func Accepts(e *Enumerator, m *constraint.Matrix) bool {
	n := e.N()
	if m.N() != n {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			want := m.At(i, j)
			if want == direction.None {
				continue
			}
			if e.Direction(i, j) != want {
				return false
			}
		}
	}
	return true
}
