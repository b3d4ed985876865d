package packer

import (
	"github.com/dshills/outlayd/pkg/direction"
	"github.com/dshills/outlayd/pkg/geom"
)

// objective evaluates spec.md §4.3's O for a solved (x, y) position pair:
//
//	O = sum over ordered relations of gap_coef * (leading_edge_of_far - trailing_edge_of_near)
//	  + sum over ordered relations of center_coef * M_p
//
// For a pair ordered on X (Left/Right), the gap term is the X separation
// between the adjacent edges and M_p is the Y center distance; for a
// pair ordered on Y it is the mirror image.
func objective(n int, tmpl Template, x, y []int, sizes []geom.Size, coef Coefficients) int {
	total := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch tmpl.Direction(i, j) {
			case direction.Left:
				total += gapAndCenter(i, j, x, y, sizes, coef, true)
			case direction.Right:
				total += gapAndCenter(j, i, x, y, sizes, coef, true)
			case direction.Above:
				total += gapAndCenter(i, j, y, x, sizes, coef, false)
			case direction.Below:
				total += gapAndCenter(j, i, y, x, sizes, coef, false)
			}
		}
	}
	return total
}

// gapAndCenter computes gap_coef*(gap) + center_coef*M_p for one ordered
// pair (near, far) where near precedes far along the ordering axis.
// orderPos/orthoPos are indexed by display; orderedIsX reports whether
// the ordering axis is X (so the orthogonal/center axis is Y) or vice
// versa — it selects which size component (W or H) is used as the
// "leading edge" extent along the ordering axis, and the other one for
// the centers on the orthogonal axis.
func gapAndCenter(near, far int, orderPos, orthoPos []int, sizes []geom.Size, coef Coefficients, orderedIsX bool) int {
	var nearExtent int
	if orderedIsX {
		nearExtent = sizes[near].W
	} else {
		nearExtent = sizes[near].H
	}
	gap := orderPos[far] - (orderPos[near] + nearExtent)

	var nearOrthoSize, farOrthoSize int
	if orderedIsX {
		nearOrthoSize, farOrthoSize = sizes[near].H, sizes[far].H
	} else {
		nearOrthoSize, farOrthoSize = sizes[near].W, sizes[far].W
	}
	nearCenter2 := 2*orthoPos[near] + nearOrthoSize
	farCenter2 := 2*orthoPos[far] + farOrthoSize
	m := nearCenter2 - farCenter2
	if m < 0 {
		m = -m
	}
	// m is in doubled units (2x); halve with rounding since M_p is an
	// absolute integer distance in the linearization.
	m = (m + 1) / 2

	return coef.Gap*gap + coef.Center*m
}
