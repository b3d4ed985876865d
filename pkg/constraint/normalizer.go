package constraint

import (
	"errors"

	"github.com/dshills/outlayd/pkg/direction"
	"github.com/dshills/outlayd/pkg/geom"
)

// ErrUnsupportedArrangement is returned by FromPositions when two
// rectangles overlap on both axes (overlap, mirror, or clone) — spec.md
// §4.5 treats this as non-learnable: the caller keeps its previous state.
var ErrUnsupportedArrangement = errors.New("constraint: arrangement has overlapping displays, not learnable")

// FromPositions converts an absolute-coordinate arrangement (one Rect per
// display, same order as the caller's display list) into a Matrix of
// induced Directions. This is the "learn from manual edit" boundary
// described in spec.md §4.5.1 and §6.
//
// For each unordered pair, both axis separations are examined. If the
// rectangles are separated on exactly one axis, that axis decides the
// direction. If separated on both, the axis with the larger gap wins,
// with X preferred on an exact tie. If separated on neither axis (an
// overlap), the whole arrangement is reported unsupported.
func FromPositions(rects []geom.Rect) (*Matrix, error) {
	n := len(rects)
	m, err := New(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := inducedPairDirection(rects[i], rects[j])
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, d); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// inducedPairDirection computes the Direction of a relative to b from
// their absolute rectangles, per the tie-break rule in spec.md §4.5.1.
func inducedPairDirection(a, b geom.Rect) (direction.Direction, error) {
	gapX, sepX := axisGap(a.Pos.X, a.Right(), b.Pos.X, b.Right())
	gapY, sepY := axisGap(a.Pos.Y, a.Bottom(), b.Pos.Y, b.Bottom())

	switch {
	case !sepX && !sepY:
		return direction.None, ErrUnsupportedArrangement
	case sepX && !sepY:
		return xDirection(a, b), nil
	case !sepX && sepY:
		return yDirection(a, b), nil
	default:
		// Separated on both axes: prefer the larger gap, X on a tie.
		if gapX >= gapY {
			return xDirection(a, b), nil
		}
		return yDirection(a, b), nil
	}
}

// axisGap reports whether [aLo,aHi) and [bLo,bHi) are separated (touching
// counts as separated, since the packer's separating inequalities are
// non-strict) along one axis, and if so, the size of the gap (0 when the
// edges merely touch).
func axisGap(aLo, aHi, bLo, bHi int) (gap int, separated bool) {
	if aHi <= bLo {
		return bLo - aHi, true
	}
	if bHi <= aLo {
		return aLo - bHi, true
	}
	return 0, false
}

func xDirection(a, b geom.Rect) direction.Direction {
	if a.Right() <= b.Pos.X {
		return direction.Left
	}
	return direction.Right
}

func yDirection(a, b geom.Rect) direction.Direction {
	if a.Bottom() <= b.Pos.Y {
		return direction.Above
	}
	return direction.Below
}
