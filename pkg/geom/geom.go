// Package geom provides the low-level geometric primitives shared by the
// layout engine: integer coordinate pairs, sizes, and axis-aligned
// rectangles.
package geom

import "fmt"

// Pair is an ordered pair of integers, used for positions (x, y). Sizes
// use the separate Size type.
type Pair struct {
	X int
	Y int
}

// Add returns the componentwise sum of p and q.
func (p Pair) Add(q Pair) Pair {
	return Pair{X: p.X + q.X, Y: p.Y + q.Y}
}

// Less reports whether p sorts before q in lexicographic order (X first,
// then Y). It is used to break ties between otherwise-equal candidate
// solutions.
func (p Pair) Less(q Pair) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// String implements fmt.Stringer.
func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair in pixels. Both components must be positive
// for any display entering the layout engine.
type Size struct {
	W int
	H int
}

// Validate reports an error if the size is not strictly positive in both
// dimensions.
func (s Size) Validate() error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("size must be positive in both dimensions, got %dx%d", s.W, s.H)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Pos  Pair
	Size Size
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() int { return r.Pos.X + r.Size.W }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Pos.Y + r.Size.H }

// CenterX2 returns twice the X coordinate of the rectangle's center.
// Centers are computed at double resolution (2*coordinate) so that the
// midpoint of an odd-width rectangle stays an exact integer comparison
// without resorting to floating point.
func (r Rect) CenterX2() int { return 2*r.Pos.X + r.Size.W }

// CenterY2 returns twice the Y coordinate of the rectangle's center, for
// the same reason as CenterX2.
func (r Rect) CenterY2() int { return 2*r.Pos.Y + r.Size.H }

// Overlaps reports whether r and other share any interior area. Edge
// contact (touching but not overlapping) does not count as an overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Right() <= other.Pos.X || other.Right() <= r.Pos.X {
		return false
	}
	if r.Bottom() <= other.Pos.Y || other.Bottom() <= r.Pos.Y {
		return false
	}
	return true
}

// Inside reports whether r lies entirely within [0,W] x [0,H].
func (r Rect) Inside(w, h int) bool {
	return r.Pos.X >= 0 && r.Pos.Y >= 0 && r.Right() <= w && r.Bottom() <= h
}
