package geom

import "testing"

func TestPairAdd(t *testing.T) {
	got := Pair{X: 1, Y: 2}.Add(Pair{X: 3, Y: 4})
	want := Pair{X: 4, Y: 6}
	if got != want {
		t.Fatalf("Add() = %v, want %v", got, want)
	}
}

func TestPairLess(t *testing.T) {
	cases := []struct {
		a, b Pair
		want bool
	}{
		{Pair{0, 0}, Pair{1, 0}, true},
		{Pair{1, 0}, Pair{0, 0}, false},
		{Pair{1, 1}, Pair{1, 2}, true},
		{Pair{1, 2}, Pair{1, 1}, false},
		{Pair{1, 1}, Pair{1, 1}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSizeValidate(t *testing.T) {
	if err := (Size{W: 1920, H: 1080}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Size{W: 0, H: 1080}).Validate(); err == nil {
		t.Fatal("expected error for zero width")
	}
	if err := (Size{W: 1920, H: -1}).Validate(); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{Pos: Pair{0, 0}, Size: Size{W: 100, H: 100}}
	b := Rect{Pos: Pair{50, 50}, Size: Size{W: 100, H: 100}}
	if !a.Overlaps(b) {
		t.Fatal("expected overlap")
	}

	c := Rect{Pos: Pair{100, 0}, Size: Size{W: 100, H: 100}}
	if a.Overlaps(c) {
		t.Fatal("edge-touching rectangles should not count as overlapping")
	}

	d := Rect{Pos: Pair{0, 100}, Size: Size{W: 100, H: 100}}
	if a.Overlaps(d) {
		t.Fatal("edge-touching rectangles (Y axis) should not count as overlapping")
	}
}

func TestRectInside(t *testing.T) {
	r := Rect{Pos: Pair{10, 10}, Size: Size{W: 50, H: 50}}
	if !r.Inside(60, 60) {
		t.Fatal("expected rect to be inside bounds")
	}
	if r.Inside(59, 60) {
		t.Fatal("expected rect to exceed width bound")
	}
	if r.Inside(60, 59) {
		t.Fatal("expected rect to exceed height bound")
	}
}

func TestRectCenters(t *testing.T) {
	r := Rect{Pos: Pair{0, 0}, Size: Size{W: 10, H: 21}}
	if r.CenterX2() != 10 {
		t.Errorf("CenterX2() = %d, want 10", r.CenterX2())
	}
	if r.CenterY2() != 21 {
		t.Errorf("CenterY2() = %d, want 21", r.CenterY2())
	}
}
