package validate

import (
	"testing"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/direction"
	"github.com/dshills/outlayd/pkg/geom"
)

func mustArrangement(t *testing.T, w, h int, positions []geom.Pair, ids []string, modes []arrangement.Mode) arrangement.Arrangement {
	t.Helper()
	arr, err := arrangement.FromSolved(w, h, positions, ids, modes)
	if err != nil {
		t.Fatal(err)
	}
	return arr
}

func TestCheckPassesValidArrangement(t *testing.T) {
	sizes := DisplaySizes([]string{"a", "b"}, []int{1920, 1920}, []int{1080, 1080})
	arr := mustArrangement(t, 3840, 1080,
		[]geom.Pair{{0, 0}, {1920, 0}}, []string{"a", "b"},
		[]arrangement.Mode{{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}})

	r := Check(arr, sizes, 0, 0, 4000, 2000, nil)
	if !r.Passed {
		t.Fatalf("expected report to pass: %+v", r.Results)
	}
}

func TestCheckDetectsOverlap(t *testing.T) {
	sizes := DisplaySizes([]string{"a", "b"}, []int{1920, 1920}, []int{1080, 1080})
	arr := mustArrangement(t, 3000, 1080,
		[]geom.Pair{{0, 0}, {1000, 0}}, []string{"a", "b"},
		[]arrangement.Mode{{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}})

	r := Check(arr, sizes, 0, 0, 4000, 2000, nil)
	if r.Passed {
		t.Fatal("expected overlap to fail validation")
	}
}

func TestCheckDetectsExceedsBounds(t *testing.T) {
	sizes := DisplaySizes([]string{"a"}, []int{1920}, []int{1080})
	arr := mustArrangement(t, 1920, 1080, []geom.Pair{{0, 0}}, []string{"a"}, []arrangement.Mode{{Width: 1920, Height: 1080}})

	r := Check(arr, sizes, 0, 0, 1800, 1080, nil)
	if r.Passed {
		t.Fatal("expected virtual screen width exceeding W_max to fail validation")
	}
}

func TestCheckDetectsViolatedConstraint(t *testing.T) {
	sizes := DisplaySizes([]string{"a", "b"}, []int{1920, 1920}, []int{1080, 1080})
	arr := mustArrangement(t, 3840, 1080,
		[]geom.Pair{{0, 0}, {1920, 0}}, []string{"a", "b"},
		[]arrangement.Mode{{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}})

	m, _ := constraint.New(2)
	_ = m.Set(0, 1, direction.Above) // arrangement actually has a left-of b

	r := Check(arr, sizes, 0, 0, 4000, 2000, m)
	if r.Passed {
		t.Fatal("expected violated constraint to fail validation")
	}
}

func TestCheckHonorsMatchingConstraint(t *testing.T) {
	sizes := DisplaySizes([]string{"a", "b"}, []int{1920, 1920}, []int{1080, 1080})
	arr := mustArrangement(t, 3840, 1080,
		[]geom.Pair{{0, 0}, {1920, 0}}, []string{"a", "b"},
		[]arrangement.Mode{{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}})

	m, _ := constraint.New(2)
	_ = m.Set(0, 1, direction.Left)

	r := Check(arr, sizes, 0, 0, 4000, 2000, m)
	if !r.Passed {
		t.Fatalf("expected matching constraint to pass validation: %+v", r.Results)
	}
}
