// Package integration exercises the full compute_layout pipeline end to
// end: solving a layout, validating it, persisting it to a store, and
// recalling it by fingerprint both from the same store and from a fresh
// Open of the store file, the same full-pipeline shape the teacher's
// test/integration package used for dungeon generation.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/constraint"
	"github.com/dshills/outlayd/pkg/geom"
	"github.com/dshills/outlayd/pkg/packer"
	"github.com/dshills/outlayd/pkg/search"
	"github.com/dshills/outlayd/pkg/store"
	"github.com/dshills/outlayd/pkg/validate"
)

func TestIntegration_SolveValidateStoreRoundTrip(t *testing.T) {
	sizes := []geom.Size{
		{W: 1920, H: 1080},
		{W: 1920, H: 1080},
		{W: 1280, H: 1024},
	}
	bounds := packer.Bounds{WMax: 7680, HMax: 4320}
	m, err := constraint.New(len(sizes))
	if err != nil {
		t.Fatal(err)
	}
	coef := packer.Coefficients{Gap: 1, Center: 1}

	layout, ok, err := search.ComputeLayout(sizes, bounds, m, coef)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a layout to exist for three displays within generous bounds")
	}

	ids := []string{"DP-1", "DP-2", "DP-3"}
	modes := []arrangement.Mode{
		{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}, {Width: 1280, Height: 1024},
	}
	arr, err := arrangement.FromSolved(layout.W, layout.H, layout.Positions, ids, modes)
	if err != nil {
		t.Fatal(err)
	}

	vs := validate.DisplaySizes(ids, []int{1920, 1920, 1280}, []int{1080, 1080, 1024})
	report := validate.Check(arr, vs, 0, 0, bounds.WMax, bounds.HMax, m)
	if !report.Passed {
		t.Fatalf("validation failed: %s", validate.Summary(report))
	}

	storePath := filepath.Join(t.TempDir(), "store.json")
	st, err := store.Open(storePath)
	if err != nil {
		t.Fatal(err)
	}
	fp := store.Fingerprint([]store.Output{{ID: "DP-1"}, {ID: "DP-2"}, {ID: "DP-3"}})
	if err := st.Put(fp, arr); err != nil {
		t.Fatal(err)
	}

	recalled, ok := st.Get(fp)
	if !ok {
		t.Fatal("expected the just-stored fingerprint to be recallable")
	}
	if !recalled.Equal(arr) {
		t.Fatalf("recalled arrangement differs from the one stored: got %+v, want %+v", recalled, arr)
	}

	reopened, err := store.Open(storePath)
	if err != nil {
		t.Fatal(err)
	}
	again, ok := reopened.Get(fp)
	if !ok || !again.Equal(arr) {
		t.Fatal("arrangement did not survive a fresh Open of the same store file")
	}
}
