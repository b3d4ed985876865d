package store

import (
	"path/filepath"
	"testing"

	"github.com/dshills/outlayd/pkg/arrangement"
	"github.com/dshills/outlayd/pkg/geom"
)

func TestFingerprintPrefersEDIDFallsBackToID(t *testing.T) {
	fp := Fingerprint([]Output{
		{ID: "DP-2", EDID: ""},
		{ID: "DP-1", EDID: "deadbeef"},
	})
	if fp != "DP-2|deadbeef" {
		t.Errorf("Fingerprint = %q, want sorted join", fp)
	}
}

func TestFingerprintDeterministicRegardlessOfInputOrder(t *testing.T) {
	a := Fingerprint([]Output{{ID: "x", EDID: "aaa"}, {ID: "y", EDID: "bbb"}})
	b := Fingerprint([]Output{{ID: "y", EDID: "bbb"}, {ID: "x", EDID: "aaa"}})
	if a != b {
		t.Errorf("Fingerprint not order-independent: %q vs %q", a, b)
	}
}

func TestCompactKeyDeterministicAndDistinct(t *testing.T) {
	k1 := CompactKey("a|b")
	k2 := CompactKey("a|b")
	k3 := CompactKey("a|c")
	if k1 != k2 {
		t.Error("CompactKey not deterministic")
	}
	if k1 == k3 {
		t.Error("CompactKey collided for distinct fingerprints")
	}
	if len(k1) != 64 {
		t.Errorf("CompactKey length = %d, want 64 (hex SHA-256)", len(k1))
	}
}

func TestStoreOpenMissingFileIsEmpty(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("anything"); ok {
		t.Fatal("expected empty store for a missing file")
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	arr, err := arrangement.FromSolved(3840, 1080,
		[]geom.Pair{{0, 0}, {1920, 0}}, []string{"DP-1", "DP-2"},
		[]arrangement.Mode{{Width: 1920, Height: 1080}, {Width: 1920, Height: 1080}})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("fp-1", arr); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := reopened.Get("fp-1")
	if !ok {
		t.Fatal("expected stored arrangement to round-trip through disk")
	}
	if !got.Equal(arr) {
		t.Errorf("round-tripped arrangement differs: %+v vs %+v", got, arr)
	}
}

func TestStorePutPersistsAcrossMultipleKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	arr1, _ := arrangement.FromSolved(100, 100, []geom.Pair{{0, 0}}, []string{"a"}, []arrangement.Mode{{Width: 100, Height: 100}})
	arr2, _ := arrangement.FromSolved(200, 200, []geom.Pair{{0, 0}}, []string{"b"}, []arrangement.Mode{{Width: 200, Height: 200}})
	if err := s.Put("fp-1", arr1); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("fp-2", arr2); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := reopened.Get("fp-1"); !ok || !got.Equal(arr1) {
		t.Error("fp-1 did not survive a second Put")
	}
	if got, ok := reopened.Get("fp-2"); !ok || !got.Equal(arr2) {
		t.Error("fp-2 missing after round trip")
	}
}
