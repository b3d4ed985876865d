package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dshills/outlayd/pkg/arrangement"
)

func TestExportSVGProducesWellFormedDocument(t *testing.T) {
	arr := sampleArrangement(t)
	data, err := ExportSVG(arr, DefaultSVGOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("output does not contain an <svg> tag")
	}
	if !bytes.Contains(data, []byte("</svg>")) {
		t.Error("output is not closed with </svg>")
	}
	if !bytes.Contains(data, []byte("DP-1")) || !bytes.Contains(data, []byte("DP-2")) {
		t.Error("output should label both outputs by ID")
	}
}

func TestExportSVGRejectsEmptyArrangement(t *testing.T) {
	_, err := ExportSVG(arrangement.Arrangement{}, DefaultSVGOptions())
	if err == nil {
		t.Fatal("expected an error for an arrangement with no outputs")
	}
}

func TestSaveSVGToFileWritesFile(t *testing.T) {
	arr := sampleArrangement(t)
	path := filepath.Join(t.TempDir(), "arrangement.svg")
	if err := SaveSVGToFile(arr, path, DefaultSVGOptions()); err != nil {
		t.Fatal(err)
	}
}

func TestAutoScaleFitsWithinBounds(t *testing.T) {
	s := autoScale(7680, 2160, 1200, 900, 40)
	if s <= 0 {
		t.Fatalf("autoScale returned non-positive scale: %v", s)
	}
	scaledW := float64(7680)*s + 80
	scaledH := float64(2160)*s + 80 + 40
	if scaledW > 1200+1 || scaledH > 900+1 {
		t.Errorf("scaled canvas %vx%v exceeds bounds 1200x900", scaledW, scaledH)
	}
}
