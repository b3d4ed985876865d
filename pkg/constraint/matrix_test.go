package constraint

import (
	"testing"

	"github.com/dshills/outlayd/pkg/direction"
	"pgregory.net/rapid"
)

func TestNewMatrixAllNone(t *testing.T) {
	m, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if m.At(i, j) != direction.None {
				t.Errorf("At(%d,%d) = %v, want None", i, j, m.At(i, j))
			}
		}
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSetKeepsInverseConsistent(t *testing.T) {
	m, _ := New(2)
	if err := m.Set(0, 1, direction.Left); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := m.At(1, 0); got != direction.Right {
		t.Errorf("At(1,0) = %v, want Right", got)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSetDiagonalMustBeNone(t *testing.T) {
	m, _ := New(2)
	if err := m.Set(0, 0, direction.Left); err == nil {
		t.Fatal("expected error setting non-None diagonal")
	}
}

func TestSetOutOfRange(t *testing.T) {
	m, _ := New(2)
	if err := m.Set(0, 5, direction.Left); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestFromRows(t *testing.T) {
	rows := [][]direction.Direction{
		{direction.None, direction.Left},
		{direction.Right, direction.None},
	}
	m, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if m.At(0, 1) != direction.Left {
		t.Errorf("At(0,1) = %v, want Left", m.At(0, 1))
	}
	if m.At(1, 0) != direction.Right {
		t.Errorf("At(1,0) = %v, want Right", m.At(1, 0))
	}
}

func TestValidateRejectsAsymmetry(t *testing.T) {
	m, _ := New(2)
	// Set one entry, then bypass Set to corrupt its inverse directly.
	_ = m.Set(0, 1, direction.Left)
	m.rels[m.index(1, 0)] = direction.Left // now inconsistent with Inv(Left)=Right
	if err := m.Validate(); err == nil {
		t.Fatal("expected Validate to reject asymmetric matrix")
	}
}

func TestMatrixPropertySymmetricUnderInversion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "n")
		m, err := New(n)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		dirGen := rapid.SampledFrom([]direction.Direction{
			direction.None, direction.Left, direction.Right, direction.Above, direction.Below,
		})
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := dirGen.Draw(t, "d")
				if err := m.Set(i, j, d); err != nil {
					t.Fatalf("Set(%d,%d,%v): %v", i, j, d, err)
				}
			}
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("Validate: %v", err)
		}
	})
}
