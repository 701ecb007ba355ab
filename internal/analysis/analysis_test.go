package analysis

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	psi := []float64{1, 2, 2, 1}
	dx := 0.5

	out := Normalize(psi, dx)

	norm := 0.0
	for _, c := range out {
		norm += c * c * dx
	}
	if math.Abs(norm-1) > 1e-12 {
		t.Errorf("normalized squared sum = %g, want 1", norm)
	}

	// Original slice untouched.
	if psi[0] != 1 {
		t.Error("input mutated")
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	out := Normalize([]float64{0, 0, 0}, 0.1)
	for _, c := range out {
		if c != 0 {
			t.Error("expected zero vector to pass through")
		}
	}
}

func TestExpectationXSymmetric(t *testing.T) {
	// Symmetric density on a symmetric grid centers at zero.
	x := []float64{-2, -1, 0, 1, 2}
	psi := []float64{0.1, 0.5, 1.0, 0.5, 0.1}

	if got := ExpectationX(x, psi, 1); math.Abs(got) > 1e-12 {
		t.Errorf("<x> = %g, want 0", got)
	}
}

func TestNodeCount(t *testing.T) {
	n := 101
	for mode := 1; mode <= 4; mode++ {
		psi := make([]float64, n)
		for i := range psi {
			psi[i] = math.Sin(float64(mode) * math.Pi * float64(i) / float64(n-1))
		}
		if got := NodeCount(psi); got != mode-1 {
			t.Errorf("mode %d: node count %d, want %d", mode, got, mode-1)
		}
	}
}

func TestSpacings(t *testing.T) {
	got := Spacings([]float64{1, 4, 9, 16})
	want := []float64{3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("expected %d spacings, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("spacing[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	if len(Spacings([]float64{5})) != 0 {
		t.Error("single level should have no spacings")
	}

	if m := MeanSpacing([]float64{1, 4, 9, 16}); math.Abs(m-5) > 1e-12 {
		t.Errorf("mean spacing = %g, want 5", m)
	}
}
