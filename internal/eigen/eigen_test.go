package eigen

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSolveDiagonal(t *testing.T) {
	h := mat.NewSymDense(3, nil)
	h.SetSym(0, 0, 2)
	h.SetSym(1, 1, 3)
	h.SetSym(2, 2, 1)

	s, err := Solve(h)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	want := []float64{1, 2, 3}
	for i, v := range s.Values {
		if math.Abs(v-want[i]) > 1e-12 {
			t.Errorf("eigenvalue[%d] = %g, want %g", i, v, want[i])
		}
	}
	if !s.IsAscending() {
		t.Error("eigenvalues not ascending")
	}

	// Eigenvectors of a diagonal matrix are the standard basis, up to sign
	// and the ascending reordering: value 1 came from row 2, and so on.
	basisIndex := []int{2, 0, 1}
	for k, vec := range s.Vectors {
		for i, c := range vec {
			want := 0.0
			if i == basisIndex[k] {
				want = 1
			}
			if math.Abs(math.Abs(c)-want) > 1e-12 {
				t.Errorf("vector %d component %d = %g, want +/-%g", k, i, c, want)
			}
		}
	}
}

func TestSolveOrthonormalVectors(t *testing.T) {
	h := randomSymmetric(8, 42)

	s, err := Solve(h)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	for a := 0; a < s.States(); a++ {
		for b := a; b < s.States(); b++ {
			dot := 0.0
			for i := range s.Vectors[a] {
				dot += s.Vectors[a][i] * s.Vectors[b][i]
			}
			want := 0.0
			if a == b {
				want = 1
			}
			if math.Abs(dot-want) > 1e-10 {
				t.Errorf("<v%d, v%d> = %g, want %g", a, b, dot, want)
			}
		}
	}
}

func TestSolveRoundTrip(t *testing.T) {
	for _, seed := range []int64{1, 7, 1234} {
		h := randomSymmetric(6, seed)

		s, err := Solve(h)
		if err != nil {
			t.Fatalf("solve failed: %v", err)
		}

		rebuilt := Reconstruct(s)
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if diff := math.Abs(rebuilt.At(i, j) - h.At(i, j)); diff > 1e-9 {
					t.Errorf("seed %d: reconstruction off by %g at (%d,%d)", seed, diff, i, j)
				}
			}
		}
	}
}

func randomSymmetric(n int, seed int64) *mat.SymDense {
	rng := rand.New(rand.NewSource(seed))
	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h.SetSym(i, j, rng.NormFloat64())
		}
	}
	return h
}
