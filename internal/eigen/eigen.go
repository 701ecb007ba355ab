// Package eigen wraps the real-symmetric eigen-decomposition behind the
// solve pipeline. It delegates to gonum's EigenSym (Householder
// tridiagonalization followed by implicit QL), which returns eigenvalues
// in ascending order with orthonormal eigenvectors.
package eigen

import (
	"gonum.org/v1/gonum/mat"

	"github.com/avirni/qwell/internal/quantum"
)

// Solve diagonalizes h. On a failed factorization it returns
// quantum.ErrNonConvergence and no partial results.
func Solve(h *mat.SymDense) (quantum.Spectrum, error) {
	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return quantum.Spectrum{}, quantum.ErrNonConvergence
	}

	n, _ := h.Dims()
	values := make([]float64, n)
	es.Values(values)

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	vectors := make([][]float64, n)
	for k := 0; k < n; k++ {
		col := make([]float64, n)
		mat.Col(col, k, &vecs)
		vectors[k] = col
	}

	return quantum.Spectrum{Values: values, Vectors: vectors}, nil
}

// Reconstruct rebuilds V * diag(values) * V^T from a spectrum. Used by
// tests to verify the decomposition round-trips.
func Reconstruct(s quantum.Spectrum) *mat.Dense {
	n := s.States()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += s.Values[k] * s.Vectors[k][i] * s.Vectors[k][j]
			}
			out.Set(i, j, sum)
		}
	}
	return out
}
