// Package hamiltonian assembles the symmetric matrices fed to the
// eigensolver. Two constructions are available:
//
//   - [BuildCoupling]: a legacy basis-coupling scheme kept for
//     compatibility with earlier results. It has no physical derivation.
//   - [BuildFiniteDifference]: the standard second-order central-difference
//     discretization of -d^2/dx^2 + V(x) over the interior grid points,
//     with Dirichlet walls implied by the boundary sentinels. This is the
//     default used by the solve pipeline.
//
// Units are hbar^2/2m = 1 throughout.
package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/avirni/qwell/internal/quantum"
)

// BuildCoupling builds the states x states legacy matrix
//
//	H[r][c] = width * V[r] * V[c]      (off-diagonal)
//	H[r][r] = width * V[r] * V[r] - sum(V)
//
// from the leading entries of the potential sequence. states must lie in
// [1, len(v)].
func BuildCoupling(v quantum.Potential, width float64, states int) (*mat.SymDense, error) {
	if states < 1 || states > len(v) {
		return nil, fmt.Errorf("%w: states %d outside [1, %d]", quantum.ErrInvalidParameter, states, len(v))
	}

	sum := v.Sum()
	h := mat.NewSymDense(states, nil)
	for r := 0; r < states; r++ {
		for c := r; c < states; c++ {
			val := width * v[r] * v[c]
			if r == c {
				val -= sum
			}
			h.SetSym(r, c, val)
		}
	}
	return h, nil
}

// BuildFiniteDifference builds the interior-point kinetic+potential
// operator for the profile: (2/dx^2 + V_i) on the diagonal, -1/dx^2 on the
// first off-diagonals. The boundary walls drop out as zero Dirichlet
// conditions, so the matrix has dimension Len()-2.
func BuildFiniteDifference(p quantum.Profile) (*mat.SymDense, error) {
	n := p.Len() - 2
	if n < 1 {
		return nil, fmt.Errorf("%w: profile has no interior points", quantum.ErrInvalidParameter)
	}
	if !p.X.IsStrictlyIncreasing() {
		return nil, fmt.Errorf("%w: grid not strictly increasing", quantum.ErrInvalidParameter)
	}

	dx := p.X.Spacing()
	inv := 1 / (dx * dx)

	h := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		h.SetSym(i, i, 2*inv+p.V[i+1])
		if i+1 < n {
			h.SetSym(i, i+1, -inv)
		}
	}
	return h, nil
}
