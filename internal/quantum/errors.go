package quantum

import "errors"

// Domain errors for solve operations.
var (
	// ErrInvalidParameter indicates shape or solver parameters outside their
	// valid range (non-positive step count, inverted bounds, NaN amplitude,
	// state count outside the matrix dimension).
	ErrInvalidParameter = errors.New("quantum: invalid parameter")

	// ErrNonConvergence indicates the eigensolver exhausted its iteration
	// budget without reducing the matrix to diagonal form. No partial
	// results accompany it.
	ErrNonConvergence = errors.New("quantum: eigensolver did not converge")
)
