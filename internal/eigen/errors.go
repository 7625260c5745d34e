package eigen

import "errors"

var (
	// ErrNotDiagonalizable indicates the base matrix has no invertible
	// eigenvector basis: the decomposition failed to converge, or a
	// repeated eigenvalue left the eigenspace deficient.
	ErrNotDiagonalizable = errors.New("eigen: matrix is not diagonalizable")

	// ErrNonFiniteTime indicates a NaN or infinite time parameter.
	ErrNonFiniteTime = errors.New("eigen: time parameter is not finite")
)
