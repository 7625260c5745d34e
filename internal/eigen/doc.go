// Package eigen evaluates continuous powers of a 3x3 real matrix.
//
// An [Evaluator] factors its base matrix once into an eigenvector basis P,
// a diagonal of eigenvalues, and P inverse. Any A^t afterwards costs three
// scalar powers and one 3x3 reconstruction:
//
//   - [Evaluator.MatrixAt] builds A^t for arbitrary real t
//   - [Evaluator.Apply] maps a vector through A^t
//   - [Evaluator.ValuesAt] exposes the time-adjusted eigenvalues
//
// # Interpolation modes
//
// [ModePower] raises every eigenvalue to the real power t on the
// principal complex branch, so A^0 is the identity and A^1 recovers the
// base matrix. [ModeLinear] instead blends each eigenvalue straight from
// 1 toward its final value, (1-t) + t*lambda, which morphs the identity
// into A without the spiraling that complex powers produce.
//
// # Degenerate matrices
//
// Construction fails with [ErrNotDiagonalizable] when the decomposition
// does not converge or the eigenvector basis is singular (a Jordan block,
// for example). No operation on a successfully constructed Evaluator
// panics.
//
// Results are cached per (mode, time) with time quantized to six decimal
// digits, so repeated queries at the same instant return identical
// matrices. Evaluators are not safe for concurrent use.
package eigen
