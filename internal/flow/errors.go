package flow

import "errors"

// ErrNearSingular indicates a determinant too close to zero for
// determinant-based normalization. Callers keep the original matrix and
// surface the condition as a warning rather than aborting.
var ErrNearSingular = errors.New("flow: determinant too close to zero to normalize")
