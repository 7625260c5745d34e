package trace

import (
	"errors"
	"fmt"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

var (
	// ErrInvalidRange indicates a time window whose end does not exceed
	// its start. The caller fixes the window; no default is substituted.
	ErrInvalidRange = errors.New("trace: end time must exceed start time")

	// ErrNoEvaluator indicates the matrix is unavailable, usually
	// because its eigendecomposition failed upstream.
	ErrNoEvaluator = errors.New("trace: matrix unavailable")
)

// PathError reports the sample at which a vector's path failed. The
// whole trajectory is discarded: a partial path would render as if the
// vector stopped there.
type PathError struct {
	Vector  int
	Source  flow.Vec3
	Time    float64
	Wrapped error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("trace: vector %d (t=%.4f): %v", e.Vector, e.Time, e.Wrapped)
}

func (e *PathError) Unwrap() error {
	return e.Wrapped
}
