package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/flow"
)

// Mode selects how the evaluator interpolates between the identity at
// t=0 and the base matrix at t=1.
type Mode string

const (
	// ModePower raises each eigenvalue to the power t (true A^t).
	ModePower Mode = "power"
	// ModeLinear blends each eigenvalue linearly from 1 toward its
	// full value.
	ModeLinear Mode = "linear"
)

// singularTol bounds |det P| from below; an eigenvector basis with a
// smaller determinant is treated as deficient.
const singularTol = 1e-12

// timeScale quantizes cache keys to six decimal digits of t.
const timeScale = 1e6

type cacheKey struct {
	mode Mode
	t    int64
}

// Evaluator computes continuous powers A^t of a fixed 3x3 matrix from a
// single eigendecomposition A = P D P⁻¹. Construction does all the
// expensive work; per-time evaluation is three scalar powers and one
// reconstruction, memoized per quantized time.
type Evaluator struct {
	base   flow.Mat3
	values [3]Value
	p      [3][3]complex128
	pinv   [3][3]complex128
	cache  map[cacheKey]flow.Mat3
}

// New factors m and returns an evaluator for its continuous powers. It
// fails with ErrNotDiagonalizable when the decomposition does not
// converge or the eigenvector basis cannot be inverted.
func New(m flow.Mat3) (*Evaluator, error) {
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data = append(data, m[i][j])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(3, 3, data), mat.EigenRight); !ok {
		return nil, fmt.Errorf("%w: decomposition did not converge", ErrNotDiagonalizable)
	}

	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	var p [3][3]complex128
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = vecs.At(i, j)
		}
	}

	pinv, ok := invert3(p)
	if !ok {
		return nil, fmt.Errorf("%w: eigenvector basis is singular", ErrNotDiagonalizable)
	}

	e := &Evaluator{
		base:  m,
		p:     p,
		pinv:  pinv,
		cache: make(map[cacheKey]flow.Mat3),
	}
	for i, v := range eig.Values(nil) {
		e.values[i] = FromComplex(v)
	}
	return e, nil
}

// Base returns the matrix the evaluator was built from.
func (e *Evaluator) Base() flow.Mat3 {
	return e.base
}

// Values returns the eigenvalues of the base matrix in decomposition
// order.
func (e *Evaluator) Values() [3]Value {
	return e.values
}

// ValuesAt returns the time-adjusted eigenvalues that form the diagonal
// of the interpolated matrix at time t.
func (e *Evaluator) ValuesAt(t float64, mode Mode) ([3]Value, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return [3]Value{}, ErrNonFiniteTime
	}
	return e.diagonal(t, mode), nil
}

// MatrixAt returns the interpolated matrix at time t. t=0 yields the
// identity and t=1 the base matrix in either mode; values outside [0,1]
// extrapolate. Results are memoized with t quantized to six decimal
// digits, so a repeated query returns a bit-identical matrix.
func (e *Evaluator) MatrixAt(t float64, mode Mode) (flow.Mat3, error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return flow.Mat3{}, ErrNonFiniteTime
	}

	key := cacheKey{mode: mode, t: int64(math.Round(t * timeScale))}
	if m, ok := e.cache[key]; ok {
		return m, nil
	}

	m := e.reconstruct(e.diagonal(t, mode))
	e.cache[key] = m
	return m, nil
}

// Apply maps v through the interpolated matrix at time t.
func (e *Evaluator) Apply(t float64, v flow.Vec3, mode Mode) (flow.Vec3, error) {
	m, err := e.MatrixAt(t, mode)
	if err != nil {
		return flow.Vec3{}, err
	}
	return m.MulVec(v), nil
}

// CacheSize reports how many (mode, time) entries are memoized.
func (e *Evaluator) CacheSize() int {
	return len(e.cache)
}

func (e *Evaluator) diagonal(t float64, mode Mode) [3]Value {
	var d [3]Value
	for i, v := range e.values {
		if mode == ModeLinear {
			d[i] = v.BlendT(t)
		} else {
			d[i] = v.PowT(t)
		}
	}
	return d
}

// reconstruct assembles P D P⁻¹ for the given diagonal and keeps the real
// component of every entry. For a real base matrix the conjugate pairs
// cancel and the imaginary residue is floating-point noise.
func (e *Evaluator) reconstruct(d [3]Value) flow.Mat3 {
	var out flow.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum complex128
			for k := 0; k < 3; k++ {
				sum += e.p[i][k] * d[k].C() * e.pinv[k][j]
			}
			out[i][j] = real(sum)
		}
	}
	return out
}

// invert3 inverts a 3x3 complex matrix by cofactor expansion. ok is
// false when the determinant magnitude falls below singularTol.
func invert3(m [3][3]complex128) (inv [3][3]complex128, ok bool) {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if cmplx.Abs(det) < singularTol {
		return inv, false
	}

	s := 1 / det
	inv[0][0] = c00 * s
	inv[1][0] = c01 * s
	inv[2][0] = c02 * s
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * s
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * s
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * s
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * s
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * s
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * s
	return inv, true
}
