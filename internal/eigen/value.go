package eigen

import (
	"fmt"
	"math"
	"math/cmplx"
)

// imagTol is the imaginary magnitude below which a value collapses to the
// real tag. Decomposing a real matrix leaves imaginary residue of this
// order on real eigenvalues.
const imagTol = 1e-12

// Value is one eigenvalue in tagged form: either a plain real number or a
// member of a conjugate pair with a genuine imaginary part. The tag
// decides which power path applies, so real eigenvalues never pick up
// spurious imaginary parts from complex arithmetic.
type Value struct {
	re, im    float64
	isComplex bool
}

// Real wraps a real eigenvalue.
func Real(re float64) Value {
	return Value{re: re}
}

// Complex wraps an eigenvalue with the given parts. An imaginary part
// within imagTol collapses to the real tag.
func Complex(re, im float64) Value {
	if math.Abs(im) <= imagTol {
		return Value{re: re}
	}
	return Value{re: re, im: im, isComplex: true}
}

// FromComplex tags a raw decomposition output.
func FromComplex(c complex128) Value {
	return Complex(real(c), imag(c))
}

// IsComplex reports whether the value carries a genuine imaginary part.
func (v Value) IsComplex() bool { return v.isComplex }

// Real returns the real part.
func (v Value) Real() float64 { return v.re }

// Imag returns the imaginary part, exactly zero for the real tag.
func (v Value) Imag() float64 {
	if !v.isComplex {
		return 0
	}
	return v.im
}

// C converts to complex128 for reconstruction arithmetic.
func (v Value) C() complex128 {
	return complex(v.re, v.Imag())
}

// Abs returns the modulus.
func (v Value) Abs() float64 {
	if !v.isComplex {
		return math.Abs(v.re)
	}
	return cmplx.Abs(v.C())
}

// PowT raises the value to the real power t. Non-negative real values
// stay on the real axis; negative and complex values take the principal
// branch, so a negative eigenvalue raised to a fractional power rotates
// through the complex plane rather than producing NaN.
func (v Value) PowT(t float64) Value {
	if !v.isComplex && v.re >= 0 {
		return Real(math.Pow(v.re, t))
	}
	return FromComplex(cmplx.Pow(v.C(), complex(t, 0)))
}

// BlendT interpolates the value linearly from 1 (the identity eigenvalue)
// toward its full strength: (1-t) + t*v.
func (v Value) BlendT(t float64) Value {
	return Complex(1-t+t*v.re, t*v.Imag())
}

func (v Value) String() string {
	if !v.isComplex {
		return fmt.Sprintf("%.6g", v.re)
	}
	return fmt.Sprintf("%.6g%+.6gi", v.re, v.im)
}
