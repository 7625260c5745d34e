package flow

import "math"

// NearSingularDet is the determinant magnitude below which a matrix
// counts as near-singular for normalization purposes.
const NearSingularDet = 1e-8

// Mat3 is a row-major 3x3 real matrix.
type Mat3 [3][3]float64

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec applies m to v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Mul returns the matrix product m*o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Scale returns m with every entry multiplied by k.
func (m Mat3) Scale(k float64) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * k
		}
	}
	return r
}

// Pow returns the n-th integer matrix power. Exponents below 1 yield the
// identity.
func (m Mat3) Pow(n int) Mat3 {
	r := Identity()
	for i := 0; i < n; i++ {
		r = r.Mul(m)
	}
	return r
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// IsFinite reports whether every entry is a finite number.
func (m Mat3) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// Normalize rescales m so its determinant has unit magnitude by dividing
// every entry by the cube root of |det|. When |det| < NearSingularDet the
// original matrix is returned unchanged along with ErrNearSingular.
func (m Mat3) Normalize() (Mat3, error) {
	d := math.Abs(m.Det())
	if d < NearSingularDet {
		return m, ErrNearSingular
	}
	return m.Scale(1 / math.Cbrt(d)), nil
}
