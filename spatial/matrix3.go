package spatial

import (
	"errors"
	"math"
)

// ErrSingular is returned by Inverse and Solve when the determinant (or a
// Schur complement, for partitioned matrices) is zero.
var ErrSingular = errors.New("spatial: singular matrix")

// Matrix3 is a 3×3 real matrix with row-major entries A11..A33.
// Immutable value type.
type Matrix3 struct {
	A11, A12, A13 float64
	A21, A22, A23 float64
	A31, A32, A33 float64
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3 returns the diagonal matrix diag(x, y, z).
func Diagonal3(x, y, z float64) Matrix3 {
	return Matrix3{A11: x, A22: y, A33: z}
}

// Symmetric3 builds a symmetric matrix from its six independent entries:
// the diagonal xx, yy, zz and the off-diagonal xy, xz, yz.
func Symmetric3(xx, yy, zz, xy, xz, yz float64) Matrix3 {
	return Matrix3{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	}
}

// Add returns m + n.
func (m Matrix3) Add(n Matrix3) Matrix3 {
	return Matrix3{
		m.A11 + n.A11, m.A12 + n.A12, m.A13 + n.A13,
		m.A21 + n.A21, m.A22 + n.A22, m.A23 + n.A23,
		m.A31 + n.A31, m.A32 + n.A32, m.A33 + n.A33,
	}
}

// Sub returns m - n.
func (m Matrix3) Sub(n Matrix3) Matrix3 {
	return Matrix3{
		m.A11 - n.A11, m.A12 - n.A12, m.A13 - n.A13,
		m.A21 - n.A21, m.A22 - n.A22, m.A23 - n.A23,
		m.A31 - n.A31, m.A32 - n.A32, m.A33 - n.A33,
	}
}

// Scale returns f*m.
func (m Matrix3) Scale(f float64) Matrix3 {
	return Matrix3{
		f * m.A11, f * m.A12, f * m.A13,
		f * m.A21, f * m.A22, f * m.A23,
		f * m.A31, f * m.A32, f * m.A33,
	}
}

// Mul returns the matrix product m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return Matrix3{
		m.A11*n.A11 + m.A12*n.A21 + m.A13*n.A31,
		m.A11*n.A12 + m.A12*n.A22 + m.A13*n.A32,
		m.A11*n.A13 + m.A12*n.A23 + m.A13*n.A33,

		m.A21*n.A11 + m.A22*n.A21 + m.A23*n.A31,
		m.A21*n.A12 + m.A22*n.A22 + m.A23*n.A32,
		m.A21*n.A13 + m.A22*n.A23 + m.A23*n.A33,

		m.A31*n.A11 + m.A32*n.A21 + m.A33*n.A31,
		m.A31*n.A12 + m.A32*n.A22 + m.A33*n.A32,
		m.A31*n.A13 + m.A32*n.A23 + m.A33*n.A33,
	}
}

// MulVector returns m*v for a column vector v. A row vector on the right of
// a matrix is a usage error.
func (m Matrix3) MulVector(v Vector3) Vector3 {
	if v.IsRow() {
		panic("spatial: matrix right-multiplied by a row vector")
	}
	return Vector3{
		X: m.A11*v.X + m.A12*v.Y + m.A13*v.Z,
		Y: m.A21*v.X + m.A22*v.Y + m.A23*v.Z,
		Z: m.A31*v.X + m.A32*v.Y + m.A33*v.Z,
	}
}

// VecMul returns v*m for a row vector v. The result is a row vector.
func (m Matrix3) VecMul(v Vector3) Vector3 {
	if !v.IsRow() {
		panic("spatial: matrix left-multiplied by a column vector")
	}
	return Vector3{
		X:          v.X*m.A11 + v.Y*m.A21 + v.Z*m.A31,
		Y:          v.X*m.A12 + v.Y*m.A22 + v.Z*m.A32,
		Z:          v.X*m.A13 + v.Y*m.A23 + v.Z*m.A33,
		transposed: true,
	}
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m.A11, m.A21, m.A31,
		m.A12, m.A22, m.A32,
		m.A13, m.A23, m.A33,
	}
}

// Det returns the determinant, expanded along the first row.
func (m Matrix3) Det() float64 {
	return m.A11*(m.A22*m.A33-m.A23*m.A32) -
		m.A12*(m.A21*m.A33-m.A23*m.A31) +
		m.A13*(m.A21*m.A32-m.A22*m.A31)
}

// Inverse returns the closed-form adjugate-based inverse. A zero determinant
// yields ErrSingular instead of the silently wrong zero matrix some
// implementations return.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if det == 0 {
		return Matrix3{}, ErrSingular
	}
	inv := 1 / det
	return Matrix3{
		(m.A22*m.A33 - m.A23*m.A32) * inv,
		(m.A13*m.A32 - m.A12*m.A33) * inv,
		(m.A12*m.A23 - m.A13*m.A22) * inv,

		(m.A23*m.A31 - m.A21*m.A33) * inv,
		(m.A11*m.A33 - m.A13*m.A31) * inv,
		(m.A13*m.A21 - m.A11*m.A23) * inv,

		(m.A21*m.A32 - m.A22*m.A31) * inv,
		(m.A12*m.A31 - m.A11*m.A32) * inv,
		(m.A11*m.A22 - m.A12*m.A21) * inv,
	}, nil
}

// Solve returns the column vector x with m*x == b, using the Cramer's-rule
// expansion (the size is fixed at 3, so no elimination pass is needed).
func (m Matrix3) Solve(b Vector3) (Vector3, error) {
	if b.IsRow() {
		panic("spatial: solve against a row vector right-hand side")
	}
	det := m.Det()
	if det == 0 {
		return Vector3{}, ErrSingular
	}
	inv := 1 / det
	x := Matrix3{
		b.X, m.A12, m.A13,
		b.Y, m.A22, m.A23,
		b.Z, m.A32, m.A33,
	}.Det()
	y := Matrix3{
		m.A11, b.X, m.A13,
		m.A21, b.Y, m.A23,
		m.A31, b.Z, m.A33,
	}.Det()
	z := Matrix3{
		m.A11, m.A12, b.X,
		m.A21, m.A22, b.Y,
		m.A31, m.A32, b.Z,
	}.Det()
	return Vector3{X: x * inv, Y: y * inv, Z: z * inv}, nil
}

// Trace returns A11 + A22 + A33.
func (m Matrix3) Trace() float64 {
	return m.A11 + m.A22 + m.A33
}

// Row returns the i-th row (0-based) as a row vector.
func (m Matrix3) Row(i int) Vector3 {
	switch i {
	case 0:
		return RowVec3(m.A11, m.A12, m.A13)
	case 1:
		return RowVec3(m.A21, m.A22, m.A23)
	case 2:
		return RowVec3(m.A31, m.A32, m.A33)
	}
	panic("spatial: matrix row index out of range")
}

// Col returns the j-th column (0-based) as a column vector.
func (m Matrix3) Col(j int) Vector3 {
	switch j {
	case 0:
		return Vec3(m.A11, m.A21, m.A31)
	case 1:
		return Vec3(m.A12, m.A22, m.A32)
	case 2:
		return Vec3(m.A13, m.A23, m.A33)
	}
	panic("spatial: matrix column index out of range")
}

// ApproxEqual reports whether every entry of m and n differs by at most eps.
func (m Matrix3) ApproxEqual(n Matrix3, eps float64) bool {
	d := m.Sub(n)
	for _, e := range []float64{d.A11, d.A12, d.A13, d.A21, d.A22, d.A23, d.A31, d.A32, d.A33} {
		if math.Abs(e) > eps {
			return false
		}
	}
	return true
}
