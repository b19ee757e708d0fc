package spatial

import (
	"math"
)

// Vector31 is a 4-vector partitioned into a 3-vector and a trailing scalar.
// It is the value shape Matrix31 operates on, and doubles as a quaternion in
// column form.
type Vector31 struct {
	Vector Vector3
	Scalar float64
}

// Vec31 builds a partitioned 4-vector from a column 3-vector and a scalar.
func Vec31(v Vector3, s float64) Vector31 {
	if v.IsRow() {
		v = v.Transpose()
	}
	return Vector31{Vector: v, Scalar: s}
}

// Vec31FromQuaternion lays a quaternion out as a partitioned column vector.
func Vec31FromQuaternion(q Quaternion) Vector31 {
	return Vector31{Vector: q.V, Scalar: q.S}
}

// ToQuaternion reads the partitioned vector back as a quaternion with the
// given serialization layout.
func (v Vector31) ToQuaternion(layout Layout) Quaternion {
	return Quaternion{V: v.Vector, S: v.Scalar, Layout: layout}
}

// Add returns v + w.
func (v Vector31) Add(w Vector31) Vector31 {
	return Vector31{Vector: v.Vector.Add(w.Vector), Scalar: v.Scalar + w.Scalar}
}

// Sub returns v - w.
func (v Vector31) Sub(w Vector31) Vector31 {
	return Vector31{Vector: v.Vector.Sub(w.Vector), Scalar: v.Scalar - w.Scalar}
}

// Scale returns f*v.
func (v Vector31) Scale(f float64) Vector31 {
	return Vector31{Vector: v.Vector.Scale(f), Scalar: f * v.Scalar}
}

// Dot returns the 4-component scalar product.
func (v Vector31) Dot(w Vector31) float64 {
	return v.Vector.Dot(w.Vector) + v.Scalar*w.Scalar
}

// ApproxEqual reports component-wise agreement within eps.
func (v Vector31) ApproxEqual(w Vector31, eps float64) bool {
	return v.Vector.ApproxEqual(w.Vector, eps) && math.Abs(v.Scalar-w.Scalar) <= eps
}

// Matrix31 is a 4×4 real matrix partitioned into a 3×3 block A11, a
// top-right column Vector1, a bottom-left row Vector2, and a bottom-right
// Scalar:
//
//	[ A11      Vector1 ]
//	[ Vector2ᵀ Scalar  ]
//
// The rotational algebra only ever produces matrices of exactly this shape
// (quaternion-product operators), so inversion goes through the closed-form
// Schur complement of A11 rather than a general 4×4 elimination.
type Matrix31 struct {
	A11     Matrix3
	Vector1 Vector3
	Vector2 Vector3
	Scalar  float64
}

// NewMatrix31 assembles a partitioned matrix. vector1 is the top-right
// column, vector2 the bottom-left row; markers are normalized accordingly.
func NewMatrix31(a11 Matrix3, vector1, vector2 Vector3, scalar float64) Matrix31 {
	if vector1.IsRow() {
		vector1 = vector1.Transpose()
	}
	if !vector2.IsRow() {
		vector2 = vector2.Transpose()
	}
	return Matrix31{A11: a11, Vector1: vector1, Vector2: vector2, Scalar: scalar}
}

// Identity31 returns the partitioned 4×4 identity.
func Identity31() Matrix31 {
	return NewMatrix31(Identity3(), Vec3(0, 0, 0), Vec3(0, 0, 0), 1)
}

// LeftProduct returns the operator L(q) with L(q)·p == q⊗p for any
// quaternion p in column form.
func LeftProduct(q Quaternion) Matrix31 {
	return NewMatrix31(
		Identity3().Scale(q.S).Add(q.V.CrossMatrix()),
		q.V,
		q.V.Neg(),
		q.S,
	)
}

// RightProduct returns the operator R(q) with R(q)·p == p⊗q for any
// quaternion p in column form.
func RightProduct(q Quaternion) Matrix31 {
	return NewMatrix31(
		Identity3().Scale(q.S).Sub(q.V.CrossMatrix()),
		q.V,
		q.V.Neg(),
		q.S,
	)
}

// Omega returns the angular-velocity operator: for a body turning at omega,
// the orientation quaternion evolves as q̇ = ½·Omega(omega)·q.
func Omega(omega Vector3) Matrix31 {
	return NewMatrix31(omega.CrossMatrix(), omega, omega.Neg(), 0)
}

// Add returns m + n.
func (m Matrix31) Add(n Matrix31) Matrix31 {
	return Matrix31{
		A11:     m.A11.Add(n.A11),
		Vector1: m.Vector1.Add(n.Vector1),
		Vector2: m.Vector2.Add(n.Vector2),
		Scalar:  m.Scalar + n.Scalar,
	}
}

// Sub returns m - n.
func (m Matrix31) Sub(n Matrix31) Matrix31 {
	return Matrix31{
		A11:     m.A11.Sub(n.A11),
		Vector1: m.Vector1.Sub(n.Vector1),
		Vector2: m.Vector2.Sub(n.Vector2),
		Scalar:  m.Scalar - n.Scalar,
	}
}

// Scale returns f*m.
func (m Matrix31) Scale(f float64) Matrix31 {
	return Matrix31{
		A11:     m.A11.Scale(f),
		Vector1: m.Vector1.Scale(f),
		Vector2: m.Vector2.Scale(f),
		Scalar:  f * m.Scalar,
	}
}

// Transpose swaps the border vectors and transposes the 3×3 block.
func (m Matrix31) Transpose() Matrix31 {
	return Matrix31{
		A11:     m.A11.Transpose(),
		Vector1: m.Vector2.Transpose(),
		Vector2: m.Vector1.Transpose(),
		Scalar:  m.Scalar,
	}
}

// Mul returns the block product m*n.
func (m Matrix31) Mul(n Matrix31) Matrix31 {
	return Matrix31{
		A11:     m.A11.Mul(n.A11).Add(m.Vector1.Outer(n.Vector2.Transpose())),
		Vector1: m.A11.MulVector(n.Vector1).Add(m.Vector1.Scale(n.Scalar)),
		Vector2: n.A11.VecMul(m.Vector2).Add(n.Vector2.Scale(m.Scalar)),
		Scalar:  m.Vector2.Transpose().Dot(n.Vector1) + m.Scalar*n.Scalar,
	}
}

// MulVector applies the partitioned operator to a partitioned column vector.
func (m Matrix31) MulVector(v Vector31) Vector31 {
	return Vector31{
		Vector: m.A11.MulVector(v.Vector).Add(m.Vector1.Scale(v.Scalar)),
		Scalar: m.Vector2.Transpose().Dot(v.Vector) + m.Scalar*v.Scalar,
	}
}

// Inverse returns the closed-form block inverse. With k the Schur complement
// Scalar − Vector2·A11⁻¹·Vector1, the inverse is
//
//	[ A⁻¹ + (A⁻¹u)(vᵀA⁻¹)/k   −A⁻¹u/k ]
//	[ −(vᵀA⁻¹)/k               1/k     ]
//
// ErrSingular is returned when A11 or the Schur complement is singular.
func (m Matrix31) Inverse() (Matrix31, error) {
	ainv, err := m.A11.Inverse()
	if err != nil {
		return Matrix31{}, err
	}
	au := ainv.MulVector(m.Vector1) // A⁻¹u
	va := ainv.VecMul(m.Vector2)    // vᵀA⁻¹
	k := m.Scalar - va.Transpose().Dot(m.Vector1)
	if k == 0 {
		return Matrix31{}, ErrSingular
	}
	return Matrix31{
		A11:     ainv.Add(au.Outer(va.Transpose()).Scale(1 / k)),
		Vector1: au.Scale(-1 / k),
		Vector2: va.Scale(-1 / k),
		Scalar:  1 / k,
	}, nil
}

// Solve returns x with m·x == b, eliminating the 3×3 block first, solving
// the 1×1 Schur complement, then back-substituting. Cheaper than forming the
// full inverse.
func (m Matrix31) Solve(b Vector31) (Vector31, error) {
	ab, err := m.A11.Solve(b.Vector) // A⁻¹·b₃
	if err != nil {
		return Vector31{}, err
	}
	au, err := m.A11.Solve(m.Vector1) // A⁻¹·u
	if err != nil {
		return Vector31{}, err
	}
	k := m.Scalar - m.Vector2.Transpose().Dot(au)
	if k == 0 {
		return Vector31{}, ErrSingular
	}
	s := (b.Scalar - m.Vector2.Transpose().Dot(ab)) / k
	return Vector31{
		Vector: ab.Sub(au.Scale(s)),
		Scalar: s,
	}, nil
}

// ApproxEqual reports block-wise agreement within eps.
func (m Matrix31) ApproxEqual(n Matrix31, eps float64) bool {
	return m.A11.ApproxEqual(n.A11, eps) &&
		m.Vector1.ApproxEqual(n.Vector1, eps) &&
		m.Vector2.ApproxEqual(n.Vector2, eps) &&
		math.Abs(m.Scalar-n.Scalar) <= eps
}
