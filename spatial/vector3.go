package spatial

import (
	"math"
)

// Vector3 is a fixed 3-component real vector. The transposed flag marks a
// row vector: it is an algebraic marker that disambiguates left- from
// right-multiplication against a matrix, not a storage format. Values are
// immutable; every operation returns a new vector.
type Vector3 struct {
	X, Y, Z float64

	transposed bool
}

// Vec3 builds a column vector.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// RowVec3 builds a row (transposed) vector.
func RowVec3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z, transposed: true}
}

// IsRow reports whether the vector carries the row (transposed) marker.
func (v Vector3) IsRow() bool {
	return v.transposed
}

// Transpose flips the row/column marker without touching the components.
func (v Vector3) Transpose() Vector3 {
	v.transposed = !v.transposed
	return v
}

func sameOrientation(a, b Vector3) bool {
	return a.transposed == b.transposed
}

func mustMatch(op string, a, b Vector3) {
	if !sameOrientation(a, b) {
		panic("spatial: " + op + " between a row and a column vector")
	}
}

// Add returns v + w. Both operands must carry the same transposition marker.
func (v Vector3) Add(w Vector3) Vector3 {
	mustMatch("addition", v, w)
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.transposed}
}

// Sub returns v - w. Both operands must carry the same transposition marker.
func (v Vector3) Sub(w Vector3) Vector3 {
	mustMatch("subtraction", v, w)
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.transposed}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z, v.transposed}
}

// Scale returns f*v.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{f * v.X, f * v.Y, f * v.Z, v.transposed}
}

// Dot returns the scalar product v·w. Both operands must carry the same
// transposition marker; a row·column mix is a usage error.
func (v Vector3) Dot(w Vector3) float64 {
	mustMatch("dot product", v, w)
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w. Both operands must carry the same
// transposition marker; the result keeps it.
func (v Vector3) Cross(w Vector3) Vector3 {
	mustMatch("cross product", v, w)
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
		v.transposed,
	}
}

// CrossMatrix returns the skew-symmetric matrix [v]× so that
// CrossMatrix(v).MulVector(w) == v.Cross(w).
func (v Vector3) CrossMatrix() Matrix3 {
	return Matrix3{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	}
}

// Outer returns the outer product v ⊗ w, the rank-one matrix with entries
// v_i * w_j. Both operands must carry the same transposition marker.
func (v Vector3) Outer(w Vector3) Matrix3 {
	mustMatch("outer product", v, w)
	return Matrix3{
		v.X * w.X, v.X * w.Y, v.X * w.Z,
		v.Y * w.X, v.Y * w.Y, v.Y * w.Z,
		v.Z * w.X, v.Z * w.Y, v.Z * w.Z,
	}
}

// Parallel returns factor*(|v|²·I − v⊗v), the parallel-axis contribution of
// a point mass at v. The mass-property extractor uses it to shift inertia
// tensors between reference points.
func (v Vector3) Parallel(factor float64) Matrix3 {
	n := v.LenSq()
	return Identity3().Scale(n).Sub(v.Outer(v)).Scale(factor)
}

// LenSq returns |v|².
func (v Vector3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns |v|.
func (v Vector3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vector3) Normalize() Vector3 {
	l := v.Len()
	if l == 0 {
		return Vector3{transposed: v.transposed}
	}
	return v.Scale(1 / l)
}

// ApproxEqual reports whether every component of v and w differs by at most
// eps. The transposition markers must match as well.
func (v Vector3) ApproxEqual(w Vector3, eps float64) bool {
	return sameOrientation(v, w) &&
		math.Abs(v.X-w.X) <= eps &&
		math.Abs(v.Y-w.Y) <= eps &&
		math.Abs(v.Z-w.Z) <= eps
}
