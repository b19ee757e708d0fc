package spatial

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from mathgl, used at the rendering boundary (the
// viewport camera works in mgl64) and by tests that cross-check the algebra
// against an independent implementation.

// Mgl returns the vector as an mgl64.Vec3.
func (v Vector3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Vec3FromMgl builds a column vector from an mgl64.Vec3.
func Vec3FromMgl(v mgl64.Vec3) Vector3 {
	return Vec3(v.X(), v.Y(), v.Z())
}

// Mgl returns the matrix as a (column-major) mgl64.Mat3.
func (m Matrix3) Mgl() mgl64.Mat3 {
	return mgl64.Mat3{
		m.A11, m.A21, m.A31,
		m.A12, m.A22, m.A32,
		m.A13, m.A23, m.A33,
	}
}

// Matrix3FromMgl builds a Matrix3 from a (column-major) mgl64.Mat3.
func Matrix3FromMgl(m mgl64.Mat3) Matrix3 {
	return Matrix3{
		m.At(0, 0), m.At(0, 1), m.At(0, 2),
		m.At(1, 0), m.At(1, 1), m.At(1, 2),
		m.At(2, 0), m.At(2, 1), m.At(2, 2),
	}
}

// Mgl returns the quaternion as an mgl64.Quat.
func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.S, V: q.V.Mgl()}
}

// QuatFromMgl builds a Quaternion from an mgl64.Quat.
func QuatFromMgl(q mgl64.Quat) Quaternion {
	return Quaternion{V: Vec3FromMgl(q.V), S: q.W}
}
