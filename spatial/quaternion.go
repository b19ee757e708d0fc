package spatial

import (
	"math"
)

// Layout selects the serialization order of a quaternion's four parameters.
// It never affects the algebra, only Index/Array ordering.
type Layout int

const (
	// LayoutVectorScalar stores (x, y, z, w).
	LayoutVectorScalar Layout = iota
	// LayoutScalarVector stores (w, x, y, z).
	LayoutScalarVector
)

const (
	// rotationEpsilon is the |ω|·dt threshold below which an incremental
	// rotation collapses to identity, avoiding a division by a near-zero
	// magnitude during axis normalization.
	rotationEpsilon = 3e-8

	// seriesEpsilon is the vector-part magnitude below which Exp and Log
	// switch to their Taylor expansions, avoiding the sin(x)/x singularity.
	seriesEpsilon = 1e-3
)

// Quaternion is a rotation represented by a 3-vector part V and a scalar
// part S. Unit quaternions satisfy S² + |V|² == 1; this is checked by
// callers when needed, never enforced, since integration holds non-unit
// quaternions transiently.
type Quaternion struct {
	V Vector3
	S float64

	Layout Layout
}

// QuatIdentity returns the identity rotation (V = 0, S = 1).
func QuatIdentity() Quaternion {
	return Quaternion{S: 1}
}

// QuatFromVector builds a pure quaternion (scalar part zero) from v.
func QuatFromVector(v Vector3) Quaternion {
	if v.IsRow() {
		v = v.Transpose()
	}
	return Quaternion{V: v}
}

// QuatFromScalar builds a real quaternion (vector part zero) from s.
func QuatFromScalar(s float64) Quaternion {
	return Quaternion{S: s}
}

// QuatFromAxisAngle builds the rotation of angle radians about axis.
// The axis need not be normalized.
func QuatFromAxisAngle(axis Vector3, angle float64) Quaternion {
	half := angle / 2
	return Quaternion{
		V: axis.Normalize().Scale(math.Sin(half)),
		S: math.Cos(half),
	}
}

// QuatFromRotVelocityAndTime integrates a constant angular velocity over dt
// into an incremental rotation. Below the rotationEpsilon threshold the
// increment is identity.
func QuatFromRotVelocityAndTime(omega Vector3, dt float64) Quaternion {
	angle := omega.Len() * dt
	if math.Abs(angle) < rotationEpsilon {
		return QuatIdentity()
	}
	return QuatFromAxisAngle(omega, angle)
}

// QuatFromRotationMatrix recovers a unit quaternion from a rotation matrix,
// selecting by trace: the stable general-case formula when the trace allows
// it, otherwise the largest-diagonal component formula (the trace ≈ -1
// region, where the general formula divides by a near-zero root).
func QuatFromRotationMatrix(m Matrix3) Quaternion {
	tr := m.Trace()
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		return Quaternion{
			V: Vec3((m.A32-m.A23)/s, (m.A13-m.A31)/s, (m.A21-m.A12)/s),
			S: s / 4,
		}
	case m.A11 >= m.A22 && m.A11 >= m.A33:
		s := math.Sqrt(1+m.A11-m.A22-m.A33) * 2
		return Quaternion{
			V: Vec3(s/4, (m.A12+m.A21)/s, (m.A13+m.A31)/s),
			S: (m.A32 - m.A23) / s,
		}
	case m.A22 >= m.A33:
		s := math.Sqrt(1+m.A22-m.A11-m.A33) * 2
		return Quaternion{
			V: Vec3((m.A12+m.A21)/s, s/4, (m.A23+m.A32)/s),
			S: (m.A13 - m.A31) / s,
		}
	default:
		s := math.Sqrt(1+m.A33-m.A11-m.A22) * 2
		return Quaternion{
			V: Vec3((m.A13+m.A31)/s, (m.A23+m.A32)/s, s/4),
			S: (m.A21 - m.A12) / s,
		}
	}
}

// Product returns the quaternion product q⊗p.
func (q Quaternion) Product(p Quaternion) Quaternion {
	return Quaternion{
		V:      p.V.Scale(q.S).Add(q.V.Scale(p.S)).Add(q.V.Cross(p.V)),
		S:      q.S*p.S - q.V.Dot(p.V),
		Layout: q.Layout,
	}
}

// Conjugate returns (-V, S).
func (q Quaternion) Conjugate() Quaternion {
	q.V = q.V.Neg()
	return q
}

// Norm returns the 4-norm sqrt(S² + |V|²).
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.S*q.S + q.V.LenSq())
}

// Inverse returns q⁻¹ = Conjugate(q)/|q|². For unit quaternions this is the
// conjugate.
func (q Quaternion) Inverse() Quaternion {
	n := q.S*q.S + q.V.LenSq()
	c := q.Conjugate()
	c.V = c.V.Scale(1 / n)
	c.S /= n
	return c
}

// Normalize returns q/|q|.
func (q Quaternion) Normalize() Quaternion {
	n := q.Norm()
	q.V = q.V.Scale(1 / n)
	q.S /= n
	return q
}

// Add returns the component-wise sum q + p.
func (q Quaternion) Add(p Quaternion) Quaternion {
	q.V = q.V.Add(p.V)
	q.S += p.S
	return q
}

// Scale returns the component-wise product f*q.
func (q Quaternion) Scale(f float64) Quaternion {
	q.V = q.V.Scale(f)
	q.S *= f
	return q
}

// ToRotationMatrix expands q into a 3×3 rotation matrix via Rodrigues'
// formula R = (S² − |V|²)·I + 2·V⊗V + 2·S·[V]×.
func (q Quaternion) ToRotationMatrix() Matrix3 {
	return Identity3().Scale(q.S*q.S - q.V.LenSq()).
		Add(q.V.Outer(q.V).Scale(2)).
		Add(q.V.CrossMatrix().Scale(2 * q.S))
}

// Rotate applies the sandwich product q⊗(v,0)⊗q⁻¹ directly to a column
// vector, without forming the rotation matrix. Cheaper for single vectors.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	t := q.V.Cross(v).Scale(2)
	return v.Add(t.Scale(q.S)).Add(q.V.Cross(t))
}

// Exp returns the quaternion exponential e^q = e^S·(cos|V| + sin|V|·V/|V|).
// Below the seriesEpsilon threshold sin(x)/x is replaced by its 4th-order
// Taylor expansion.
func (q Quaternion) Exp() Quaternion {
	a := q.V.Len()
	var sinc float64
	if a < seriesEpsilon {
		a2 := a * a
		sinc = 1 - a2/6 + a2*a2/120
	} else {
		sinc = math.Sin(a) / a
	}
	e := math.Exp(q.S)
	return Quaternion{
		V:      q.V.Scale(e * sinc),
		S:      e * math.Cos(a),
		Layout: q.Layout,
	}
}

// Log returns the quaternion logarithm (V/|V|·atan2(|V|, S), ln|q|), the
// inverse of Exp on the principal branch. Below the seriesEpsilon threshold
// the angle-over-magnitude factor uses its Taylor expansion about zero.
func (q Quaternion) Log() Quaternion {
	a := q.V.Len()
	var f float64
	if a < seriesEpsilon {
		t := a / q.S
		t2 := t * t
		f = (1 - t2/3 + t2*t2/5) / q.S
	} else {
		f = math.Atan2(a, q.S) / a
	}
	return Quaternion{
		V:      q.V.Scale(f),
		S:      math.Log(q.Norm()),
		Layout: q.Layout,
	}
}

// Pow returns q^t = Exp(t·Log(q)). Unit quaternions stay unit.
func (q Quaternion) Pow(t float64) Quaternion {
	return q.Log().Scale(t).Exp()
}

// Slerp interpolates from q to p along the shortest great-circle arc,
// q·(q⁻¹p)^t, with t in [0, 1].
func (q Quaternion) Slerp(p Quaternion, t float64) Quaternion {
	rel := q.Inverse().Product(p)
	// Shortest arc: flip to the hemisphere of q.
	if rel.S < 0 {
		rel = rel.Scale(-1)
	}
	return q.Product(rel.Pow(t))
}

// SplineInterpolate blends from q at angular velocity omega1 to p at angular
// velocity omega2 over a span of dt seconds, evaluated at t in [0, 1]. The
// blend is a cubic Bézier on the rotation group: the inner control points
// are the endpoints advanced by a third of the span at their endpoint rates,
// evaluated by de Casteljau over Slerp.
func (q Quaternion) SplineInterpolate(p Quaternion, omega1, omega2 Vector3, dt, t float64) Quaternion {
	c1 := QuatFromRotVelocityAndTime(omega1, dt/3).Product(q)
	c2 := QuatFromRotVelocityAndTime(omega2, -dt/3).Product(p)

	q01 := q.Slerp(c1, t)
	q12 := c1.Slerp(c2, t)
	q23 := c2.Slerp(p, t)
	q012 := q01.Slerp(q12, t)
	q123 := q12.Slerp(q23, t)
	return q012.Slerp(q123, t).Normalize()
}

// Index returns the i-th serialized component under the quaternion's layout.
func (q Quaternion) Index(i int) float64 {
	return q.Array()[i]
}

// Array returns the four components serialized under the quaternion's
// layout. An unknown layout is a programming error.
func (q Quaternion) Array() [4]float64 {
	switch q.Layout {
	case LayoutVectorScalar:
		return [4]float64{q.V.X, q.V.Y, q.V.Z, q.S}
	case LayoutScalarVector:
		return [4]float64{q.S, q.V.X, q.V.Y, q.V.Z}
	}
	panic("spatial: unknown quaternion layout")
}

// QuatFromArray deserializes four components under the given layout.
func QuatFromArray(a [4]float64, layout Layout) Quaternion {
	switch layout {
	case LayoutVectorScalar:
		return Quaternion{V: Vec3(a[0], a[1], a[2]), S: a[3], Layout: layout}
	case LayoutScalarVector:
		return Quaternion{V: Vec3(a[1], a[2], a[3]), S: a[0], Layout: layout}
	}
	panic("spatial: unknown quaternion layout")
}

// ApproxEqual reports whether q and p agree component-wise within eps.
// Layouts are ignored; q and -q are distinct.
func (q Quaternion) ApproxEqual(p Quaternion, eps float64) bool {
	return q.V.ApproxEqual(p.V, eps) && math.Abs(q.S-p.S) <= eps
}
