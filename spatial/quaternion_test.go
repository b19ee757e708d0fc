package spatial

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestQuaternion_Identity(t *testing.T) {
	id := QuatIdentity()
	if id.S != 1 || id.V.Len() != 0 {
		t.Fatalf("identity = %+v", id)
	}
	q := QuatFromAxisAngle(Vec3(0, 0, 1), 1.2)
	if !q.Product(id).ApproxEqual(q, testEpsilon) {
		t.Error("q * identity != q")
	}
	if !id.Product(q).ApproxEqual(q, testEpsilon) {
		t.Error("identity * q != q")
	}
}

func TestQuaternion_ProductMatchesMgl(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(1, 2, -1), 0.8)
	p := QuatFromAxisAngle(Vec3(0, 1, 3), -1.4)

	got := q.Product(p)
	ref := QuatFromMgl(q.Mgl().Mul(p.Mgl()))
	if !got.ApproxEqual(ref, 1e-12) {
		t.Errorf("Product = %+v, mathgl reference %+v", got, ref)
	}
}

func TestQuaternion_InverseProduct(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
	}{
		{"Unit", QuatFromAxisAngle(Vec3(1, 1, 1), 2.1)},
		{"Non-unit", Quaternion{V: Vec3(0.5, -1, 2), S: 3}},
		{"Near identity", QuatFromAxisAngle(Vec3(1, 0, 0), 1e-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.Product(tt.q.Inverse()); !got.ApproxEqual(QuatIdentity(), 1e-10) {
				t.Errorf("q * q⁻¹ = %+v, want identity", got)
			}
		})
	}
}

func TestQuaternion_RotationMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vector3
		angle float64
	}{
		{"Small angle about x", Vec3(1, 0, 0), 0.1},
		{"Quarter turn about z", Vec3(0, 0, 1), math.Pi / 2},
		{"Oblique axis", Vec3(1, -2, 0.5), 2.4},
		{"Near half turn", Vec3(0, 1, 1), math.Pi - 1e-4},
		{"Half turn about y (trace -1 fallback)", Vec3(0, 1, 0), math.Pi},
		{"Half turn about oblique axis", Vec3(3, -1, 2), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := QuatFromAxisAngle(tt.axis, tt.angle).ToRotationMatrix()
			back := QuatFromRotationMatrix(r).ToRotationMatrix()
			if !back.ApproxEqual(r, 1e-8) {
				t.Errorf("round trip drifted:\n got %+v\nwant %+v", back, r)
			}
		})
	}
}

func TestQuaternion_ToRotationMatrixMatchesMgl(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(2, 1, -1), 1.3)
	ref := Matrix3FromMgl(q.Mgl().Mat4().Mat3())
	if got := q.ToRotationMatrix(); !got.ApproxEqual(ref, 1e-12) {
		t.Errorf("ToRotationMatrix = %+v, mathgl reference %+v", got, ref)
	}
}

func TestQuaternion_RotateAgreesWithMatrix(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(1, 3, -2), 0.9)
	v := Vec3(0.5, -2, 1.5)

	sandwich := q.Rotate(v)
	matrix := q.ToRotationMatrix().MulVector(v)
	ref := Vec3FromMgl(q.Mgl().Rotate(v.Mgl()))

	if !sandwich.ApproxEqual(matrix, 1e-12) {
		t.Errorf("Rotate = %v, matrix path %v", sandwich, matrix)
	}
	if !sandwich.ApproxEqual(ref, 1e-12) {
		t.Errorf("Rotate = %v, mathgl reference %v", sandwich, ref)
	}
}

func TestQuaternion_FromRotVelocityAndTime(t *testing.T) {
	t.Run("Finite rotation", func(t *testing.T) {
		omega := Vec3(0, 0, 2) // 2 rad/s about z
		q := QuatFromRotVelocityAndTime(omega, 0.25)
		want := QuatFromAxisAngle(Vec3(0, 0, 1), 0.5)
		if !q.ApproxEqual(want, 1e-12) {
			t.Errorf("increment = %+v, want %+v", q, want)
		}
	})

	t.Run("Below threshold collapses to identity", func(t *testing.T) {
		omega := Vec3(1e-9, 0, 0)
		if q := QuatFromRotVelocityAndTime(omega, 1e-2); !q.ApproxEqual(QuatIdentity(), 0) {
			t.Errorf("increment = %+v, want exact identity", q)
		}
	})

	t.Run("Just above threshold", func(t *testing.T) {
		omega := Vec3(1e-7, 0, 0)
		q := QuatFromRotVelocityAndTime(omega, 1)
		if q.ApproxEqual(QuatIdentity(), 0) {
			t.Error("increment collapsed to identity above the threshold")
		}
		if math.Abs(q.Norm()-1) > 1e-12 {
			t.Errorf("increment norm = %v, want 1", q.Norm())
		}
	})
}

func TestQuaternion_ExpLog(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
	}{
		{"Large rotation (sin branch)", QuatFromAxisAngle(Vec3(1, 2, 3), 2.0)},
		{"Moderate rotation", QuatFromAxisAngle(Vec3(0, 1, 0), 0.5)},
		{"Small rotation (series branch)", QuatFromAxisAngle(Vec3(1, 0, 0), 1e-4)},
		{"At the series threshold", QuatFromAxisAngle(Vec3(0, 0, 1), 2e-3)},
		{"Just below the series threshold", QuatFromAxisAngle(Vec3(0, 0, 1), 1.999e-3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			back := tt.q.Log().Exp()
			if !back.ApproxEqual(tt.q, 1e-10) {
				t.Errorf("Exp(Log(q)) = %+v, want %+v", back, tt.q)
			}
		})
	}
}

func TestQuaternion_ExpOfZeroIsIdentity(t *testing.T) {
	if got := (Quaternion{}).Exp(); !got.ApproxEqual(QuatIdentity(), testEpsilon) {
		t.Errorf("Exp(0) = %+v, want identity", got)
	}
	if got := QuatIdentity().Log(); !got.ApproxEqual(Quaternion{}, testEpsilon) {
		t.Errorf("Log(identity) = %+v, want zero", got)
	}
}

func TestQuaternion_PowHalvesRotation(t *testing.T) {
	q := QuatFromAxisAngle(Vec3(0, 1, 0), 1.6)
	half := q.Pow(0.5)
	if !half.Product(half).ApproxEqual(q, 1e-10) {
		t.Errorf("q^½ squared = %+v, want %+v", half.Product(half), q)
	}
}

func TestQuaternion_Slerp(t *testing.T) {
	q1 := QuatFromAxisAngle(Vec3(0, 0, 1), 0.3)
	q2 := QuatFromAxisAngle(Vec3(0, 0, 1), 1.7)

	t.Run("Endpoints", func(t *testing.T) {
		if got := q1.Slerp(q2, 0); !got.ApproxEqual(q1, 1e-10) {
			t.Errorf("Slerp(0) = %+v, want %+v", got, q1)
		}
		if got := q1.Slerp(q2, 1); !got.ApproxEqual(q2, 1e-10) {
			t.Errorf("Slerp(1) = %+v, want %+v", got, q2)
		}
	})

	t.Run("Midpoint bisects the arc", func(t *testing.T) {
		want := QuatFromAxisAngle(Vec3(0, 0, 1), 1.0)
		if got := q1.Slerp(q2, 0.5); !got.ApproxEqual(want, 1e-10) {
			t.Errorf("Slerp(0.5) = %+v, want %+v", got, want)
		}
	})

	t.Run("Agrees with mathgl on oblique axes", func(t *testing.T) {
		a := QuatFromAxisAngle(Vec3(1, 2, 0), 0.6)
		b := QuatFromAxisAngle(Vec3(-1, 0, 2), 1.1)
		got := a.Slerp(b, 0.37)
		ref := QuatFromMgl(mgl64.QuatSlerp(a.Mgl(), b.Mgl(), 0.37))
		if !got.ApproxEqual(ref, 1e-9) {
			t.Errorf("Slerp = %+v, mathgl reference %+v", got, ref)
		}
	})

	t.Run("Takes the short arc", func(t *testing.T) {
		b := q2.Scale(-1) // same rotation, opposite sign
		got := q1.Slerp(b, 0.5)
		want := QuatFromAxisAngle(Vec3(0, 0, 1), 1.0)
		if !got.ApproxEqual(want, 1e-10) && !got.ApproxEqual(want.Scale(-1), 1e-10) {
			t.Errorf("Slerp across hemispheres = %+v, want ±%+v", got, want)
		}
	})
}

func TestQuaternion_SplineInterpolate(t *testing.T) {
	q1 := QuatFromAxisAngle(Vec3(0, 0, 1), 0.2)
	q2 := QuatFromAxisAngle(Vec3(0, 0, 1), 1.4)
	w1 := Vec3(0, 0, 1.2)
	w2 := Vec3(0, 0, 1.2)
	dt := 1.0

	if got := q1.SplineInterpolate(q2, w1, w2, dt, 0); !got.ApproxEqual(q1.Normalize(), 1e-10) {
		t.Errorf("spline at t=0 = %+v, want %+v", got, q1)
	}
	if got := q1.SplineInterpolate(q2, w1, w2, dt, 1); !got.ApproxEqual(q2.Normalize(), 1e-10) {
		t.Errorf("spline at t=1 = %+v, want %+v", got, q2)
	}

	// Interior samples stay unit and on the shared rotation axis.
	for _, s := range []float64{0.25, 0.5, 0.75} {
		q := q1.SplineInterpolate(q2, w1, w2, dt, s)
		if math.Abs(q.Norm()-1) > 1e-10 {
			t.Errorf("spline at t=%v has norm %v", s, q.Norm())
		}
		if math.Abs(q.V.X) > 1e-10 || math.Abs(q.V.Y) > 1e-10 {
			t.Errorf("spline at t=%v left the z axis: %+v", s, q)
		}
	}
}

func TestQuaternion_LayoutSerialization(t *testing.T) {
	q := Quaternion{V: Vec3(1, 2, 3), S: 4}

	vectorFirst := q
	vectorFirst.Layout = LayoutVectorScalar
	if got := vectorFirst.Array(); got != [4]float64{1, 2, 3, 4} {
		t.Errorf("vector-first layout = %v", got)
	}

	scalarFirst := q
	scalarFirst.Layout = LayoutScalarVector
	if got := scalarFirst.Array(); got != [4]float64{4, 1, 2, 3} {
		t.Errorf("scalar-first layout = %v", got)
	}

	// The layout affects serialization only, never the algebra.
	p := QuatFromAxisAngle(Vec3(1, 0, 0), 0.5)
	a := vectorFirst.Product(p)
	b := scalarFirst.Product(p)
	if !a.ApproxEqual(b, 0) {
		t.Errorf("layout leaked into the algebra: %+v vs %+v", a, b)
	}

	t.Run("Round trip", func(t *testing.T) {
		for _, layout := range []Layout{LayoutVectorScalar, LayoutScalarVector} {
			src := q
			src.Layout = layout
			if got := QuatFromArray(src.Array(), layout); !got.ApproxEqual(src, 0) {
				t.Errorf("layout %v round trip = %+v, want %+v", layout, got, src)
			}
		}
	})

	t.Run("Unknown layout panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Array() with unknown layout did not panic")
			}
		}()
		bad := q
		bad.Layout = Layout(99)
		bad.Array()
	})
}
