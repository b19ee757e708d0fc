package solid

import (
	"github.com/windhover/kestrel/spatial"
)

// Properties holds the mass properties of a solid at unit density: surface
// area, enclosed volume, centroid, and the inertia tensor both about the
// origin and about the centroid. Immutable once computed.
type Properties struct {
	Area     float64
	Volume   float64
	Centroid spatial.Vector3

	// Inertia is the tensor about the centroid; InertiaOrigin the same
	// tensor about the world origin. Both assume unit density, so they
	// scale linearly with the material density.
	Inertia       spatial.Matrix3
	InertiaOrigin spatial.Matrix3
}

// Compute extracts the mass properties of a closed, consistently wound mesh.
//
// Every triangle (A, B, C) spans a tetrahedron with the origin whose signed
// volume is A·(B×C)/6 and whose centroid is (A+B+C)/4. Second moments use
// the exact tetrahedron formula (v/20)·(Σ rᵢ⊗rᵢ + s⊗s) with s = A+B+C.
// Summing the signed contributions over the whole surface is the discrete
// divergence theorem: interior overlaps cancel and the enclosed solid
// remains.
func Compute(mesh Mesh) Properties {
	var (
		area     float64
		volume   float64
		weighted spatial.Vector3 // Σ vᵢ·cᵢ
		second   spatial.Matrix3 // Σ ∫ r⊗r dV
	)

	for _, tri := range mesh.Triangles() {
		a, b, c := tri[0], tri[1], tri[2]

		v := a.Dot(b.Cross(c)) / 6
		volume += v

		centroid := a.Add(b).Add(c).Scale(0.25)
		weighted = weighted.Add(centroid.Scale(v))

		// Half the magnitude of the summed edge cross products.
		area += a.Cross(b).Add(b.Cross(c)).Add(c.Cross(a)).Len() / 2

		s := a.Add(b).Add(c)
		moment := a.Outer(a).Add(b.Outer(b)).Add(c.Outer(c)).Add(s.Outer(s))
		second = second.Add(moment.Scale(v / 20))
	}

	p := Properties{
		Area:   area,
		Volume: volume,
		// I = ∫ (|r|²·I₃ − r⊗r) dV, assembled from the second moments.
		InertiaOrigin: spatial.Identity3().Scale(second.Trace()).Sub(second),
	}
	if volume != 0 {
		p.Centroid = weighted.Scale(1 / volume)
	}
	p.Inertia = p.InertiaOrigin.Sub(p.Centroid.Parallel(volume))
	return p
}

// Add combines two solids as if rigidly fused: areas and volumes sum, the
// centroid is the volume-weighted average, and both inertia tensors are
// recombined about the new centroid by the parallel-axis theorem. Applied to
// the two halves of a split mesh this reproduces the single-mesh computation
// exactly.
func (p Properties) Add(q Properties) Properties {
	sum := Properties{
		Area:          p.Area + q.Area,
		Volume:        p.Volume + q.Volume,
		InertiaOrigin: p.InertiaOrigin.Add(q.InertiaOrigin),
	}
	if sum.Volume != 0 {
		sum.Centroid = p.Centroid.Scale(p.Volume).
			Add(q.Centroid.Scale(q.Volume)).
			Scale(1 / sum.Volume)
	}
	sum.Inertia = sum.InertiaOrigin.Sub(sum.Centroid.Parallel(sum.Volume))
	return sum
}

// SpecificInertia is the centroidal inertia tensor per unit volume, the
// density-independent shape tensor.
func (p Properties) SpecificInertia() spatial.Matrix3 {
	if p.Volume == 0 {
		return spatial.Matrix3{}
	}
	return p.Inertia.Scale(1 / p.Volume)
}
