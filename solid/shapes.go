package solid

import (
	"github.com/windhover/kestrel/spatial"
)

// BoxMesh builds an axis-aligned box centered at the origin with the given
// half-extents, quad faces wound outward.
func BoxMesh(hx, hy, hz float64) Mesh {
	v := func(sx, sy, sz float64) spatial.Vector3 {
		return spatial.Vec3(sx*hx, sy*hy, sz*hz)
	}
	return Mesh{Faces: []Face{
		// +x and -x
		{v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1)},
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)},
		// +y and -y
		{v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1)},
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)},
		// +z and -z
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},
		{v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1)},
	}}
}

// TetrahedronMesh builds the right tetrahedron with one vertex at the origin
// and legs a, b, c along the x, y and z axes, faces wound outward.
func TetrahedronMesh(a, b, c float64) Mesh {
	o := spatial.Vec3(0, 0, 0)
	pa := spatial.Vec3(a, 0, 0)
	pb := spatial.Vec3(0, b, 0)
	pc := spatial.Vec3(0, 0, c)
	return Mesh{Faces: []Face{
		{o, pb, pa},  // bottom, -z
		{o, pa, pc},  // -y
		{o, pc, pb},  // -x
		{pa, pb, pc}, // slanted, outward
	}}
}
