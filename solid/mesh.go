// Package solid computes mass properties of closed triangulated meshes by
// surface integration (divergence theorem): surface area, enclosed volume,
// centroid, and the inertia tensor, exact for planar-faced polyhedra.
package solid

import (
	"github.com/windhover/kestrel/spatial"
)

// Face is an ordered ring of vertices. The vertex order determines the
// outward side: counter-clockwise when seen from outside.
type Face []spatial.Vector3

// Triangle is one oriented triangle of a fan-triangulated face.
type Triangle [3]spatial.Vector3

// Triangles fan-triangulates the face around its first vertex. Faces with
// fewer than three vertices produce no triangles.
func (f Face) Triangles() []Triangle {
	if len(f) < 3 {
		return nil
	}
	tris := make([]Triangle, 0, len(f)-2)
	for i := 1; i < len(f)-1; i++ {
		tris = append(tris, Triangle{f[0], f[i], f[i+1]})
	}
	return tris
}

// Mesh is a collection of polygonal faces. Mass-property extraction assumes
// the faces form a closed surface with consistent outward winding;
// inconsistent winding silently produces a wrong-signed volume.
type Mesh struct {
	Faces []Face
}

// Triangles returns the fan triangulation of every face.
func (m Mesh) Triangles() []Triangle {
	var tris []Triangle
	for _, f := range m.Faces {
		tris = append(tris, f.Triangles()...)
	}
	return tris
}

// Append returns a mesh holding the faces of m followed by those of n.
func (m Mesh) Append(n Mesh) Mesh {
	faces := make([]Face, 0, len(m.Faces)+len(n.Faces))
	faces = append(faces, m.Faces...)
	faces = append(faces, n.Faces...)
	return Mesh{Faces: faces}
}

// Transform maps every vertex through fn, preserving face structure.
func (m Mesh) Transform(fn func(spatial.Vector3) spatial.Vector3) Mesh {
	out := Mesh{Faces: make([]Face, len(m.Faces))}
	for i, f := range m.Faces {
		nf := make(Face, len(f))
		for j, v := range f {
			nf[j] = fn(v)
		}
		out.Faces[i] = nf
	}
	return out
}
