package solid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/windhover/kestrel/spatial"
)

// Binary STL layout: an 80-byte header, a little-endian uint32 triangle
// count, then 50 bytes per triangle (normal + three vertices as float32
// triplets, plus a 2-byte attribute field).
const stlTriangleSize = 4 * 12 + 2

// ReadSTL decodes a binary STL stream into a mesh of triangular faces. The
// stored normals are ignored; orientation comes from the vertex winding, as
// the mass-property extraction requires.
func ReadSTL(r io.Reader) (Mesh, error) {
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Mesh{}, fmt.Errorf("solid: reading stl header: %w", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return Mesh{}, fmt.Errorf("solid: reading stl triangle count: %w", err)
	}

	mesh := Mesh{Faces: make([]Face, 0, count)}
	buf := make([]byte, stlTriangleSize)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Mesh{}, fmt.Errorf("solid: reading stl triangle %d of %d: %w", i, count, err)
		}

		face := make(Face, 3)
		for v := 0; v < 3; v++ {
			// Skip the 12-byte normal, then 12 bytes per vertex.
			off := 12 + v*12
			face[v] = spatial.Vec3(
				float64(float32frombytes(buf[off:])),
				float64(float32frombytes(buf[off+4:])),
				float64(float32frombytes(buf[off+8:])),
			)
		}
		mesh.Faces = append(mesh.Faces, face)
	}
	return mesh, nil
}

// ReadSTLFile decodes a binary STL file.
func ReadSTLFile(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("solid: %w", err)
	}
	defer f.Close()
	return ReadSTL(f)
}

func float32frombytes(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
