// Package viewport projects world-space geometry onto a 2D view plane and
// rasterizes it as wireframes. It is the rendering side of the simulation
// boundary: it consumes world-space vertex lists and knows nothing about
// body dynamics.
package viewport

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/windhover/kestrel/solid"
	"github.com/windhover/kestrel/spatial"
)

// Point2 is a projected viewport point in pixel coordinates, with the
// normalized depth kept for visibility decisions.
type Point2 struct {
	X, Y  float64
	Depth float64
}

// Camera is a perspective look-at camera over a pixel viewport.
type Camera struct {
	Eye    spatial.Vector3
	Target spatial.Vector3
	Up     spatial.Vector3
	FovDeg float64
	Width  int
	Height int
	Near   float64
	Far    float64
}

// NewCamera returns a camera with a y-up axis and sane clip planes.
func NewCamera(eye, target spatial.Vector3, fovDeg float64, width, height int) Camera {
	return Camera{
		Eye:    eye,
		Target: target,
		Up:     spatial.Vec3(0, 1, 0),
		FovDeg: fovDeg,
		Width:  width,
		Height: height,
		Near:   0.1,
		Far:    1000,
	}
}

func (c Camera) view() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye.Mgl(), c.Target.Mgl(), c.Up.Mgl())
}

func (c Camera) projection() mgl64.Mat4 {
	aspect := float64(c.Width) / float64(c.Height)
	return mgl64.Perspective(mgl64.DegToRad(c.FovDeg), aspect, c.Near, c.Far)
}

// Project maps a world-space point to pixel coordinates. ok is false for
// points on or behind the near plane; their window coordinates are
// meaningless.
func (c Camera) Project(p spatial.Vector3) (Point2, bool) {
	view := c.view()
	eyeSpace := view.Mul4x1(p.Mgl().Vec4(1))
	if -eyeSpace.Z() <= c.Near {
		return Point2{}, false
	}

	win := mgl64.Project(p.Mgl(), view, c.projection(), 0, 0, c.Width, c.Height)
	// mgl projects into a GL viewport with y up; flip to raster rows.
	return Point2{
		X:     win.X(),
		Y:     float64(c.Height) - win.Y(),
		Depth: win.Z(),
	}, true
}

// ProjectFace projects a polygonal face, dropping it entirely when any
// vertex falls behind the near plane.
func (c Camera) ProjectFace(face solid.Face) ([]Point2, bool) {
	out := make([]Point2, len(face))
	for i, v := range face {
		p, ok := c.Project(v)
		if !ok {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}

// ProjectFaces projects face groups (one group per body), silently dropping
// faces that cross the near plane.
func (c Camera) ProjectFaces(groups [][]solid.Face) [][][]Point2 {
	out := make([][][]Point2, len(groups))
	for i, faces := range groups {
		for _, f := range faces {
			if pts, ok := c.ProjectFace(f); ok {
				out[i] = append(out[i], pts)
			}
		}
	}
	return out
}
