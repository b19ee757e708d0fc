// Command massprops reads a binary STL file and reports the mass properties
// of the enclosed solid: surface area, volume, centroid, and the inertia
// tensor about the centroid at unit density.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/windhover/kestrel/solid"
	"github.com/windhover/kestrel/spatial"
)

func main() {
	density := flag.Float64("density", 1.0, "material density scaling the inertia tensor")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "massprops",
	})

	if flag.NArg() != 1 {
		logger.Fatal("usage: massprops [-density d] model.stl")
	}
	path := flag.Arg(0)

	mesh, err := solid.ReadSTLFile(path)
	if err != nil {
		logger.Fatal("reading mesh", "err", err)
	}
	logger.Info("mesh loaded", "path", path, "faces", len(mesh.Faces))

	props := solid.Compute(mesh)
	if props.Volume <= 0 {
		logger.Warn("non-positive volume; the mesh winding may be inverted", "volume", props.Volume)
	}

	fmt.Printf("surface area : %.6g\n", props.Area)
	fmt.Printf("volume       : %.6g\n", props.Volume)
	fmt.Printf("mass         : %.6g\n", props.Volume*(*density))
	fmt.Printf("centroid     : (%.6g, %.6g, %.6g)\n", props.Centroid.X, props.Centroid.Y, props.Centroid.Z)
	fmt.Println("inertia about centroid:")
	printMatrix(props.Inertia.Scale(*density))
}

func printMatrix(m spatial.Matrix3) {
	fmt.Printf("  [ %12.6g %12.6g %12.6g ]\n", m.A11, m.A12, m.A13)
	fmt.Printf("  [ %12.6g %12.6g %12.6g ]\n", m.A21, m.A22, m.A23)
	fmt.Printf("  [ %12.6g %12.6g %12.6g ]\n", m.A31, m.A32, m.A33)
}
