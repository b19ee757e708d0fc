package scene

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/windhover/kestrel"
	"github.com/windhover/kestrel/body"
	"github.com/windhover/kestrel/solid"
	"github.com/windhover/kestrel/spatial"
)

// Config is the TOML description of a sandbox scene.
type Config struct {
	// Dt is the fixed integration step in seconds.
	Dt      float64      `toml:"dt"`
	Workers int          `toml:"workers"`
	Drag    DragConfig   `toml:"drag"`
	Camera  CameraConfig `toml:"camera"`
	Bodies  []BodyConfig `toml:"bodies"`
}

// DragConfig holds the scene-wide linear damping coefficients.
type DragConfig struct {
	Linear  float64 `toml:"linear"`
	Angular float64 `toml:"angular"`
}

// CameraConfig places the viewport camera.
type CameraConfig struct {
	Eye    [3]float64 `toml:"eye"`
	Target [3]float64 `toml:"target"`
	FovDeg float64    `toml:"fov"`
}

// BodyConfig describes one body: its shape, placement and initial motion.
// Shape is "box" (half-extents in Size), "tetra" (legs in Size) or "stl"
// (binary STL path in Path).
type BodyConfig struct {
	Name     string     `toml:"name"`
	Shape    string     `toml:"shape"`
	Size     [3]float64 `toml:"size"`
	Path     string     `toml:"path"`
	Position [3]float64 `toml:"position"`
	Velocity [3]float64 `toml:"velocity"`
	Omega    [3]float64 `toml:"omega"`
	Axis     [3]float64 `toml:"axis"`
	Angle    float64    `toml:"angle"`
}

func vec(a [3]float64) spatial.Vector3 {
	return spatial.Vec3(a[0], a[1], a[2])
}

// LoadConfig reads and decodes a TOML scene file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a TOML scene document and applies defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{
		Dt:      0.01,
		Workers: 1,
		Camera: CameraConfig{
			Eye:    [3]float64{8, 6, 8},
			FovDeg: 60,
		},
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scene: decoding config: %w", err)
	}
	if cfg.Dt <= 0 {
		return Config{}, fmt.Errorf("scene: dt must be positive, got %v", cfg.Dt)
	}
	return cfg, nil
}

// Build instantiates the configured scene and its rate law.
func (c Config) Build() (*Scene, kestrel.RateFunc, error) {
	s := &Scene{Workers: c.Workers}
	for i, bc := range c.Bodies {
		mesh, err := bc.mesh()
		if err != nil {
			return nil, nil, fmt.Errorf("scene: body %d (%q): %w", i, bc.Name, err)
		}

		st := body.NewState()
		st.Position = vec(bc.Position)
		st.Velocity = vec(bc.Velocity)
		st.Omega = vec(bc.Omega)
		if bc.Angle != 0 {
			st.Orientation = spatial.QuatFromAxisAngle(vec(bc.Axis), bc.Angle)
		}

		b := NewBody(bc.Name, st)
		b.AddMesh(mesh)
		b.RecomputeMassProperties()
		s.Add(b)
	}
	return s, kestrel.Drag(c.Drag.Linear, c.Drag.Angular), nil
}

func (bc BodyConfig) mesh() (solid.Mesh, error) {
	switch bc.Shape {
	case "box":
		return solid.BoxMesh(bc.Size[0], bc.Size[1], bc.Size[2]), nil
	case "tetra":
		return solid.TetrahedronMesh(bc.Size[0], bc.Size[1], bc.Size[2]), nil
	case "stl":
		return solid.ReadSTLFile(bc.Path)
	}
	return solid.Mesh{}, fmt.Errorf("unknown shape %q", bc.Shape)
}
