package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/windhover/kestrel/spatial"
)

const sampleConfig = `
dt = 0.005
workers = 2

[drag]
linear = 0.3
angular = 0.6

[camera]
eye = [12.0, 8.0, 12.0]
target = [0.0, 0.0, 0.0]
fov = 45.0

[[bodies]]
name = "tumbler"
shape = "box"
size = [1.0, 0.5, 0.25]
position = [0.0, 2.0, 0.0]
velocity = [1.0, 0.0, 0.0]
omega = [0.0, 0.0, 3.0]

[[bodies]]
name = "wedge"
shape = "tetra"
size = [2.0, 1.0, 1.0]
axis = [0.0, 1.0, 0.0]
angle = 0.5
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Dt != 0.005 {
		t.Errorf("Dt = %v, want 0.005", cfg.Dt)
	}
	if cfg.Drag.Linear != 0.3 || cfg.Drag.Angular != 0.6 {
		t.Errorf("Drag = %+v", cfg.Drag)
	}
	if cfg.Camera.FovDeg != 45 {
		t.Errorf("FovDeg = %v, want 45", cfg.Camera.FovDeg)
	}
	if len(cfg.Bodies) != 2 {
		t.Fatalf("Bodies = %d, want 2", len(cfg.Bodies))
	}
	if cfg.Bodies[0].Name != "tumbler" || cfg.Bodies[0].Shape != "box" {
		t.Errorf("first body = %+v", cfg.Bodies[0])
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if cfg.Dt != 0.01 {
		t.Errorf("default Dt = %v, want 0.01", cfg.Dt)
	}
	if cfg.Workers != 1 {
		t.Errorf("default Workers = %v, want 1", cfg.Workers)
	}
	if cfg.Camera.FovDeg != 60 {
		t.Errorf("default fov = %v, want 60", cfg.Camera.FovDeg)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Malformed TOML", "dt = ["},
		{"Non-positive dt", "dt = 0.0"},
		{"Negative dt", "dt = -1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.src)); err == nil {
				t.Error("ParseConfig() accepted invalid input")
			}
		})
	}
}

func TestConfig_Build(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	s, law, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(s.Bodies) != 2 {
		t.Fatalf("scene has %d bodies, want 2", len(s.Bodies))
	}

	tumbler := s.Bodies[0]
	if !tumbler.State.Position.ApproxEqual(spatial.Vec3(0, 2, 0), 0) {
		t.Errorf("position = %v", tumbler.State.Position)
	}
	if got := tumbler.MassProperties().Volume; math.Abs(got-8*1*0.5*0.25) > 1e-12 {
		t.Errorf("tumbler volume = %v", got)
	}

	wedge := s.Bodies[1]
	want := spatial.QuatFromAxisAngle(spatial.Vec3(0, 1, 0), 0.5)
	if !wedge.State.Orientation.ApproxEqual(want, 1e-12) {
		t.Errorf("wedge orientation = %+v, want %+v", wedge.State.Orientation, want)
	}

	// The configured drag law damps velocity.
	f := s.Frame()
	rates := law(f)
	if !rates[0].Accel.ApproxEqual(tumbler.State.Velocity.Scale(-0.3), 1e-12) {
		t.Errorf("drag accel = %v", rates[0].Accel)
	}
}

func TestConfig_BuildUnknownShape(t *testing.T) {
	cfg, err := ParseConfig([]byte("[[bodies]]\nname = \"x\"\nshape = \"torus\"\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if _, _, err := cfg.Build(); err == nil || !strings.Contains(err.Error(), "torus") {
		t.Errorf("Build() error = %v, want unknown-shape error naming the shape", err)
	}
}
