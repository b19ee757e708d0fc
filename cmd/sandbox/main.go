// Command sandbox runs a scene live in the terminal: bodies integrate under
// the configured damping law while their wireframes are drawn to the screen
// at a fixed frame rate.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/windhover/kestrel/scene"
	"github.com/windhover/kestrel/spatial"
	"github.com/windhover/kestrel/viewport"
)

const targetFPS = 30

// defaultScene keeps the sandbox usable without a config file: two damped
// tumbling bodies.
const defaultScene = `
dt = 0.005

[drag]
linear = 0.12
angular = 0.25

[camera]
eye = [7.0, 5.0, 9.0]
target = [0.0, 0.0, 0.0]
fov = 55.0

[[bodies]]
name = "tumbler"
shape = "box"
size = [1.2, 0.6, 0.3]
position = [-1.5, 0.0, 0.0]
velocity = [0.6, 0.0, 0.0]
omega = [0.5, 2.5, 0.0]

[[bodies]]
name = "wedge"
shape = "tetra"
size = [1.5, 1.0, 0.8]
position = [1.5, -0.5, 0.0]
velocity = [-0.4, 0.3, 0.0]
omega = [0.0, 0.0, 3.0]
`

var palette = []tcell.Color{
	tcell.ColorRed, tcell.ColorGreen, tcell.ColorBlue,
	tcell.ColorYellow, tcell.ColorFuchsia,
}

func main() {
	scenePath := flag.String("scene", "", "TOML scene file (built-in demo when empty)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sandbox",
	})

	cfg, err := loadConfig(*scenePath)
	if err != nil {
		logger.Fatal("loading scene", "err", err)
	}
	sc, law, err := cfg.Build()
	if err != nil {
		logger.Fatal("building scene", "err", err)
	}
	initial := sc.Frame()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal("opening terminal", "err", err)
	}
	if err := screen.Init(); err != nil {
		logger.Fatal("initializing terminal", "err", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / targetFPS)
	defer ticker.Stop()

	paused := false
	stepsPerFrame := int(math.Max(1, math.Round(1.0/(targetFPS*cfg.Dt))))

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'r':
					sc.Apply(initial)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !paused {
				for range stepsPerFrame {
					sc.Advance(cfg.Dt, law)
				}
			}
			drawFrame(screen, sc, cfg, paused)
		}
	}
}

func loadConfig(path string) (scene.Config, error) {
	if path == "" {
		return scene.ParseConfig([]byte(defaultScene))
	}
	return scene.LoadConfig(path)
}

func drawFrame(screen tcell.Screen, sc *scene.Scene, cfg scene.Config, paused bool) {
	screen.Clear()
	w, h := screen.Size()
	if w < 4 || h < 4 {
		screen.Show()
		return
	}

	// Terminal cells are about twice as tall as wide; project onto a
	// square-pixel viewport and squeeze rows when plotting.
	cam := viewport.NewCamera(
		spatial.Vec3(cfg.Camera.Eye[0], cfg.Camera.Eye[1], cfg.Camera.Eye[2]),
		spatial.Vec3(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2]),
		cfg.Camera.FovDeg, w, 2*h,
	)

	for i, faces := range cam.ProjectFaces(sc.WorldFaces()) {
		style := tcell.StyleDefault.Foreground(palette[i%len(palette)])
		for _, face := range faces {
			for j := range face {
				a, b := face[j], face[(j+1)%len(face)]
				cellLine(screen, a, b, style)
			}
		}
	}

	status := fmt.Sprintf(" t=%7.3fs  bodies=%d  [space] pause  [r] reset  [q] quit ", sc.Time, len(sc.Bodies))
	if paused {
		status = " PAUSED " + status
	}
	hud := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, hud)
	}
	screen.Show()
}

func cellLine(screen tcell.Screen, a, b viewport.Point2, style tcell.Style) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)/2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + t*dx))
		y := int(math.Round((a.Y + t*dy) / 2))
		screen.SetContent(x, y, '·', nil, style)
	}
}
