// Command snapshot integrates a configured scene offline and renders
// wireframe frames to lossless WebP images, one file per sampled step.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/windhover/kestrel/scene"
	"github.com/windhover/kestrel/spatial"
	"github.com/windhover/kestrel/viewport"
)

func main() {
	scenePath := flag.String("scene", "", "TOML scene file")
	steps := flag.Int("steps", 300, "integration steps to run")
	every := flag.Int("every", 10, "write a frame every N steps")
	outDir := flag.String("out", "frames", "output directory")
	width := flag.Int("width", 800, "frame width in pixels")
	height := flag.Int("height", 600, "frame height in pixels")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snapshot",
	})

	if *scenePath == "" {
		logger.Fatal("usage: snapshot -scene scene.toml [-steps n] [-every n] [-out dir]")
	}

	cfg, err := scene.LoadConfig(*scenePath)
	if err != nil {
		logger.Fatal("loading scene", "err", err)
	}
	sc, law, err := cfg.Build()
	if err != nil {
		logger.Fatal("building scene", "err", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("creating output directory", "err", err)
	}

	cam := viewport.NewCamera(
		spatial.Vec3(cfg.Camera.Eye[0], cfg.Camera.Eye[1], cfg.Camera.Eye[2]),
		spatial.Vec3(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2]),
		cfg.Camera.FovDeg, *width, *height,
	)
	logger.Info("starting", "bodies", len(sc.Bodies), "dt", cfg.Dt, "steps", *steps)

	frameIndex := 0
	for step := 0; step <= *steps; step++ {
		if step%*every == 0 {
			canvas := viewport.NewCanvas(*width, *height, color.Black)
			canvas.Wireframe(cam.ProjectFaces(sc.WorldFaces()), viewport.DefaultPalette)
			canvas.Label(10, *height-10, fmt.Sprintf("t = %.3fs", sc.Time), color.White)

			path := filepath.Join(*outDir, fmt.Sprintf("frame_%04d.webp", frameIndex))
			if err := canvas.SaveWebP(path); err != nil {
				logger.Fatal("writing frame", "err", err)
			}
			frameIndex++
		}
		sc.Advance(cfg.Dt, law)
	}

	logger.Info("done", "frames", frameIndex, "simulated", fmt.Sprintf("%.3fs", sc.Time))
}
