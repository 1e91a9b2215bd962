// Command strokedemo strokes a scene file and writes the result as PNG.
//
// Usage:
//
//	strokedemo -scene star.yaml -output star.png -scale 4 -antialias
//
// Without -scene a built-in demo scene is drawn.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/render"
	"github.com/gogpu/canvas/scene"
)

const demoScene = `
viewport: {width: 120, height: 80}
background: white
strokes:
  - color: steelblue
    style: {width: 6}
    commands:
      - {op: moveTo, x: 10, y: 10}
      - {op: lineTo, x: 50, y: 10}
      - {op: lineTo, x: 50, y: 50}
      - {op: lineTo, x: 10, y: 50}
      - {op: close}
  - color: "#d2691ecc"
    style: {width: 4}
    commands:
      - {op: moveTo, x: 60, y: 70}
      - {op: lineTo, x: 75, y: 20}
      - {op: lineTo, x: 90, y: 60}
      - {op: lineTo, x: 110, y: 15}
  - color: seagreen
    style: {width: 2}
    commands:
      - {op: moveTo, x: 10, y: 70}
      - {op: lineTo, x: 50, y: 70}
`

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (.yaml, .yml or .toml)")
		output    = flag.String("output", "stroke.png", "output file")
		scale     = flag.Int("scale", 4, "output pixels per canvas unit")
		tolerance = flag.Float64("tolerance", 0, "point merge tolerance (0 derives it from -scale)")
		antialias = flag.Bool("antialias", false, "emit a fringe of one output pixel")
		dump      = flag.Bool("dump", false, "log the path cache of every stroke")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose || *dump {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvas.SetLogger(logger)

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	if *scale < 1 {
		log.Fatalf("Invalid -scale %d", *scale)
	}

	opts := []canvas.Option{
		canvas.WithDevicePixelRatio(float32(*scale)),
		canvas.WithAntialias(*antialias),
	}
	if *tolerance > 0 {
		opts = append(opts, canvas.WithTolerance(float32(*tolerance)))
	}
	c := canvas.New(opts...)

	batches, err := s.Replay(c)
	if err != nil {
		log.Fatalf("Failed to stroke scene: %v", err)
	}
	if *dump {
		c.DumpPathCache()
	}

	px := *scale
	width, height := s.Viewport.Width*px, s.Viewport.Height*px
	target := render.NewPixmapTarget(width, height)
	target.Clear(s.BackgroundColor())

	r := render.NewSoftwareRenderer()
	if err := r.Render(target, s.Viewport.Point(), batches...); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := r.Flush(); err != nil {
		log.Fatalf("Failed to flush: %v", err)
	}

	if err := savePNG(*output, target); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	logger.Info("scene rendered", "output", *output, "width", width, "height", height, "strokes", len(batches))
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Decode(strings.NewReader(demoScene), scene.FormatYAML)
	}
	return scene.Load(path)
}

func savePNG(path string, target *render.PixmapTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, target.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
