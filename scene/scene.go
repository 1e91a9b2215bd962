// Package scene loads stroke scenes from YAML or TOML documents and replays
// them through a canvas.
//
// A scene is a viewport, an optional background and a list of strokes. Each
// stroke carries its color, its style and the path commands to record:
//
//	viewport: {width: 64, height: 64}
//	background: white
//	strokes:
//	  - color: "#ff0000"
//	    style: {width: 2, cap: butt, join: miter, miterLimit: 10}
//	    commands:
//	      - {op: moveTo, x: 4, y: 4}
//	      - {op: lineTo, x: 60, y: 4}
//	      - {op: lineTo, x: 60, y: 60}
//	      - {op: close}
package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/render"
)

// Scene is a decoded scene document.
type Scene struct {
	Viewport   Viewport `yaml:"viewport" toml:"viewport"`
	Background string   `yaml:"background,omitempty" toml:"background,omitempty"`
	Strokes    []Stroke `yaml:"strokes" toml:"strokes"`
}

// Viewport is the scene size in canvas units.
type Viewport struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Point returns the viewport size as an image.Point.
func (v Viewport) Point() image.Point {
	return image.Pt(v.Width, v.Height)
}

// Stroke is one stroked path of a scene.
type Stroke struct {
	Color    string    `yaml:"color,omitempty" toml:"color,omitempty"`
	Style    Style     `yaml:"style,omitempty" toml:"style,omitempty"`
	Commands []Command `yaml:"commands" toml:"commands"`
}

// Style overrides fields of canvas.DefaultStroke. Nil fields keep the
// default.
type Style struct {
	Width      *float32        `yaml:"width,omitempty" toml:"width,omitempty"`
	Cap        canvas.LineCap  `yaml:"cap,omitempty" toml:"cap,omitempty"`
	Join       canvas.LineJoin `yaml:"join,omitempty" toml:"join,omitempty"`
	MiterLimit *float32        `yaml:"miterLimit,omitempty" toml:"miterLimit,omitempty"`
}

// Stroke returns the canvas style described by s.
func (s Style) Stroke() canvas.Stroke {
	st := canvas.DefaultStroke().WithCap(s.Cap).WithJoin(s.Join)
	if s.Width != nil {
		st = st.WithWidth(*s.Width)
	}
	if s.MiterLimit != nil {
		st = st.WithMiterLimit(*s.MiterLimit)
	}
	return st
}

// Op names a path command.
type Op string

// Path command names.
const (
	OpMoveTo   Op = "moveTo"
	OpLineTo   Op = "lineTo"
	OpBezierTo Op = "bezierTo"
	OpClose    Op = "close"
	OpWinding  Op = "winding"
)

// Command is one path command. Only the fields used by Op are read.
type Command struct {
	Op      Op      `yaml:"op" toml:"op"`
	X       float32 `yaml:"x,omitempty" toml:"x,omitempty"`
	Y       float32 `yaml:"y,omitempty" toml:"y,omitempty"`
	C1X     float32 `yaml:"c1x,omitempty" toml:"c1x,omitempty"`
	C1Y     float32 `yaml:"c1y,omitempty" toml:"c1y,omitempty"`
	C2X     float32 `yaml:"c2x,omitempty" toml:"c2x,omitempty"`
	C2Y     float32 `yaml:"c2y,omitempty" toml:"c2y,omitempty"`
	Winding string  `yaml:"winding,omitempty" toml:"winding,omitempty"`
}

// Errors returned by Validate.
var (
	ErrInvalidViewport = errors.New("scene: viewport must be positive")
	ErrUnknownOp       = errors.New("scene: unknown command")
	ErrInvalidWinding  = errors.New("scene: invalid winding")
)

// Validate checks the whole scene and reports every problem found.
func (s *Scene) Validate() error {
	var errs []error
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, s.Viewport.Width, s.Viewport.Height))
	}
	if _, err := ParseColor(s.Background); err != nil {
		errs = append(errs, fmt.Errorf("background: %w", err))
	}
	for i, st := range s.Strokes {
		if _, err := ParseColor(st.Color); err != nil {
			errs = append(errs, fmt.Errorf("stroke %d: %w", i, err))
		}
		for j, cmd := range st.Commands {
			if err := cmd.validate(); err != nil {
				errs = append(errs, fmt.Errorf("stroke %d command %d: %w", i, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (c Command) validate() error {
	switch c.Op {
	case OpMoveTo, OpLineTo, OpBezierTo, OpClose:
		return nil
	case OpWinding:
		_, err := parseWinding(c.Winding)
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, c.Op)
	}
}

func parseWinding(s string) (canvas.Winding, error) {
	switch s {
	case "ccw", "":
		return canvas.WindingCCW, nil
	case "cw":
		return canvas.WindingCW, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidWinding, s)
	}
}

// record issues the command on c. The command must be valid.
func (c Command) record(cv *canvas.Canvas) {
	switch c.Op {
	case OpMoveTo:
		cv.MoveTo(c.X, c.Y)
	case OpLineTo:
		cv.LineTo(c.X, c.Y)
	case OpBezierTo:
		cv.BezierTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
	case OpClose:
		cv.ClosePath()
	case OpWinding:
		w, _ := parseWinding(c.Winding)
		cv.PathWinding(w)
	}
}

// Replay strokes every scene stroke on c and returns one batch per stroke.
//
// Each stroke starts with BeginPath, so c holds the last stroke when Replay
// returns. The first stroke that fails stops the replay; the error wraps the
// canvas error so errors.Is(err, canvas.ErrUnimplemented) still works.
func (s *Scene) Replay(c *canvas.Canvas) ([]render.Batch, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := canvas.Logger()
	batches := make([]render.Batch, 0, len(s.Strokes))
	for i, st := range s.Strokes {
		col, _ := ParseColor(st.Color)

		c.BeginPath()
		c.SetStroke(st.Style.Stroke())
		for _, cmd := range st.Commands {
			cmd.record(c)
		}
		if err := c.Stroke(); err != nil {
			return batches, fmt.Errorf("scene: stroke %d: %w", i, err)
		}

		b := render.NewBatch(c, col)
		log.Debug("scene: stroke replayed", "stroke", i, "commands", len(st.Commands), "verts", len(b.Vertices))
		batches = append(batches, b)
	}
	return batches, nil
}

// BackgroundColor returns the parsed background color. An empty background
// is transparent.
func (s *Scene) BackgroundColor() color.Color {
	if s.Background == "" {
		return color.Transparent
	}
	c, err := ParseColor(s.Background)
	if err != nil {
		return color.Transparent
	}
	return c
}
