// Package canvas strokes 2D paths into triangle strips.
//
// # Overview
//
// canvas records path commands the way an HTML canvas does, flattens them
// into polylines and expands each polyline into a stroke outline: two
// vertices per point, one on each side of the path, ready to be drawn as a
// triangle strip. It does not rasterize; package render draws the strips on
// the CPU or describes the pipeline a GPU host needs to draw them.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	c := canvas.New(canvas.WithStroke(canvas.DefaultStroke().WithWidth(2)))
//	c.MoveTo(0, 0)
//	c.LineTo(10, 0)
//	c.LineTo(10, 10)
//	c.ClosePath()
//
//	if err := c.Stroke(); err != nil {
//	    return err
//	}
//	for i := range c.Paths() {
//	    strip := c.StrokeVertices(i) // 8 vertices for the closed triangle
//	    _ = strip
//	}
//
// # Pipeline
//
// A Canvas moves through four states. BeginPath returns it to StateIdle,
// recording a command moves it to StatePathOpen, Stroke flattens the path
// (StateFlattened) and expands it (StateStroked). Stroking again without
// new commands re-uses the flattened path, so a different style can be
// applied cheaply.
//
// Flattening merges points closer than the tolerance, closes paths whose
// endpoints coincide and enforces the requested winding. Stroking
// classifies every join, then emits miter joins and butt caps.
//
// # Limitations
//
// Bezier segments, round and square caps, and joins that need bevel
// geometry are not implemented. Stroke reports them with an error matching
// ErrUnimplemented and leaves no partial output.
//
// # Architecture
//
//   - canvas: command recording, style, state machine
//   - internal/path: command buffer, path cache, flattener
//   - internal/stroke: join classifier, stroke expander
//   - render: software renderer and GPU pipeline description
//   - scene: YAML and TOML scene files replayed through a Canvas
//
// # Logging
//
// canvas is silent by default. Use SetLogger to receive debug records about
// flattening and stroking.
package canvas
