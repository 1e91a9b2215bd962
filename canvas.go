package canvas

import (
	"fmt"
	"slices"

	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/stroke"
)

// State is the stage of the path pipeline a Canvas is in.
type State int

const (
	// StateIdle means no path command has been recorded since BeginPath.
	StateIdle State = iota
	// StatePathOpen means commands are recorded but not flattened.
	StatePathOpen
	// StateFlattened means the path cache holds polylines but no stroke.
	StateFlattened
	// StateStroked means the vertex buffer holds a complete stroke.
	StateStroked
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePathOpen:
		return "path-open"
	case StateFlattened:
		return "flattened"
	case StateStroked:
		return "stroked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Canvas records path commands and strokes them into triangle-strip
// vertices.
//
// A Canvas owns its path cache; the arenas are reused across BeginPath
// calls. Vertices returned by Vertices and StrokeVertices alias that cache
// and stay valid until the next BeginPath or Stroke.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	commands []path.Command
	style    Stroke
	cache    *path.Cache
	tol      float32
	fringe   float32
	state    State
}

// New creates a Canvas with the given options.
//
// Example:
//
//	c := canvas.New(canvas.WithStroke(canvas.Thick()))
//	c.MoveTo(0, 0)
//	c.LineTo(100, 0)
//	if err := c.Stroke(); err != nil {
//	    return err
//	}
//	verts := c.Vertices()
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		commands: make([]path.Command, 0, 64),
		style:    o.stroke,
		cache:    path.NewCache(),
		tol:      o.tolerance(),
		fringe:   o.fringeWidth(),
	}
}

// BeginPath discards recorded commands and previous output.
func (c *Canvas) BeginPath() {
	c.commands = c.commands[:0]
	c.cache.Clear()
	c.state = StateIdle
}

// MoveTo starts a new sub-path at (x, y).
func (c *Canvas) MoveTo(x, y float32) {
	c.record(path.MoveTo{X: x, Y: y})
}

// LineTo adds a line segment to (x, y).
func (c *Canvas) LineTo(x, y float32) {
	c.record(path.LineTo{X: x, Y: y})
}

// BezierTo adds a cubic bezier segment. Stroking a path that contains one
// fails with ErrUnimplemented.
func (c *Canvas) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	c.record(path.BezierTo{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// ClosePath closes the current sub-path.
func (c *Canvas) ClosePath() {
	c.record(path.Close{})
}

// PathWinding sets the orientation of the current sub-path.
func (c *Canvas) PathWinding(w Winding) {
	c.record(path.SetWinding{Winding: w})
}

// record appends cmd. Commands recorded after flattening invalidate the
// cache so the next Stroke flattens again.
func (c *Canvas) record(cmd path.Command) {
	c.commands = append(c.commands, cmd)
	if c.state != StatePathOpen {
		c.cache.Clear()
		c.state = StatePathOpen
	}
}

// SetLineWidth sets the stroke width.
func (c *Canvas) SetLineWidth(w float32) {
	c.style.Width = w
}

// SetLineCap sets the shape of open path endpoints.
func (c *Canvas) SetLineCap(lineCap LineCap) {
	c.style.Cap = lineCap
}

// SetLineJoin sets the shape of corners.
func (c *Canvas) SetLineJoin(join LineJoin) {
	c.style.Join = join
}

// SetMiterLimit sets the miter limit.
func (c *Canvas) SetMiterLimit(limit float32) {
	c.style.MiterLimit = limit
}

// SetStroke replaces the whole stroke style.
func (c *Canvas) SetStroke(s Stroke) {
	c.style = s
}

// StrokeStyle returns the current stroke style.
func (c *Canvas) StrokeStyle() Stroke {
	return c.style
}

// Tolerance returns the point-merge and tessellation tolerance.
func (c *Canvas) Tolerance() float32 {
	return c.tol
}

// FringeWidth returns the antialiasing fringe width.
func (c *Canvas) FringeWidth() float32 {
	return c.fringe
}

// Stroke flattens the recorded commands, if not already flattened, and
// expands them into stroke vertices with the current style.
//
// Calling Stroke again without new commands re-uses the flattened paths,
// so the style may be changed between calls. On error no vertices are
// exposed and the returned error matches ErrUnimplemented.
func (c *Canvas) Stroke() error {
	log := Logger()

	if c.state == StateIdle || c.state == StatePathOpen {
		c.cache.Clear()
		if err := c.cache.Flatten(c.commands, c.tol); err != nil {
			log.Warn("canvas: flatten failed", "commands", len(c.commands), "err", err)
			return err
		}
		c.state = StateFlattened
		log.Debug("path flattened",
			"commands", len(c.commands),
			"paths", len(c.cache.Paths),
			"points", len(c.cache.Points),
		)
	}

	if err := stroke.ExpandStroke(c.cache, c.style.options(c.tol, c.fringe)); err != nil {
		c.state = StateFlattened
		log.Warn("canvas: stroke failed", "width", c.style.Width, "cap", c.style.Cap, "join", c.style.Join, "err", err)
		return err
	}
	c.state = StateStroked
	log.Debug("stroke expanded",
		"paths", len(c.cache.Paths),
		"verts", len(c.cache.Verts),
		"width", c.style.Width,
	)
	return nil
}

// State returns the current pipeline state.
func (c *Canvas) State() State {
	return c.state
}

// Vertices returns the stroke vertices of every path, path after path.
// The slice aliases internal storage; do not modify it.
func (c *Canvas) Vertices() []Vertex {
	if c.state != StateStroked {
		return nil
	}
	return c.cache.Verts
}

// Paths returns a copy of the flattened path descriptors, including the
// stroke range of each path in Vertices.
func (c *Canvas) Paths() []Path {
	if c.state != StateFlattened && c.state != StateStroked {
		return nil
	}
	return slices.Clone(c.cache.Paths)
}

// StrokeVertices returns the triangle strip of path i, or nil when the path
// produced no stroke.
func (c *Canvas) StrokeVertices(i int) []Vertex {
	if c.state != StateStroked || i < 0 || i >= len(c.cache.Paths) {
		return nil
	}
	r := c.cache.Paths[i].Stroke
	if r.Empty() {
		return nil
	}
	return c.cache.Verts[r.First : r.First+r.Count]
}

// Bounds returns [minX, minY, maxX, maxY] over all flattened points.
// It is meaningful only once the path has been flattened.
func (c *Canvas) Bounds() [4]float32 {
	return c.cache.Bounds
}

// DumpPathCache logs the path cache contents at debug level.
func (c *Canvas) DumpPathCache() {
	c.cache.Dump(Logger())
}
