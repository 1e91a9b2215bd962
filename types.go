package canvas

import (
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/stroke"
)

// Vertex is a stroke outline vertex: position plus the (U, V) antialiasing
// gradient coordinates.
type Vertex = path.Vertex

// VertexRange is a window into the canvas vertex buffer.
type VertexRange = path.VertexRange

// Path describes one flattened sub-path and the vertices stroked for it.
type Path = path.Path

// Winding is the requested orientation of a sub-path.
type Winding = path.Winding

// Winding directions.
const (
	WindingCCW = path.WindingCCW
	WindingCW  = path.WindingCW
)

// LineCap specifies the shape of open path endpoints.
type LineCap = stroke.LineCap

// Line cap styles.
const (
	LineCapButt   = stroke.LineCapButt
	LineCapRound  = stroke.LineCapRound
	LineCapSquare = stroke.LineCapSquare
)

// LineJoin specifies the shape of the corner between two segments.
type LineJoin = stroke.LineJoin

// Line join styles.
const (
	LineJoinMiter = stroke.LineJoinMiter
	LineJoinRound = stroke.LineJoinRound
	LineJoinBevel = stroke.LineJoinBevel
)
