// Package path provides the command buffer, the path cache and the path
// flattener used by the stroker.
package path

// Command is one entry of a command buffer.
// Commands are immutable once appended.
type Command interface {
	isCommand()
}

// MoveTo starts a new subpath at (X, Y).
type MoveTo struct{ X, Y float32 }

func (MoveTo) isCommand() {}

// LineTo adds a straight segment to (X, Y).
type LineTo struct{ X, Y float32 }

func (LineTo) isCommand() {}

// BezierTo adds a cubic Bezier segment. Flattening it is not supported.
type BezierTo struct {
	C1X, C1Y float32
	C2X, C2Y float32
	X, Y     float32
}

func (BezierTo) isCommand() {}

// Close marks the current subpath as closed.
type Close struct{}

func (Close) isCommand() {}

// SetWinding sets the enforced winding of the current subpath.
type SetWinding struct{ Winding Winding }

func (SetWinding) isCommand() {}

// Winding is the rotational direction of a closed subpath.
type Winding int

const (
	// WindingCCW is counter-clockwise winding, used for solid shapes.
	WindingCCW Winding = iota
	// WindingCW is clockwise winding, used for holes.
	WindingCW
)

// String returns the winding name.
func (w Winding) String() string {
	switch w {
	case WindingCCW:
		return "ccw"
	case WindingCW:
		return "cw"
	default:
		return "unknown"
	}
}
