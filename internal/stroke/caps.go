package stroke

import "github.com/gogpu/canvas/internal/path"

func appendVertex(verts []path.Vertex, x, y, u, v float32) []path.Vertex {
	return append(verts, path.Vertex{X: x, Y: y, U: u, V: v})
}

// buttCapStart emits the four vertices of a flat start cap at p facing
// along (dx, dy). The first pair sits aa behind the edge with v = 0.
func buttCapStart(verts []path.Vertex, p path.Point, dx, dy, w, d, aa, u0, u1 float32) []path.Vertex {
	px := p.X - dx*d
	py := p.Y - dy*d
	dlx := dy
	dly := -dx
	verts = appendVertex(verts, px+dlx*w-dx*aa, py+dly*w-dy*aa, u0, 0)
	verts = appendVertex(verts, px-dlx*w-dx*aa, py-dly*w-dy*aa, u1, 0)
	verts = appendVertex(verts, px+dlx*w, py+dly*w, u0, 1)
	verts = appendVertex(verts, px-dlx*w, py-dly*w, u1, 1)
	return verts
}

// buttCapEnd mirrors buttCapStart at the far end of the path.
func buttCapEnd(verts []path.Vertex, p path.Point, dx, dy, w, d, aa, u0, u1 float32) []path.Vertex {
	px := p.X + dx*d
	py := p.Y + dy*d
	dlx := dy
	dly := -dx
	verts = appendVertex(verts, px+dlx*w, py+dly*w, u0, 1)
	verts = appendVertex(verts, px-dlx*w, py-dly*w, u1, 1)
	verts = appendVertex(verts, px+dlx*w+dx*aa, py+dly*w+dy*aa, u0, 0)
	verts = appendVertex(verts, px-dlx*w+dx*aa, py-dly*w+dy*aa, u1, 0)
	return verts
}

// capError reports the error for caps other than butt.
func capError(lineCap LineCap) error {
	switch lineCap {
	case LineCapButt:
		return nil
	case LineCapRound:
		return &path.UnimplementedError{Op: "round cap"}
	case LineCapSquare:
		return &path.UnimplementedError{Op: "square cap"}
	default:
		return &path.UnimplementedError{Op: lineCap.String()}
	}
}
