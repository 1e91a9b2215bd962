package stroke

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/canvas/internal/path"
)

// Options is the stroke style consumed by ExpandStroke.
type Options struct {
	// HalfWidth is half the stroke width.
	HalfWidth float32

	// Fringe is the antialiasing fringe width. Zero disables the gradient.
	Fringe float32

	Cap        LineCap
	Join       LineJoin
	MiterLimit float32

	// Tolerance is the tessellation tolerance.
	Tolerance float32
}

// curveDivs returns the number of segments needed to approximate an arc of
// radius r within tol.
func curveDivs(r, arc, tol float32) int {
	da := math32.Acos(r/(r+tol)) * 2
	if !(da > 0) {
		return 2
	}
	return max(2, int(math32.Ceil(arc/da)))
}

// ExpandStroke emits the stroke outline of every flattened path in c into
// c.Verts and records each path's stroke range.
//
// Paths with fewer than two points produce no output. If any path needs
// geometry that is not implemented, ExpandStroke returns an
// *path.UnimplementedError and leaves no vertices behind.
func ExpandStroke(c *path.Cache, opts Options) error {
	aa := opts.Fringe
	u0, u1 := float32(0), float32(1)
	if aa == 0 {
		// No antialiasing: keep the gradient flat.
		u0, u1 = 0.5, 0.5
	}
	ncap := curveDivs(opts.HalfWidth, math32.Pi, opts.Tolerance)
	w := opts.HalfWidth + aa*0.5

	CalculateJoins(c, w, opts.Join, opts.MiterLimit)

	c.ResetOutput()
	c.Verts = growVerts(c.Verts, vertexCapacity(c, opts.Cap, opts.Join, ncap))

	verts := c.Verts
	for i := range c.Paths {
		p := &c.Paths[i]
		if p.Count < 2 {
			continue
		}

		var err error
		first := len(verts)
		if p.Closed {
			verts, err = expandLoop(verts, c.PathPoints(i), w, u0, u1)
		} else {
			verts, err = expandOpen(verts, c.PathPoints(i), opts.Cap, w, aa, u0, u1)
		}
		if err != nil {
			c.ResetOutput()
			return err
		}
		p.Stroke = path.VertexRange{First: first, Count: len(verts) - first}
	}
	c.Verts = verts

	return nil
}

// vertexCapacity estimates the vertex count of the whole stroke.
func vertexCapacity(c *path.Cache, lineCap LineCap, join LineJoin, ncap int) int {
	n := 0
	for i := range c.Paths {
		p := &c.Paths[i]
		if join == LineJoinRound {
			n += (p.Count + p.NBevel*(ncap+2) + 1) * 2
		} else {
			n += (p.Count + p.NBevel*5 + 1) * 2
		}
		if !p.Closed {
			if lineCap == LineCapRound {
				n += (ncap*2 + 2) * 2
			} else {
				n += (3 + 3) * 2
			}
		}
	}
	return n
}

func growVerts(verts []path.Vertex, n int) []path.Vertex {
	if cap(verts)-len(verts) >= n {
		return verts
	}
	grown := make([]path.Vertex, len(verts), len(verts)+n)
	copy(grown, verts)
	return grown
}

// emitJoin appends the two offset vertices of pt.
// At zero width every join collapses onto the point itself, bevels included.
func emitJoin(verts []path.Vertex, pt path.Point, w, u0, u1 float32) ([]path.Vertex, error) {
	if w > 0 && pt.Flags&(path.PointBevel|path.PointInnerBevel) != 0 {
		return verts, &path.UnimplementedError{Op: "bevel join"}
	}
	verts = appendVertex(verts, pt.X+pt.DMX*w, pt.Y+pt.DMY*w, u0, 1)
	verts = appendVertex(verts, pt.X-pt.DMX*w, pt.Y-pt.DMY*w, u1, 1)
	return verts, nil
}

// expandLoop strokes a closed path and repeats its first two vertices to
// close the strip.
func expandLoop(verts []path.Vertex, pts []path.Point, w, u0, u1 float32) ([]path.Vertex, error) {
	first := len(verts)
	var err error
	for _, pt := range pts {
		if verts, err = emitJoin(verts, pt, w, u0, u1); err != nil {
			return verts, err
		}
	}
	verts = appendVertex(verts, verts[first].X, verts[first].Y, u0, 1)
	verts = appendVertex(verts, verts[first+1].X, verts[first+1].Y, u1, 1)
	return verts, nil
}

// expandOpen strokes an open path with caps at both ends.
func expandOpen(verts []path.Vertex, pts []path.Point, lineCap LineCap, w, aa, u0, u1 float32) ([]path.Vertex, error) {
	if err := capError(lineCap); err != nil {
		return verts, err
	}

	n := len(pts)
	p0, p1 := pts[0], pts[1]
	dx, dy, _ := path.Normalize(p1.X-p0.X, p1.Y-p0.Y)
	verts = buttCapStart(verts, p0, dx, dy, w, -aa*0.5, aa, u0, u1)

	var err error
	for _, pt := range pts[1 : n-1] {
		if verts, err = emitJoin(verts, pt, w, u0, u1); err != nil {
			return verts, err
		}
	}

	p0, p1 = pts[n-2], pts[n-1]
	dx, dy, _ = path.Normalize(p1.X-p0.X, p1.Y-p0.Y)
	verts = buttCapEnd(verts, p1, dx, dy, w, -aa*0.5, aa, u0, u1)
	return verts, nil
}
