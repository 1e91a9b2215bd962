package path

import "github.com/chewxy/math32"

// Flatten converts cmds into polylines stored in the cache.
//
// Each MoveTo starts a new path; LineTo points closer than tol to the
// previous point are merged into it. After all commands are consumed every
// path is closed if its endpoints coincide, its winding is enforced and the
// per-edge direction and length are stored on the edge's origin point.
//
// BezierTo is not supported: Flatten returns an *UnimplementedError and
// leaves the cache cleared.
func (c *Cache) Flatten(cmds []Command, tol float32) error {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case MoveTo:
			c.addPath()
			c.addPoint(cmd.X, cmd.Y, PointCorner, tol)
		case LineTo:
			c.addPoint(cmd.X, cmd.Y, PointCorner, tol)
		case BezierTo:
			c.Clear()
			return &UnimplementedError{Op: "bezier flattening"}
		case Close:
			c.closePath()
		case SetWinding:
			c.pathWinding(cmd.Winding)
		}
	}

	c.Bounds = emptyBounds()

	for i := range c.Paths {
		path := &c.Paths[i]
		pts := c.Points[path.First : path.First+path.Count]

		// If the first and last points are the same, drop the last and
		// mark the path closed.
		if path.Count >= 2 {
			p0 := pts[path.Count-1]
			p1 := pts[0]
			if ptEquals(p0.X, p0.Y, p1.X, p1.Y, tol) {
				path.Count--
				path.Closed = true
				pts = pts[:path.Count]
			}
		}

		if path.Count > 2 {
			area := PolygonArea(pts)
			if (path.Winding == WindingCCW && area < 0) || (path.Winding == WindingCW && area > 0) {
				polyReverse(pts)
			}
		}

		for prev, cur := range EdgePairs(len(pts)) {
			p1 := pts[cur]
			p0 := &pts[prev]
			p0.DX, p0.DY, p0.Len = Normalize(p1.X-p0.X, p1.Y-p0.Y)

			c.Bounds[0] = math32.Min(c.Bounds[0], p0.X)
			c.Bounds[1] = math32.Min(c.Bounds[1], p0.Y)
			c.Bounds[2] = math32.Max(c.Bounds[2], p0.X)
			c.Bounds[3] = math32.Max(c.Bounds[3], p0.Y)
		}
	}

	return nil
}
