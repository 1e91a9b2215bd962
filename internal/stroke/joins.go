package stroke

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/canvas/internal/path"
)

// Join classification constants.
const (
	// miterScaleLimit caps the miter extrusion of near 180 degree turns.
	miterScaleLimit = 600.0

	// minInnerLimit keeps very short segments from always beveling.
	minInnerLimit = 1.01

	degenerateMiter = 1e-6
)

// CalculateJoins computes the miter direction and join flags of every point
// in the cache for a stroke of half-width w.
//
// It must run after Flatten and before ExpandStroke. Paths with fewer than
// two points are left untouched.
func CalculateJoins(c *path.Cache, w float32, join LineJoin, miterLimit float32) {
	var iw float32
	if w > 0 {
		iw = 1 / w
	}

	for i := range c.Paths {
		p := &c.Paths[i]
		p.NBevel = 0
		if p.Count < 2 {
			continue
		}

		pts := c.PathPoints(i)
		nleft := 0
		for prev, cur := range path.EdgePairs(len(pts)) {
			p0 := pts[prev]
			p1 := &pts[cur]

			dlx0 := p0.DY
			dly0 := -p0.DX
			dlx1 := p1.DY
			dly1 := -p1.DX

			// Extrusion
			p1.DMX = (dlx0 + dlx1) * 0.5
			p1.DMY = (dly0 + dly1) * 0.5
			dmr2 := p1.DMX*p1.DMX + p1.DMY*p1.DMY
			if dmr2 > degenerateMiter {
				scale := math32.Min(1/dmr2, miterScaleLimit)
				p1.DMX *= scale
				p1.DMY *= scale
			}

			// Keep only the corner flag.
			p1.Flags &= path.PointCorner

			cross := p1.DX*p0.DY - p0.DX*p1.DY
			if cross > 0 {
				nleft++
				p1.Flags |= path.PointLeft
			}

			limit := math32.Max(math32.Min(p0.Len, p1.Len)*iw, minInnerLimit)
			if dmr2*limit*limit < 1 {
				p1.Flags |= path.PointInnerBevel
			}

			if p1.Flags&path.PointCorner != 0 {
				if dmr2*miterLimit*miterLimit < 1 || join == LineJoinBevel || join == LineJoinRound {
					p1.Flags |= path.PointBevel
				}
			}

			if p1.Flags&(path.PointBevel|path.PointInnerBevel) != 0 {
				p.NBevel++
			}
		}

		p.Convex = nleft == p.Count
	}
}
