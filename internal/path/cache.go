package path

import (
	"log/slog"

	"github.com/chewxy/math32"
)

// Initial arena capacities.
const (
	initPointsSize = 128
	initPathsSize  = 16
	initVertsSize  = 256
)

// PointFlags classifies a flattened point.
type PointFlags uint8

const (
	// PointCorner marks a point that came from a command endpoint.
	PointCorner PointFlags = 1 << iota
	// PointLeft marks a left turn.
	PointLeft
	// PointBevel marks an outer join that needs bevel geometry.
	PointBevel
	// PointInnerBevel marks an inner join that needs bevel geometry.
	PointInnerBevel
)

// Point is a flattened path vertex.
//
// DX, DY and Len describe the edge that starts at this point and are set
// by Flatten. DMX, DMY and Flags are set by the join classifier.
type Point struct {
	X, Y     float32
	DX, DY   float32
	Len      float32
	DMX, DMY float32
	Flags    PointFlags
}

// Vertex is a stroke outline vertex. U and V carry the antialiasing gradient.
type Vertex struct {
	X, Y, U, V float32
}

// VertexRange is a window into Cache.Verts. A zero Count means no output.
type VertexRange struct {
	First, Count int
}

// Empty reports whether the range holds no vertices.
func (r VertexRange) Empty() bool {
	return r.Count == 0
}

// Path is a contiguous window Points[First:First+Count] of the cache.
type Path struct {
	First   int
	Count   int
	Closed  bool
	Winding Winding
	NBevel  int
	Convex  bool
	Stroke  VertexRange
	Fill    VertexRange
}

// Cache owns the points, paths and vertices of one flatten/stroke cycle.
//
// A Cache is reused across cycles: Clear truncates the arenas and keeps
// their capacity. It is not safe for concurrent use.
type Cache struct {
	Points []Point
	Paths  []Path
	Verts  []Vertex

	// Bounds is [minX, minY, maxX, maxY] over all flattened points.
	Bounds [4]float32
}

// NewCache creates an empty cache with preallocated arenas.
func NewCache() *Cache {
	return &Cache{
		Points: make([]Point, 0, initPointsSize),
		Paths:  make([]Path, 0, initPathsSize),
		Verts:  make([]Vertex, 0, initVertsSize),
	}
}

// Clear resets the cache for reuse without releasing memory.
func (c *Cache) Clear() {
	c.Points = c.Points[:0]
	c.Paths = c.Paths[:0]
	c.Verts = c.Verts[:0]
	c.Bounds = [4]float32{}
}

// PathPoints returns the points of path i. The slice aliases the arena.
func (c *Cache) PathPoints(i int) []Point {
	p := &c.Paths[i]
	return c.Points[p.First : p.First+p.Count]
}

// Flattened reports whether the cache holds flattened paths.
func (c *Cache) Flattened() bool {
	return len(c.Paths) > 0
}

// ResetOutput drops all emitted vertices and the per-path ranges.
func (c *Cache) ResetOutput() {
	c.Verts = c.Verts[:0]
	for i := range c.Paths {
		c.Paths[i].Stroke = VertexRange{}
		c.Paths[i].Fill = VertexRange{}
	}
}

func (c *Cache) addPath() {
	c.Paths = append(c.Paths, Path{
		First:   len(c.Points),
		Winding: WindingCCW,
	})
}

func (c *Cache) lastPath() *Path {
	if len(c.Paths) == 0 {
		return nil
	}
	return &c.Paths[len(c.Paths)-1]
}

func (c *Cache) addPoint(x, y float32, flags PointFlags, tol float32) {
	path := c.lastPath()
	if path == nil {
		return
	}

	// Merge with the previous point when they coincide.
	if path.Count > 0 && len(c.Points) > 0 {
		last := &c.Points[len(c.Points)-1]
		if ptEquals(last.X, last.Y, x, y, tol) {
			last.Flags |= flags
			return
		}
	}

	c.Points = append(c.Points, Point{X: x, Y: y, Flags: flags})
	path.Count++
}

func (c *Cache) closePath() {
	if path := c.lastPath(); path != nil {
		path.Closed = true
	}
}

func (c *Cache) pathWinding(w Winding) {
	if path := c.lastPath(); path != nil {
		path.Winding = w
	}
}

// Dump logs the cache contents at debug level.
func (c *Cache) Dump(logger *slog.Logger) {
	logger.Debug("path cache", "paths", len(c.Paths), "points", len(c.Points), "verts", len(c.Verts))
	for i := range c.Paths {
		p := &c.Paths[i]
		logger.Debug("path",
			"index", i,
			"count", p.Count,
			"closed", p.Closed,
			"winding", p.Winding,
			"nbevel", p.NBevel,
			"convex", p.Convex,
			"stroke.first", p.Stroke.First,
			"stroke.count", p.Stroke.Count,
		)
		for _, pt := range c.PathPoints(i) {
			logger.Debug("point",
				"x", pt.X, "y", pt.Y,
				"dx", pt.DX, "dy", pt.DY, "len", pt.Len,
				"dmx", pt.DMX, "dmy", pt.DMY,
				"flags", uint8(pt.Flags),
			)
		}
	}
}

func emptyBounds() [4]float32 {
	return [4]float32{math32.MaxFloat32, math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
}
