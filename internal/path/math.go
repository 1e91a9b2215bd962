package path

import "github.com/chewxy/math32"

// normalizeEpsilon is the length below which a direction is left as is.
const normalizeEpsilon = 1e-6

// Normalize returns the unit direction of (x, y) and its length.
// Vectors shorter than 1e-6 are returned unchanged.
func Normalize(x, y float32) (nx, ny, length float32) {
	length = math32.Sqrt(x*x + y*y)
	nx, ny = x, y
	if length > normalizeEpsilon {
		inv := 1 / length
		nx *= inv
		ny *= inv
	}
	return nx, ny, length
}

func ptEquals(x1, y1, x2, y2, tol float32) bool {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx+dy*dy < tol*tol
}

func triangleArea(ax, ay, bx, by, cx, cy float32) float32 {
	abx := bx - ax
	aby := by - ay
	acx := cx - ax
	acy := cy - ay
	return acx*aby - abx*acy
}

// PolygonArea returns the signed area of pts as a fan from pts[0].
// With y pointing down, counter-clockwise polygons have positive area.
func PolygonArea(pts []Point) float32 {
	if len(pts) < 3 {
		return 0
	}
	var area float32
	a := pts[0]
	for i := 2; i < len(pts); i++ {
		b := pts[i-1]
		c := pts[i]
		area += triangleArea(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	}
	return area * 0.5
}

func polyReverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
