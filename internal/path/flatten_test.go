package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTol = 0.01

func TestEdgePairs(t *testing.T) {
	var got [][2]int
	for prev, cur := range EdgePairs(3) {
		got = append(got, [2]int{prev, cur})
	}
	assert.Equal(t, [][2]int{{2, 0}, {0, 1}, {1, 2}}, got)
}

func TestEdgePairsEmpty(t *testing.T) {
	for range EdgePairs(0) {
		t.Fatal("EdgePairs(0) yielded a pair")
	}
}

func TestEdgePairsStopsEarly(t *testing.T) {
	n := 0
	for range EdgePairs(10) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float32
		wantX, wantY float32
		wantLen      float32
	}{
		{"unit x", 5, 0, 1, 0, 5},
		{"3-4-5", 3, 4, 0.6, 0.8, 5},
		{"zero", 0, 0, 0, 0, 0},
		{"below epsilon", 1e-7, 0, 1e-7, 0, 1e-7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, l := Normalize(tt.x, tt.y)
			assert.InDelta(t, tt.wantX, x, 1e-6)
			assert.InDelta(t, tt.wantY, y, 1e-6)
			assert.InDelta(t, tt.wantLen, l, 1e-6)
		})
	}
}

func TestPolygonArea(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	assert.InDelta(t, 100, PolygonArea(square), 1e-4)

	polyReverse(square)
	assert.InDelta(t, -100, PolygonArea(square), 1e-4)

	assert.Zero(t, PolygonArea(square[:2]))
}

func TestFlattenTriangle(t *testing.T) {
	c := NewCache()
	err := c.Flatten([]Command{
		MoveTo{0, 0},
		LineTo{10, 0},
		LineTo{10, 10},
		Close{},
	}, testTol)
	require.NoError(t, err)
	require.Len(t, c.Paths, 1)

	p := c.Paths[0]
	assert.Equal(t, 3, p.Count)
	assert.True(t, p.Closed)
	assert.Equal(t, WindingCCW, p.Winding)
	assert.Greater(t, PolygonArea(c.PathPoints(0)), float32(0))
	assert.Equal(t, [4]float32{0, 0, 10, 10}, c.Bounds)
}

func TestFlattenClosure(t *testing.T) {
	c := NewCache()
	err := c.Flatten([]Command{
		MoveTo{0, 0},
		LineTo{10, 0},
		LineTo{10, 10},
		LineTo{0.001, 0.001},
	}, testTol)
	require.NoError(t, err)

	p := c.Paths[0]
	assert.True(t, p.Closed, "coinciding endpoints close the path")
	assert.Equal(t, 3, p.Count, "duplicate endpoint is dropped")
}

func TestFlattenOpenPath(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{MoveTo{0, 0}, LineTo{10, 0}}, testTol))

	p := c.Paths[0]
	assert.False(t, p.Closed)
	assert.Equal(t, 2, p.Count)

	pts := c.PathPoints(0)
	assert.Equal(t, float32(1), pts[0].DX)
	assert.Equal(t, float32(0), pts[0].DY)
	assert.Equal(t, float32(10), pts[0].Len)
	// The wrapping edge is stored on the last point.
	assert.Equal(t, float32(-1), pts[1].DX)
	assert.Equal(t, float32(10), pts[1].Len)
}

func TestFlattenMergesNearPoints(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{
		MoveTo{0, 0},
		LineTo{5, 0},
		LineTo{5.001, 0},
		LineTo{10, 0},
	}, testTol))
	assert.Equal(t, 3, c.Paths[0].Count)
	assert.Len(t, c.Points, 3)
}

func TestFlattenWinding(t *testing.T) {
	ccw := []Command{MoveTo{0, 0}, LineTo{0, 10}, LineTo{10, 10}, LineTo{10, 0}, Close{}}
	cw := []Command{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, LineTo{0, 10}, Close{}}

	tests := []struct {
		name     string
		cmds     []Command
		winding  Winding
		positive bool
	}{
		{"ccw kept", ccw, WindingCCW, true},
		{"cw reversed to ccw", cw, WindingCCW, true},
		{"ccw reversed to cw", ccw, WindingCW, false},
		{"cw kept", cw, WindingCW, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := append(append([]Command{}, tt.cmds...), SetWinding{tt.winding})
			c := NewCache()
			require.NoError(t, c.Flatten(cmds, testTol))

			area := PolygonArea(c.PathPoints(0))
			if tt.positive {
				assert.Greater(t, area, float32(0))
			} else {
				assert.Less(t, area, float32(0))
			}
		})
	}
}

func TestFlattenWindingSkipsTwoPoints(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{MoveTo{10, 0}, LineTo{0, 0}, SetWinding{WindingCW}}, testTol))
	pts := c.PathPoints(0)
	assert.Equal(t, float32(10), pts[0].X, "two point paths are never reversed")
}

func TestFlattenMultiplePaths(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{
		MoveTo{0, 0}, LineTo{10, 0},
		MoveTo{20, 20}, LineTo{30, 20}, LineTo{30, -5},
	}, testTol))

	require.Len(t, c.Paths, 2)
	assert.Equal(t, 0, c.Paths[0].First)
	assert.Equal(t, 2, c.Paths[1].First)
	assert.Equal(t, 3, c.Paths[1].Count)
	assert.Equal(t, [4]float32{0, -5, 30, 20}, c.Bounds)
}

func TestFlattenSingleMoveTo(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{MoveTo{3, 4}}, testTol))
	require.Len(t, c.Paths, 1)
	assert.Equal(t, 1, c.Paths[0].Count)
	assert.False(t, c.Paths[0].Closed)
}

func TestFlattenIgnoresCommandsWithoutPath(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{LineTo{1, 1}, Close{}, SetWinding{WindingCW}}, testTol))
	assert.Empty(t, c.Paths)
	assert.Empty(t, c.Points)
}

func TestFlattenBezierFails(t *testing.T) {
	c := NewCache()
	err := c.Flatten([]Command{
		MoveTo{0, 0},
		LineTo{10, 0},
		BezierTo{10, 5, 5, 10, 0, 10},
	}, testTol)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnimplemented)

	var ue *UnimplementedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "bezier flattening", ue.Op)
	assert.False(t, c.Flattened())
	assert.Empty(t, c.Points)
}

func TestCacheClearKeepsCapacity(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{MoveTo{0, 0}, LineTo{10, 0}}, testTol))
	c.Verts = append(c.Verts, Vertex{X: 1})
	pointsCap := cap(c.Points)

	c.Clear()
	assert.Empty(t, c.Points)
	assert.Empty(t, c.Paths)
	assert.Empty(t, c.Verts)
	assert.Equal(t, pointsCap, cap(c.Points))
}

func TestResetOutput(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Flatten([]Command{MoveTo{0, 0}, LineTo{10, 0}}, testTol))
	c.Verts = append(c.Verts, Vertex{}, Vertex{})
	c.Paths[0].Stroke = VertexRange{First: 0, Count: 2}

	c.ResetOutput()
	assert.Empty(t, c.Verts)
	assert.True(t, c.Paths[0].Stroke.Empty())
}

func TestWindingString(t *testing.T) {
	assert.Equal(t, "ccw", WindingCCW.String())
	assert.Equal(t, "cw", WindingCW.String())
	assert.Equal(t, "unknown", Winding(7).String())
}
