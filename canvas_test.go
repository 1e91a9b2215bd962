package canvas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(c *Canvas) {
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.LineTo(10, 10)
	c.ClosePath()
}

func TestCanvasTriangle(t *testing.T) {
	c := New(WithStroke(DefaultStroke().WithWidth(2)))
	triangle(c)
	require.NoError(t, c.Stroke())

	paths := c.Paths()
	require.Len(t, paths, 1)
	p := paths[0]
	assert.Equal(t, 3, p.Count)
	assert.True(t, p.Closed)
	assert.Zero(t, p.NBevel)
	assert.Equal(t, VertexRange{First: 0, Count: 8}, p.Stroke)

	verts := c.Vertices()
	require.Len(t, verts, 8)
	for i, v := range verts {
		assert.Equal(t, float32(0.5), v.U, "vertex %d", i)
		assert.Equal(t, float32(1), v.V, "vertex %d", i)
	}
	assert.Equal(t, verts[0].X, verts[6].X)
	assert.Equal(t, verts[0].Y, verts[6].Y)
	assert.Equal(t, verts[1].X, verts[7].X)
	assert.Equal(t, verts[1].Y, verts[7].Y)
	assert.Equal(t, [4]float32{0, 0, 10, 10}, c.Bounds())
	assert.Equal(t, verts, c.StrokeVertices(0))
}

func TestCanvasBezierFails(t *testing.T) {
	c := New()
	c.MoveTo(0, 0)
	c.BezierTo(5, 0, 10, 5, 10, 10)

	err := c.Stroke()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnimplemented))

	var ue *UnimplementedError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "bezier flattening", ue.Op)

	assert.Equal(t, StatePathOpen, c.State())
	assert.Empty(t, c.Vertices())
	assert.Empty(t, c.Paths())
}

func TestCanvasUnsupportedStyleLeavesNoOutput(t *testing.T) {
	c := New(WithStroke(DefaultStroke().WithCap(LineCapRound)))
	c.MoveTo(0, 0)
	c.LineTo(10, 0)

	err := c.Stroke()
	require.ErrorIs(t, err, ErrUnimplemented)
	assert.Equal(t, StateFlattened, c.State())
	assert.Empty(t, c.Vertices())

	// The style can be fixed without re-recording the path.
	c.SetLineCap(LineCapButt)
	require.NoError(t, c.Stroke())
	assert.Len(t, c.Vertices(), 8)
}

func TestCanvasStrokeIdempotent(t *testing.T) {
	c := New(WithFringeWidth(1))
	triangle(c)
	require.NoError(t, c.Stroke())
	first := append([]Vertex(nil), c.Vertices()...)

	require.NoError(t, c.Stroke())
	assert.Equal(t, first, c.Vertices())

	c.BeginPath()
	triangle(c)
	require.NoError(t, c.Stroke())
	assert.Equal(t, first, c.Vertices())
}

func TestCanvasRestrokeWithNewStyle(t *testing.T) {
	c := New()
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	require.NoError(t, c.Stroke())
	assert.Equal(t, float32(0.5), c.Vertices()[3].Y)

	c.SetLineWidth(4)
	require.NoError(t, c.Stroke())
	assert.Equal(t, float32(2), c.Vertices()[3].Y)
}

func TestCanvasDegeneratePathsSkipped(t *testing.T) {
	c := New()
	c.MoveTo(5, 5)
	c.MoveTo(0, 0)
	c.LineTo(0.001, 0)
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	require.NoError(t, c.Stroke())

	paths := c.Paths()
	require.Len(t, paths, 3)
	assert.True(t, paths[0].Stroke.Empty())
	assert.True(t, paths[1].Stroke.Empty())
	assert.Equal(t, VertexRange{First: 0, Count: 8}, paths[2].Stroke)
	assert.Nil(t, c.StrokeVertices(0))
	assert.Nil(t, c.StrokeVertices(5))
}

func TestCanvasWinding(t *testing.T) {
	c := New()
	c.MoveTo(0, 0)
	c.LineTo(0, 10)
	c.LineTo(10, 10)
	c.LineTo(10, 0)
	c.ClosePath()
	c.PathWinding(WindingCW)
	require.NoError(t, c.Stroke())

	p := c.Paths()[0]
	assert.Equal(t, WindingCW, p.Winding)
	assert.Equal(t, 4, p.Count)
	assert.Len(t, c.Vertices(), 10)
}

func TestCanvasStateMachine(t *testing.T) {
	c := New()
	assert.Equal(t, StateIdle, c.State())

	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	assert.Equal(t, StatePathOpen, c.State())
	assert.Nil(t, c.Paths())

	require.NoError(t, c.Stroke())
	assert.Equal(t, StateStroked, c.State())

	// Appending after a stroke extends the path and forces a re-flatten.
	c.LineTo(10, 10)
	assert.Equal(t, StatePathOpen, c.State())
	assert.Nil(t, c.Vertices())
	require.NoError(t, c.Stroke())
	assert.Equal(t, 3, c.Paths()[0].Count)

	c.BeginPath()
	assert.Equal(t, StateIdle, c.State())
	assert.Nil(t, c.Vertices())
}

func TestCanvasStrokeEmpty(t *testing.T) {
	c := New()
	require.NoError(t, c.Stroke())
	assert.Equal(t, StateStroked, c.State())
	assert.Empty(t, c.Vertices())
	assert.Empty(t, c.Paths())
}

func TestCanvasStyleSetters(t *testing.T) {
	c := New()
	c.SetLineWidth(3)
	c.SetLineCap(LineCapSquare)
	c.SetLineJoin(LineJoinBevel)
	c.SetMiterLimit(4)
	assert.Equal(t, Stroke{Width: 3, Cap: LineCapSquare, Join: LineJoinBevel, MiterLimit: 4}, c.StrokeStyle())

	c.SetStroke(Thin())
	assert.Equal(t, Thin(), c.StrokeStyle())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "path-open", StatePathOpen.String())
	assert.Equal(t, "flattened", StateFlattened.String())
	assert.Equal(t, "stroked", StateStroked.String())
	assert.Equal(t, "State(9)", State(9).String())
}
