package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundingBox(t *testing.T) {
	ps := paths.Paths{
		{vector.New(0, 0, 0), vector.New(1, 2, 0)},
		{vector.New(-1, 5, 0), vector.New(3, -2, 0)},
	}
	box := ps.BoundingBox()
	assert.Equal(t, vector.New(-1, -2, 0), box.Min)
	assert.Equal(t, vector.New(3, 5, 0), box.Max)
}

func TestConcat(t *testing.T) {
	a := paths.Paths{{vector.New(0, 0, 0), vector.New(1, 1, 1)}}
	b := paths.Paths{{vector.New(2, 2, 2), vector.New(3, 3, 3)}}
	assert.Len(t, a.Concat(b), 2)
	assert.Len(t, a, 1) // operands untouched
}

func TestTransform(t *testing.T) {
	ps := paths.Paths{{vector.New(0, 0, 0), vector.New(1, 0, 0)}}
	out := ps.Transform(matrix.Translate(vector.New(5, 0, 0)))
	assert.Equal(t, vector.New(5, 0, 0), out[0][0])
	assert.Equal(t, vector.New(6, 0, 0), out[0][1])
}

func TestChopPreservesEndpointsAndBoundsSegments(t *testing.T) {
	p := paths.Path{vector.New(0, 0, 0), vector.New(10, 0, 0)}
	chopped := p.Chop(1)
	require.True(t, len(chopped) >= 11)
	assert.Equal(t, vector.New(0, 0, 0), chopped[0])
	assert.Equal(t, vector.New(10, 0, 0), chopped[len(chopped)-1])
	for i := 0; i < len(chopped)-1; i++ {
		assert.LessOrEqual(t, chopped[i].Sub(chopped[i+1]).Length(), 1.0+1e-9)
	}
}

func TestClip2DInsideUnchanged(t *testing.T) {
	ps := paths.Paths{{vector.New(-0.5, -0.5, 0), vector.New(0.5, 0.5, 0)}}
	out := ps.Clip2D()
	require.Len(t, out, 1)
	assert.Equal(t, ps[0], out[0])
}

func TestClip2DSplitsAtBoundary(t *testing.T) {
	ps := paths.Paths{{vector.New(-2, 0, 0), vector.New(0, 0, 0), vector.New(2, 0, 0)}}
	out := ps.Clip2D()
	require.Len(t, out, 1)
	for _, v := range out[0] {
		assert.LessOrEqual(t, v.X, 1.0+1e-9)
		assert.GreaterOrEqual(t, v.X, -1.0-1e-9)
	}
}

func TestClip2DFullyOutsideDropped(t *testing.T) {
	ps := paths.Paths{{vector.New(5, 5, 0), vector.New(6, 6, 0)}}
	assert.Empty(t, ps.Clip2D())
}

func TestWriteSVGAndPNG(t *testing.T) {
	dir := t.TempDir()
	ps := paths.Paths{{vector.New(0, 0, 0), vector.New(10, 10, 0)}}

	svgPath := filepath.Join(dir, "out.svg")
	require.NoError(t, paths.WriteSVG(ps, svgPath, 20, 20))
	data, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<polyline")

	pngPath := filepath.Join(dir, "out.png")
	require.NoError(t, paths.WritePNG(ps, pngPath, 20, 20))
	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
