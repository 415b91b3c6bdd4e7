package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func TestNewMeshRejectsEmpty(t *testing.T) {
	_, err := NewMesh(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyMesh))
}

func TestMeshIntersectAndContains(t *testing.T) {
	t1, err := NewTriangle(vector.New(-1, -1, 0), vector.New(1, -1, 0), vector.New(0, 1, 0))
	require.NoError(t, err)
	t2, err := NewTriangle(vector.New(-1, -1, 1), vector.New(1, -1, 1), vector.New(0, 1, 1))
	require.NoError(t, err)

	m, err := NewMesh([]*Triangle{t1, t2})
	require.NoError(t, err)
	require.NoError(t, m.Compile())

	assert.False(t, m.Contains(vector.Zero(), 1e-9))

	r := geom.NewRay(vector.New(0, 0, -5), vector.New(0, 0, 1))
	h := m.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 5, h.T, 1e-9)
}

func TestMeshBoundingBoxCoversAllTriangles(t *testing.T) {
	t1, err := NewTriangle(vector.New(-2, -2, -2), vector.New(-1, -2, -2), vector.New(-1, -1, -2))
	require.NoError(t, err)
	t2, err := NewTriangle(vector.New(1, 1, 1), vector.New(2, 1, 1), vector.New(2, 2, 1))
	require.NoError(t, err)

	m, err := NewMesh([]*Triangle{t1, t2})
	require.NoError(t, err)
	require.NoError(t, m.Compile())

	box := m.BoundingBox()
	assert.Equal(t, vector.New(-2, -2, -2), box.Min)
	assert.Equal(t, vector.New(2, 2, 1), box.Max)
}
