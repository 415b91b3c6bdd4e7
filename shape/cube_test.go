package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func TestNewCubeValidation(t *testing.T) {
	_, err := NewCube(vector.New(1, 0, 0), vector.New(0, 1, 1), Vanilla, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCubeMinGreaterThanMax))

	c, err := NewCube(vector.Zero(), vector.New(1, 1, 1), Vanilla, 0)
	require.NoError(t, err)
	require.NoError(t, c.Compile())
}

func TestCubeContainsAndIntersect(t *testing.T) {
	c, err := NewCube(vector.Zero(), vector.New(1, 1, 1), Vanilla, 0)
	require.NoError(t, err)
	require.NoError(t, c.Compile())

	assert.True(t, c.Contains(vector.New(0.5, 0.5, 0.5), 1e-9))
	assert.False(t, c.Contains(vector.New(2, 0.5, 0.5), 1e-9))

	r := geom.NewRay(vector.New(0.5, 0.5, -5), vector.New(0, 0, 1))
	h := c.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 5, h.T, 1e-9)
}

func TestCubePathsIncludesStripesWhenRequested(t *testing.T) {
	plain, err := NewCube(vector.Zero(), vector.New(1, 1, 1), Vanilla, 0)
	require.NoError(t, err)
	striped, err := NewCube(vector.Zero(), vector.New(1, 1, 1), Stripes, 4)
	require.NoError(t, err)

	assert.Less(t, len(plain.Paths()), len(striped.Paths()))
}
