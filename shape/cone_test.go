package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func TestNewConeValidation(t *testing.T) {
	_, err := NewCone(0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonPositiveRadius))

	_, err = NewCone(1, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonPositiveHeight))
}

func TestConeRadiusAtShrinksToApex(t *testing.T) {
	c, err := NewCone(2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 2, c.radiusAt(0), 1e-9)
	assert.InDelta(t, 0, c.radiusAt(4), 1e-9)
}

func TestConeContainsAndIntersectBase(t *testing.T) {
	c, err := NewCone(1, 2)
	require.NoError(t, err)

	assert.True(t, c.Contains(vector.New(0, 0, 0), 1e-9))
	assert.False(t, c.Contains(vector.New(0, 0, 3), 1e-9))

	r := geom.NewRay(vector.New(0, 0, -5), vector.New(0, 0, 1))
	h := c.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 5, h.T, 1e-9)
}

func TestConePathsNonEmpty(t *testing.T) {
	c, err := NewCone(1, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, c.Paths())
}
