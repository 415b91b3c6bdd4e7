package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func flatBox() geom.Box {
	return geom.NewBox(vector.New(-2, -2, -2), vector.New(2, 2, 2))
}

func TestNewFunctionValidation(t *testing.T) {
	_, err := NewFunction("0", geom.Box{Min: vector.New(1, 0, 0), Max: vector.New(0, 1, 0)}, Below, Grid, 0.1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFunctionBounds))

	_, err = NewFunction("x+(", flatBox(), Below, Grid, 0.1)
	require.Error(t, err)

	_, err = NewFunction("0", flatBox(), Below, Grid, 0)
	require.Error(t, err)
}

func TestFunctionContainsRespectsDirection(t *testing.T) {
	below, err := NewFunction("0", flatBox(), Below, Grid, 0.1)
	require.NoError(t, err)
	assert.True(t, below.Contains(vector.New(0, 0, -1), 1e-9))
	assert.False(t, below.Contains(vector.New(0, 0, 1), 1e-9))

	above, err := NewFunction("0", flatBox(), Above, Grid, 0.1)
	require.NoError(t, err)
	assert.True(t, above.Contains(vector.New(0, 0, 1), 1e-9))
	assert.False(t, above.Contains(vector.New(0, 0, -1), 1e-9))
}

func TestFunctionIntersectFlatPlane(t *testing.T) {
	f, err := NewFunction("0", flatBox(), Below, Grid, 0.1)
	require.NoError(t, err)

	r := geom.NewRay(vector.New(0, 0, -5), vector.New(0, 0, 1))
	h := f.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 5, h.T, 0.05)
}

func TestFunctionIntersectMissesOutsideDomain(t *testing.T) {
	f, err := NewFunction("0", flatBox(), Below, Grid, 0.1)
	require.NoError(t, err)

	r := geom.NewRay(vector.New(100, 100, -5), vector.New(0, 0, 1))
	assert.False(t, f.Intersect(r).Ok())
}

func TestFunctionPathsTextureVariants(t *testing.T) {
	for _, tex := range []FunctionTexture{Grid, Spiral, Swirl} {
		f, err := NewFunction("sin(x)*cos(y)", flatBox(), Below, tex, 0.1)
		require.NoError(t, err)
		assert.NotEmpty(t, f.Paths())
	}
}
