package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func TestNewSphereValidation(t *testing.T) {
	_, err := NewSphere(vector.Zero(), 0, LatLng, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonPositiveRadius))

	_, err = NewSphere(vector.New(0, 0, 0), -1, LatLng, 0)
	require.Error(t, err)

	s, err := NewSphere(vector.Zero(), 2, LatLng, 0)
	require.NoError(t, err)
	require.NoError(t, s.Compile())
}

func TestSphereBoundingBoxAndContains(t *testing.T) {
	s, err := NewSphere(vector.New(1, 2, 3), 2, LatLng, 0)
	require.NoError(t, err)

	box := s.BoundingBox()
	assert.Equal(t, geom.NewBox(vector.New(-1, 0, 1), vector.New(3, 4, 5)), box)

	assert.True(t, s.Contains(vector.New(1, 2, 3), 1e-9))
	assert.True(t, s.Contains(vector.New(3, 2, 3), 1e-9))
	assert.False(t, s.Contains(vector.New(10, 2, 3), 1e-9))
}

func TestSphereIntersectFrontAndBehind(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)

	r := geom.NewRay(vector.New(0, 0, -5), vector.New(0, 0, 1))
	h := s.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 4, h.T, 1e-9)

	miss := geom.NewRay(vector.New(5, 5, -5), vector.New(0, 0, 1))
	assert.False(t, s.Intersect(miss).Ok())
}

func TestSphereIntersectFromInside(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)

	r := geom.NewRay(vector.Zero(), vector.New(1, 0, 0))
	h := s.Intersect(r)
	require.True(t, h.Ok())
	assert.InDelta(t, 1, h.T, 1e-9)
}

func TestSphereTextureVariantsProduceDeterministicPaths(t *testing.T) {
	for _, tex := range []SphereTexture{LatLng, RandomEquators, RandomDots, RandomCircles} {
		s, err := NewSphere(vector.Zero(), 1, tex, 42)
		require.NoError(t, err)
		a := s.Paths()
		b := s.Paths()
		assert.Equal(t, a, b, "texture %v must be deterministic for a fixed seed", tex)
		assert.NotEmpty(t, a)
	}
}
