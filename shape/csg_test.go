package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/vector"
)

func TestNewIntersectionAndDifferenceRequireTwoChildren(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)

	_, err = NewIntersection(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooFewCSGChildren))

	_, err = NewDifference(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooFewCSGChildren))
}

func overlappingSpheres(t *testing.T) (*Sphere, *Sphere) {
	t.Helper()
	a, err := NewSphere(vector.New(-0.5, 0, 0), 1, LatLng, 0)
	require.NoError(t, err)
	b, err := NewSphere(vector.New(0.5, 0, 0), 1, LatLng, 0)
	require.NoError(t, err)
	return a, b
}

func TestIntersectionContainsOnlyOverlap(t *testing.T) {
	a, b := overlappingSpheres(t)
	in, err := NewIntersection(a, b)
	require.NoError(t, err)

	assert.True(t, in.Contains(vector.Zero(), 1e-9))
	assert.False(t, in.Contains(vector.New(-1.4, 0, 0), 1e-9))
}

func TestIntersectionRayHitsOnlyOverlapRegion(t *testing.T) {
	a, b := overlappingSpheres(t)
	in, err := NewIntersection(a, b)
	require.NoError(t, err)

	r := geom.NewRay(vector.New(0, 0, -5), vector.New(0, 0, 1))
	h := in.Intersect(r)
	require.True(t, h.Ok())
	// entry point of the lens at z = -sqrt(0.75): t = 5 - sqrt(0.75)
	assert.InDelta(t, 4.133974596215561, h.T, 1e-9)

	miss := geom.NewRay(vector.New(-1.4, 0, -5), vector.New(0, 0, 1))
	assert.False(t, in.Intersect(miss).Ok())
}

func TestDifferenceContainsExcludesSubtrahend(t *testing.T) {
	a, b := overlappingSpheres(t)
	d, err := NewDifference(a, b)
	require.NoError(t, err)

	assert.True(t, d.Contains(vector.New(-1.4, 0, 0), 1e-9))
	assert.False(t, d.Contains(vector.Zero(), 1e-9))
}

func TestDifferenceRayHitsMinuendOutsideSubtrahend(t *testing.T) {
	a, b := overlappingSpheres(t)
	d, err := NewDifference(a, b)
	require.NoError(t, err)

	r := geom.NewRay(vector.New(-1.4, 0, -5), vector.New(0, 0, 1))
	h := d.Intersect(r)
	require.True(t, h.Ok())
}
