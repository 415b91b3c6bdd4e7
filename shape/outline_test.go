package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HellOwhatAs/ln/vector"
)

func TestNewOutlineRejectsUnsupportedInner(t *testing.T) {
	cube, err := NewCube(vector.Zero(), vector.New(1, 1, 1), Vanilla, 0)
	require.NoError(t, err)

	_, err = NewOutline(cube)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutlineUnsupported))
}

func TestOutlineSupportedInners(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)
	_, err = NewOutline(s)
	require.NoError(t, err)

	cyl, err := NewCylinder(1, 0, 2)
	require.NoError(t, err)
	_, err = NewOutline(cyl)
	require.NoError(t, err)

	cone, err := NewCone(1, 2)
	require.NoError(t, err)
	_, err = NewOutline(cone)
	require.NoError(t, err)
}

func TestOutlinePathsIsNilEyeIndependent(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)
	o, err := NewOutline(s)
	require.NoError(t, err)
	assert.Nil(t, o.Paths())
}

func TestOutlinePathsForEyeSphereProducesCircle(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)
	o, err := NewOutline(s)
	require.NoError(t, err)

	ps := o.PathsForEye(vector.New(0, 0, 5))
	require.Len(t, ps, 1)
	for _, v := range ps[0] {
		assert.InDelta(t, 1, v.Length(), 1e-6)
	}
}

func TestOutlinePathsForEyeInsideSphereIsEmpty(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)
	o, err := NewOutline(s)
	require.NoError(t, err)

	assert.Empty(t, o.PathsForEye(vector.New(0, 0, 0.1)))
}

func TestPathsForDispatchesToEyeAware(t *testing.T) {
	s, err := NewSphere(vector.Zero(), 1, LatLng, 0)
	require.NoError(t, err)
	o, err := NewOutline(s)
	require.NoError(t, err)

	via := PathsFor(o, vector.New(0, 0, 5))
	direct := o.PathsForEye(vector.New(0, 0, 5))
	assert.Equal(t, direct, via)
}
