package matrix_test

import (
	"testing"

	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMulPosition(t *testing.T) {
	p := vector.New(1, 2, 3)
	assert.Equal(t, p, matrix.Identity().MulPosition(p))
}

func TestTranslateScale(t *testing.T) {
	m := matrix.Translate(vector.New(1, 0, 0)).Mul(matrix.Scale(vector.New(2, 2, 2)))
	got := m.MulPosition(vector.New(1, 1, 1))
	// scale first (in b), then translate: (2,2,2) + (1,0,0)
	assert.InDelta(t, 3, got.X, 1e-9)
	assert.InDelta(t, 2, got.Y, 1e-9)
	assert.InDelta(t, 2, got.Z, 1e-9)
}

func TestRotateFullCircle(t *testing.T) {
	m := matrix.Rotate(vector.New(0, 0, 1), 2*3.141592653589793)
	p := vector.New(1, 0, 0)
	got := m.MulPosition(p)
	assert.InDelta(t, p.X, got.X, 1e-9)
	assert.InDelta(t, p.Y, got.Y, 1e-9)
}

func TestInverseRoundTrip(t *testing.T) {
	m := matrix.Translate(vector.New(3, -2, 1)).Mul(matrix.Rotate(vector.New(0, 1, 0), 0.7)).Mul(matrix.Scale(vector.New(2, 3, 4)))
	inv, err := m.Inverse()
	require.NoError(t, err)

	p := vector.New(1.5, -0.5, 2.25)
	roundTrip := inv.MulPosition(m.MulPosition(p))
	assert.InDelta(t, p.X, roundTrip.X, 1e-9)
	assert.InDelta(t, p.Y, roundTrip.Y, 1e-9)
	assert.InDelta(t, p.Z, roundTrip.Z, 1e-9)
}

func TestInverseSingular(t *testing.T) {
	m := matrix.Scale(vector.New(1, 0, 1)) // zero y-scale: singular
	_, err := m.Inverse()
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	m := matrix.LookAt(vector.New(0, 0, 5), vector.New(0, 0, 0), vector.New(0, 1, 0))
	origin := m.MulPosition(vector.New(0, 0, 5))
	assert.InDelta(t, 0, origin.Length(), 1e-9)
}
