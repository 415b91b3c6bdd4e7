package vector_test

import (
	"math"
	"testing"

	"github.com/HellOwhatAs/ln/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(4, -1, 0.5)

	assert.Equal(t, vector.New(5, 1, 3.5), a.Add(b))
	assert.Equal(t, vector.New(-3, 3, 2.5), a.Sub(b))
	assert.Equal(t, vector.New(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, vector.New(-1, -2, -3), a.Negate())
}

func TestDotCross(t *testing.T) {
	x := vector.New(1, 0, 0)
	y := vector.New(0, 1, 0)
	z := vector.New(0, 0, 1)

	assert.InDelta(t, 0, x.Dot(y), 1e-12)
	assert.Equal(t, z, x.Cross(y))
}

func TestLengthAndNormalize(t *testing.T) {
	v := vector.New(3, 4, 0)
	require.InDelta(t, 5, v.Length(), 1e-12)

	n := v.Normalize()
	assert.InDelta(t, 1, n.Length(), 1e-12)
}

func TestMinMaxAxis(t *testing.T) {
	v := vector.New(1, -5, 3)
	assert.Equal(t, 1, v.MinAxis())
	assert.Equal(t, 2, v.MaxAxis())
}

func TestLerp(t *testing.T) {
	a := vector.New(0, 0, 0)
	b := vector.New(10, 0, 0)
	assert.Equal(t, vector.New(5, 0, 0), a.Lerp(b, 0.5))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, vector.New(1, 2, 3).IsFinite())
	assert.False(t, vector.New(math.NaN(), 0, 0).IsFinite())
	assert.False(t, vector.New(math.Inf(1), 0, 0).IsFinite())
}
