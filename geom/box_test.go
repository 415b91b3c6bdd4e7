package geom_test

import (
	"math"
	"testing"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/vector"
	"github.com/stretchr/testify/assert"
)

func TestBoxContainsAndUnion(t *testing.T) {
	box := geom.NewBox(vector.New(-1, -1, -1), vector.New(1, 1, 1))
	assert.True(t, box.Contains(vector.New(0, 0, 0)))
	assert.False(t, box.Contains(vector.New(2, 0, 0)))

	other := geom.NewBox(vector.New(0, 0, 0), vector.New(3, 3, 3))
	u := box.Union(other)
	assert.Equal(t, vector.New(-1, -1, -1), u.Min)
	assert.Equal(t, vector.New(3, 3, 3), u.Max)
}

func TestBoxRaySlabHitMiss(t *testing.T) {
	box := geom.NewBox(vector.New(-1, -1, -1), vector.New(1, 1, 1))

	hit := geom.NewRay(vector.New(-5, 0, 0), vector.New(1, 0, 0))
	tmin, tmax := box.Intersect(hit)
	assert.True(t, tmax >= math.Max(tmin, 0))
	assert.True(t, box.Hit(hit))

	miss := geom.NewRay(vector.New(-5, 5, 0), vector.New(1, 0, 0))
	assert.False(t, box.Hit(miss))
}

func TestBoxTransform(t *testing.T) {
	box := geom.NewBox(vector.New(-1, -1, -1), vector.New(1, 1, 1))
	m := matrix.Translate(vector.New(5, 0, 0))
	got := box.Transform(m)
	assert.Equal(t, vector.New(4, -1, -1), got.Min)
	assert.Equal(t, vector.New(6, 1, 1), got.Max)
}

func TestAngleHelpers(t *testing.T) {
	assert.InDelta(t, math.Pi, geom.Radians(180), 1e-12)
	assert.InDelta(t, 180, geom.Degrees(math.Pi), 1e-12)
}
