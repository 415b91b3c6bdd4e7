package hit_test

import (
	"testing"

	"github.com/HellOwhatAs/ln/hit"
	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	assert.False(t, hit.Miss.Ok())
	assert.True(t, hit.New("s", 1.5).Ok())
	assert.False(t, hit.New("s", -1).Ok())
	assert.False(t, hit.New("s", 0).Ok())
}

func TestMinLaws(t *testing.T) {
	a := hit.New("a", 2)
	b := hit.New("b", 5)

	assert.Equal(t, a, hit.Min(hit.Miss, a))
	assert.Equal(t, hit.Min(a, b), hit.Min(b, a))
	assert.Equal(t, a, hit.Min(a, b))
	assert.Equal(t, hit.Miss, hit.Min(hit.Miss, hit.Miss))
}

func TestMaxLaws(t *testing.T) {
	a := hit.New("a", 2)
	b := hit.New("b", 5)

	assert.Equal(t, b, hit.Max(a, b))
	assert.Equal(t, b, hit.Max(hit.Miss, b))
}
