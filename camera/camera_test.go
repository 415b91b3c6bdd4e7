package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

func testCamera() *Camera {
	return New(vector.New(4, 3, 2), vector.Zero(), vector.New(0, 0, 1), 512, 512, 50, 0.1, 100)
}

func TestProjectUnitCubeStaysWithinPixelBounds(t *testing.T) {
	cam := testCamera()
	world := paths.Paths{
		{vector.New(-1, -1, -1), vector.New(1, -1, -1)},
		{vector.New(-1, -1, -1), vector.New(-1, 1, -1)},
		{vector.New(-1, -1, -1), vector.New(-1, -1, 1)},
	}

	out := cam.Project(world)
	assert.NotEmpty(t, out)
	for _, path := range out {
		for _, v := range path {
			assert.GreaterOrEqual(t, v.X, -1e-6)
			assert.LessOrEqual(t, v.X, float64(cam.Width)+1e-6)
			assert.GreaterOrEqual(t, v.Y, -1e-6)
			assert.LessOrEqual(t, v.Y, float64(cam.Height)+1e-6)
		}
	}
}

func TestProjectSplitsPolylineCrossingNearPlane(t *testing.T) {
	cam := New(vector.New(0, 0, 0), vector.New(0, 0, -1), vector.New(0, 1, 0), 256, 256, 60, 1, 50)
	world := paths.Paths{
		{vector.New(0, 0, 2), vector.New(0, 0, -2)},
	}
	out := cam.Project(world)
	assert.NotEmpty(t, out)
}

func TestProjectDropsFullyBehindCameraSegments(t *testing.T) {
	cam := New(vector.New(0, 0, 0), vector.New(0, 0, -1), vector.New(0, 1, 0), 256, 256, 60, 1, 50)
	world := paths.Paths{
		{vector.New(0, 0, 5), vector.New(0, 0, 8)},
	}
	out := cam.Project(world)
	assert.Empty(t, out)
}
