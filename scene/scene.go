// Package scene owns a scene graph's top-level shape list and the BVH built
// over it, and implements the visibility sampler and render entry point
// described below.
package scene

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/HellOwhatAs/ln/bvh"
	"github.com/HellOwhatAs/ln/camera"
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/shape"
	"github.com/HellOwhatAs/ln/vector"
)

// visibilityEpsilon guards against self-occlusion where a texture sample
// lies exactly on the occluding shape's own surface.
const visibilityEpsilon = 1e-6

// RenderStats reports a few counts about a completed Render call, in place
// of logging (the core has none).
type RenderStats struct {
	InputPolylines   int
	VisiblePolylines int
	BVH              bvh.Stats
}

// Scene owns a list of top-level shapes and the BVH built over them once
// Compile has run.
type Scene struct {
	shapes []shape.Shape
	tree   *bvh.Tree
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{}
}

// Add compiles shp and appends it to the scene's top-level shape list.
// Composite shapes (Intersection, Difference, TransformedShape) own their
// children directly; only the root of each graph is added here.
func (s *Scene) Add(shp shape.Shape) error {
	if err := shp.Compile(); err != nil {
		return err
	}
	s.shapes = append(s.shapes, shp)
	return nil
}

// Compile builds the top-level BVH over every shape added so far. Must be
// called exactly once, after every Add and before the first Render or
// Visible call.
func (s *Scene) Compile() error {
	prims := make([]bvh.Primitive, len(s.shapes))
	for i, shp := range s.shapes {
		prims[i] = shp
	}
	s.tree = bvh.Build(prims)
	return nil
}

// Visible reports whether the open segment (eye, point) is unobstructed by
// any shape in the scene: a bounded ray query from eye toward point with
// tmax = |point-eye| - epsilon.
func (s *Scene) Visible(eye, point vector.Vector) bool {
	delta := point.Sub(eye)
	dist := delta.Length()
	if dist <= visibilityEpsilon {
		return true
	}
	r := geom.Ray{Origin: eye, Direction: delta.DivScalar(dist)}
	tmax := dist - visibilityEpsilon
	h := s.tree.Intersect(r)
	return !(h.Ok() && h.T < tmax)
}

// Render collects every shape's texture paths (eye-aware where needed),
// samples and clips them against the scene's occluders, projects the
// survivors through the given camera parameters, and returns the resulting
// 2D pixel-space Paths.
func (s *Scene) Render(eye, center, up vector.Vector, width, height int, fovy, znear, zfar, step float64) (paths.Paths, RenderStats, error) {
	if s.tree == nil {
		return nil, RenderStats{}, ErrNotCompiled
	}

	var world paths.Paths
	for _, shp := range s.shapes {
		world = world.Concat(shape.PathsFor(shp, eye))
	}

	chopped := make([]paths.Path, len(world))
	for i, p := range world {
		chopped[i] = p.Chop(step)
	}

	results := make([]paths.Paths, len(chopped))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range chopped {
		i, path := i, path
		g.Go(func() error {
			results[i] = s.stitchVisibleRuns(eye, path)
			return nil
		})
	}
	_ = g.Wait()

	var visible3D paths.Paths
	for _, r := range results {
		visible3D = visible3D.Concat(r)
	}

	cam := camera.New(eye, center, up, width, height, fovy, znear, zfar)
	projected := cam.Project(visible3D)

	return projected, RenderStats{
		InputPolylines:   len(world),
		VisiblePolylines: len(projected),
		BVH:              s.tree.Stats(),
	}, nil
}

// stitchVisibleRuns classifies each vertex of path as visible or hidden
// from eye and splits it into maximal runs of consecutive visible samples,
// each becoming its own output polyline; a run of a single sample carries
// no segment and is dropped. No bisection
// is performed at a visible/hidden boundary; the chop step controls
// precision.
func (s *Scene) stitchVisibleRuns(eye vector.Vector, path paths.Path) paths.Paths {
	var out paths.Paths
	var run paths.Path
	for _, v := range path {
		if s.Visible(eye, v) {
			run = append(run, v)
		} else {
			if len(run) > 1 {
				out = append(out, run)
			}
			run = nil
		}
	}
	if len(run) > 1 {
		out = append(out, run)
	}
	return out
}
