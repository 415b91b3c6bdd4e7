package shape

import (
	"github.com/HellOwhatAs/ln/bvh"
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Mesh owns a list of triangles and a BVH built over them; BoundingBox and
// Intersect delegate through that BVH, Paths concatenates the triangles'
// own paths, and Contains always reports false.
type Mesh struct {
	Triangles []*Triangle

	tree *bvh.Tree
}

// NewMesh constructs a Mesh from triangles already built via NewTriangle.
func NewMesh(triangles []*Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, configErr("NewMesh", ErrEmptyMesh)
	}
	return &Mesh{Triangles: triangles}, nil
}

func (m *Mesh) Compile() error {
	prims := make([]bvh.Primitive, len(m.Triangles))
	for i, t := range m.Triangles {
		t.Compile()
		prims[i] = t
	}
	m.tree = bvh.Build(prims)
	return nil
}

func (m *Mesh) BoundingBox() geom.Box {
	return m.tree.BoundingBox()
}

// Contains always reports false: meshes don't participate in CSG
// containment tests.
func (m *Mesh) Contains(p vector.Vector, epsilon float64) bool {
	return false
}

func (m *Mesh) Intersect(r geom.Ray) hit.Hit {
	return m.tree.Intersect(r)
}

// Paths concatenates every triangle's edge paths. Shared edges between
// adjacent triangles are emitted twice; this doubles a line but does not
// change the rendered image (there is no anti-aliasing/shading
// that would make the duplicate visible as anything but an identical
// overlapping stroke).
func (m *Mesh) Paths() paths.Paths {
	var out paths.Paths
	for _, t := range m.Triangles {
		out = out.Concat(t.Paths())
	}
	return out
}
