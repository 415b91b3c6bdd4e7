package shape

import (
	"math"

	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// Triangle is a flat, zero-volume solid. Contains always reports false (it
// has no interior); only its ray intersection participates in CSG and BVH
// traversal.
type Triangle struct {
	V1, V2, V3 vector.Vector

	Normal vector.Vector
	Area   float64
}

// NewTriangle constructs a Triangle. A degenerate (zero-area, e.g.
// colinear-vertex) triangle is accepted: its Intersect always misses and its
// BoundingBox is still valid (min==max at a shared vertex when all three
// vertices coincide).
func NewTriangle(v1, v2, v3 vector.Vector) (*Triangle, error) {
	if !v1.IsFinite() || !v2.IsFinite() || !v3.IsFinite() {
		return nil, configErr("NewTriangle", ErrNonFiniteInput)
	}
	t := &Triangle{V1: v1, V2: v2, V3: v3}
	t.Compile()
	return t, nil
}

func (t *Triangle) Compile() error {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	cr := e1.Cross(e2)
	t.Area = cr.Length() / 2
	if t.Area > 1e-18 {
		t.Normal = cr.Normalize()
	}
	return nil
}

func (t *Triangle) BoundingBox() geom.Box {
	return geom.NewBox(t.V1.Min(t.V2).Min(t.V3), t.V1.Max(t.V2).Max(t.V3))
}

// Contains always reports false: a triangle has no interior volume for CSG
// to test against.
func (t *Triangle) Contains(p vector.Vector, epsilon float64) bool {
	return false
}

// Intersect implements the Möller-Trumbore algorithm with backface culling
// disabled (both sides of the triangle are visible).
func (t *Triangle) Intersect(r geom.Ray) hit.Hit {
	e1 := t.V2.Sub(t.V1)
	e2 := t.V3.Sub(t.V1)
	pvec := r.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < 1e-12 {
		return hit.Miss
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(t.V1)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return hit.Miss
	}

	qvec := tvec.Cross(e1)
	v := r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return hit.Miss
	}

	tParam := e2.Dot(qvec) * invDet
	if tParam <= HitEpsilon {
		return hit.Miss
	}
	return hit.New(t, tParam)
}

// Paths returns the triangle's three edges as its default texture.
func (t *Triangle) Paths() paths.Paths {
	return paths.Paths{{t.V1, t.V2, t.V3, t.V1}}
}
