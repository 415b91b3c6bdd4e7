package shape

import (
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// TransformedShape applies an affine matrix to an inner shape's outputs and
// the matrix's inverse to incoming rays and points.
type TransformedShape struct {
	Inner   Shape
	Matrix  matrix.Matrix
	Inverse matrix.Matrix
}

// NewTransformedShape validates m's invertibility up front (a singular
// transform is a programming error) and constructs a
// TransformedShape.
func NewTransformedShape(inner Shape, m matrix.Matrix) (*TransformedShape, error) {
	inv, err := m.Inverse()
	if err != nil {
		return nil, configErr("NewTransformedShape", ErrSingularTransform)
	}
	return &TransformedShape{Inner: inner, Matrix: m, Inverse: inv}, nil
}

func (ts *TransformedShape) Compile() error {
	return ts.Inner.Compile()
}

func (ts *TransformedShape) BoundingBox() geom.Box {
	return ts.Inner.BoundingBox().Transform(ts.Matrix)
}

func (ts *TransformedShape) Contains(p vector.Vector, epsilon float64) bool {
	return ts.Inner.Contains(ts.Inverse.MulPosition(p), epsilon)
}

// Intersect maps the incoming ray into the inner shape's local space. The
// local direction is the raw (possibly non-unit) linear-transformed
// direction, not renormalized, so that the hit parameter t is identical in
// both spaces (the transform round-trip law); see
// matrix.Matrix.MulDirection.
func (ts *TransformedShape) Intersect(r geom.Ray) hit.Hit {
	local := geom.Ray{
		Origin:    ts.Inverse.MulPosition(r.Origin),
		Direction: ts.Inverse.MulDirection(r.Direction),
	}
	h := ts.Inner.Intersect(local)
	if !h.Ok() {
		return hit.Miss
	}
	return hit.New(ts, h.T)
}

func (ts *TransformedShape) Paths() paths.Paths {
	return ts.Inner.Paths().Transform(ts.Matrix)
}

// PathsForEye maps eye into the inner shape's local space before asking for
// its (possibly eye-dependent) paths, then transforms the result forward
// into world space.
func (ts *TransformedShape) PathsForEye(eye vector.Vector) paths.Paths {
	localEye := ts.Inverse.MulPosition(eye)
	return PathsFor(ts.Inner, localEye).Transform(ts.Matrix)
}
