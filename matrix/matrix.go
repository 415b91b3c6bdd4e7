// Package matrix implements the 4x4 row-major affine matrix used for every
// shape transform, the camera's view/projection pipeline and box re-axis-
// alignment. Matrix is a plain value type (16 float64 fields, no backing
// slice) so composing transforms never allocates.
package matrix

import (
	"math"

	"github.com/HellOwhatAs/ln/vector"
)

// Matrix is a 4x4 row-major matrix. The zero value is NOT the identity; use
// Identity() to build one.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

// Identity returns the multiplicative identity.
func Identity() Matrix {
	return Matrix{
		X00: 1, X11: 1, X22: 1, X33: 1,
	}
}

// Translate returns the affine matrix translating by v.
func Translate(v vector.Vector) Matrix {
	m := Identity()
	m.X03, m.X13, m.X23 = v.X, v.Y, v.Z
	return m
}

// Scale returns the affine matrix scaling componentwise by v.
func Scale(v vector.Vector) Matrix {
	m := Identity()
	m.X00, m.X11, m.X22 = v.X, v.Y, v.Z
	return m
}

// Rotate returns the rotation by angle radians about axis (Rodrigues'
// rotation formula). axis need not be normalized.
func Rotate(axis vector.Vector, angle float64) Matrix {
	a := axis.Normalize()
	s, c := math.Sin(angle), math.Cos(angle)
	m := 1 - c
	return Matrix{
		X00: m*a.X*a.X + c, X01: m*a.X*a.Y - a.Z*s, X02: m*a.Z*a.X + a.Y*s,
		X10: m*a.X*a.Y + a.Z*s, X11: m*a.Y*a.Y + c, X12: m*a.Y*a.Z - a.X*s,
		X20: m*a.Z*a.X - a.Y*s, X21: m*a.Y*a.Z + a.X*s, X22: m*a.Z*a.Z + c,
		X33: 1,
	}
}

// Frustum returns the perspective projection for the given view volume.
func Frustum(l, r, b, t, n, f float64) Matrix {
	t1 := 2 * n
	t2 := r - l
	t3 := t - b
	t4 := f - n
	return Matrix{
		X00: t1 / t2,
		X11: t1 / t3,
		X02: (r + l) / t2, X12: (t + b) / t3, X22: (-f - n) / t4, X23: (-t1 * f) / t4,
		X32: -1,
	}
}

// Orthographic returns the parallel (non-perspective) projection for the
// given view volume.
func Orthographic(l, r, b, t, n, f float64) Matrix {
	return Matrix{
		X00: 2 / (r - l), X03: -(r + l) / (r - l),
		X11: 2 / (t - b), X13: -(t + b) / (t - b),
		X22: -2 / (f - n), X23: -(f + n) / (f - n),
		X33: 1,
	}
}

// Perspective builds a frustum from a vertical field-of-view in degrees, an
// aspect ratio width/height, and near/far clip distances.
func Perspective(fovy, aspect, near, far float64) Matrix {
	ymax := near * math.Tan(fovy*math.Pi/360)
	xmax := ymax * aspect
	return Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

// LookAt returns the right-handed view matrix looking from eye toward center
// with the given up reference vector.
func LookAt(eye, center, up vector.Vector) Matrix {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)
	return Matrix{
		X00: s.X, X01: s.Y, X02: s.Z, X03: -s.Dot(eye),
		X10: u.X, X11: u.Y, X12: u.Z, X13: -u.Dot(eye),
		X20: -f.X, X21: -f.Y, X22: -f.Z, X23: f.Dot(eye),
		X33: 1,
	}
}

// Mul returns a*b (standard row-major matrix product; applying the result to
// a point is equivalent to applying b then a).
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		X00: a.X00*b.X00 + a.X01*b.X10 + a.X02*b.X20 + a.X03*b.X30,
		X01: a.X00*b.X01 + a.X01*b.X11 + a.X02*b.X21 + a.X03*b.X31,
		X02: a.X00*b.X02 + a.X01*b.X12 + a.X02*b.X22 + a.X03*b.X32,
		X03: a.X00*b.X03 + a.X01*b.X13 + a.X02*b.X23 + a.X03*b.X33,

		X10: a.X10*b.X00 + a.X11*b.X10 + a.X12*b.X20 + a.X13*b.X30,
		X11: a.X10*b.X01 + a.X11*b.X11 + a.X12*b.X21 + a.X13*b.X31,
		X12: a.X10*b.X02 + a.X11*b.X12 + a.X12*b.X22 + a.X13*b.X32,
		X13: a.X10*b.X03 + a.X11*b.X13 + a.X12*b.X23 + a.X13*b.X33,

		X20: a.X20*b.X00 + a.X21*b.X10 + a.X22*b.X20 + a.X23*b.X30,
		X21: a.X20*b.X01 + a.X21*b.X11 + a.X22*b.X21 + a.X23*b.X31,
		X22: a.X20*b.X02 + a.X21*b.X12 + a.X22*b.X22 + a.X23*b.X32,
		X23: a.X20*b.X03 + a.X21*b.X13 + a.X22*b.X23 + a.X23*b.X33,

		X30: a.X30*b.X00 + a.X31*b.X10 + a.X32*b.X20 + a.X33*b.X30,
		X31: a.X30*b.X01 + a.X31*b.X11 + a.X32*b.X21 + a.X33*b.X31,
		X32: a.X30*b.X02 + a.X31*b.X12 + a.X32*b.X22 + a.X33*b.X32,
		X33: a.X30*b.X03 + a.X31*b.X13 + a.X32*b.X23 + a.X33*b.X33,
	}
}

// MulPosition transforms a point: applies the rotation/scale/shear block and
// the translation column, without perspective divide.
func (a Matrix) MulPosition(b vector.Vector) vector.Vector {
	return vector.Vector{
		X: a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03,
		Y: a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13,
		Z: a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23,
	}
}

// MulPositionW transforms a point and returns the undivided x, y, z together
// with the homogeneous w, used for the perspective projection stage of the
// camera pipeline (the caller performs the divide by w).
func (a Matrix) MulPositionW(b vector.Vector) (result vector.Vector, w float64) {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23
	w = a.X30*b.X + a.X31*b.Y + a.X32*b.Z + a.X33
	return vector.Vector{X: x, Y: y, Z: z}, w
}

// MulDirection transforms a direction: applies the linear 3x3 block only,
// ignoring translation, and does NOT renormalize. This is deliberate: when
// shape.TransformedShape maps an incoming ray into its inner shape's local
// space, keeping the raw (possibly non-unit) linear-transformed direction is
// what makes the hit parameter t come out identical in both spaces under a
// scaling transform (spec testable property "transform round-trip"). Callers
// that need a unit direction (camera rays, scene occlusion rays) normalize
// explicitly via Vector.Normalize.
func (a Matrix) MulDirection(b vector.Vector) vector.Vector {
	return vector.Vector{
		X: a.X00*b.X + a.X01*b.Y + a.X02*b.Z,
		Y: a.X10*b.X + a.X11*b.Y + a.X12*b.Z,
		Z: a.X20*b.X + a.X21*b.Y + a.X22*b.Z,
	}
}

// Transpose returns the transpose of a.
func (a Matrix) Transpose() Matrix {
	return Matrix{
		X00: a.X00, X01: a.X10, X02: a.X20, X03: a.X30,
		X10: a.X01, X11: a.X11, X12: a.X21, X13: a.X31,
		X20: a.X02, X21: a.X12, X22: a.X22, X23: a.X32,
		X30: a.X03, X31: a.X13, X32: a.X23, X33: a.X33,
	}
}

// Determinant returns det(a) via cofactor expansion.
func (a Matrix) Determinant() float64 {
	return a.X00*a.X11*a.X22*a.X33 - a.X00*a.X11*a.X23*a.X32 +
		a.X00*a.X12*a.X23*a.X31 - a.X00*a.X12*a.X21*a.X33 +
		a.X00*a.X13*a.X21*a.X32 - a.X00*a.X13*a.X22*a.X31 -
		a.X01*a.X12*a.X23*a.X30 + a.X01*a.X12*a.X20*a.X33 -
		a.X01*a.X13*a.X20*a.X32 + a.X01*a.X13*a.X22*a.X30 -
		a.X01*a.X10*a.X22*a.X33 + a.X01*a.X10*a.X23*a.X32 +
		a.X02*a.X13*a.X20*a.X31 - a.X02*a.X13*a.X21*a.X30 +
		a.X02*a.X10*a.X21*a.X33 - a.X02*a.X10*a.X23*a.X31 +
		a.X02*a.X11*a.X23*a.X30 - a.X02*a.X11*a.X20*a.X33 -
		a.X03*a.X10*a.X21*a.X32 + a.X03*a.X10*a.X22*a.X31 -
		a.X03*a.X11*a.X22*a.X30 + a.X03*a.X11*a.X20*a.X32 -
		a.X03*a.X12*a.X20*a.X31 + a.X03*a.X12*a.X21*a.X30
}

// Inverse returns the matrix inverse. Returns ErrSingular if the determinant
// is within singularEpsilon of zero; callers that require an invertible
// transform (shape.NewTransformedShape) report that as a *lnerr.ConfigError
// carrying their own sentinel (shape.ErrSingularTransform).
func (a Matrix) Inverse() (Matrix, error) {
	det := a.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Matrix{}, ErrSingular
	}
	inv := 1 / det
	m := Matrix{}

	m.X00 = (a.X11*a.X22*a.X33 - a.X11*a.X23*a.X32 - a.X21*a.X12*a.X33 + a.X21*a.X13*a.X32 + a.X31*a.X12*a.X23 - a.X31*a.X13*a.X22) * inv
	m.X01 = (-a.X01*a.X22*a.X33 + a.X01*a.X23*a.X32 + a.X21*a.X02*a.X33 - a.X21*a.X03*a.X32 - a.X31*a.X02*a.X23 + a.X31*a.X03*a.X22) * inv
	m.X02 = (a.X01*a.X12*a.X33 - a.X01*a.X13*a.X32 - a.X11*a.X02*a.X33 + a.X11*a.X03*a.X32 + a.X31*a.X02*a.X13 - a.X31*a.X03*a.X12) * inv
	m.X03 = (-a.X01*a.X12*a.X23 + a.X01*a.X13*a.X22 + a.X11*a.X02*a.X23 - a.X11*a.X03*a.X22 - a.X21*a.X02*a.X13 + a.X21*a.X03*a.X12) * inv

	m.X10 = (-a.X10*a.X22*a.X33 + a.X10*a.X23*a.X32 + a.X20*a.X12*a.X33 - a.X20*a.X13*a.X32 - a.X30*a.X12*a.X23 + a.X30*a.X13*a.X22) * inv
	m.X11 = (a.X00*a.X22*a.X33 - a.X00*a.X23*a.X32 - a.X20*a.X02*a.X33 + a.X20*a.X03*a.X32 + a.X30*a.X02*a.X23 - a.X30*a.X03*a.X22) * inv
	m.X12 = (-a.X00*a.X12*a.X33 + a.X00*a.X13*a.X32 + a.X10*a.X02*a.X33 - a.X10*a.X03*a.X32 - a.X30*a.X02*a.X13 + a.X30*a.X03*a.X12) * inv
	m.X13 = (a.X00*a.X12*a.X23 - a.X00*a.X13*a.X22 - a.X10*a.X02*a.X23 + a.X10*a.X03*a.X22 + a.X20*a.X02*a.X13 - a.X20*a.X03*a.X12) * inv

	m.X20 = (a.X10*a.X21*a.X33 - a.X10*a.X23*a.X31 - a.X20*a.X11*a.X33 + a.X20*a.X13*a.X31 + a.X30*a.X11*a.X23 - a.X30*a.X13*a.X21) * inv
	m.X21 = (-a.X00*a.X21*a.X33 + a.X00*a.X23*a.X31 + a.X20*a.X01*a.X33 - a.X20*a.X03*a.X31 - a.X30*a.X01*a.X23 + a.X30*a.X03*a.X21) * inv
	m.X22 = (a.X00*a.X11*a.X33 - a.X00*a.X13*a.X31 - a.X10*a.X01*a.X33 + a.X10*a.X03*a.X31 + a.X30*a.X01*a.X13 - a.X30*a.X03*a.X11) * inv
	m.X23 = (-a.X00*a.X11*a.X23 + a.X00*a.X13*a.X21 + a.X10*a.X01*a.X23 - a.X10*a.X03*a.X21 - a.X20*a.X01*a.X13 + a.X20*a.X03*a.X11) * inv

	m.X30 = (-a.X10*a.X21*a.X32 + a.X10*a.X22*a.X31 + a.X20*a.X11*a.X32 - a.X20*a.X12*a.X31 - a.X30*a.X11*a.X22 + a.X30*a.X12*a.X21) * inv
	m.X31 = (a.X00*a.X21*a.X32 - a.X00*a.X22*a.X31 - a.X20*a.X01*a.X32 + a.X20*a.X02*a.X31 + a.X30*a.X01*a.X22 - a.X30*a.X02*a.X21) * inv
	m.X32 = (-a.X00*a.X11*a.X32 + a.X00*a.X12*a.X31 + a.X10*a.X01*a.X32 - a.X10*a.X02*a.X31 - a.X30*a.X01*a.X12 + a.X30*a.X02*a.X11) * inv
	m.X33 = (a.X00*a.X11*a.X22 - a.X00*a.X12*a.X21 - a.X10*a.X01*a.X22 + a.X10*a.X02*a.X21 + a.X20*a.X01*a.X12 - a.X20*a.X02*a.X11) * inv

	return m, nil
}
