// Package vector provides the immutable 3-vector value type used throughout
// ln: points, directions and normals all reuse it. Every operation
// returns a new Vector rather than mutating the receiver, matching the
// value-semantics the rest of the math kernel (matrix, geom) relies on.
package vector

import "math"

// Vector is an ordered triple of 64-bit floats. The zero value is the origin.
type Vector struct {
	X, Y, Z float64
}

// New builds a Vector from its three components.
func New(x, y, z float64) Vector { return Vector{X: x, Y: y, Z: z} }

// Zero returns the additive identity.
func Zero() Vector { return Vector{} }

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the componentwise product v * other.
func (v Vector) Mul(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the componentwise quotient v / other.
func (v Vector) Div(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// MulScalar returns v scaled by s.
func (v Vector) MulScalar(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v divided by s.
func (v Vector) DivScalar(s float64) Vector {
	return v.MulScalar(1 / s)
}

// Negate returns -v.
func (v Vector) Negate() Vector { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product v . other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSquared returns the squared Euclidean norm, avoiding the Sqrt when
// only comparisons are needed (the unit-ball rejection sampling in shape's
// random sphere textures, for instance).
func (v Vector) LengthSquared() float64 {
	return v.Dot(v)
}

// Normalize returns v scaled to unit length. Normalizing the zero vector
// yields {NaN,NaN,NaN} (0 times 1/0), which callers must not encounter on
// well-formed geometry; ln never normalizes a zero-length direction.
func (v Vector) Normalize() Vector {
	return v.DivScalar(v.Length())
}

// Min returns the componentwise minimum of v and other.
func (v Vector) Min(other Vector) Vector {
	return Vector{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// MinAxis returns the axis (x=0,y=1,z=2) whose component is smallest.
func (v Vector) MinAxis() int {
	return v.axisBy(func(a, b float64) bool { return a < b })
}

// MaxAxis returns the axis (x=0,y=1,z=2) whose component is largest.
func (v Vector) MaxAxis() int {
	return v.axisBy(func(a, b float64) bool { return a > b })
}

func (v Vector) axisBy(better func(a, b float64) bool) int {
	axis, best := 0, v.X
	if better(v.Y, best) {
		axis, best = 1, v.Y
	}
	if better(v.Z, best) {
		axis = 2
	}
	return axis
}

// Component returns the value along the given axis (0=x,1=y,2=z).
func (v Vector) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Lerp returns the point a fraction t of the way from v to other.
func (v Vector) Lerp(other Vector, t float64) Vector {
	return v.Add(other.Sub(v).MulScalar(t))
}

// IsFinite reports whether every component is a finite float (not NaN or
// ±Inf). Hit's miss sentinel is the one Vector-adjacent value allowed to
// violate this; Vector itself is expected to always satisfy it downstream of
// validated input.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
