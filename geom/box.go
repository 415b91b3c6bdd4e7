// Package geom provides the axis-aligned bounding box and ray types shared
// by every shape and the BVH, plus small angle-conversion helpers.
package geom

import (
	"math"

	"github.com/HellOwhatAs/ln/matrix"
	"github.com/HellOwhatAs/ln/vector"
)

// Box is an axis-aligned box with the invariant Min.i <= Max.i for each axis.
type Box struct {
	Min, Max vector.Vector
}

// NewBox builds a Box from two corners, sorting componentwise so the
// Min <= Max invariant holds regardless of argument order.
func NewBox(a, b vector.Vector) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

// Anchor returns the point at the given fractional anchor inside the box
// (0=Min, 1=Max per axis): Min + Size*anchor.
func (box Box) Anchor(anchor vector.Vector) vector.Vector {
	return box.Min.Add(box.Size().Mul(anchor))
}

// Size returns Max - Min.
func (box Box) Size() vector.Vector {
	return box.Max.Sub(box.Min)
}

// Center returns the box's midpoint.
func (box Box) Center() vector.Vector {
	return box.Anchor(vector.New(0.5, 0.5, 0.5))
}

// Union returns the smallest box enclosing both box and other.
func (box Box) Union(other Box) Box {
	return Box{Min: box.Min.Min(other.Min), Max: box.Max.Max(other.Max)}
}

// Extend returns the smallest box enclosing box and the point p.
func (box Box) Extend(p vector.Vector) Box {
	return Box{Min: box.Min.Min(p), Max: box.Max.Max(p)}
}

// Contains reports whether p lies within the closed box.
func (box Box) Contains(p vector.Vector) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X &&
		p.Y >= box.Min.Y && p.Y <= box.Max.Y &&
		p.Z >= box.Min.Z && p.Z <= box.Max.Z
}

// Transform re-axis-aligns box by transforming all 8 corners through m and
// taking their bounding box. Used when a TransformedShape reports its
// world-space bounding_box from the inner shape's local-space box.
func (box Box) Transform(m matrix.Matrix) Box {
	corners := [8]vector.Vector{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	result := Box{Min: m.MulPosition(corners[0]), Max: m.MulPosition(corners[0])}
	for _, c := range corners[1:] {
		result = result.Extend(m.MulPosition(c))
	}
	return result
}

// Intersect performs the slab test for ray against box and returns (tmin,
// tmax). tmin > tmax signals a miss; zero ray-direction components are
// tolerated (componentwise division by zero yields ±Inf, which the min/max
// comparisons handle correctly per IEEE 754).
func (box Box) Intersect(r Ray) (tmin, tmax float64) {
	x1 := (box.Min.X - r.Origin.X) / r.Direction.X
	x2 := (box.Max.X - r.Origin.X) / r.Direction.X
	tmin, tmax = math.Min(x1, x2), math.Max(x1, x2)

	y1 := (box.Min.Y - r.Origin.Y) / r.Direction.Y
	y2 := (box.Max.Y - r.Origin.Y) / r.Direction.Y
	tmin = math.Max(tmin, math.Min(y1, y2))
	tmax = math.Min(tmax, math.Max(y1, y2))

	z1 := (box.Min.Z - r.Origin.Z) / r.Direction.Z
	z2 := (box.Max.Z - r.Origin.Z) / r.Direction.Z
	tmin = math.Max(tmin, math.Min(z1, z2))
	tmax = math.Min(tmax, math.Max(z1, z2))

	return tmin, tmax
}

// Hit reports whether the ray intersects box at all, i.e. tmax >= max(tmin, 0).
func (box Box) Hit(r Ray) bool {
	tmin, tmax := box.Intersect(r)
	return tmax >= math.Max(tmin, 0)
}
