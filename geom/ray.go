package geom

import "github.com/HellOwhatAs/ln/vector"

// Ray is an origin point and a direction. Top-level rays (camera rays,
// scene occlusion rays) always carry a unit-length Direction; NewRay
// normalizes for that case. shape.TransformedShape constructs rays with a
// deliberately non-unit Direction when mapping into an inner shape's local
// space under a scaling transform, so that the hit parameter t stays
// identical across the transform (see matrix.Matrix.MulDirection) — shape
// intersection math must therefore solve its quadratics against the ray's
// actual direction length, never assume it is 1.
type Ray struct {
	Origin, Direction vector.Vector
}

// NewRay builds a Ray, normalizing direction.
func NewRay(origin, direction vector.Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// Position returns the point origin + direction*t.
func (r Ray) Position(t float64) vector.Vector {
	return r.Origin.Add(r.Direction.MulScalar(t))
}
