// Package shape implements the shape/CSG algebra: the uniform Shape
// contract, every primitive (sphere, cube, cylinder, cone, triangle,
// function surface), the Mesh and TransformedShape wrappers, the
// Intersection/Difference CSG combinators, and the Outline silhouette
// wrapper. The core engine dispatches through this one capability set;
// user-defined shapes join the system by implementing it.
package shape

import (
	"github.com/HellOwhatAs/ln/geom"
	"github.com/HellOwhatAs/ln/hit"
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// ContainsEpsilon is the default tolerance used by Contains to decide
// whether a point lies "inside" a solid. It must be small enough not to
// visibly distort any shape and large enough to avoid seam flicker where two
// CSG siblings share a boundary.
const ContainsEpsilon = 1e-9

// HitEpsilon is the minimum positive t accepted by a primitive's own
// intersection test, rejecting self-intersection at t==0 and grazing roots
// too close to the ray origin to be numerically meaningful.
const HitEpsilon = 1e-6

// Shape is the capability set every solid implements: one-time preparation,
// a bounding box, point containment, ray intersection and the 3D texture
// polylines drawn on its surface.
type Shape interface {
	// Compile performs one-time preparation (building nested BVHs,
	// precomputing normals/areas, validating configuration). Idempotent:
	// calling it again after the first call is a no-op. Returns
	// *lnerr.ConfigError for invalid configuration.
	Compile() error

	// BoundingBox returns a box enclosing every point this shape could ever
	// report from Intersect or emit from Paths.
	BoundingBox() geom.Box

	// Contains reports whether point lies strictly inside the solid, within
	// tolerance epsilon. Used only by CSG combinators and their path
	// filtering; non-CSG callers may pass ContainsEpsilon.
	Contains(point vector.Vector, epsilon float64) bool

	// Intersect returns the nearest positive-t surface crossing along ray,
	// or hit.Miss.
	Intersect(ray geom.Ray) hit.Hit

	// Paths returns the 3D polylines sampled on or near the surface for
	// rendering.
	Paths() paths.Paths
}
