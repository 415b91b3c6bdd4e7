package shape

import (
	"github.com/HellOwhatAs/ln/paths"
	"github.com/HellOwhatAs/ln/vector"
)

// EyeAware is implemented by shapes whose texture paths depend on the
// camera viewpoint: Outline, and any composite (TransformedShape,
// Intersection, Difference) that contains one. Paths() on these shapes
// returns whatever is eye-independent (nil for a bare Outline); PathsFor is
// the entry point that correctly dispatches to PathsForEye wherever the
// shape graph needs it.
type EyeAware interface {
	PathsForEye(eye vector.Vector) paths.Paths
}

// PathsFor returns s's texture paths, accounting for eye if s (or any of its
// descendants) is eye-dependent. Callers collecting a scene's full texture
// set for rendering must use this instead of calling s.Paths()
// directly, or an Outline anywhere in the graph will render with a stale
// (nil) silhouette.
func PathsFor(s Shape, eye vector.Vector) paths.Paths {
	if ea, ok := s.(EyeAware); ok {
		return ea.PathsForEye(eye)
	}
	return s.Paths()
}
