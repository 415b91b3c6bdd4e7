package shape

import "errors"

// Sentinel errors for shape construction. Every constructor that can fail
// wraps one of these into a *lnerr.ConfigError via configErr, so callers can
// still errors.Is against the precise condition.
var (
	ErrCubeMinGreaterThanMax = errors.New("shape: cube min > max on some axis")
	ErrNonPositiveRadius     = errors.New("shape: radius must be > 0")
	ErrInvalidZRange         = errors.New("shape: z1 must be > z0")
	ErrNonPositiveHeight     = errors.New("shape: height must be > 0")
	ErrTooFewCSGChildren     = errors.New("shape: CSG node needs at least 2 children")
	ErrNonFiniteInput        = errors.New("shape: non-finite input")
	ErrSingularTransform     = errors.New("shape: transform matrix is not invertible")
	ErrEmptyMesh             = errors.New("shape: mesh has no triangles")
	ErrOutlineUnsupported    = errors.New("shape: outline is only defined for Sphere, Cylinder and Cone")
	ErrInvalidFunctionBounds = errors.New("shape: function domain box min must be < max in x and y")
	ErrInvalidFunctionStep   = errors.New("shape: function march step must be finite and > 0")
)
