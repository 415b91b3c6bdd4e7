package matrix

import "errors"

// ErrSingular is returned by Inverse when the matrix has no inverse (zero
// determinant within epsilon). Shape constructors that require an invertible
// transform (shape.NewTransformedShape) report it as a *lnerr.ConfigError
// wrapping shape.ErrSingularTransform rather than this sentinel.
var ErrSingular = errors.New("matrix: singular matrix")

const singularEpsilon = 1e-12
