package scene

import "errors"

// ErrNotCompiled is returned by Render if called before Compile.
var ErrNotCompiled = errors.New("scene: not compiled")
