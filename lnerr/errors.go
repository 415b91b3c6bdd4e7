// Package lnerr defines the two error kinds shared across the ln packages:
// ConfigError for invalid scene graphs (raised synchronously at compile/add
// time) and IoError for failures in the serializers. Every package that can
// hit one of these keeps its own sentinel errors (checked with errors.Is)
// and wraps them into the appropriate kind at its boundary.
package lnerr

import "fmt"

// ConfigError reports an invalid scene graph: a singular transform matrix,
// a non-finite input, a cube with min > max, a non-positive cylinder/cone
// radius, a CSG node with fewer than two children, a function-expression
// parse failure, and similar construction-time problems.
//
// Component names the package that raised it ("shape", "camera", "cbordec", ...).
type ConfigError struct {
	Component string
	Msg       string
	Err       error // optional wrapped sentinel, nil if none
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ln: %s: %s: %v", e.Component, e.Msg, e.Err)
	}
	return fmt.Sprintf("ln: %s: %s", e.Component, e.Msg)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError builds a ConfigError, optionally wrapping a package sentinel
// so callers can still errors.Is against the precise condition.
func NewConfigError(component, msg string, err error) *ConfigError {
	return &ConfigError{Component: component, Msg: msg, Err: err}
}

// IoError reports a failure surfaced by a serializer (paths.WriteSVG,
// paths.WritePNG). Op names the failing operation ("write_svg", "write_png").
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string { return fmt.Sprintf("ln: io: %s: %v", e.Op, e.Err) }

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError wraps err as an IoError for the named operation. Returns nil if
// err is nil, so callers can write `return lnerr.NewIoError("write_svg", err)`
// unconditionally.
func NewIoError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IoError{Op: op, Err: err}
}
