package mexpr

import "errors"

// ErrParse wraps any failure to parse or prepare a function-surface
// expression: malformed syntax, unknown identifiers, wrong arity.
var ErrParse = errors.New("mexpr: expression parse failure")
