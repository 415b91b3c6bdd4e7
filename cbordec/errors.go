package cbordec

import "errors"

var (
	// ErrMalformed is returned for a CBOR scene payload that is not a
	// sequence of single-key shape-node maps.
	ErrMalformed = errors.New("cbordec: malformed scene payload")
	// ErrUnknownVariant is returned for a shape-node key that is not one of
	// the variants this package decodes.
	ErrUnknownVariant = errors.New("cbordec: unknown shape variant")
)
