package ospath

import "errors"

var (
	// ErrNotAbsolute indicates that an operation requiring absolute paths
	// was given a relative one.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrUnknownManipulation indicates an unrecognized manipulation name.
	ErrUnknownManipulation = errors.New("unknown path manipulation")
)
