package render

import "errors"

// ErrInvalidFormat indicates an unrecognized output format name.
var ErrInvalidFormat = errors.New("invalid output format")
