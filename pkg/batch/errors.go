package batch

import "errors"

var (
	ErrDecode           = errors.New("decode batch file")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnknownOp        = errors.New("unknown op")
	ErrArity            = errors.New("wrong number of paths")
)
