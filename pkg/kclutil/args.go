package kclutil

import (
	"errors"
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"
)

// ErrInvalidArgument indicates a plugin method received an argument of the
// wrong shape.
var ErrInvalidArgument = errors.New("invalid argument")

// SafeMethodArgs wraps [plugin.MethodArgs] with accessors that return errors
// instead of panicking on missing or mistyped arguments.
type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) string {
	if sma.Exists(name) {
		return sma.Args.StrKwArg(name)
	}

	return defaultValue
}

func (sma *SafeMethodArgs) arg(i int) (any, error) {
	if i < 0 || i >= len(sma.Args.Args) {
		return nil, fmt.Errorf("%w: expected at least %d argument(s), got %d",
			ErrInvalidArgument, i+1, len(sma.Args.Args))
	}

	return sma.Args.Args[i], nil
}

func (sma *SafeMethodArgs) StrArg(i int) (string, error) {
	v, err := sma.arg(i)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string argument at index %d, got %T", ErrInvalidArgument, i, v)
	}

	return s, nil
}

func (sma *SafeMethodArgs) ListStrArg(i int) ([]string, error) {
	v, err := sma.arg(i)
	if err != nil {
		return nil, err
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected []string argument at index %d, got %T", ErrInvalidArgument, i, v)
	}

	strs := make([]string, 0, len(list))
	for j, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected string at index %d, got %T", ErrInvalidArgument, j, item)
		}

		strs = append(strs, s)
	}

	return strs, nil
}
