package ospath

import (
	"fmt"
	"log/slog"

	"github.com/MacroPower/ospath/pkg/pathutil"
)

// Relative finds the relative path from "from" to "to".
//
// Under [Default] it behaves like [pathutil.Relative]. Under [Windows] both
// paths must be absolute (see [IsAbsolute]), otherwise an error wrapping
// [ErrNotAbsolute] is returned. When the paths have different root prefixes
// no relative path can lead from one to the other, and the result is
// ResolveOne(to, m) instead.
func Relative(from, to string, m Manipulation) (string, error) {
	if m != Windows {
		return pathutil.Relative(from, to), nil
	}

	fromPrefix, ok := RootPrefix(from, m)
	if !ok {
		return "", fmt.Errorf("%w: from %q", ErrNotAbsolute, from)
	}

	toPrefix, ok := RootPrefix(to, m)
	if !ok {
		return "", fmt.Errorf("%w: to %q", ErrNotAbsolute, to)
	}

	if fromPrefix != toPrefix {
		slog.Debug("paths have different prefixes, resolving target",
			slog.String("from", from),
			slog.String("to", to),
		)

		return ResolveOne(to, m), nil
	}

	return pathutil.Relative(rooted(from[len(fromPrefix):]), rooted(to[len(toPrefix):])), nil
}

// MustRelative is like [Relative] but panics if the paths are not absolute.
func MustRelative(from, to string, m Manipulation) string {
	rel, err := Relative(from, to, m)
	if err != nil {
		panic(err)
	}

	return rel
}

func rooted(path string) string {
	if pathutil.IsAbsolute(path) {
		return path
	}

	return pathutil.Separator + path
}
