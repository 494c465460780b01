package pathutil

import "strings"

const (
	// Separator is the separator used in every path returned by this package.
	Separator = "/"

	parentSegment  = ".."
	currentSegment = "."
)

// IsSeparator reports whether c is accepted as a path separator.
func IsSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// IsAbsolute reports whether path starts with a separator.
func IsAbsolute(path string) bool {
	return path != "" && IsSeparator(path[0])
}

// Segments splits path on either separator and returns the non-empty
// components, without collapsing navigation segments.
func Segments(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
}

// collapse drops "." segments and lets ".." pop the previous name. A ".."
// with nothing to pop (or following another unpopped "..") is kept.
func collapse(segments []string) []string {
	out := make([]string, 0, len(segments))

	for _, s := range segments {
		switch s {
		case currentSegment:
			continue
		case parentSegment:
			if len(out) > 0 && out[len(out)-1] != parentSegment {
				out = out[:len(out)-1]

				continue
			}
		}

		out = append(out, s)
	}

	return out
}

func join(segments []string, absolute bool) string {
	joined := strings.Join(segments, Separator)
	if absolute {
		return Separator + joined
	}

	return joined
}

// Resolve resolves addition against base.
//
// If addition is absolute, the result is addition normalized. Otherwise base
// is treated as a directory and addition is appended to it before
// normalizing. The result is absolute if and only if the winning input was.
func Resolve(base, addition string) string {
	if IsAbsolute(addition) {
		return join(collapse(Segments(addition)), true)
	}

	segments := append(Segments(base), Segments(addition)...)

	return join(collapse(segments), IsAbsolute(base))
}

// ResolveN folds paths from left to right through [Resolve].
// It returns "" for no paths.
func ResolveN(paths ...string) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return Resolve(paths[0], "")
	}

	result := Resolve(paths[0], paths[1])
	for _, p := range paths[2:] {
		result = Resolve(result, p)
	}

	return result
}

// ResolveOne normalizes a single path.
func ResolveOne(path string) string {
	return ResolveN(path)
}

// Relative returns the path that leads from one path to another. Both are
// expected to be absolute; they are normalized before comparison.
//
// The result is "" (not ".") when both paths are the same location.
func Relative(from, to string) string {
	fromSegments := collapse(Segments(from))
	toSegments := collapse(Segments(to))

	common := 0
	for common < len(fromSegments) && common < len(toSegments) &&
		fromSegments[common] == toSegments[common] {
		common++
	}

	out := make([]string, 0, len(fromSegments)-common+len(toSegments)-common)
	for range fromSegments[common:] {
		out = append(out, parentSegment)
	}

	out = append(out, toSegments[common:]...)

	return strings.Join(out, Separator)
}
