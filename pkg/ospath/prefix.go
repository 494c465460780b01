package ospath

import (
	"strings"

	"github.com/MacroPower/ospath/pkg/pathutil"
)

// UNCPrefix is the prefix of a Windows UNC path.
const UNCPrefix = `\\`

// Prefix returns the Windows prefix at the start of path: [UNCPrefix] or a
// drive such as "C:". Under [Default] there is no prefix concept and ok is
// always false. A plain leading separator is not a prefix; see [RootPrefix].
func Prefix(path string, m Manipulation) (prefix string, ok bool) {
	if m != Windows {
		return "", false
	}

	if strings.HasPrefix(path, UNCPrefix) {
		return UNCPrefix, true
	}

	if len(path) >= 2 && isASCIILetter(path[0]) && path[1] == ':' {
		return path[:2], true
	}

	return "", false
}

// RootPrefix is like [Prefix], but also matches a lone leading separator
// (one that is not the start of a UNC prefix). Under [Default] only the
// leading separator matches.
func RootPrefix(path string, m Manipulation) (prefix string, ok bool) {
	if m != Windows {
		if pathutil.IsAbsolute(path) {
			return path[:1], true
		}

		return "", false
	}

	if prefix, ok := Prefix(path, m); ok {
		return prefix, true
	}

	if path != "" && pathutil.IsSeparator(path[0]) && (len(path) == 1 || path[1] != '\\') {
		return path[:1], true
	}

	return "", false
}

// StripPrefix replaces the [Prefix] of path, if any, with a single "/".
// Paths without a prefix are returned unchanged.
func StripPrefix(path string, m Manipulation) string {
	prefix, ok := Prefix(path, m)
	if !ok {
		return path
	}

	return pathutil.Separator + path[len(prefix):]
}

// ReattachPrefix prepends prefix to an absolute, generically resolved path.
// For [UNCPrefix] the leading separator of resolved is dropped so that the
// result starts with exactly two backslashes.
func ReattachPrefix(prefix, resolved string) string {
	if prefix == UNCPrefix {
		return prefix + strings.TrimPrefix(resolved, pathutil.Separator)
	}

	return prefix + resolved
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
