package ospath

import "github.com/MacroPower/ospath/pkg/pathutil"

// Resolve resolves path2 relative to path1.
//
// Under [Default] it behaves like [pathutil.Resolve]. Under [Windows], when
// either path carries a [Prefix], the prefixes of both paths are replaced by
// a separator, the results are resolved generically and the prefix is put
// back. path2's prefix wins over path1's, so an absolute path2 replaces
// path1 entirely:
//
//	Resolve("C:/", "a", Windows)    // "C:/a"
//	Resolve("C:/", "D:/", Windows)  // "D:/"
//	Resolve(`\\srv`, "..", Windows) // `\\`
func Resolve(path1, path2 string, m Manipulation) string {
	prefix, ok := Prefix(path2, m)
	if !ok {
		prefix, ok = Prefix(path1, m)
	}

	if !ok {
		return pathutil.Resolve(path1, path2)
	}

	resolved := pathutil.Resolve(StripPrefix(path1, m), StripPrefix(path2, m))

	return ReattachPrefix(prefix, resolved)
}

// ResolveN resolves paths from left to right with [Resolve], so that a later
// absolute path overrides everything before it.
//
// No paths resolve to "". A single path is resolved against "", which
// normalizes it.
func ResolveN(paths []string, m Manipulation) string {
	switch len(paths) {
	case 0:
		return ""
	case 1:
		return Resolve(paths[0], "", m)
	}

	result := Resolve(paths[0], paths[1], m)
	for _, p := range paths[2:] {
		result = Resolve(result, p, m)
	}

	return result
}

// ResolveOne normalizes a single path. It is ResolveN([]string{path}, m).
func ResolveOne(path string, m Manipulation) string {
	return ResolveN([]string{path}, m)
}

// IsAbsolute reports whether path is absolute. Under [Default] only paths
// starting with a separator are absolute; under [Windows] so are paths with
// a drive or UNC prefix.
func IsAbsolute(path string, m Manipulation) bool {
	_, ok := RootPrefix(path, m)

	return ok
}
