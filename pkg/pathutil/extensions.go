package pathutil

import "strings"

// BaseName returns the last segment of the normalized path, or "" when the
// path has no segments.
func BaseName(path string) string {
	segments := collapse(Segments(path))
	if len(segments) == 0 {
		return ""
	}

	return segments[len(segments)-1]
}

// BaseNameWithoutExt returns [BaseName] with the first matching extension in
// exts removed. The base name is returned unchanged when none match.
func BaseNameWithoutExt(path string, exts ...string) string {
	base := BaseName(path)
	for _, ext := range exts {
		ext = dotted(ext)
		if hasSuffixExt(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}

	return base
}

// ChangeExtension replaces every extension of the base name of path with
// ext (so "a.tar.gz" becomes "a.zip"). The extension is appended when the
// base name has none.
func ChangeExtension(path, ext string) string {
	i := extensionStart(path, false)

	return path[:i] + dotted(ext)
}

// ChangeLastExtension replaces only the last extension of the base name of
// path with ext (so "a.tar.gz" becomes "a.tar.zip").
func ChangeLastExtension(path, ext string) string {
	i := extensionStart(path, true)

	return path[:i] + dotted(ext)
}

// HasExtension reports whether the base name of path ends with ext.
func HasExtension(path, ext string) bool {
	return hasSuffixExt(BaseName(path), dotted(ext))
}

// HasExtensions reports whether path has any of exts.
func HasExtensions(path string, exts ...string) bool {
	for _, ext := range exts {
		if HasExtension(path, ext) {
			return true
		}
	}

	return false
}

func dotted(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}

// hasSuffixExt reports whether base ends with ext and still has a name left
// once ext and the leading dots are removed.
func hasSuffixExt(base, ext string) bool {
	if ext == "" || !strings.HasSuffix(base, ext) {
		return false
	}

	return len(strings.TrimLeft(base, ".")) > len(ext)
}

// extensionStart returns the offset in path where the extension of its last
// segment starts, or len(path) when it has none. Leading dots of the segment
// belong to the name.
func extensionStart(path string, lastOnly bool) int {
	end := len(path)
	for end > 0 && IsSeparator(path[end-1]) {
		end--
	}

	start := end
	for start > 0 && !IsSeparator(path[start-1]) {
		start--
	}

	nameStart := start
	for nameStart < end && path[nameStart] == '.' {
		nameStart++
	}

	if nameStart == end {
		return len(path)
	}

	var i int
	if lastOnly {
		i = strings.LastIndexByte(path[nameStart:end], '.')
	} else {
		i = strings.IndexByte(path[nameStart:end], '.')
	}

	if i < 0 {
		return end
	}

	return nameStart + i
}
