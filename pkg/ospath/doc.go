// Package ospath provides OS-aware lexical path resolution.
//
// It extends [github.com/MacroPower/ospath/pkg/pathutil] with the ability to
// keep the prefix of an absolute Windows path (a drive such as "C:" or the
// "\\" of a UNC share) while the rest of the path is manipulated generically.
// Callers pick the behavior per call with a [Manipulation]:
//
//   - [Default] manipulates paths the same way as package pathutil.
//   - [Windows] additionally recognizes drive and UNC prefixes.
//
// Paths are plain strings and may use '/' or '\' as separator. Nothing in
// this package inspects a real filesystem; "absolute" is a property of the
// string alone.
//
// All functions are safe for concurrent use.
package ospath
