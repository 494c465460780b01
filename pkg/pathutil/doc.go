// Package pathutil implements lexical path algebra over generic path strings.
//
// Paths may use either '/' or '\' as separator. Results always use a single
// '/' between segments. A path is absolute when it starts with a separator;
// nothing in this package knows about drive letters or UNC shares (see
// [github.com/MacroPower/ospath/pkg/ospath] for that).
//
// No function in this package touches a filesystem.
package pathutil
