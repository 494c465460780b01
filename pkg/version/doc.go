// Package version provides build information for the ospath CLI.
package version
