package version

import "runtime/debug"

var (
	// Version is set at build time with -ldflags "-X".
	Version = "0.0.0-dev"

	// Revision is the VCS revision the binary was built from.
	Revision = revision()
)

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return s.Value
		}
	}

	return "unknown"
}
