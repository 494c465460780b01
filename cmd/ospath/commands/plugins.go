package commands

import (
	"os"
	"strings"

	ospathplugin "github.com/MacroPower/ospath/pkg/kclplugin/ospath"
)

// RegisterEnabledPlugins registers the KCL plugins that have not been
// disabled through the environment.
func RegisterEnabledPlugins() {
	if !envTrue("OSPATH_KCL_PLUGIN_DISABLED") {
		ospathplugin.Register()
	}
}

func envTrue(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
