package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set via -ldflags at release build time. Module-aware builds
// without the flag (go install) fall back to the module version stamp.
var version = "(devel)"

func resolvedVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("mathquest %s %s/%s\n", resolvedVersion(), runtime.GOOS, runtime.GOARCH)
	},
}
