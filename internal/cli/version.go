package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Release builds stamp these from the module root:
//
//	go build -ldflags "-X AccountSystem/internal/cli.Version=v0.2.0 -X AccountSystem/internal/cli.Commit=$(git rev-parse --short HEAD)" -o accountsys ./cmd
//
// Unstamped builds fall back to the VCS data the go tool embeds.
var (
	Version = "dev"
	Commit  string
)

// VersionInfo returns a one-line description of the running binary.
func VersionInfo(name string) string {
	commit, built := Commit, "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				if commit == "" {
					commit = setting.Value
				}
			case "vcs.time":
				built = setting.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("%s %s (commit %s, built %s, %s %s/%s)",
		name, Version, commit, built, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// NewVersion creates a version command
func NewVersion(params *CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + params.Use,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionInfo(params.Use))
		},
	}
}
