// =============================================================================
// Invoice Grouping - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   invoice version
//
// OUTPUT:
//   Invoice Grouping
//   Version:    1.2.0
//   Commit:     3f2a9c1
//   Build Date: 2025-03-02
//   Go Version: go1.24.11 linux/amd64
//
// Release builds stamp Version, Commit and BuildDate with ldflags:
//   go build -ldflags "-X github.com/kowusu01/LinqGrouping/cmd.Version=1.2.0 \
//     -X github.com/kowusu01/LinqGrouping/cmd.Commit=$(git rev-parse --short HEAD) \
//     -X github.com/kowusu01/LinqGrouping/cmd.BuildDate=$(date +%F)" .
//
// Without ldflags, the module version and VCS revision that the Go toolchain
// embeds are used instead (for example after `go install ...@v1.2.0`).
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build information, stamped with ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = "unknown"
)

// buildInfo is the version data printed by the version command.
type buildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// currentBuild merges the ldflags values with the toolchain's embedded
// build info. Values set with ldflags win.
func currentBuild() buildInfo {
	b := buildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
				if len(b.Commit) > 7 {
					b.Commit = b.Commit[:7]
				}
			}
		case "vcs.time":
			if b.BuildDate == "unknown" {
				b.BuildDate = s.Value
			}
		}
	}
	return b
}

func printVersion(w io.Writer, b buildInfo) {
	fmt.Fprintln(w, "Invoice Grouping")
	fmt.Fprintf(w, "Version:    %s\n", b.Version)
	if b.Commit != "" {
		fmt.Fprintf(w, "Commit:     %s\n", b.Commit)
	}
	fmt.Fprintf(w, "Build Date: %s\n", b.BuildDate)
	fmt.Fprintf(w, "Go Version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout(), currentBuild())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
