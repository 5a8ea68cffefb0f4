// File: version.go
// Role: the version command.

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the CLI version, bumped on release.
const Version = "0.1.0"

// versionReport is the JSON shape of version information.
type versionReport struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// VersionCmd prints version information.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := versionReport{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if jsonMode() {
		return emitJSON(cmd, info)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "chipfire %s\n", info.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "go: %s\n", info.GoVersion)
	fmt.Fprintf(cmd.OutOrStdout(), "platform: %s\n", info.Platform)

	return nil
}
