package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"excgen.dev/pkg/excgen/internal/domain"
	m "excgen.dev/pkg/excgen/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build version, the Go version used to build this tool, and the
shape of the flag space the generator enumerates.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("flags\t\t", m.NumFlags)
			cmd.Println("rules\t\t", len(domain.Rules))

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("excgen version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
