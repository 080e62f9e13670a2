// the root command is the entrypoint for the labpod cli
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
	"github.com/labpod/labpod/internal/logging"
)

// NewRootCommand creates the bare `labpod` command. The session itself
// lives under `labpod up`.
func NewRootCommand(a *cli.App) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "labpod",
		Short: "labpod - single GPU workspace container orchestrator",
		Long: `labpod keeps exactly one named development container alive for a
GPU research workspace: it reuses a running container, restarts a stopped
one, or creates a fresh one with your experiments directory mounted, then
offers a confirmable teardown when you interrupt the session.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logLevel)
		},
		Run: func(cmd *cobra.Command, args []string) {
			color.Green("labpod %s", a.Build.Version)
			fmt.Println()
			fmt.Println("Start a workspace session with \"labpod up\".")
			fmt.Println("Use \"labpod --help\" for more information about a command.")
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	return root
}
