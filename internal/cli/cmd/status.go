package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
	"github.com/labpod/labpod/internal/config"
	"github.com/labpod/labpod/internal/container"
)

// NewStatusCommand reports the workspace container's observable state:
// absent, stopped or running.
func NewStatusCommand(a *cli.App) *cobra.Command {
	var name string

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the workspace container is absent, stopped or running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = config.LoadDefaults().ContainerName
			}

			ctx := context.Background()
			rt, err := a.Runtime(ctx)
			if err != nil {
				return err
			}

			exists, running, err := rt.Probe(ctx, name)
			if err != nil {
				return err
			}

			switch {
			case running:
				color.Green("%s: %s", name, container.StatusRunning)
			case exists:
				color.Yellow("%s: %s", name, container.StatusStopped)
			default:
				color.Red("%s: %s", name, container.StatusAbsent)
			}
			return nil
		},
	}

	statusCmd.Flags().StringVar(&name, "name", "", "container name (default from config)")

	return statusCmd
}
