package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
	"github.com/labpod/labpod/internal/config"
)

// NewDownCommand is the non-interactive teardown path: stop the container
// and, with --rm, remove it.
func NewDownCommand(a *cli.App) *cobra.Command {
	var (
		name   string
		remove bool
	)

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Stop the workspace container (and remove it with --rm)",
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

			// Same error taxonomy as the interactive teardown: stop and
			// remove failures are surfaced but the teardown still
			// completes, and stop always precedes remove.
			sid := uuid.NewString()
			if err := rt.Stop(ctx, name); err != nil {
				log.Error("Failed to stop container", "name", name, "error", err)
			}
			record(a, sid, name, "stop", "")

			if !remove {
				log.Info("Container kept; remove it later with",
					"command", "docker rm "+name)
				return nil
			}

			if err := rt.Remove(ctx, name); err != nil {
				log.Error("Failed to remove container", "name", name, "error", err)
				return nil
			}
			record(a, sid, name, "remove", "")
			return nil
		},
	}

	downCmd.Flags().StringVar(&name, "name", "", "container name (default from config)")
	downCmd.Flags().BoolVar(&remove, "rm", false, "remove the container after stopping it")

	return downCmd
}

func record(a *cli.App, sid, name, action, detail string) {
	j := a.Journal()
	if j == nil {
		return
	}
	if err := j.Record(sid, name, action, detail); err != nil {
		log.Warn("Could not write journal entry", "action", action, "error", err)
	}
}
