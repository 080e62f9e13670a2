package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
	"github.com/labpod/labpod/internal/cli/model"
	"github.com/labpod/labpod/internal/config"
	"github.com/labpod/labpod/internal/session"
)

// NewUpCommand creates the interactive session command: resolve the
// configuration, ensure the container is up, then hold the terminal until
// the operator interrupts and tears down.
func NewUpCommand(a *cli.App) *cobra.Command {
	var (
		name    string
		image   string
		mount   string
		publish []string
		yes     bool
	)

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Start (or reuse) the workspace container and hold the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := config.LoadDefaults()
			overrides := config.PromptOverrides{
				ContainerName: name,
				Image:         image,
				MountPath:     mount,
			}

			sessCfg, err := config.PromptSession(defaults, overrides, yes)
			if err != nil {
				return err
			}

			ctx := context.Background()
			rt, err := a.Runtime(ctx)
			if err != nil {
				return err
			}

			color.Blue("Session: container=%s image=%s mount=%s",
				sessCfg.ContainerName, sessCfg.Image, sessCfg.MountPath)

			s := &session.Session{
				Runtime:      rt,
				Config:       sessCfg,
				PublishSpecs: publish,
				AutoConfirm:  yes,
			}
			if j := a.Journal(); j != nil {
				s.Journal = j
			}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				s.Progress = model.RunTask
			}

			// Only the operator interrupt is intercepted; every other
			// signal keeps its default behavior.
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)

			return s.Run(ctx, interrupts)
		},
	}

	upCmd.Flags().StringVar(&name, "name", "", "container name (skips the prompt)")
	upCmd.Flags().StringVar(&image, "image", "", "image name (skips the prompt)")
	upCmd.Flags().StringVar(&mount, "mount", "", "host directory to mount (skips the prompt)")
	upCmd.Flags().StringSliceVarP(&publish, "publish", "p", nil, "publish a container port (e.g. 8888:8888)")
	upCmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept defaults and auto-confirm removal")

	return upCmd
}
