package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
)

func NewVersionCommand(a *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the version of labpod",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("labpod %s (commit %s, built %s)\n",
				orUnknown(a.Build.Version), orUnknown(a.Build.Commit), orUnknown(a.Build.Date))
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
