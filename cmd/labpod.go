package cmd

import (
	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
	clicmd "github.com/labpod/labpod/internal/cli/cmd"
)

func InitializeCommands(a *cli.App) *cobra.Command {
	rootCmd := clicmd.NewRootCommand(a)
	rootCmd.AddCommand(clicmd.NewUpCommand(a))
	rootCmd.AddCommand(clicmd.NewStatusCommand(a))
	rootCmd.AddCommand(clicmd.NewDownCommand(a))
	rootCmd.AddCommand(clicmd.NewHistoryCommand(a))
	rootCmd.AddCommand(clicmd.NewVersionCommand(a))
	return rootCmd
}

func ExecuteCLI(version, commit, date string) {
	a := cli.NewApp(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	defer a.Close()

	cobra.CheckErr(InitializeCommands(a).Execute())
}
