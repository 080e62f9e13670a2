package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/labpod/labpod/internal/cli"
)

// NewHistoryCommand prints the recent lifecycle events from the journal.
func NewHistoryCommand(a *cli.App) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent workspace lifecycle events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j := a.Journal()
			if j == nil {
				return fmt.Errorf("journal is not available")
			}

			entries, err := j.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No recorded sessions yet.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tCONTAINER\tACTION\tSESSION")
			for _, e := range entries {
				sid := e.SessionID
				if len(sid) > 8 {
					sid = sid[:8]
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					e.Container, e.Action, sid)
			}
			return w.Flush()
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of events to show")

	return historyCmd
}
