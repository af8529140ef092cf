package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"iris/internal/application"
	"iris/internal/application/commands"
	"iris/internal/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent calculations",
	Long: `Show recent calculations, newest first.

Examples:
  iris-cli history
  iris-cli history --limit 5
  iris-cli history clear`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calcs, err := commands.NewListHistoryCommand(components.History, historyLimit).
			Execute(context.Background())
		if err != nil {
			return err
		}
		if len(calcs) == 0 {
			fmt.Println("No calculations yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "BODY\tSTART\tEND\tDISTANCE (km)\tVELOCITY (km/s)")
		for _, c := range calcs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.Body,
				domain.FormatTimestamp(c.Start),
				domain.FormatTimestamp(c.End),
				application.FormatNumber(c.Result.DistanceKm),
				application.FormatNumber(c.Result.VelocityKmS),
			)
		}
		return w.Flush()
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded calculations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := commands.NewClearHistoryCommand(components.History).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d calculations\n", n)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", commands.DefaultHistoryLimit, "maximum number of calculations to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
