package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"iris/internal/application/commands"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the supported planets",
	RunE: func(cmd *cobra.Command, args []string) error {
		bodies, err := commands.NewListBodiesCommand().Execute(context.Background())
		if err != nil {
			return err
		}
		for _, b := range bodies {
			fmt.Println(b)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bodiesCmd)
}
