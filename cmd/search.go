package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/app"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Evaluate the cost metrics over the configuration grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *app.Service) error {
			_, err := svc.Search(ctx)
			return err
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the grid search followed by the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *app.Service) error {
			_, err := svc.Run(ctx)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, runCmd)
}
