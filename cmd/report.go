package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/app"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/store"
)

var (
	reportInput  string
	reportStdout bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Filter raw results and select the optimum configuration per alpha",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *app.Service) error {
			entries, err := svc.Report(ctx, reportInput)
			if reportStdout && entries != nil {
				if werr := store.WriteReport(cmd.OutOrStdout(), entries); werr != nil {
					return werr
				}
			}
			return err
		})
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "raw results artifact (defaults to output.raw_results)")
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "also print the report to stdout")
	rootCmd.AddCommand(reportCmd)
}
