package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/app"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/history"
)

var (
	historyLimit int
	historySince time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous report runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(ctx context.Context, svc *app.Service) error {
			q := history.Query{Limit: historyLimit}
			if historySince > 0 {
				q.Start = time.Now().Add(-historySince)
			}
			runs, err := svc.History(ctx, q)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tSOURCE\tALPHA\tPHO-C\tPHI-C")
			for _, r := range runs {
				for _, e := range r.Entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%v\t%s %.4f\t%s %.4f\n",
						r.ID, r.Timestamp.Format(time.RFC3339), r.Source, e.Alpha,
						e.OptimumPho.Config, e.OptimumPho.Value, e.OptimumPhi.Config, e.OptimumPhi.Value)
				}
				if len(r.Failures) > 0 {
					fmt.Fprintf(tw, "%s\t%s\t%s\tfailed\t%s\t\n",
						r.ID, r.Timestamp.Format(time.RFC3339), r.Source, strings.Join(r.Failures, "; "))
				}
			}
			return tw.Flush()
		})
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only show runs newer than this duration")
	rootCmd.AddCommand(historyCmd)
}
