package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Hasti0013/cpusched/internal/report"
	"github.com/Hasti0013/cpusched/internal/scheduler"
)

func newCompareCmd() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "compare <input> [limit]",
		Short: "Schedule an input file under every algorithm and compare averages",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("legacy-turnaround") {
				cfg.Report.LegacyTurnaround = legacy
			}
			limit := cfg.Limit
			if len(args) > 1 {
				n, err := parseLimit(args[1])
				if err != nil {
					return err
				}
				limit = n
			}

			processes, err := loadProcesses(args[0], limit)
			if err != nil {
				return err
			}

			// Each run builds its own records from the shared, read-only input.
			outcomes := make([]*scheduler.Outcome, len(scheduler.Algorithms))
			g := new(errgroup.Group)
			for i, alg := range scheduler.Algorithms {
				g.Go(func() error {
					out, err := scheduler.Run(alg, processes, scheduler.WithLogger(logger))
					if err != nil {
						return fmt.Errorf("%w: scheduling %s with %s", err, args[0], alg)
					}
					outcomes[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			summaries := make([]report.Summary, len(outcomes))
			for i, out := range outcomes {
				summaries[i] = report.Summarize(scheduler.Algorithms[i], out.Results)
				report.Schedule(w, out, summaries[i], cfg.Report.LegacyTurnaround)
			}
			report.Compare(w, summaries, cfg.Report.LegacyTurnaround)

			logger.Info("compared", zap.String("input", args[0]), zap.Int("processes", len(processes)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&legacy, "legacy-turnaround", false, "Report turnaround as waiting + post-run burst")

	return cmd
}
