package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hasti0013/cpusched/internal/config"
	"github.com/Hasti0013/cpusched/internal/model"
	"github.com/Hasti0013/cpusched/internal/procfile"
	"github.com/Hasti0013/cpusched/internal/report"
	"github.com/Hasti0013/cpusched/internal/scheduler"
)

func newRunCmd() *cobra.Command {
	var (
		limit  int
		format string
		gantt  bool
		table  bool
		legacy bool
	)

	cmd := &cobra.Command{
		Use:   "run <input> <output> [SJF|SRTF] [limit]",
		Short: "Schedule an input file and write finish/waiting times",
		Long: `Schedule the processes in <input> and write one "id arrival finish waiting"
line per process to <output>, ordered by finish time. The algorithm may be
omitted when the config file sets one. [limit] caps how many input records
are read.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("limit") {
				cfg.Limit = limit
			}
			if flags.Changed("format") {
				cfg.OutputFormat = format
			}
			if flags.Changed("gantt") {
				cfg.Report.Gantt = gantt
			}
			if flags.Changed("table") {
				cfg.Report.Table = table
			}
			if flags.Changed("legacy-turnaround") {
				cfg.Report.LegacyTurnaround = legacy
			}
			if len(args) > 2 {
				cfg.Algorithm = args[2]
			}
			if len(args) > 3 {
				n, err := parseLimit(args[3])
				if err != nil {
					return err
				}
				cfg.Limit = n
			}
			if cfg.Algorithm == "" {
				return fmt.Errorf("%w: algorithm is required (SJF or SRTF)", ErrInvalidArgs)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
			}
			return runSchedule(cmd, args[0], args[1], cfg)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", -1, "Read at most this many input records (-1 for all)")
	cmd.Flags().StringVar(&format, "format", config.FormatPlain, "Output file format (plain, yaml)")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "Print a Gantt chart of the schedule")
	cmd.Flags().BoolVar(&table, "table", false, "Print the per-process schedule table")
	cmd.Flags().BoolVar(&legacy, "legacy-turnaround", false, "Report turnaround as waiting + post-run burst")

	return cmd
}

func runSchedule(cmd *cobra.Command, input, output string, cfg config.Config) error {
	alg, err := scheduler.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	processes, err := loadProcesses(input, cfg.Limit)
	if err != nil {
		return err
	}

	out, err := scheduler.Run(alg, processes, scheduler.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%w: scheduling %s", err, input)
	}

	if err := writeResults(output, cfg.OutputFormat, out.Results); err != nil {
		return err
	}

	summary := report.Summarize(alg, out.Results)
	logger.Info("scheduled",
		zap.String("input", input),
		zap.String("output", output),
		zap.Stringer("algorithm", alg),
		zap.Int("processes", summary.Count))

	w := cmd.OutOrStdout()
	legacy := cfg.Report.LegacyTurnaround
	report.Brief(w, input, cfg.Limit, summary, legacy)
	if cfg.Report.Gantt || cfg.Report.Table {
		report.Title(w, alg.Title())
	}
	if cfg.Report.Gantt {
		report.Gantt(w, out.Timeline)
	}
	if cfg.Report.Table {
		report.Table(w, out.Results, summary, legacy)
	}
	return nil
}

func loadProcesses(path string, limit int) ([]model.Process, error) {
	f, closeFile, err := procfile.Open(path, logger)
	if err != nil {
		return nil, err
	}
	defer closeFile()

	processes, err := procfile.Load(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s", err, path)
	}
	logger.Debug("loaded processes", zap.String("path", path), zap.Int("count", len(processes)))
	return processes, nil
}

func writeResults(path, format string, results []model.Result) error {
	f, closeFile, err := procfile.Create(path, logger)
	if err != nil {
		return err
	}
	defer closeFile()

	switch format {
	case config.FormatYAML:
		err = procfile.WriteYAML(f, results)
	default:
		err = procfile.Write(f, results)
	}
	if err != nil {
		return fmt.Errorf("%w: writing %s", err, path)
	}
	return nil
}

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: limit %q must be a non-negative integer", ErrInvalidArgs, s)
	}
	return n, nil
}
