package cli

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Hasti0013/cpusched/internal/config"
	"github.com/Hasti0013/cpusched/internal/logging"
)

// ErrInvalidArgs is returned for malformed command-line arguments.
var ErrInvalidArgs = errors.New("invalid args")

var (
	flagConfig   string
	flagDebug    bool
	flagLogLevel string

	cfg    config.Config
	logger *zap.Logger
)

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched",
		Short: "Single-processor SJF/SRTF scheduling simulator",
		Long: `cpusched simulates batch processes on one processor under Shortest Job First
(non-preemptive) or Shortest Remaining Time First (preemptive) and reports
each process's finish and waiting time.

Input files hold one "id arrival burst" triplet per line, sorted by arrival.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			logger = logging.New(logging.ParseLevel(cfg.LogLevel)).
				With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (per-event engine trace)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
	)

	return root
}
