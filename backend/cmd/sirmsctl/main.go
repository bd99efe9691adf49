// sirmsctl is the operator CLI for the Records Service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sirms/backend/internal/shared"
)

// cliOptions are the global flags shared by every command.
type cliOptions struct {
	addr    string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "sirmsctl",
		Short: "Inspect student records and grade scores",
		Long: `sirmsctl talks to the Records Service over gRPC.

Available commands:
  grade      - Convert raw scores to grade points and letters (offline)
  students   - List every student record
  transcript - Show per-level GPA and CGPA for one student`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	defaultAddr := shared.GetEnv("RECORDS_SERVICE_ADDR", "localhost:"+shared.DefaultRecordsServicePort)
	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", defaultAddr, "Records Service address")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "Per-call timeout")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newGradeCmd())
	rootCmd.AddCommand(newStudentsCmd(opts))
	rootCmd.AddCommand(newTranscriptCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
