// Command shrink runs numeric shrink scenarios from the command line: it
// builds the configured shrink tree, searches it for the minimal value
// that is still above the scenario threshold, and logs the visited trace.
// Useful for eyeballing shrink behavior without writing a test.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shrinktree/internal/config"
	"shrinktree/pkg/lazy"
	"shrinktree/pkg/sample"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shrink",
	Short: "shrinktree - minimal counterexample search over shrink trees",
	Long: `shrink drives the shrinktree library from the command line.

Each scenario builds a numeric shrink tree (binary subdivision from a
start value toward a target), then walks it depth-first for the smallest
value still above the scenario threshold. The full visited trace is
logged, so the diagnostic detours are as visible as the final minimum.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// runCmd executes the configured scenarios
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run shrink scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := config.Default()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		for _, sc := range cfg.Scenarios {
			if err := runScenario(ctx, sc); err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
		}
		return nil
	},
}

func runScenario(ctx context.Context, sc config.Scenario) error {
	log := logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("scenario", sc.Name),
		zap.String("kind", sc.Kind))

	log.Info("Starting shrink search",
		zap.Float64("start", sc.Start),
		zap.Float64("target", sc.Target),
		zap.Float64("threshold", sc.Threshold))

	switch sc.Kind {
	case config.KindIntegral:
		root := sample.ShrinkIntegral(int64(sc.Target), int64(sc.Start))
		threshold := int64(sc.Threshold)
		return report(ctx, log, sc, root, func(v int64) bool { return v > threshold })
	case config.KindFractional:
		root := sample.ShrinkFractional(sc.Target, sc.Start)
		return report(ctx, log, sc, root, func(v float64) bool { return v > sc.Threshold })
	default:
		return fmt.Errorf("unknown scenario kind %q", sc.Kind)
	}
}

// report drains the search trace for one scenario and logs the outcome.
func report[A any](ctx context.Context, log *zap.Logger, sc config.Scenario, root sample.Sample[A], interesting func(A) bool) error {
	seq := sample.Search(root, interesting)
	if sc.MaxVisits > 0 {
		seq = lazy.Limit(seq, sc.MaxVisits)
	}

	trace, err := lazy.Collect(ctx, seq)
	if err != nil {
		return err
	}

	var (
		min   A
		found bool
	)
	for _, v := range trace {
		log.Debug("Visited candidate", zap.Any("value", v), zap.Bool("interesting", interesting(v)))
		if interesting(v) {
			min, found = v, true
		}
	}

	if !found {
		log.Info("Root value already below threshold", zap.Any("value", root.Value))
		return nil
	}
	log.Info("Shrink search complete",
		zap.Int("visited", len(trace)),
		zap.Any("minimum", min))
	return nil
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML scenario file")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
