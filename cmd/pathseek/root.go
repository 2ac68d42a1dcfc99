package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathseek/cmd/pathseek/internal/config"
	"github.com/katalvlaran/pathseek/telemetry"
)

// app carries what every subcommand needs once the root pre-run finished.
type app struct {
	configPath string
	logLevel   string
	exporter   string

	cfg       config.Config
	logger    *slog.Logger
	runID     string
	providers *telemetry.Providers
	rec       *telemetry.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pathseek",
		Short:         "State-space search: BFS, DFS, iterative deepening and A*",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.providers == nil {
				return nil
			}
			return a.providers.Shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	root.PersistentFlags().StringVar(&a.exporter, "telemetry", "", "none|stdout (overrides config)")

	root.AddCommand(newRoverCmd(a), newRouteCmd(a), newCompareCmd(a))

	return root
}

// setup loads configuration and builds the logger and telemetry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.exporter != "" {
		cfg.Telemetry.Exporter = a.exporter
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	a.runID = uuid.NewString()
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: parseLevel(cfg.Log.Level),
	})).With(slog.String("run_id", a.runID))

	a.providers, err = telemetry.Setup(cfg.Telemetry.Exporter, cmd.ErrOrStderr(), "pathseek", a.runID)
	if err != nil {
		return err
	}
	a.rec, err = telemetry.NewRecorder(a.providers.Meter, a.providers.Tracer)
	if err != nil {
		return err
	}
	a.logger.Debug("pathseek: configured",
		slog.String("command", cmd.Name()),
		slog.Bool("closed_set", cfg.Search.ClosedSet),
		slog.Int("max_expansions", cfg.Search.MaxExpansions),
		slog.String("telemetry", cfg.Telemetry.Exporter),
	)

	return nil
}

// searchContext applies the configured timeout.
func (a *app) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if a.cfg.Search.Timeout > 0 {
		return context.WithTimeout(parent, a.cfg.Search.Timeout)
	}

	return context.WithCancel(parent)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// isTerminal reports whether w is a terminal, which enables styled output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
