package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ganot/amrannot/internal/annotation"
	"github.com/ganot/amrannot/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "amrannot",
	Short:        "Validate and aggregate AMRFinderPlus annotation tables",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(validateCmd, aggregateCmd, exportCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and builds a stderr logger so stdout stays clean
// for table output.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config error: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return cfg, logger, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
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

func parseKind(s string) (annotation.Kind, error) {
	switch annotation.Kind(s) {
	case annotation.KindAnnotations:
		return annotation.KindAnnotations, nil
	case annotation.KindMutations:
		return annotation.KindMutations, nil
	default:
		return "", fmt.Errorf("unknown report kind %q (want annotations or mutations)", s)
	}
}
