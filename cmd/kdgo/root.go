package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hupe1980/kdgo"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	logLevel  string
	logFormat string
	throttle  int
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "kdgo",
		Short:         "Build, persist, and query balanced KD-trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&global.logFormat, "log-format", "text", "log format (text, json)")
	cmd.PersistentFlags().IntVar(&global.throttle, "throttle", 0, "blob transfer rate limit in bytes/sec (0 = unlimited)")

	cmd.AddCommand(newBuildCmd(global))
	cmd.AddCommand(newQueryCmd(global))
	cmd.AddCommand(newStatsCmd(global))

	return cmd
}

func (g *globalOptions) newLogger() (*kdgo.Logger, error) {
	var level slog.Level
	switch strings.ToLower(g.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", g.logLevel)
	}

	switch strings.ToLower(g.logFormat) {
	case "text":
		return kdgo.NewTextLogger(level), nil
	case "json":
		return kdgo.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", g.logFormat)
	}
}
