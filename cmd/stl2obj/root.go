package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashdale/stl2obj/internal/config"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "stl2obj",
	Short: "Batch STL to OBJ converter",
	Long: `stl2obj - batch STL to OBJ converter

Converts binary or ASCII STL surface triangulations into Wavefront OBJ
polygon meshes, with optional welding, cleanup, axis remapping, scaling,
and centering.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("stl2obj {{.Version}}\n")
}

// loadConfig loads the configured or discovered config file, falling back
// to defaults when none exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.Discover()
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config %s:\n  %s", path, strings.Join(errs, "\n  "))
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
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

// newLogger builds the process logger. The --log-level flag wins over the
// config file; --json silences logging entirely so stdout stays parseable.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	var w io.Writer = os.Stderr
	if jsonOutput {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}
