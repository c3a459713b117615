// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface for almanac.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/almanac/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// envKey carries the loaded config and logger through the command context.
type envKey struct{}

// env is what every subcommand needs after PersistentPreRunE.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "almanac",
		Short: "Trace seed ranges through an almanac of range maps",
		Long: `almanac reads a seed list and a chain of range maps, pushes every seed
range through all maps in order and reports the lowest value that comes out.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Info("using config file", "path", cfg.File)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, envKey{}, &env{cfg: cfg, logger: logger}))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	pf.Int("workers", config.DefaultWorkers, "seed chunks mapped concurrently")
	pf.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "log format (text|json)")
	pf.StringP("output", "o", config.DefaultOutput, "output format (text|json|yaml)")
	pf.Int("part", config.DefaultPart, "answer to print: 1 seeds as values, 2 seeds as ranges, 0 both")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewTraceCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getEnv returns the environment stored by PersistentPreRunE, or defaults
// when a subcommand runs detached from the root.
func getEnv(ctx context.Context) *env {
	if ctx != nil {
		if e, ok := ctx.Value(envKey{}).(*env); ok {
			return e
		}
	}
	return &env{
		cfg: &config.Config{
			Workers:   config.DefaultWorkers,
			LogLevel:  config.DefaultLogLevel,
			LogFormat: config.DefaultLogFormat,
			Output:    config.DefaultOutput,
			Part:      config.DefaultPart,
		},
		logger: slog.New(slog.DiscardHandler),
	}
}

// newLogger builds the process logger on w from the configured level and format.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
