// Package cli implements the voronoi command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beetlebugorg/voronoi/internal/config"
	"github.com/beetlebugorg/voronoi/internal/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// dotEnvFiles are loaded into the environment before configuration is read.
var dotEnvFiles = []string{".env"}

type cliContextKey struct{}

// RootOptions holds global flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// CLIContext carries the loaded configuration and logger to subcommands.
type CLIContext struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command with its global flags and every
// subcommand registered.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "voronoi",
		Short: "Bounded Voronoi regions for geographic sites",
		Long: "voronoi partitions the plane around a set of sites into bounded\n" +
			"Voronoi regions, clipped to a box around the input, and writes them\n" +
			"as KML, GeoJSON or WKT polygons.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return persistentPreRun(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cc, err := GetCLIContext(cmd); err == nil {
				_ = cc.Logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (YAML)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", "", "log format (console, json)")

	cmd.AddCommand(
		NewCellsCmd(),
		NewCentroidCmd(),
		NewVersionCmd(),
	)
	return cmd
}

// persistentPreRun loads .env files, configuration and the logger, then
// stores a CLIContext on the command.
func persistentPreRun(cmd *cobra.Command, opts *RootOptions) error {
	if err := config.LoadDotEnv(dotEnvFiles...); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, cliContextKey{}, &CLIContext{Config: cfg, Logger: logger}))
	return nil
}

// GetCLIContext returns the CLIContext stored by the root command.
func GetCLIContext(cmd *cobra.Command) (*CLIContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cc, ok := ctx.Value(cliContextKey{}).(*CLIContext); ok {
			return cc, nil
		}
	}
	return nil, errors.New("cli: command context not initialized")
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
