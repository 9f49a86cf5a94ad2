// Package cli implements the transitions command-line interface.
//
// Commands:
//   - list: show the transition catalog
//   - gen: print the filter graph fragment of one transition
//   - inspect: print a fragment and sample its curves at the start and end
//   - plan: generate every transition described by a plan file
//   - check: report transitions the local ffmpeg cannot render
//
// All commands accept --config to load a YAML or TOML settings file and
// --verbose (-v) for debug logging. Fragments go to stdout, logs to stderr.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ivlev/transitions/internal/config"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:          "transitions",
		Short:        "Transitions generates ffmpeg filter graphs for slide transitions",
		Long:         `Transitions turns a named effect, two stream labels and a duration into a -filter_complex fragment that blends the outgoing slide into the incoming one.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}

			logger := newLogger(cmd.ErrOrStderr(), level)
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath, "canvas", cfg.Canvas.Size(), "fps", cfg.Canvas.FPS)
			}
			cmd.SetContext(withApp(cmd.Context(), &app{cfg: cfg, logger: logger}))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (.yaml or .toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newListCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newCheckCmd())

	return root
}

// Execute runs the CLI until ctx is cancelled or the command returns.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
