package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/keremsonmez/clippatch/cmd/clippatch/opts"
	"github.com/keremsonmez/clippatch/pkg/config"
	"github.com/keremsonmez/clippatch/pkg/log"
)

var (
	// Flags
	configFile string
	debug      bool
	quiet      bool
	noProgress bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: probe for .clippatch.yaml/.yml/.hcl/.json)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress run narration")
	cmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
}

// setupLogging configures the structured debug channel. Narration for the
// person running the tool goes through pkg/log instead.
func setupLogging() zerolog.Logger {
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}

// setupOpts fills the shared options once flags are parsed
func setupOpts(cmd *cobra.Command, ropts *opts.RootOpts) error {
	console := io.Writer(cmd.OutOrStdout())
	if quiet {
		console = io.Discard
	}
	level := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
	}

	// The in-place progress bar only makes sense on a terminal
	progress := !quiet && !noProgress && isatty.IsTerminal(os.Stdout.Fd())

	cfg, err := resolveConfig(cmd.Context())
	if err != nil {
		return err
	}

	ropts.Config = cfg
	ropts.Logger = log.New(console, level).WithProgress(progress)
	return nil
}

// resolveConfig loads the file named by --config, probes the working
// directory when the flag is absent, and falls back to defaults when no
// config file exists at all.
func resolveConfig(ctx context.Context) (*config.Config, error) {
	path := configFile
	if path == "" {
		found, ok := config.Find(".")
		if !ok {
			return config.Default(), nil
		}
		path = found
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
