package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/keremsonmez/clippatch/cmd/clippatch/opts"
	"github.com/keremsonmez/clippatch/pkg/batch"
)

// NewScanCmd creates a new scan command
func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	var sel selection

	cmd := &cobra.Command{
		Use:   "scan [clip files...]",
		Short: "Report pattern matches without changing anything",
		Long: `Scan runs the same pattern search as patch but writes nothing.
It will:
1. Collect clips from arguments, --dir, or the default clips folder
2. Scan each clip for exact and wildcard pattern matches
3. Report every match with its text, pattern, and offset`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.Config
			logger := opts.Logger

			if err := sel.apply(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating run: %w", err)
			}

			files, err := collectFiles(ctx, args, cfg)
			if err != nil {
				return errors.Errorf("collecting clips: %w", err)
			}

			logger.Header(cfg.String())

			res, err := batch.Run(ctx, files, batch.Options{
				Patterns:        cfg.Patterns,
				CaseInsensitive: cfg.CaseInsensitive,
				DryRun:          true,
			}, logger)
			if err != nil {
				return errors.Errorf("running scan: %w", err)
			}

			if res.Summary.TotalMatches == 0 {
				logger.Info("No matches found")
			}
			logger.Info("Scan only, no files were written")
			return nil
		},
	}

	addSelectionFlags(cmd, &sel)

	return cmd
}
