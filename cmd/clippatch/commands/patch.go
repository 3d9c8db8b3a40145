package commands

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/keremsonmez/clippatch/cmd/clippatch/opts"
	"github.com/keremsonmez/clippatch/pkg/archive"
	"github.com/keremsonmez/clippatch/pkg/batch"
	"github.com/keremsonmez/clippatch/pkg/config"
	"github.com/keremsonmez/clippatch/pkg/log"
	"github.com/keremsonmez/clippatch/pkg/output"
	"github.com/keremsonmez/clippatch/pkg/patch"
	"github.com/keremsonmez/clippatch/pkg/source"
)

// selection is the pattern and input flag set shared by patch and scan
type selection struct {
	patterns     []string
	patternsFile string
	caseless     bool
	dir          string
	glob         string
}

// addSelectionFlags registers the shared flags on a command
func addSelectionFlags(cmd *cobra.Command, s *selection) {
	cmd.Flags().StringArrayVarP(&s.patterns, "pattern", "p", nil, "pattern to search for (repeatable)")
	cmd.Flags().StringVar(&s.patternsFile, "patterns-file", "", "file with one pattern per line")
	cmd.Flags().BoolVarP(&s.caseless, "case-insensitive", "i", false, "match patterns case-insensitively")
	cmd.Flags().StringVar(&s.dir, "dir", "", "clips directory (default: the GTA V clips folder)")
	cmd.Flags().StringVar(&s.glob, "glob", "", "clip selection glob")
}

// apply merges the selection flags over the loaded config. Flag patterns
// are appended to config patterns rather than replacing them.
func (s *selection) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.Input == nil {
		cfg.Input = &config.InputArgs{}
	}

	if len(s.patterns) > 0 {
		cfg.Patterns = append(cfg.Patterns, s.patterns...)
	}
	if s.patternsFile != "" {
		data, err := os.ReadFile(s.patternsFile)
		if err != nil {
			return errors.Errorf("reading patterns file: %w", err)
		}
		cfg.Patterns = append(cfg.Patterns, config.ParsePatternList(string(data))...)
	}
	if cmd.Flags().Changed("case-insensitive") {
		cfg.CaseInsensitive = s.caseless
	}
	if s.dir != "" {
		cfg.Input.Dir = s.dir
	}
	if s.glob != "" {
		cfg.Input.Glob = s.glob
	}
	return nil
}

// collectFiles resolves the clips a run will process. Positional
// arguments win over the configured directory.
func collectFiles(ctx context.Context, args []string, cfg *config.Config) ([]source.File, error) {
	if len(args) > 0 {
		return source.Paths(ctx, args)
	}

	dir := cfg.Input.Dir
	if dir == "" {
		found, ok := source.DefaultClipsDir()
		if !ok {
			return nil, errors.Errorf("no clips directory found, pass --dir or name clip files directly")
		}
		dir = found
	}

	return source.Dir(ctx, dir, cfg.Input.Glob)
}

// NewPatchCmd creates a new patch command
func NewPatchCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		sel         selection
		mode        string
		placeholder string
		outDir      string
		archiveOut  bool
		inPlace     bool
		backupDir   string
	)

	cmd := &cobra.Command{
		Use:   "patch [clip files...]",
		Short: "Find patterns in clip metadata and patch them out",
		Long: `Patch scans the printable metadata of GTA V clip files for the
configured patterns and overwrites every match.
It will:
1. Collect clips from arguments, --dir, or the default clips folder
2. Scan each clip for exact and wildcard pattern matches
3. Overwrite matched spans with zero bytes or a placeholder
4. Write patched copies, a zip archive, or rewrite originals in place`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := opts.Config
			logger := opts.Logger

			// Merge flags over the loaded config
			if err := sel.apply(cmd, cfg); err != nil {
				return err
			}
			if cfg.Output == nil {
				cfg.Output = &config.OutputArgs{}
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("placeholder") {
				cfg.Placeholder = placeholder
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("archive") {
				cfg.Output.Archive = archiveOut
			}
			if cmd.Flags().Changed("in-place") {
				cfg.Output.InPlace = inPlace
			}
			if backupDir != "" {
				cfg.Output.BackupDir = backupDir
			}

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating run: %w", err)
			}
			parsedMode, err := patch.ParseMode(cfg.Mode)
			if err != nil {
				return errors.Errorf("parsing mode: %w", err)
			}

			files, err := collectFiles(ctx, args, cfg)
			if err != nil {
				return errors.Errorf("collecting clips: %w", err)
			}

			logger.Header(cfg.String())

			res, err := batch.Run(ctx, files, batch.Options{
				Patterns:        cfg.Patterns,
				Mode:            parsedMode,
				Placeholder:     cfg.Placeholder,
				CaseInsensitive: cfg.CaseInsensitive,
			}, logger)
			if err != nil {
				return errors.Errorf("running batch: %w", err)
			}

			if len(res.Patched) == 0 {
				logger.Info("No clips were changed, nothing to write")
				return nil
			}

			if cfg.Output.InPlace {
				return writeInPlace(ctx, logger, cfg, res)
			}
			return writeCopies(ctx, logger, cfg, res)
		},
	}

	addSelectionFlags(cmd, &sel)
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "patch mode: null or placeholder")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "replacement text for placeholder mode")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for patched copies")
	cmd.Flags().BoolVar(&archiveOut, "archive", false, "zip patched copies even when only one clip changed")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "rewrite originals instead of producing copies")
	cmd.Flags().StringVar(&backupDir, "backup-dir", "", "where in-place runs back up originals")

	return cmd
}

// writeInPlace backs every patched original up and then rewrites it.
// A clip whose backup fails is never rewritten.
func writeInPlace(ctx context.Context, logger *log.Logger, cfg *config.Config, res *batch.Result) error {
	run, err := output.NewBackupRun(cfg.Output.BackupDir, time.Now())
	if err != nil {
		return errors.Errorf("creating backup dir: %w", err)
	}
	logger.Infof("Backing up originals to %s", run.Dir())

	failed := 0
	for _, pf := range res.Patched {
		if _, err := run.Backup(ctx, pf.Path); err != nil {
			logger.Errorf("Backup failed for %s, skipping rewrite: %v", pf.Source, err)
			failed++
			continue
		}
		if err := output.WriteInPlace(ctx, pf.Path, pf.Content); err != nil {
			logger.Errorf("Rewrite failed for %s: %v", pf.Source, err)
			failed++
			continue
		}
		logger.Successf("Rewrote %s", pf.Path)
	}

	if failed > 0 {
		return errors.Errorf("%d clip(s) could not be rewritten in place", failed)
	}
	return nil
}

// writeCopies writes a single patched clip as-is and zips multiple ones
// into a timestamped archive.
func writeCopies(ctx context.Context, logger *log.Logger, cfg *config.Config, res *batch.Result) error {
	mgr := output.New(cfg.Output.Dir)

	if len(res.Patched) == 1 && !cfg.Output.Archive {
		pf := res.Patched[0]
		if err := mgr.WriteFileAtomic(ctx, pf.Name, pf.Content); err != nil {
			return errors.Errorf("writing patched clip: %w", err)
		}
		logger.Successf("Wrote %s", mgr.Path(pf.Name))
		return nil
	}

	entries := make([]archive.Entry, 0, len(res.Patched))
	for _, pf := range res.Patched {
		entries = append(entries, archive.Entry{Name: pf.Name, Data: pf.Content})
	}
	blob, err := archive.Build(ctx, entries)
	if err != nil {
		return errors.Errorf("building archive: %w", err)
	}

	name := archive.Name(time.Now())
	if err := mgr.WriteFileAtomic(ctx, name, blob); err != nil {
		return errors.Errorf("writing archive: %w", err)
	}
	logger.Successf("Wrote %s with %d patched clip(s)", mgr.Path(name), len(res.Patched))
	return nil
}
