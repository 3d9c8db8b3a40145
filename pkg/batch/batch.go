// Copyright 2026 Kerem Sonmez
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/keremsonmez/clippatch/pkg/patch"
	"github.com/keremsonmez/clippatch/pkg/scan"
	"github.com/keremsonmez/clippatch/pkg/source"
)

// ⚙️ Options configures one batch run.
type Options struct {
	Patterns        []string // raw pattern lines, at least one
	Mode            patch.Mode
	Placeholder     string // placeholder mode text; empty degrades to zero fill
	CaseInsensitive bool
	DryRun          bool // scan and report only, produce no patched content
}

// 📦 PatchedFile is the rewritten content for one source clip.
type PatchedFile struct {
	Source  string // base name of the source clip
	Path    string // location of the source clip, for in-place rewrites
	Name    string // output name, "patched_" + Source
	Content []byte
}

// 📋 FileReport is the outcome for one file of the batch.
type FileReport struct {
	Name    string
	Size    int64
	Matches []scan.Match // application order: offsets descending
	Err     error        // set when the file could not be processed
}

// Patched reports whether the file produced rewritten content.
func (r FileReport) Patched() bool { return r.Err == nil && len(r.Matches) > 0 }

// 🧮 Summary holds the run totals.
type Summary struct {
	TotalFiles   int
	FilesPatched int
	TotalMatches int
	Failures     int
}

// Result is everything one run produced, in file order.
type Result struct {
	Reports []FileReport
	Patched []PatchedFile
	Summary Summary
}

// 📣 Reporter receives progress as the run advances. Calls arrive strictly
// in file order from a single goroutine.
type Reporter interface {
	StartRun(total int)
	FileDone(report FileReport)
	FinishRun(summary Summary)
}

type noopReporter struct{}

func (noopReporter) StartRun(int)        {}
func (noopReporter) FileDone(FileReport) {}
func (noopReporter) FinishRun(Summary)   {}

// 🏃 Run processes files strictly in order, one at a time. Problems with a
// single file land in its report and the batch moves on; only an empty
// pattern list, an empty file set or context cancellation reject the run
// as a whole.
func Run(ctx context.Context, files []source.File, opts Options, rep Reporter) (*Result, error) {
	if rep == nil {
		rep = noopReporter{}
	}
	if len(opts.Patterns) == 0 {
		return nil, errors.Errorf("no patterns to search for")
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no clip files to process")
	}

	patterns := scan.CompileAll(opts.Patterns, opts.CaseInsensitive)

	zerolog.Ctx(ctx).Debug().
		Int("files", len(files)).
		Int("patterns", len(patterns)).
		Stringer("mode", opts.Mode).
		Bool("dry_run", opts.DryRun).
		Msg("starting batch")

	res := &Result{Summary: Summary{TotalFiles: len(files)}}
	rep.StartRun(len(files))

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("batch interrupted: %w", err)
		}

		report, patched := processFile(ctx, f, patterns, opts)
		if report.Err != nil {
			res.Summary.Failures++
		} else if len(report.Matches) > 0 {
			res.Summary.FilesPatched++
			res.Summary.TotalMatches += len(report.Matches)
		}
		if patched != nil {
			res.Patched = append(res.Patched, *patched)
		}
		res.Reports = append(res.Reports, report)
		rep.FileDone(report)
	}

	rep.FinishRun(res.Summary)
	return res, nil
}

// processFile is the per-file error boundary: any failure inside it lands
// in the report instead of aborting the batch.
func processFile(ctx context.Context, f source.File, patterns []scan.Pattern, opts Options) (FileReport, *PatchedFile) {
	report := FileReport{Name: f.Name(), Size: f.Size()}

	content, err := f.Content(ctx)
	if err != nil {
		report.Err = errors.Errorf("reading clip: %w", err)
		return report, nil
	}

	matches := scan.FindAll(content, patterns)
	if len(matches) == 0 {
		return report, nil
	}
	report.Matches = patch.Plan(matches)

	if opts.DryRun {
		return report, nil
	}

	out, err := patch.Apply(content, report.Matches, opts.Mode, opts.Placeholder)
	if err != nil {
		report.Err = errors.Errorf("patching clip: %w", err)
		return report, nil
	}

	return report, &PatchedFile{
		Source:  f.Name(),
		Path:    f.Path(),
		Name:    "patched_" + f.Name(),
		Content: out,
	}
}
