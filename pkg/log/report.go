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

package log

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/keremsonmez/clippatch/pkg/batch"
)

// 🎨 Display configuration
const (
	matchIndent = 4  // spaces to indent match entries
	nameWidth   = 35 // base width for clip names
)

// Logger narrates batch runs.
var _ batch.Reporter = (*Logger)(nil)

// 🎬 StartRun announces the batch and, when enabled, starts the progress
// bar.
func (l *Logger) StartRun(total int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "🎬 %s\n", color.New(color.FgCyan).Sprintf("Found %d clip file(s)", total))
	l.zlog.Info().Int("files", total).Msg("starting run")

	if l.showProgress {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(total).
			WithWriter(l.console).
			WithTitle("patching").
			Start()
		if err == nil {
			l.progress = bar
		}
	}
}

// 📝 FileDone prints one line per file plus one line per match, in
// application order.
func (l *Logger) FileDone(report batch.FileReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case report.Err != nil:
		fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprintf("%s: %v", report.Name, report.Err))
		l.zlog.Error().Err(report.Err).Str("clip", report.Name).Msg("clip failed")

	case len(report.Matches) == 0:
		fmt.Fprintf(l.console, "%s %s\n",
			color.New(color.Faint).Sprint("-"),
			color.New(color.Faint).Sprintf("%-*s no matches", nameWidth, report.Name))
		l.zlog.Info().Str("clip", report.Name).Msg("no matches")

	default:
		fmt.Fprintf(l.console, "%s %s\n",
			color.New(color.FgGreen).Sprint("✓"),
			fmt.Sprintf("%-*s %d pattern(s) patched", nameWidth, report.Name, len(report.Matches)))
		for _, m := range report.Matches {
			fmt.Fprintf(l.console, "%s→ %s (pattern: %s) at offset %d\n",
				fmt.Sprintf("%*s", matchIndent, ""),
				color.New(color.FgYellow).Sprintf("'%s'", m.Text),
				color.New(color.Faint).Sprintf("'%s'", m.Pattern),
				m.Offset)
			l.zlog.Debug().
				Str("clip", report.Name).
				Str("text", m.Text).
				Str("pattern", m.Pattern).
				Int("offset", m.Offset).
				Msg("match")
		}
		l.zlog.Info().
			Str("clip", report.Name).
			Int("matches", len(report.Matches)).
			Msg("clip patched")
	}

	if l.progress != nil {
		l.progress.Increment()
	}
}

// 🏁 FinishRun stops the progress bar and prints the run totals.
func (l *Logger) FinishRun(s batch.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.progress != nil {
		l.progress.Stop()
		l.progress = nil
	}

	fmt.Fprintln(l.console)
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprintf("Done! Files patched: %d/%d", s.FilesPatched, s.TotalFiles))
	fmt.Fprintf(l.console, "   %s\n", color.New(color.FgGreen).Sprintf("Total patterns patched: %d", s.TotalMatches))
	if s.Failures > 0 {
		fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprintf("Files failed: %d", s.Failures))
	}

	l.zlog.Info().
		Int("files", s.TotalFiles).
		Int("patched", s.FilesPatched).
		Int("matches", s.TotalMatches).
		Int("failures", s.Failures).
		Msg("run complete")
}
