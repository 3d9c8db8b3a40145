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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/keremsonmez/clippatch/pkg/patch"
)

const (
	// DefaultMode zeroes matched spans.
	DefaultMode = "null"
	// DefaultBackupDir collects per-run backups of in-place rewrites.
	DefaultBackupDir = "clippatch_backups"
)

// DefaultFiles are probed in order when no --config flag is given.
var DefaultFiles = []string{".clippatch.yaml", ".clippatch.yml", ".clippatch.hcl", ".clippatch.json"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🧩 InputArgs selects the clips a run will process.
type InputArgs struct {
	Dir  string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`    // clips directory; empty means auto-detect
	Glob string `json:"glob,omitempty" yaml:"glob,omitempty" hcl:"glob,optional"` // file selection pattern; empty means *.clip
}

// 📤 OutputArgs controls where patched content lands.
type OutputArgs struct {
	Dir       string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`                      // output directory for patched copies and archives
	Archive   bool   `json:"archive,omitempty" yaml:"archive,omitempty" hcl:"archive,optional"`          // force a zip even for a single patched file
	InPlace   bool   `json:"in_place,omitempty" yaml:"in_place,omitempty" hcl:"in_place,optional"`       // rewrite originals instead of producing copies
	BackupDir string `json:"backup_dir,omitempty" yaml:"backup_dir,omitempty" hcl:"backup_dir,optional"` // where in-place runs back up originals
}

// 📚 Config represents the complete run configuration
type Config struct {
	Patterns        []string    `json:"patterns,omitempty" yaml:"patterns,omitempty" hcl:"patterns,optional"`
	Mode            string      `json:"mode,omitempty" yaml:"mode,omitempty" hcl:"mode,optional"`
	Placeholder     string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty" hcl:"placeholder,optional"`
	CaseInsensitive bool        `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty" hcl:"case_insensitive,optional"`
	Input           *InputArgs  `json:"input,omitempty" yaml:"input,omitempty" hcl:"input,block"`
	Output          *OutputArgs `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,block"`
}

// 🏭 Default returns the configuration used when no config file is present.
// Patterns stay empty; they must arrive from flags or a patterns file.
func Default() *Config {
	return &Config{
		Mode:        DefaultMode,
		Placeholder: patch.DefaultPlaceholder,
		Input:       &InputArgs{},
		Output:      &OutputArgs{BackupDir: DefaultBackupDir},
	}
}

// 🎯 Load reads and decodes a config file. Validation happens later, after
// command-line flags are merged in.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// 🔍 Find returns the first default config file that exists under dir.
func Find(dir string) (string, bool) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// 🔍 Validate normalizes the configuration and rejects contradictions. It
// must pass before a run starts: nothing is read or written under an
// invalid configuration.
func (cfg *Config) Validate() error {
	// Trim pattern lines and drop the empty ones
	patterns := make([]string, 0, len(cfg.Patterns))
	for _, p := range cfg.Patterns {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	cfg.Patterns = patterns
	if len(cfg.Patterns) == 0 {
		return errors.Errorf("at least one pattern is required")
	}

	// Set defaults
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if _, err := patch.ParseMode(cfg.Mode); err != nil {
		return errors.Errorf("validating mode: %w", err)
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = patch.DefaultPlaceholder
	}
	if cfg.Input == nil {
		cfg.Input = &InputArgs{}
	}
	if cfg.Output == nil {
		cfg.Output = &OutputArgs{}
	}
	if cfg.Output.BackupDir == "" {
		cfg.Output.BackupDir = DefaultBackupDir
	}

	// Reject contradictions
	if cfg.Output.InPlace && cfg.Output.Archive {
		return errors.Errorf("in_place and archive are mutually exclusive")
	}

	// Clean up paths
	if cfg.Input.Dir != "" {
		cfg.Input.Dir = filepath.Clean(cfg.Input.Dir)
	}
	if cfg.Output.Dir != "" {
		cfg.Output.Dir = filepath.Clean(cfg.Output.Dir)
	}

	return nil
}

// 📃 ParsePatternList splits free text into pattern lines: one pattern per
// line, surrounding whitespace trimmed, blank lines dropped.
func ParsePatternList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// 📝 String returns a short description of the run configuration
func (cfg *Config) String() string {
	mode := cfg.Mode
	if mode == "" {
		mode = DefaultMode
	}
	return fmt.Sprintf("%d pattern(s), mode=%s, case_insensitive=%t", len(cfg.Patterns), mode, cfg.CaseInsensitive)
}
