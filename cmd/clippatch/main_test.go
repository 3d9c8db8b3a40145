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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withWorkingDir runs the rest of the test from dir.
func withWorkingDir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestResolveConfig(t *testing.T) {
	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	t.Run("explicit_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("patterns:\n  - qua_*\n"), 0o644))

		configFile = path
		defer func() { configFile = "" }()

		cfg, err := resolveConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"qua_*"}, cfg.Patterns, "patterns should come from the named file")
	})

	t.Run("missing_explicit_file_fails", func(t *testing.T) {
		configFile = filepath.Join(t.TempDir(), "nope.yaml")
		defer func() { configFile = "" }()

		_, err := resolveConfig(ctx)
		require.Error(t, err, "a named config file must exist")
		assert.Contains(t, err.Error(), "loading config")
	})

	t.Run("defaults_when_no_file", func(t *testing.T) {
		withWorkingDir(t, t.TempDir())

		cfg, err := resolveConfig(ctx)
		require.NoError(t, err)
		assert.Empty(t, cfg.Patterns, "defaults carry no patterns")
		assert.Equal(t, "null", cfg.Mode, "defaults should apply without a config file")
	})

	t.Run("probes_working_dir", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".clippatch.yaml"), []byte("patterns:\n  - PLYR_*\n"), 0o644))
		withWorkingDir(t, dir)

		cfg, err := resolveConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"PLYR_*"}, cfg.Patterns, "the probed config file should be loaded")
	})
}

func TestSetupLogging(t *testing.T) {
	debug = false
	assert.Equal(t, zerolog.Disabled, setupLogging().GetLevel(), "structured channel is off by default")

	debug = true
	defer func() { debug = false }()
	assert.Equal(t, zerolog.DebugLevel, setupLogging().GetLevel(), "debug flag should open the structured channel")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	assert.Contains(t, out, "clippatch version info", "version output should name the binary")
	assert.Contains(t, out, "Go:", "version output should include the Go version")
}
