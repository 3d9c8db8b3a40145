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

// Package output writes run artifacts to disk: patched copies, the zip
// bundle, in-place rewrites and per-run backups of originals.
package output

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Manager writes run artifacts under a base directory.
type Manager struct {
	baseDir string
}

// New creates a Manager rooted at baseDir. An empty baseDir means the
// current directory.
func New(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// Path resolves an artifact name inside the output directory.
func (m *Manager) Path(name string) string {
	return filepath.Join(m.baseDir, name)
}

// ✏️ WriteFileAtomic writes content to name through a temp file and rename,
// so a crash mid-write never leaves a half-written artifact behind.
func (m *Manager) WriteFileAtomic(ctx context.Context, name string, content []byte) error {
	if m.baseDir != "" {
		if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
			return errors.Errorf("creating output dir: %w", err)
		}
	}

	absPath := m.Path(name)
	tempPath := absPath + ".tmp"

	if err := os.WriteFile(tempPath, content, 0o644); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", absPath).
		Int("bytes", len(content)).
		Msg("wrote artifact")

	return nil
}

// ✏️ WriteInPlace rewrites path with content through a temp file in the
// same directory, carrying over the original file mode. The target must
// already exist: in-place writing is for rewriting clips, not creating
// them.
func WriteInPlace(ctx context.Context, path string, content []byte) error {
	fi, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("stating %s: %w", path, err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, content, fi.Mode().Perm()); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(content)).
		Msg("rewrote clip in place")

	return nil
}

// 🗄️ BackupRun collects byte-identical copies of originals before they are
// rewritten in place. Each run gets its own timestamped directory, so
// consecutive runs never clobber older backups.
type BackupRun struct {
	dir string
}

// NewBackupRun creates baseDir/run_YYYY-MM-DD_HHMMSS and roots the run
// there.
func NewBackupRun(baseDir string, at time.Time) (*BackupRun, error) {
	dir := filepath.Join(baseDir, "run_"+at.Format("2006-01-02_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Errorf("creating backup dir: %w", err)
	}
	return &BackupRun{dir: dir}, nil
}

// Dir returns the run's backup directory.
func (b *BackupRun) Dir() string { return b.dir }

// Backup copies path into the run's backup directory and returns the
// backup location.
func (b *BackupRun) Backup(ctx context.Context, path string) (string, error) {
	dst := filepath.Join(b.dir, filepath.Base(path))
	if err := copyFile(path, dst); err != nil {
		return "", errors.Errorf("backing up %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("from", path).Str("to", dst).Msg("backed up clip")
	return dst, nil
}

// copyFile copies src to dst byte for byte.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
