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

// Package source discovers the clip files a run will process.
package source

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultGlob selects GTA V clip files inside a clips directory.
const DefaultGlob = "*.clip"

// 📄 File is a single clip selected for processing. Content is read lazily,
// so a file that disappears or turns unreadable after discovery only fails
// its own slot in the batch.
type File interface {
	// Name returns the file's base name, the identity used in logs and
	// output naming.
	Name() string
	// Path returns the location content is read from.
	Path() string
	// Size returns the byte length recorded at discovery time.
	Size() int64
	// Content reads the whole clip into memory.
	Content(ctx context.Context) ([]byte, error)
}

type localFile struct {
	name string
	path string
	size int64
}

func (f *localFile) Name() string { return f.name }
func (f *localFile) Path() string { return f.path }
func (f *localFile) Size() int64  { return f.size }

func (f *localFile) Content(ctx context.Context) ([]byte, error) {
	zerolog.Ctx(ctx).Debug().Str("path", f.path).Msg("reading clip")

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", f.path, err)
	}
	return data, nil
}

// 🔍 Dir lists the files under dir whose paths match glob, sorted by path.
// Plain globs stay in dir itself; doublestar patterns such as "**/*.clip"
// reach into subdirectories.
func Dir(ctx context.Context, dir, glob string) ([]File, error) {
	if glob == "" {
		glob = DefaultGlob
	}

	pattern := filepath.Join(dir, glob)
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, errors.Errorf("globbing %s: %w", pattern, err)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, errors.Errorf("stating %s: %w", p, err)
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, &localFile{name: filepath.Base(p), path: p, size: fi.Size()})
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Str("glob", glob).
		Int("files", len(files)).
		Msg("discovered clips")

	return files, nil
}

// 📄 Paths wraps explicitly named clip files. Every path must exist up
// front: naming a file that is not there is a configuration mistake, not a
// per-file processing failure.
func Paths(ctx context.Context, paths []string) ([]File, error) {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, errors.Errorf("stating %s: %w", p, err)
		}
		if fi.IsDir() {
			return nil, errors.Errorf("%s is a directory, want a clip file", p)
		}
		files = append(files, &localFile{name: filepath.Base(p), path: p, size: fi.Size()})
	}
	return files, nil
}

// 🏠 DefaultClipsDir locates the GTA V clips directory under the local
// application data root. The second return is false when the root is unset
// or the directory does not exist.
func DefaultClipsDir() (string, bool) {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		return "", false
	}

	dir := filepath.Join(base, "Rockstar Games", "GTA V", "videos", "clips")
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return "", false
	}
	return dir, true
}
