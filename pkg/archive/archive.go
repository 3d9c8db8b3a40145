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

// Package archive bundles patched clips into a single zip file.
package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Entry is one file to place in the archive.
type Entry struct {
	Name string
	Data []byte
}

// Name returns the canonical archive name for a run that finished at t:
// patched_clips_YYYY-MM-DD_HHMMSS.zip.
func Name(t time.Time) string {
	return "patched_clips_" + t.Format("2006-01-02_150405") + ".zip"
}

// 📦 Build writes entries into an in-memory zip, keeping entry order.
// Duplicate or empty entry names would unzip unpredictably and are
// rejected.
func Build(ctx context.Context, entries []Entry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, errors.Errorf("nothing to archive")
	}

	zerolog.Ctx(ctx).Debug().Int("entries", len(entries)).Msg("building archive")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.Errorf("archive entry with empty name")
		}
		if _, dup := seen[e.Name]; dup {
			return nil, errors.Errorf("duplicate archive entry: %s", e.Name)
		}
		seen[e.Name] = struct{}{}

		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, errors.Errorf("creating archive entry %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, errors.Errorf("writing archive entry %s: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}
