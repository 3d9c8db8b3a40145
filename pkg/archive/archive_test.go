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

package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	at := time.Date(2026, 8, 21, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "patched_clips_2026-08-21_150405.zip", Name(at), "archive name should carry the run timestamp")
}

func TestBuild_RoundTrip(t *testing.T) {
	ctx := context.Background()
	entries := []Entry{
		{Name: "patched_a.clip", Data: []byte{0x00, 'q', 0xff}},
		{Name: "patched_b.clip", Data: []byte("plain")},
	}

	blob, err := Build(ctx, entries)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err, "the blob should be a readable zip")
	require.Len(t, zr.File, 2, "every entry should be present")

	for i, e := range entries {
		zf := zr.File[i]
		assert.Equal(t, e.Name, zf.Name, "entry order and names should survive")

		rc, err := zf.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, e.Data, data, "entry content should round-trip byte for byte")
	}
}

func TestBuild_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		entries     []Entry
		errContains string
	}{
		{
			name:        "no_entries",
			entries:     nil,
			errContains: "nothing to archive",
		},
		{
			name: "duplicate_names",
			entries: []Entry{
				{Name: "patched_a.clip", Data: []byte("one")},
				{Name: "patched_a.clip", Data: []byte("two")},
			},
			errContains: "duplicate archive entry",
		},
		{
			name:        "empty_name",
			entries:     []Entry{{Name: "", Data: []byte("x")}},
			errContains: "empty name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(ctx, tt.entries)
			require.Error(t, err, "invalid entries should be rejected")
			assert.Contains(t, err.Error(), tt.errContains, "error should name the problem")
		})
	}
}
