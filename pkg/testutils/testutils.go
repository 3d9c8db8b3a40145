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

// Package testutils builds synthetic clip fixtures for tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Part is one segment of a synthetic clip buffer.
type Part interface {
	appendTo(buf []byte) []byte
}

// Text is a printable metadata run.
type Text string

// Raw is arbitrary binary filler.
type Raw []byte

func (p Text) appendTo(buf []byte) []byte { return append(buf, p...) }
func (p Raw) appendTo(buf []byte) []byte  { return append(buf, p...) }

// Sep returns non-printable filler that ends any printable run around it.
func Sep() Part { return Raw{0x00, 0x01, 0xfe, 0xff} }

// BuildClip concatenates parts into a clip buffer.
func BuildClip(parts ...Part) []byte {
	var buf []byte
	for _, p := range parts {
		buf = p.appendTo(buf)
	}
	return buf
}

// WriteClip writes a synthetic clip file into dir and returns its path.
func WriteClip(t *testing.T, dir, name string, parts ...Part) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, BuildClip(parts...), 0o644), "clip fixture should be written")
	return path
}
