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

package scan

// Printable ASCII range. Clip metadata stores names and titles as plain
// ASCII runs between binary fields, so anything outside this range ends a
// run.
const (
	printableMin = 0x20 // space
	printableMax = 0x7e // tilde
)

// 📦 ExtractedString is one maximal run of printable ASCII bytes found in a
// clip buffer, together with the offset of its first byte.
type ExtractedString struct {
	Offset int
	Text   string
}

// 🔍 ExtractStrings scans buf once, left to right, and returns every maximal
// printable run in buffer order. Runs are never empty and never contain
// bytes outside [0x20, 0x7E]. A run still open at the end of the buffer is
// included.
func ExtractStrings(buf []byte) []ExtractedString {
	var (
		out   []ExtractedString
		run   []byte
		start int
	)
	for i, b := range buf {
		if b >= printableMin && b <= printableMax {
			if len(run) == 0 {
				start = i
			}
			run = append(run, b)
			continue
		}
		if len(run) > 0 {
			out = append(out, ExtractedString{Offset: start, Text: string(run)})
			run = run[:0]
		}
	}
	if len(run) > 0 {
		out = append(out, ExtractedString{Offset: start, Text: string(run)})
	}
	return out
}
