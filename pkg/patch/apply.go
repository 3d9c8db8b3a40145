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

package patch

import (
	"sort"

	"github.com/keremsonmez/clippatch/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 📋 Plan orders matches for application: offsets strictly descending,
// equal offsets keeping their discovery order. Overlapping matches are all
// kept; where spans collide, the write applied last wins. The descending
// order also keeps log output stable across runs.
func Plan(matches []scan.Match) []scan.Match {
	plan := make([]scan.Match, len(matches))
	copy(plan, matches)
	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Offset > plan[j].Offset
	})
	return plan
}

// ✏️ Apply copies buf and rewrites every planned span under the given mode.
// Replacements are always exactly as long as the match, so the output
// buffer has the same length as the input and earlier offsets never shift.
// The input buffer is never modified.
func Apply(buf []byte, plan []scan.Match, mode Mode, placeholder string) ([]byte, error) {
	out := make([]byte, len(buf))
	copy(out, buf)

	enc := []byte(placeholder)
	for _, m := range plan {
		if m.Offset < 0 || m.Length < 0 || m.Offset+m.Length > len(out) {
			return nil, errors.Errorf("match %q out of range: offset %d, length %d, buffer %d bytes", m.Text, m.Offset, m.Length, len(out))
		}
		span := out[m.Offset : m.Offset+m.Length]
		switch mode {
		case ModeNull:
			zeroFill(span)
		case ModePlaceholder:
			fillPlaceholder(span, enc)
		default:
			return nil, errors.Errorf("unknown patch mode: %d", int(mode))
		}
	}
	return out, nil
}

func zeroFill(span []byte) {
	for i := range span {
		span[i] = 0
	}
}

// fillPlaceholder cycles the placeholder bytes across the span: a span
// longer than the placeholder repeats it, a shorter span truncates it. An
// empty placeholder degrades to zero fill.
func fillPlaceholder(span, enc []byte) {
	if len(enc) == 0 {
		zeroFill(span)
		return
	}
	for i := range span {
		span[i] = enc[i%len(enc)]
	}
}
