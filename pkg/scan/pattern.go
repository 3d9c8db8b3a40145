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

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// 🧩 Pattern is one compiled user pattern line. A line containing '*' or '?'
// is a wildcard pattern and is matched against whole extracted strings;
// every other line is an exact pattern and is located as a raw byte
// sequence anywhere in the buffer.
type Pattern struct {
	raw             string
	caseInsensitive bool
	wildcard        *regexp.Regexp // anchored matcher, nil unless the line has wildcard syntax
	candidates      [][]byte       // exact search literals, deduplicated, stable order
}

// 🏭 Compile turns one raw pattern line into a matcher. It never fails: a
// wildcard line that does not compile simply matches nothing, so one bad
// line cannot abort a run over the valid ones.
func Compile(raw string, caseInsensitive bool) Pattern {
	p := Pattern{raw: raw, caseInsensitive: caseInsensitive}
	if p.IsWildcard() {
		if re, err := regexp.Compile(translate(raw, caseInsensitive)); err == nil {
			p.wildcard = re
		}
		return p
	}
	p.candidates = exactCandidates(raw, caseInsensitive)
	return p
}

// CompileAll compiles every pattern line under the same case policy,
// keeping input order.
func CompileAll(raws []string, caseInsensitive bool) []Pattern {
	patterns := make([]Pattern, 0, len(raws))
	for _, raw := range raws {
		patterns = append(patterns, Compile(raw, caseInsensitive))
	}
	return patterns
}

// Raw returns the pattern line as the user wrote it.
func (p Pattern) Raw() string { return p.raw }

// IsWildcard reports whether the line uses wildcard syntax.
func (p Pattern) IsWildcard() bool { return strings.ContainsAny(p.raw, "*?") }

// Candidates returns copies of the exact-mode search literals. Wildcard
// patterns have none.
func (p Pattern) Candidates() [][]byte {
	out := make([][]byte, len(p.candidates))
	for i, c := range p.candidates {
		out[i] = append([]byte(nil), c...)
	}
	return out
}

// translate maps a wildcard line onto an anchored regular expression:
// '*' becomes '.*', '?' becomes '.', every other rune is literal. Extracted
// strings never contain newlines, so the default '.' semantics are enough.
func translate(raw string, caseInsensitive bool) string {
	var b strings.Builder
	if caseInsensitive {
		b.WriteString("(?i)")
	}
	b.WriteString("^")
	for _, r := range raw {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}

// exactCandidates builds the byte literals searched for in exact mode: the
// line as written, plus its lower and upper variants when the run is
// case-insensitive. Duplicates collapse (an all-digit line yields one
// candidate, not three) and order stays stable so match output is
// deterministic. Mixed-case occurrences in the clip match none of the
// three variants and are missed; that trade keeps the search a plain byte
// scan.
func exactCandidates(raw string, caseInsensitive bool) [][]byte {
	variants := []string{raw}
	if caseInsensitive {
		variants = append(variants, strings.ToLower(raw), strings.ToUpper(raw))
	}
	seen := make(map[string]struct{}, len(variants))
	out := make([][]byte, 0, len(variants))
	for _, v := range variants {
		enc := asciiBytes(v)
		if len(enc) == 0 {
			continue
		}
		if _, dup := seen[string(enc)]; dup {
			continue
		}
		seen[string(enc)] = struct{}{}
		out = append(out, enc)
	}
	return out
}

// asciiBytes encodes s as ASCII, dropping every rune outside the ASCII
// range. Clip metadata is ASCII-only, so non-ASCII pattern runes can never
// occur in the data anyway.
func asciiBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
		}
	}
	return out
}
