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

import "bytes"

// 🎯 Match is a single located occurrence of a pattern inside a clip buffer.
// Offset and Length always address a span fully inside the buffer that was
// scanned.
type Match struct {
	Offset  int    // byte offset of the first matched byte
	Text    string // matched text; in exact mode the candidate's decoding, not re-read from the buffer
	Length  int    // byte length of the span to rewrite
	Pattern string // the raw pattern line that produced the match
}

// 🔍 FindMatches locates every occurrence of the pattern in buf. Wildcard
// patterns match whole extracted strings; exact patterns are searched as
// byte sequences, overlapping occurrences included.
func (p Pattern) FindMatches(buf []byte) []Match {
	if p.wildcard != nil {
		return p.matchExtracted(ExtractStrings(buf))
	}
	return p.findExact(buf)
}

// FindAll runs every pattern against buf and concatenates the matches in
// pattern order. Strings are extracted once and shared across wildcard
// patterns.
func FindAll(buf []byte, patterns []Pattern) []Match {
	var (
		out       []Match
		extracted []ExtractedString
		haveRuns  bool
	)
	for _, p := range patterns {
		if p.wildcard != nil {
			if !haveRuns {
				extracted = ExtractStrings(buf)
				haveRuns = true
			}
			out = append(out, p.matchExtracted(extracted)...)
			continue
		}
		out = append(out, p.findExact(buf)...)
	}
	return out
}

// matchExtracted keeps every extracted string the anchored matcher accepts
// in its entirety. The match spans the whole run.
func (p Pattern) matchExtracted(extracted []ExtractedString) []Match {
	if p.wildcard == nil {
		return nil
	}
	var out []Match
	for _, es := range extracted {
		if p.wildcard.MatchString(es.Text) {
			out = append(out, Match{
				Offset:  es.Offset,
				Text:    es.Text,
				Length:  len(es.Text),
				Pattern: p.raw,
			})
		}
	}
	return out
}

// findExact reports every occurrence of every candidate literal. The scan
// resumes one byte past each hit, so overlapping occurrences are all kept.
func (p Pattern) findExact(buf []byte) []Match {
	var out []Match
	for _, cand := range p.candidates {
		text := string(cand)
		limit := len(buf) - len(cand)
		for start := 0; start <= limit; {
			i := bytes.Index(buf[start:], cand)
			if i < 0 {
				break
			}
			at := start + i
			out = append(out, Match{
				Offset:  at,
				Text:    text,
				Length:  len(cand),
				Pattern: p.raw,
			})
			start = at + 1
		}
	}
	return out
}
