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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_WildcardMatching(t *testing.T) {
	tests := []struct {
		name            string
		pattern         string
		caseInsensitive bool
		text            string
		want            bool
		description     string
	}{
		{
			name:        "star_matches_any_tail",
			pattern:     "qua_*",
			text:        "qua_delperroproject_venny",
			want:        true,
			description: "prefix wildcard should accept any suffix",
		},
		{
			name:        "anchored_at_start",
			pattern:     "qua_*",
			text:        "xqua_delperroproject_venny",
			want:        false,
			description: "the whole string must match, not a substring",
		},
		{
			name:        "anchored_at_end",
			pattern:     "*_venny",
			text:        "qua_x_vennyz",
			want:        false,
			description: "trailing characters after the pattern must reject",
		},
		{
			name:        "question_mark_matches_one_char",
			pattern:     "clip?",
			text:        "clip7",
			want:        true,
			description: "? should stand for exactly one character",
		},
		{
			name:        "question_mark_rejects_two_chars",
			pattern:     "clip?",
			text:        "clip77",
			want:        false,
			description: "? must not stretch over two characters",
		},
		{
			name:        "star_matches_empty",
			pattern:     "qua_*",
			text:        "qua_",
			want:        true,
			description: "* should also match the empty tail",
		},
		{
			name:        "bare_star_matches_everything",
			pattern:     "*",
			text:        "anything at all",
			want:        true,
			description: "a lone * should accept every extracted string",
		},
		{
			name:            "case_insensitive_wildcard",
			pattern:         "QUA_*",
			caseInsensitive: true,
			text:            "qua_test",
			want:            true,
			description:     "case folding should apply to wildcard matching",
		},
		{
			name:        "case_sensitive_wildcard",
			pattern:     "QUA_*",
			text:        "qua_test",
			want:        false,
			description: "without the flag, case must match exactly",
		},
		{
			name:        "regexp_metacharacters_are_literal",
			pattern:     "take(2)*",
			text:        "take(2)_final",
			want:        true,
			description: "only * and ? are special, parens are plain text",
		},
		{
			name:        "dot_is_literal",
			pattern:     "v1.0*",
			text:        "v1x0_build",
			want:        false,
			description: "a dot in the pattern must not match arbitrary characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(tt.pattern, tt.caseInsensitive)
			require.True(t, p.IsWildcard(), "pattern should be recognized as wildcard")

			matches := p.matchExtracted([]ExtractedString{{Offset: 0, Text: tt.text}})
			if tt.want {
				require.Len(t, matches, 1, tt.description)
				assert.Equal(t, tt.text, matches[0].Text, "match should span the whole string")
				assert.Equal(t, len(tt.text), matches[0].Length, "length should cover the whole string")
				assert.Equal(t, tt.pattern, matches[0].Pattern, "match should carry the raw pattern")
			} else {
				assert.Empty(t, matches, tt.description)
			}
		})
	}
}

func TestCompile_ExactCandidates(t *testing.T) {
	tests := []struct {
		name            string
		pattern         string
		caseInsensitive bool
		want            []string
		description     string
	}{
		{
			name:        "case_sensitive_single_candidate",
			pattern:     "Test",
			want:        []string{"Test"},
			description: "without the flag only the literal bytes are searched",
		},
		{
			name:            "case_insensitive_three_candidates",
			pattern:         "Test",
			caseInsensitive: true,
			want:            []string{"Test", "test", "TEST"},
			description:     "raw, lower and upper variants in stable order",
		},
		{
			name:            "wildcard_lines_have_no_candidates",
			pattern:         "1234_x?",
			caseInsensitive: true,
			want:            nil,
			description:     "wildcard lines carry no exact candidates",
		},
		{
			name:            "digits_collapse_to_one_candidate",
			pattern:         "1234",
			caseInsensitive: true,
			want:            []string{"1234"},
			description:     "lower and upper of digits are duplicates and collapse",
		},
		{
			name:            "already_lowercase_collapses_to_two",
			pattern:         "test",
			caseInsensitive: true,
			want:            []string{"test", "TEST"},
			description:     "raw equals lower, so only two distinct candidates remain",
		},
		{
			name:        "non_ascii_runes_are_dropped",
			pattern:     "tëst",
			want:        []string{"tst"},
			description: "clip metadata is ASCII, non-ASCII runes cannot occur",
		},
		{
			name:        "entirely_non_ascii_yields_no_candidates",
			pattern:     "日本語",
			want:        nil,
			description: "a pattern with no ASCII bytes can never match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Compile(tt.pattern, tt.caseInsensitive)

			var got []string
			for _, c := range p.Candidates() {
				got = append(got, string(c))
			}
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

func TestCompile_InvalidWildcardMatchesNothing(t *testing.T) {
	// translate escapes everything except * and ?, so compilation cannot
	// actually fail today; the contract still is that such a pattern
	// contributes zero matches rather than an error.
	p := Pattern{raw: "broken[*"}
	assert.Empty(t, p.FindMatches([]byte("broken[anything")), "a matcherless pattern should match nothing")
	assert.Empty(t, p.Candidates(), "a matcherless pattern should have no candidates")
}

func TestPattern_IsWildcard(t *testing.T) {
	assert.True(t, Compile("qua_*", false).IsWildcard(), "star should mark a wildcard")
	assert.True(t, Compile("cli?p", false).IsWildcard(), "question mark should mark a wildcard")
	assert.False(t, Compile("qua_test", false).IsWildcard(), "plain text is an exact pattern")
}
