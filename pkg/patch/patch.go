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

// Package patch plans and applies same-length rewrites over matched spans
// of a clip buffer. Replacements never change the buffer length, so file
// structure around the metadata stays intact.
package patch

import (
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// DefaultPlaceholder is written over matched spans in placeholder mode when
// the user leaves the placeholder text blank.
const DefaultPlaceholder = "REMOVED"

// 🔧 Mode selects what gets written over a matched span.
type Mode int

const (
	// ModeNull overwrites every matched byte with 0x00.
	ModeNull Mode = iota
	// ModePlaceholder overwrites matched bytes with repeating placeholder text.
	ModePlaceholder
)

// ParseMode maps the config spelling of a mode onto its value. The empty
// string means ModeNull.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "null":
		return ModeNull, nil
	case "placeholder":
		return ModePlaceholder, nil
	default:
		return ModeNull, errors.Errorf("unknown patch mode: %q", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNull:
		return "null"
	case ModePlaceholder:
		return "placeholder"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
