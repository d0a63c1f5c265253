// Copyright 2026 The mdstream Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mdstream

import "testing"

func TestRepairUnclosedInlineCode(t *testing.T) {
	tests := []struct {
		text       string
		wantText   string
		wantChange bool
	}{
		{"", "", false},
		{"plain text", "plain text", false},
		{"`foo", "`foo`", true},
		{"use `len", "use `len`", true},
		{"```ts\nlet x = 1", "```ts\nlet x = 1", false}, // contains newline, rule 1 excluded
		{"```foo``", "```foo```", true},
		{"```foo```", "```foo```", false},
		{"`a` and `b", "`a` and `b`", true},
		{"`a` `b`", "`a` `b`", false},
		{"a `", "a `", false},
		{"a ` b", "a ` b", false},
		{"a `_b", "a `_b", false},
	}
	for _, test := range tests {
		got, changed := repairUnclosedInlineCode(test.text)
		if got != test.wantText || changed != test.wantChange {
			t.Errorf("repairUnclosedInlineCode(%q) = (%q, %v), want (%q, %v)",
				test.text, got, changed, test.wantText, test.wantChange)
		}
	}
}

func TestLooksLikeOpener(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", false},
		{"no backticks here", false},
		{"`foo", true},
		{"``foo", false},
		{"```foo", false},
		{"foo`", false},
		{"foo` bar", false},
		{"foo`\tbar", false},
		{"foo`_bar", false},
		{"foo`bar", true},
	}
	for _, test := range tests {
		if got := looksLikeOpener(test.text); got != test.want {
			t.Errorf("looksLikeOpener(%q) = %v, want %v", test.text, got, test.want)
		}
	}
}
