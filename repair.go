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

import "strings"

// repairUnclosedInlineCode applies the end-of-stream repair rules to a
// paragraph's text, in order, stopping at the first one that applies.
// It reports the possibly-modified text and whether it changed.
//
// The repair exists so a user who types "`foo" (or "```foo``") and
// stops sees it styled-through rather than left with a dangling
// marker; both rules are deliberately conservative and leave the text
// alone if either guard fails.
func repairUnclosedInlineCode(text string) (string, bool) {
	if repaired, ok := repairTripleBacktick(text); ok {
		return repaired, true
	}
	if repaired, ok := repairLoneBacktick(text); ok {
		return repaired, true
	}
	return text, false
}

// repairTripleBacktick implements rule 1: a single-line paragraph that
// starts with a fence marker and ends with exactly two backticks (not
// three) gets a third appended.
func repairTripleBacktick(text string) (string, bool) {
	if strings.Contains(text, "\n") {
		return text, false
	}
	if !strings.HasPrefix(text, "```") {
		return text, false
	}
	if !strings.HasSuffix(text, "``") || strings.HasSuffix(text, "```") {
		return text, false
	}
	return text + "`", true
}

// repairLoneBacktick implements rule 2: if the text contains a
// backtick that looks like an inline-code opener, the count of
// non-triple backticks is odd, and the text isn't inside an
// incomplete triple-backtick block, one backtick is appended to
// balance it.
func repairLoneBacktick(text string) (string, bool) {
	if strings.Count(text, "```")%2 != 0 {
		return text, false
	}
	if !looksLikeOpener(text) {
		return text, false
	}

	total := strings.Count(text, "`")
	tripleBackticks := strings.Count(text, "```") * 3
	nonTriple := total - tripleBackticks
	if nonTriple%2 == 0 {
		return text, false
	}

	return text + "`", true
}

// looksLikeOpener reports whether text contains a backtick that isn't
// part of a double- or triple-backtick run, immediately followed by
// non-empty content that doesn't start with whitespace or another
// emphasis marker.
func looksLikeOpener(text string) bool {
	runes := []rune(text)
	for i, r := range runes {
		if r != '`' {
			continue
		}
		if isPartOfMultiBacktickRun(runes, i) {
			continue
		}
		rest := runes[i+1:]
		if len(rest) == 0 {
			continue
		}
		first := rest[0]
		if first == ' ' || first == '\t' || first == '\n' || first == '`' || first == '*' || first == '_' {
			continue
		}
		return true
	}
	return false
}

// isPartOfMultiBacktickRun reports whether the backtick at index i is
// adjacent to another backtick, making it part of a double- or
// triple-backtick run rather than a standalone marker.
func isPartOfMultiBacktickRun(runes []rune, i int) bool {
	if i > 0 && runes[i-1] == '`' {
		return true
	}
	if i+1 < len(runes) && runes[i+1] == '`' {
		return true
	}
	return false
}
