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

// BlockKind identifies the variant of a [Block].
type BlockKind uint8

const (
	// ParagraphKind is a plain paragraph of text.
	ParagraphKind BlockKind = 1 + iota
	// HeadingKind is an ATX heading ("# Title").
	HeadingKind
	// CodeKind is a fenced code block.
	CodeKind
	// InlineCodeKind is a single-backtick inline code span
	// promoted to its own block, as the reducer emits it.
	InlineCodeKind
	// ListItemKind is an unordered list item ("- item").
	ListItemKind
	// OrderedListItemKind is an ordered list item ("1. item").
	OrderedListItemKind
)

// Block is a tagged variant of a single structural unit of parsed
// Markdown. Every Block has a stable ID, unique within the Reducer
// that produced it, and a Text field holding the content accumulated
// so far.
//
// Block is a plain value type: diffs carry copies of it, so mutating a
// Block obtained from a [Diff] has no effect on the Reducer that
// produced it.
type Block struct {
	ID   int
	Kind BlockKind
	Text string

	// Level is the heading level (1-6). Valid only for HeadingKind.
	Level int
	// Lang is the fence's info-string language, trimmed. Valid only
	// for CodeKind; empty if no language was given or the fence's
	// info string hasn't closed yet.
	Lang string
	// Number is the ordered list item's number. Valid only for
	// OrderedListItemKind.
	Number int
}
