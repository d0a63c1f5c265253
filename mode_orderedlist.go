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

import "strconv"

// orderedListStrategy handles an ordered list item ("1. item"). The
// dispatcher's trigger switches the mode and seeds orderedNumber with
// the triggering digit's value, consuming it; no block exists until
// the mandatory ". " marker completes.
type orderedListStrategy struct{}

func (orderedListStrategy) process(c *parseContext, r rune) []Diff {
	if !c.hasCurrent() {
		if !c.orderedAwaitingSpace {
			switch {
			case isASCIIDigit(r):
				c.orderedNumber = c.orderedNumber*10 + int(r-'0')
				return nil
			case r == '.':
				c.orderedAwaitingSpace = true
				return nil
			case r == '\n':
				return orderedListStrategy{}.abort(c, 0)
			default:
				return orderedListStrategy{}.abort(c, r)
			}
		}

		if r == ' ' {
			blk := c.openBlock(OrderedListItemKind)
			blk.Number = c.orderedNumber
			c.orderedNumber = 0
			c.orderedAwaitingSpace = false
			return []Diff{appendDiff(*blk)}
		}
		if r == '\n' {
			return orderedListStrategy{}.abort(c, 0)
		}
		return orderedListStrategy{}.abort(c, r)
	}

	if r == '\n' {
		c.closeCurrent()
		c.mode = ParagraphMode
		return nil
	}
	blk := c.currentBlock()
	blk.Text += string(r)
	return []Diff{patchDiff(*blk)}
}

// abort emits the digits (and '.' if one was seen) accumulated so far,
// followed by extra (a trailing non-marker character, or the rune 0
// if there is none) as literal paragraph text, and returns to
// ParagraphMode. It is reached on a newline or any character other
// than a digit, '.', or the single mandatory space before
// materialization.
func (orderedListStrategy) abort(c *parseContext, extra rune) []Diff {
	digits := strconv.Itoa(c.orderedNumber)
	dotSeen := c.orderedAwaitingSpace
	c.orderedNumber = 0
	c.orderedAwaitingSpace = false
	c.mode = ParagraphMode

	var diffs []Diff
	for _, d := range digits {
		diffs = append(diffs, paragraphStrategy{}.process(c, d)...)
	}
	if dotSeen {
		diffs = append(diffs, paragraphStrategy{}.process(c, '.')...)
	}
	if extra != 0 {
		diffs = append(diffs, paragraphStrategy{}.process(c, extra)...)
	}
	return diffs
}

// flushBackticks in OrderedList mode receives a run of two backticks:
// a lone backtick never reaches it, because the dispatcher takes it as
// the start of an inline-code run in this mode. Once the item block
// exists, the backticks are appended to the item's text. Before
// materialization, they abort the marker attempt the same way any
// other unexpected character would.
func (orderedListStrategy) flushBackticks(c *parseContext, n int) []Diff {
	if c.hasCurrent() {
		var diffs []Diff
		for i := 0; i < n; i++ {
			diffs = append(diffs, orderedListStrategy{}.process(c, '`')...)
		}
		return diffs
	}

	diffs := orderedListStrategy{}.abort(c, 0)
	for i := 0; i < n; i++ {
		diffs = append(diffs, paragraphStrategy{}.process(c, '`')...)
	}
	return diffs
}

func (orderedListStrategy) close(c *parseContext) []Diff {
	return nil
}
