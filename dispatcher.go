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

// dispatchPush is the Dispatcher's implementation of one character
// entry point. It proceeds through the three phases described by the
// reducer's design: backtick accumulation, backtick flush (which may
// itself resolve a lone backtick into an inline-code start), and
// trigger scan followed by mode dispatch.
func (c *parseContext) dispatchPush(r rune) []Diff {
	if r == '`' {
		c.pendingBackticks++
		if c.pendingBackticks == 3 {
			c.pendingBackticks = 0
			return fenceTrigger(c)
		}
		return nil
	}

	var diffs []Diff
	if c.pendingBackticks > 0 {
		n := c.pendingBackticks
		c.pendingBackticks = 0
		if n == 1 && modeAllowsInlineCodeEntry(c.mode) {
			return append(diffs, enterInlineCode(c, r)...)
		}
		diffs = append(diffs, strategyFor(c.mode).flushBackticks(c, n)...)
	}

	return append(diffs, c.dispatchChar(r)...)
}

// dispatchChar runs the ordered trigger scan and, failing that, hands
// the character to the current mode's strategy. A firing trigger may
// consume the character itself or defer it to the new mode's process.
func (c *parseContext) dispatchChar(r rune) []Diff {
	switch {
	case headingCanStart(c, r):
		c.mode = HeadingMode
		return strategyFor(c.mode).process(c, r)
	case listCanStart(c, r):
		c.mode = ListMode
		return nil // the '-' itself is consumed by the trigger
	case orderedListCanStart(c, r):
		c.mode = OrderedListMode
		c.orderedNumber = int(r - '0')
		return nil // the digit is consumed by the trigger
	}
	return strategyFor(c.mode).process(c, r)
}

// modeAllowsInlineCodeEntry reports whether a lone pending backtick in
// this mode should be interpreted as the start of an inline-code run.
// Code, FenceStart, and InlineCode modes exclude themselves: a
// backtick there is unambiguous (fence content, fence markup, or the
// inline-code terminator), so it never gets a second interpretation.
func modeAllowsInlineCodeEntry(m Mode) bool {
	switch m {
	case CodeMode, FenceStartMode, InlineCodeMode:
		return false
	default:
		return true
	}
}

// enterInlineCode opens an InlineCode block, switches to InlineCodeMode,
// and defers r — the character immediately following the lone
// backtick — to the new mode's process.
func enterInlineCode(c *parseContext, r rune) []Diff {
	blk := c.openBlock(InlineCodeKind)
	diffs := []Diff{appendDiff(*blk)}
	c.mode = InlineCodeMode
	return append(diffs, strategyFor(c.mode).process(c, r)...)
}

// headingCanStart reports whether r should switch the dispatcher into
// HeadingMode: a '#' at the start of an empty or absent current block
// while in ParagraphMode.
func headingCanStart(c *parseContext, r rune) bool {
	return r == '#' && c.mode == ParagraphMode && c.atLineStart()
}

// listCanStart reports whether r should switch the dispatcher into
// ListMode: a '-' at the start of an empty or absent current block
// while in ParagraphMode.
func listCanStart(c *parseContext, r rune) bool {
	return r == '-' && c.mode == ParagraphMode && c.atLineStart()
}

// orderedListCanStart reports whether r should switch the dispatcher
// into OrderedListMode: an ASCII digit at the start of an empty or
// absent current block while in ParagraphMode.
func orderedListCanStart(c *parseContext, r rune) bool {
	return isASCIIDigit(r) && c.mode == ParagraphMode && c.atLineStart()
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// dispatchClose finalizes the stream: it flushes or drops pending
// backticks (see backticksUnambiguousAtEOF), lets the current mode
// close out, and repairs an
// unterminated inline-code marker left in the final paragraph.
func (c *parseContext) dispatchClose() []Diff {
	var diffs []Diff

	if c.pendingBackticks > 0 {
		n := c.pendingBackticks
		c.pendingBackticks = 0
		if backticksUnambiguousAtEOF(c.mode) {
			diffs = append(diffs, strategyFor(c.mode).flushBackticks(c, n)...)
		}
		// Otherwise the pending backticks were never disambiguated by
		// a following character and the stream ended: they are
		// dropped rather than retroactively committed to either
		// interpretation.
	}

	diffs = append(diffs, strategyFor(c.mode).close(c)...)

	if c.mode == ParagraphMode && c.hasCurrent() && c.currentBlock().Kind == ParagraphKind {
		blk := c.currentBlock()
		if repaired, changed := repairUnclosedInlineCode(blk.Text); changed {
			blk.Text = repaired
			diffs = append(diffs, patchDiff(*blk))
		}
	}

	return diffs
}

// backticksUnambiguousAtEOF reports whether pending backticks in this
// mode have a single, unambiguous meaning even with no further input:
// inside or around a code fence, a backtick is always literal content
// or fence markup. In every other mode, a pending backtick is an
// unresolved "maybe inline code" marker with no following character to
// disambiguate it, so it is discarded instead of guessed at.
func backticksUnambiguousAtEOF(m Mode) bool {
	switch m {
	case CodeMode, FenceStartMode, InlineCodeMode:
		return true
	default:
		return false
	}
}
