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

// maxHeadingLevel is the deepest ATX heading level this parser
// recognizes. A run of more than six '#' demotes to a literal
// paragraph fragment.
const maxHeadingLevel = 6

// headingStrategy handles an ATX heading ("# Title"). It is entered
// by the dispatcher's heading trigger, which switches the mode but
// defers the triggering '#' back to process so that it is counted
// the same way as any subsequent '#'.
type headingStrategy struct{}

func (headingStrategy) process(c *parseContext, r rune) []Diff {
	if !c.hasCurrent() {
		switch r {
		case '#':
			c.headingLevel++
			if c.headingLevel > maxHeadingLevel {
				return headingStrategy{}.abort(c, c.headingLevel, 0)
			}
			return nil
		case ' ':
			level := c.headingLevel
			c.headingLevel = 0
			blk := c.openBlock(HeadingKind)
			blk.Level = level
			return []Diff{appendDiff(*blk)}
		default:
			return headingStrategy{}.abort(c, c.headingLevel, r)
		}
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

// abort demotes an in-progress heading marker to literal paragraph
// text: the accumulated '#' runes, followed by extra (a trailing
// character that wasn't itself a '#', or the rune 0 if there is none).
func (headingStrategy) abort(c *parseContext, hashes int, extra rune) []Diff {
	c.headingLevel = 0
	c.mode = ParagraphMode
	var diffs []Diff
	for i := 0; i < hashes; i++ {
		diffs = append(diffs, paragraphStrategy{}.process(c, '#')...)
	}
	if extra != 0 {
		diffs = append(diffs, paragraphStrategy{}.process(c, extra)...)
	}
	return diffs
}

// flushBackticks in Heading mode receives a run of two backticks: a
// lone backtick never reaches it, because the dispatcher takes it as
// the start of an inline-code run in this mode. Once the heading block
// exists, the backticks are appended to the heading's text. Before the
// block exists, they abort the heading attempt the same way any other
// non-#, non-space rune would, since a '#' run cannot be immediately
// followed by a backtick and still be a heading.
func (headingStrategy) flushBackticks(c *parseContext, n int) []Diff {
	if c.hasCurrent() {
		var diffs []Diff
		for i := 0; i < n; i++ {
			diffs = append(diffs, headingStrategy{}.process(c, '`')...)
		}
		return diffs
	}
	hashes := c.headingLevel
	diffs := headingStrategy{}.abort(c, hashes, 0)
	for i := 0; i < n; i++ {
		diffs = append(diffs, paragraphStrategy{}.process(c, '`')...)
	}
	return diffs
}

func (headingStrategy) close(c *parseContext) []Diff {
	return nil
}
