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

// inlineCodeStrategy handles a single-backtick inline code span that
// the dispatcher has promoted to its own block. It is entered with the
// first character after the opening backtick already deferred to
// process.
type inlineCodeStrategy struct{}

func (inlineCodeStrategy) process(c *parseContext, r rune) []Diff {
	if r == '\n' {
		c.closeCurrent()
		c.mode = ParagraphMode
		return nil
	}
	blk := c.currentBlock()
	blk.Text += string(r)
	return []Diff{patchDiff(*blk)}
}

// flushBackticks interprets the pending run according to this mode's
// inline-code closing rule: a single backtick closes the span; a run
// of two or more is never a close (CommonMark inline-code spans close
// only on a backtick run of the same length as the one that opened
// them, and this reducer only ever opens on a run of exactly one), so
// it is appended to the span's text as literal content.
func (inlineCodeStrategy) flushBackticks(c *parseContext, n int) []Diff {
	if n == 1 {
		c.closeCurrent()
		c.mode = ParagraphMode
		return nil
	}
	blk := c.currentBlock()
	blk.Text += strings.Repeat("`", n)
	return []Diff{patchDiff(*blk)}
}

// close runs when the stream ends with an InlineCode block still open
// (no closing backtick was ever seen). This is treated as a failed
// inline-code attempt rather than a truncated one: the block is
// demoted to a Paragraph, and the opening backtick — which was
// consumed by the dispatcher's trigger and never added to the block's
// text — is prepended back so no character is lost.
//
// The demoted block is deliberately left current: the dispatcher's
// end-of-stream repair pass runs against "the current paragraph" next,
// and needs to see (and patch) this same block.
func (inlineCodeStrategy) close(c *parseContext) []Diff {
	blk := c.currentBlock()
	blk.Kind = ParagraphKind
	blk.Text = "`" + blk.Text
	c.mode = ParagraphMode
	return []Diff{patchDiff(*blk)}
}
