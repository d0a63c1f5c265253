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

// paragraphStrategy handles the default mode: plain running text that
// isn't (yet) recognized as any other construct.
type paragraphStrategy struct{}

func (paragraphStrategy) process(c *parseContext, r rune) []Diff {
	if r == '\n' {
		c.closeCurrent()
		return nil
	}

	var diffs []Diff
	if !c.hasCurrent() {
		blk := c.openBlock(ParagraphKind)
		diffs = append(diffs, appendDiff(*blk))
	}
	blk := c.currentBlock()
	blk.Text += string(r)
	return append(diffs, patchDiff(*blk))
}

// flushBackticks appends n backticks as literal paragraph text. It
// reuses process so that block creation (Append-before-Patch) stays
// consistent regardless of whether a backtick is the first rune of a
// new paragraph.
func (paragraphStrategy) flushBackticks(c *parseContext, n int) []Diff {
	var diffs []Diff
	for i := 0; i < n; i++ {
		diffs = append(diffs, paragraphStrategy{}.process(c, '`')...)
	}
	return diffs
}

func (paragraphStrategy) close(c *parseContext) []Diff {
	return nil
}
