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

// listStrategy handles an unordered list item ("- item"). It is
// entered by the dispatcher's list trigger, which switches the mode
// and consumes the triggering '-' itself; no block exists yet when
// process first runs.
type listStrategy struct{}

func (listStrategy) process(c *parseContext, r rune) []Diff {
	if !c.hasCurrent() {
		if r == '\n' {
			c.mode = ParagraphMode
			return nil
		}
		blk := c.openBlock(ListItemKind)
		diffs := []Diff{appendDiff(*blk)}
		if r == ' ' {
			// The one separating space after '-' is consumed, not
			// stored as item text.
			return diffs
		}
		blk.Text += string(r)
		return append(diffs, patchDiff(*blk))
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

func (listStrategy) flushBackticks(c *parseContext, n int) []Diff {
	var diffs []Diff
	for i := 0; i < n; i++ {
		diffs = append(diffs, listStrategy{}.process(c, '`')...)
	}
	return diffs
}

func (listStrategy) close(c *parseContext) []Diff {
	return nil
}
