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

// fenceTrigger is invoked directly by the dispatcher the instant three
// consecutive backticks accumulate, regardless of the current mode. It
// never runs through the ordinary trigger-scan-then-process path: a
// run of exactly three backticks always means "open or close a fence",
// overriding whatever construct was previously in progress.
func fenceTrigger(c *parseContext) []Diff {
	if c.mode == CodeMode || c.mode == FenceStartMode {
		c.closeCurrent()
		c.mode = ParagraphMode
		c.langBuf = c.langBuf[:0]
		return nil
	}

	blk := c.openBlock(CodeKind)
	c.mode = FenceStartMode
	c.langBuf = c.langBuf[:0]
	return []Diff{appendDiff(*blk)}
}

// fenceStartStrategy collects a fenced code block's info string, up to
// the newline that ends the opening fence line.
type fenceStartStrategy struct{}

func (fenceStartStrategy) process(c *parseContext, r rune) []Diff {
	if r == '\n' {
		var diffs []Diff
		if lang := strings.TrimSpace(string(c.langBuf)); lang != "" {
			blk := c.currentBlock()
			blk.Lang = lang
			diffs = append(diffs, patchDiff(*blk))
		}
		c.langBuf = c.langBuf[:0]
		c.mode = CodeMode
		return diffs
	}
	c.langBuf = append(c.langBuf, []byte(string(r))...)
	return nil
}

// flushBackticks appends backticks encountered mid-info-string to the
// code block's text, same as in CodeMode: a backtick before the fence
// line has even ended is unambiguous literal content.
func (fenceStartStrategy) flushBackticks(c *parseContext, n int) []Diff {
	blk := c.currentBlock()
	blk.Text += strings.Repeat("`", n)
	return []Diff{patchDiff(*blk)}
}

func (fenceStartStrategy) close(c *parseContext) []Diff {
	return nil
}

// codeStrategy accumulates a fenced code block's body. Every character
// is literal here, including other Markdown-significant runes such as
// '#' or '-'; only a run of three backticks (handled by fenceTrigger,
// never reaching this strategy) closes the block.
type codeStrategy struct{}

func (codeStrategy) process(c *parseContext, r rune) []Diff {
	blk := c.currentBlock()
	blk.Text += string(r)
	return []Diff{patchDiff(*blk)}
}

func (codeStrategy) flushBackticks(c *parseContext, n int) []Diff {
	blk := c.currentBlock()
	blk.Text += strings.Repeat("`", n)
	return []Diff{patchDiff(*blk)}
}

func (codeStrategy) close(c *parseContext) []Diff {
	return nil
}
