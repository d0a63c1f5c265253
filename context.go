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

// parseContext holds all of the Reducer's mutable parse state. Mode
// strategies receive a pointer to it and mutate it directly; there is
// no aliasing and no concurrent access, so no synchronization is
// needed within a single Reducer.
type parseContext struct {
	blocks []Block
	// current is the index into blocks of the block currently being
	// built, or -1 if there is none.
	current int
	nextID  int

	mode Mode

	// pendingBackticks counts consecutive, not-yet-committed backticks
	// (0..3; 3 never persists across a Push call).
	pendingBackticks int

	// langBuf accumulates a fence's info string until the line ends.
	// Non-empty only while mode == FenceStartMode.
	langBuf []byte

	// headingLevel counts '#' runes seen before the heading block is
	// materialized. Zero once the block exists.
	headingLevel int

	// orderedNumber is the accumulated value of an in-progress ordered
	// list marker's digit run. Meaningful only while mode ==
	// OrderedListMode.
	orderedNumber int
	// orderedAwaitingSpace is set once the marker's '.' has been seen,
	// while the single mandatory space before the item text is still
	// awaited. A sign-encoded single field can't distinguish "still
	// collecting digits" from "dot seen" when the number itself is 0
	// (e.g. "0. item"), so the phase gets its own field instead.
	orderedAwaitingSpace bool
}

func newParseContext() *parseContext {
	return &parseContext{
		current: -1,
		mode:    ParagraphMode,
	}
}

// reset restores the context to its initial state, as if newly
// constructed, for reuse across independent streams.
func (c *parseContext) reset() {
	*c = *newParseContext()
}

// hasCurrent reports whether a block is currently being built.
func (c *parseContext) hasCurrent() bool {
	return c.current >= 0
}

// currentBlock returns a pointer to the block currently being built.
// It panics if there is none; callers must check hasCurrent first.
func (c *parseContext) currentBlock() *Block {
	return &c.blocks[c.current]
}

// atLineStart reports whether the current block (if any) has no text
// yet, which is the "line start" condition the dispatcher's triggers
// require.
func (c *parseContext) atLineStart() bool {
	return !c.hasCurrent() || c.currentBlock().Text == ""
}

// openBlock appends a new zero-valued block of the given kind, makes
// it current, and returns a pointer to it so the caller can set
// kind-specific fields before announcing it with an Append diff.
// The pointer is only valid until the next call to openBlock.
func (c *parseContext) openBlock(kind BlockKind) *Block {
	c.blocks = append(c.blocks, Block{ID: c.nextID, Kind: kind})
	c.nextID++
	c.current = len(c.blocks) - 1
	return &c.blocks[c.current]
}

// closeCurrent stops tracking the current block as current, without
// altering its stored state.
func (c *parseContext) closeCurrent() {
	c.current = -1
}
