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

// modeStrategy is the handler for one parse [Mode]. The dispatcher
// holds exactly one instance per mode in the registry below and never
// mutates a strategy; all mutable state lives in the [parseContext]
// passed to every call.
type modeStrategy interface {
	// process handles a single non-backtick character while this mode
	// is active, returning any diffs it produced.
	process(c *parseContext, r rune) []Diff

	// flushBackticks is called when 1 or 2 pending backticks must be
	// resolved because a non-backtick character (or end of stream)
	// arrived. n is always 1 or 2; a count of 3 is handled by the
	// dispatcher directly as a fence and never reaches a strategy.
	flushBackticks(c *parseContext, n int) []Diff

	// close finalizes the mode strategy's state at end of stream.
	// Most strategies have nothing to do here; the dispatcher's own
	// Close method handles the cross-cutting repair pass.
	close(c *parseContext) []Diff
}

// registry maps each Mode to the strategy that handles it. All
// strategies are registered, including orderedListStrategy, so that
// every recognized construct is reachable through the same dispatch
// path.
var registry = map[Mode]modeStrategy{
	ParagraphMode:   paragraphStrategy{},
	HeadingMode:     headingStrategy{},
	FenceStartMode:  fenceStartStrategy{},
	CodeMode:        codeStrategy{},
	InlineCodeMode:  inlineCodeStrategy{},
	ListMode:        listStrategy{},
	OrderedListMode: orderedListStrategy{},
}

func strategyFor(m Mode) modeStrategy {
	s, ok := registry[m]
	if !ok {
		panic("mdstream: no strategy registered for mode " + m.String())
	}
	return s
}
