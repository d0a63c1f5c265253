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

// Reducer turns a character stream into a sequence of [Diff] batches
// describing how a view should mutate its block list to stay in sync.
// It is not safe for concurrent use by multiple goroutines: callers
// that want to fan diffs out to several consumers should do so through
// [Reducer.Subscribe], not by calling Push from multiple goroutines.
//
// The zero value is not usable; construct one with [NewReducer].
type Reducer struct {
	ctx       *parseContext
	listeners []func([]Diff)
}

// NewReducer returns a Reducer ready to accept input.
func NewReducer() *Reducer {
	return &Reducer{ctx: newParseContext()}
}

// Push feeds one character into the reducer and returns the diffs it
// produced, if any. Diffs are also delivered, in registration order,
// to every listener registered with Subscribe.
func (red *Reducer) Push(r rune) []Diff {
	diffs := red.ctx.dispatchPush(r)
	red.notify(diffs)
	return diffs
}

// PushString feeds s one rune at a time and concatenates the results,
// for callers that receive chunks of text rather than individual
// characters. Splitting the same string across several PushString
// calls at different rune boundaries produces the same post-Close
// block sequence (diff granularity may differ) as feeding it one rune
// at a time.
func (red *Reducer) PushString(s string) []Diff {
	var diffs []Diff
	for _, r := range s {
		diffs = append(diffs, red.Push(r)...)
	}
	return diffs
}

// Close finalizes the stream: it flushes pending backticks inside a
// code fence or inline-code run (and drops them anywhere else), closes
// out the current mode, repairs an unterminated inline-code marker,
// and resets the Reducer to its initial state so it can be reused for
// an independent stream. It returns the diffs produced by
// finalization.
func (red *Reducer) Close() []Diff {
	diffs := red.ctx.dispatchClose()
	red.ctx.reset()
	red.notify(diffs)
	return diffs
}

// Subscribe registers listener to be called, synchronously and in
// registration order, with every non-empty diff batch produced by
// Push or Close. It returns a function that removes listener; calling
// it more than once is a no-op.
func (red *Reducer) Subscribe(listener func([]Diff)) (unsubscribe func()) {
	red.listeners = append(red.listeners, listener)
	id := len(red.listeners) - 1
	removed := false
	return func() {
		if removed || id >= len(red.listeners) {
			return
		}
		removed = true
		red.listeners[id] = nil
	}
}

func (red *Reducer) notify(diffs []Diff) {
	if len(diffs) == 0 {
		return
	}
	for _, l := range red.listeners {
		if l != nil {
			l(diffs)
		}
	}
}
