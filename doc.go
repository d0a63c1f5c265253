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

// Package mdstream provides a streaming, incremental Markdown block
// parser for live-rendering scenarios where text arrives one rune at a
// time, such as a language-model completion stream.
//
// A [Reducer] consumes one rune per [Reducer.Push] call and returns a
// sequence of [Diff] values describing how a downstream view should
// mutate its own state to stay in sync. The reducer never buffers more
// than a handful of runes and never produces invalid output, even if
// the stream is truncated in the middle of a construct such as an
// unclosed code fence.
//
// The parser targets a fixed subset of [CommonMark]: paragraphs, ATX
// headings, fenced code blocks, inline code, and unordered/ordered list
// items. Inline spans (emphasis, links) and syntax highlighting are
// intentionally out of scope for the reducer itself; see the
// mdstream.dev/go/mdstream/highlight and mdstream.dev/go/mdstream/htmlview
// packages for collaborators that consume a Reducer's diff stream.
//
// [CommonMark]: https://commonmark.org/
package mdstream
