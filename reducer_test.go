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

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"mdstream.dev/go/mdstream/internal/goldens"
)

var kindByName = map[string]BlockKind{
	"Paragraph":       ParagraphKind,
	"Heading":         HeadingKind,
	"Code":            CodeKind,
	"InlineCode":      InlineCodeKind,
	"ListItem":        ListItemKind,
	"OrderedListItem": OrderedListItemKind,
}

func wantBlocks(t *testing.T, fixtures []goldens.Block) []Block {
	t.Helper()
	want := make([]Block, len(fixtures))
	for i, b := range fixtures {
		kind, ok := kindByName[b.Kind]
		if !ok {
			t.Fatalf("fixture block %d: unknown kind %q", i, b.Kind)
		}
		want[i] = Block{
			ID:     b.ID,
			Kind:   kind,
			Text:   b.Text,
			Level:  b.Level,
			Lang:   b.Lang,
			Number: b.Number,
		}
	}
	return want
}

// finalBlocks replays a diff sequence into the block list a view
// would end up with: Append inserts, Patch replaces by id.
func finalBlocks(diffs []Diff) []Block {
	var blocks []Block
	byID := make(map[int]int)
	for _, d := range diffs {
		switch d.Kind {
		case AppendDiff:
			byID[d.ID] = len(blocks)
			blocks = append(blocks, d.Block)
		case PatchDiff:
			idx, ok := byID[d.ID]
			if !ok {
				panic("patch for unknown id")
			}
			blocks[idx] = d.Block
		}
	}
	return blocks
}

func TestScenarios(t *testing.T) {
	scenarios, err := goldens.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			red := NewReducer()
			var diffs []Diff
			for _, r := range sc.Input {
				diffs = append(diffs, red.Push(r)...)
			}
			diffs = append(diffs, red.Close()...)

			got := finalBlocks(diffs)
			want := wantBlocks(t, sc.Blocks)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Input %q, final blocks (-want +got):\n%s", sc.Input, diff)
			}
		})
	}
}

// TestDeterminism checks that feeding the same string through a fresh
// Reducer twice, one rune at a time, yields an identical diff
// sequence both times.
func TestDeterminism(t *testing.T) {
	scenarios, err := goldens.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			run := func() []Diff {
				red := NewReducer()
				var diffs []Diff
				for _, r := range sc.Input {
					diffs = append(diffs, red.Push(r)...)
				}
				return append(diffs, red.Close()...)
			}
			first, second := run(), run()
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("non-deterministic diff sequence for %q (-first +second):\n%s", sc.Input, diff)
			}
		})
	}
}

// TestChunkInvariance checks that splitting the same input into
// differently sized chunks (fed through PushString) produces the same
// post-Close block sequence as feeding it one rune at a time, even
// though the diff granularity differs.
func TestChunkInvariance(t *testing.T) {
	scenarios, err := goldens.Load()
	if err != nil {
		t.Fatal(err)
	}
	chunkSizes := []int{1, 2, 3, 5, 7}
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			want := wantBlocks(t, sc.Blocks)
			for _, size := range chunkSizes {
				red := NewReducer()
				var diffs []Diff
				runes := []rune(sc.Input)
				for i := 0; i < len(runes); i += size {
					end := i + size
					if end > len(runes) {
						end = len(runes)
					}
					diffs = append(diffs, red.PushString(string(runes[i:end]))...)
				}
				diffs = append(diffs, red.Close()...)

				got := finalBlocks(diffs)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("chunk size %d, input %q, final blocks (-want +got):\n%s", size, sc.Input, diff)
				}
			}
		})
	}
}

func TestPushStringEquivalence(t *testing.T) {
	const input = "# heading\nsome `code` and more\n- item\n1. first\n"
	red1 := NewReducer()
	var want []Diff
	for _, r := range input {
		want = append(want, red1.Push(r)...)
	}
	want = append(want, red1.Close()...)

	red2 := NewReducer()
	got := red2.PushString(input)
	got = append(got, red2.Close()...)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PushString diverged from rune-by-rune Push (-want +got):\n%s", diff)
	}
}

func TestEmptyInputCloseEmitsNoDiffs(t *testing.T) {
	red := NewReducer()
	if diffs := red.Close(); len(diffs) != 0 {
		t.Errorf("Close() on empty input = %v, want no diffs", diffs)
	}
}

func TestLoneBacktickDiscardedAtEOF(t *testing.T) {
	for _, input := range []string{"`", "``"} {
		red := NewReducer()
		var diffs []Diff
		for _, r := range input {
			diffs = append(diffs, red.Push(r)...)
		}
		if len(diffs) != 0 {
			t.Errorf("Push diffs for %q = %v, want none", input, diffs)
		}
		diffs = red.Close()
		if len(diffs) != 0 {
			t.Errorf("Close() diffs for %q = %v, want none", input, diffs)
		}
	}
}

func TestSubscribeReceivesPushAndCloseDiffs(t *testing.T) {
	red := NewReducer()
	var batches [][]Diff
	unsubscribe := red.Subscribe(func(d []Diff) {
		batches = append(batches, d)
	})

	red.PushString("hi")
	red.Close()

	if len(batches) == 0 {
		t.Fatal("subscriber received no diff batches")
	}

	unsubscribe()
	before := len(batches)
	red.PushString("more")
	red.Close()
	if len(batches) != before {
		t.Errorf("subscriber still received batches after unsubscribe: %d new", len(batches)-before)
	}
}
