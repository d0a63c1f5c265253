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

// DiffKind identifies the variant of a [Diff].
type DiffKind uint8

const (
	// AppendDiff announces that a new block has been added.
	AppendDiff DiffKind = 1 + iota
	// PatchDiff announces that an existing block's state has changed.
	PatchDiff
)

// Diff is an incremental instruction for a downstream view: either a
// new block has appeared (AppendDiff) or an existing block, identified
// by ID, has a new full state (PatchDiff). A view reconstructs the
// block sequence by inserting on Append and replacing by ID on Patch.
//
// Block always carries a full by-value snapshot, never a delta, so a
// view can apply diffs without reaching back into the Reducer.
type Diff struct {
	Kind  DiffKind
	ID    int
	Block Block
}

func appendDiff(b Block) Diff {
	return Diff{Kind: AppendDiff, ID: b.ID, Block: b}
}

func patchDiff(b Block) Diff {
	return Diff{Kind: PatchDiff, ID: b.ID, Block: b}
}
