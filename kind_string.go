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

func (k BlockKind) String() string {
	switch k {
	case ParagraphKind:
		return "ParagraphKind"
	case HeadingKind:
		return "HeadingKind"
	case CodeKind:
		return "CodeKind"
	case InlineCodeKind:
		return "InlineCodeKind"
	case ListItemKind:
		return "ListItemKind"
	case OrderedListItemKind:
		return "OrderedListItemKind"
	default:
		return "BlockKind(0)"
	}
}

func (k DiffKind) String() string {
	switch k {
	case AppendDiff:
		return "AppendDiff"
	case PatchDiff:
		return "PatchDiff"
	default:
		return "DiffKind(0)"
	}
}
