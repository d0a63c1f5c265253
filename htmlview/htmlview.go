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

// Package htmlview maintains a live HTML string mirroring a Reducer's
// block sequence, fed incrementally by its diff stream. It is a pure
// consumer of [mdstream.Diff] values: it never reaches into a
// Reducer's internal state, only into the Block each diff carries.
package htmlview

import (
	"strconv"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"

	"mdstream.dev/go/mdstream"
	"mdstream.dev/go/mdstream/highlight"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&apos;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return string(htmlEscaper.Replace([]byte(s)))
}

// Renderer mirrors a Reducer's block sequence as HTML, one fragment
// per block id. It is not safe for concurrent use.
type Renderer struct {
	// fragments[id] is the rendered HTML for the block with that id.
	// Block ids are handed out densely starting at 0 by the reducer,
	// so an index into this slice is always a valid id lookup.
	fragments []string
}

// NewRenderer returns an empty Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Apply feeds one diff batch (as returned by Reducer.Push or
// Reducer.Close) into the renderer. It matches the signature
// Reducer.Subscribe expects, so it can be registered directly:
//
//	red := mdstream.NewReducer()
//	view := htmlview.NewRenderer()
//	red.Subscribe(view.Apply)
func (v *Renderer) Apply(diffs []mdstream.Diff) {
	for _, d := range diffs {
		switch d.Kind {
		case mdstream.AppendDiff:
			v.fragments = append(v.fragments, renderFragment(d.Block))
		case mdstream.PatchDiff:
			if d.ID < 0 || d.ID >= len(v.fragments) {
				continue
			}
			v.fragments[d.ID] = renderFragment(d.Block)
		}
	}
}

// String returns the current full HTML document fragment: every
// block's rendered HTML, concatenated in block order.
func (v *Renderer) String() string {
	return strings.Join(v.fragments, "")
}

func renderFragment(b mdstream.Block) string {
	var sb strings.Builder
	switch b.Kind {
	case mdstream.ParagraphKind:
		openTag(&sb, atom.P)
		sb.WriteString(escape(b.Text))
		closeTag(&sb, atom.P)
	case mdstream.HeadingKind:
		tag := headingAtom(b.Level)
		openTag(&sb, tag)
		sb.WriteString(escape(b.Text))
		closeTag(&sb, tag)
	case mdstream.CodeKind:
		renderCode(&sb, b)
	case mdstream.InlineCodeKind:
		openTag(&sb, atom.Code)
		sb.WriteString(escape(b.Text))
		closeTag(&sb, atom.Code)
	case mdstream.ListItemKind:
		openTag(&sb, atom.Li)
		sb.WriteString(escape(b.Text))
		closeTag(&sb, atom.Li)
	case mdstream.OrderedListItemKind:
		sb.WriteString(`<li value="`)
		sb.WriteString(strconv.Itoa(b.Number))
		sb.WriteString(`">`)
		sb.WriteString(escape(b.Text))
		closeTag(&sb, atom.Li)
	}
	return sb.String()
}

// renderCode renders a fenced code block. While the fence's language
// hasn't been recognized yet (Lang is empty because the info-string
// line hasn't ended, or names an unknown language), the block falls
// back to an unhighlighted <pre><code> and re-renders once the
// language is known, the same best-effort posture the reducer itself
// takes toward incomplete input.
func renderCode(sb *strings.Builder, b mdstream.Block) {
	if rendered, err := highlight.HTML(b.Text, b.Lang); err == nil {
		sb.WriteString(rendered)
		return
	}
	openTag(sb, atom.Pre)
	openTag(sb, atom.Code)
	sb.WriteString(escape(b.Text))
	closeTag(sb, atom.Code)
	closeTag(sb, atom.Pre)
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	case 6:
		return atom.H6
	default:
		return atom.P
	}
}

func openTag(sb *strings.Builder, name atom.Atom) {
	sb.WriteByte('<')
	sb.WriteString(name.String())
	sb.WriteByte('>')
}

func closeTag(sb *strings.Builder, name atom.Atom) {
	sb.WriteString("</")
	sb.WriteString(name.String())
	sb.WriteByte('>')
}
