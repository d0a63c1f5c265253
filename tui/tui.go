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

// Package tui is a reference terminal renderer for a live streaming
// Markdown source. It demonstrates the core reducer the way a real
// LLM token stream would drive it: keystrokes typed into the program
// are pushed into a Reducer one rune at a time, and the rendered
// view updates after every character.
package tui

import (
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mdstream.dev/go/mdstream"
	"mdstream.dev/go/mdstream/highlight"
)

var hasDarkBg = lipgloss.HasDarkBackground()

func adaptiveColor(dark, light string) lipgloss.Color {
	if hasDarkBg {
		return lipgloss.Color(dark)
	}
	return lipgloss.Color(light)
}

var (
	colorHeading = adaptiveColor("212", "91")
	colorCode    = adaptiveColor("250", "237")
	colorMarker  = adaptiveColor("243", "248")
	colorBorder  = adaptiveColor("240", "252")

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	markerStyle  = lipgloss.NewStyle().Faint(true).Foreground(colorMarker)
	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	codeLangStyle = lipgloss.NewStyle().Faint(true).Foreground(colorCode)
)

// renderedLine is the styled terminal text for a single block, kept
// in sync with the block's id so a Patch diff can replace it in
// place.
type renderedLine struct {
	kind mdstream.BlockKind
	text string
	lang string // CodeKind only
	num  int    // OrderedListItemKind only
}

// Model is a bubbletea.Model that drives a Reducer from keystrokes
// and renders its block sequence as styled terminal output. It holds
// no goroutines and no subscriptions: every Update call applies the
// diffs Push/Close return to it directly, so Model stays a plain
// value the bubbletea runtime can copy freely between calls.
type Model struct {
	reducer *mdstream.Reducer
	lines   []renderedLine
	done    bool
	source  io.RuneReader
}

// New returns a Model wrapping a fresh Reducer.
func New() Model {
	return Model{reducer: mdstream.NewReducer()}
}

// WithSource attaches an external rune source (e.g. stdin piped from a
// file or another process) that feeds the reducer the same way typed
// keystrokes do. Init starts reading from it immediately; the model
// quits once it is exhausted.
func (m Model) WithSource(r io.RuneReader) Model {
	m.source = r
	return m
}

// RuneMsg carries one externally sourced rune into Update, for driving
// Model from something other than keyboard input.
type RuneMsg rune

// EOFMsg signals that the external source feeding RuneMsg values has
// been exhausted.
type EOFMsg struct{}

// readSource returns a bubbletea command that reads one rune from r,
// the same "read one, ask for the next" shape the bubbletea runtime
// expects for streaming input.
func readSource(r io.RuneReader) tea.Cmd {
	return func() tea.Msg {
		ru, _, err := r.ReadRune()
		if err != nil {
			return EOFMsg{}
		}
		return RuneMsg(ru)
	}
}

func (m *Model) applyDiffs(diffs []mdstream.Diff) {
	for _, d := range diffs {
		line := renderedLine{kind: d.Block.Kind, text: d.Block.Text, lang: d.Block.Lang, num: d.Block.Number}
		switch d.Kind {
		case mdstream.AppendDiff:
			for len(m.lines) <= d.ID {
				m.lines = append(m.lines, renderedLine{})
			}
			m.lines[d.ID] = line
		case mdstream.PatchDiff:
			if d.ID >= 0 && d.ID < len(m.lines) {
				m.lines[d.ID] = line
			}
		}
	}
}

func (m Model) Init() tea.Cmd {
	if m.source != nil {
		return readSource(m.source)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.applyDiffs(m.reducer.Close())
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.applyDiffs(m.reducer.Push('\n'))
			return m, nil
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.applyDiffs(m.reducer.Push(r))
			}
			return m, nil
		}
	case RuneMsg:
		m.applyDiffs(m.reducer.Push(rune(msg)))
		return m, readSource(m.source)
	case EOFMsg:
		m.applyDiffs(m.reducer.Close())
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	var sb strings.Builder
	for _, line := range m.lines {
		sb.WriteString(renderLine(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// noColor disables ANSI styling for every subsequently rendered line,
// for callers (the reference CLI's --no-color flag) that detect a
// destination that doesn't understand escape codes.
var noColor bool

// SetNoColor sets the package-wide no-color mode.
func SetNoColor(v bool) {
	noColor = v
}

// styled renders s with style unless no-color mode is on.
func styled(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

func renderLine(line renderedLine) string {
	switch line.kind {
	case mdstream.HeadingKind:
		return styled(headingStyle, line.text)
	case mdstream.CodeKind:
		body := line.text
		if !noColor {
			if rendered, err := highlight.ANSI(body, line.lang); err == nil {
				body = rendered
			}
		}
		label := line.lang
		if label == "" {
			label = "text"
		}
		return styled(codeLangStyle, label) + "\n" + styled(codeBoxStyle, body)
	case mdstream.InlineCodeKind:
		return styled(codeLangStyle, "`"+line.text+"`")
	case mdstream.ListItemKind:
		return styled(markerStyle, "• ") + line.text
	case mdstream.OrderedListItemKind:
		return styled(markerStyle, strconv.Itoa(line.num)+". ") + line.text
	default:
		return line.text
	}
}
