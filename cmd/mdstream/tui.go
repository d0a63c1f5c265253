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

package main

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mdstream.dev/go/mdstream/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Render stdin as a live Markdown stream",
	Long: `tui reads stdin one rune at a time and feeds it into the reducer
exactly as a language-model token stream would, updating the rendered
view after every character. Typing interactively or piping a file
("mdstream tui < doc.md") both work; Ctrl-C or Esc ends the stream.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	m := tui.New().WithSource(bufio.NewReader(os.Stdin))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("mdstream: running tui: %w", err)
	}
	return nil
}
