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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mdstream.dev/go/mdstream"
	"mdstream.dev/go/mdstream/htmlview"
)

var renderJSON bool

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Feed a file (or stdin) through the reducer and print the result",
	Long: `render reads file, or stdin if file is omitted or "-", feeds it
through a fresh Reducer one rune at a time, and writes the final HTML
view to stdout. With --json, it instead writes the raw diff sequence as
newline-delimited JSON, one line per non-empty Push/Close diff batch.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "write the raw diff sequence as newline-delimited JSON")
}

func runRender(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	data, err := readInput(args)
	if err != nil {
		return err
	}

	red := mdstream.NewReducer()
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if renderJSON {
		enc := json.NewEncoder(out)
		var encodeErr error
		red.Subscribe(func(diffs []mdstream.Diff) {
			if encodeErr == nil {
				encodeErr = enc.Encode(diffs)
			}
		})
		for _, r := range string(data) {
			red.Push(r)
		}
		red.Close()
		if encodeErr != nil {
			return fmt.Errorf("mdstream: encoding diffs: %w", encodeErr)
		}
		return nil
	}

	view := htmlview.NewRenderer()
	red.Subscribe(view.Apply)
	for _, r := range string(data) {
		red.Push(r)
	}
	red.Close()
	fmt.Fprintln(out, view.String())
	return nil
}
