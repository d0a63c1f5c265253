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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mdstream.dev/go/mdstream/highlight"
	"mdstream.dev/go/mdstream/internal/config"
	"mdstream.dev/go/mdstream/tui"
)

var (
	styleFlag   string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "mdstream",
	Short: "Drive the mdstream reducer from a stream, a file, or a terminal",
	Long: `mdstream feeds text through mdstream.Reducer one rune at a time,
the same way a language-model completion stream would, and shows the
result either as a live terminal UI or as rendered/exported output.`,
	SilenceUsage: true,
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.PersistentFlags().StringVar(&styleFlag, "style", "", "chroma syntax-highlighting style name (default: config or MDSTREAM_STYLE)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable ANSI styling in the terminal UI")

	rootCmd.AddCommand(tuiCmd, renderCmd)
}

// Execute runs the mdstream command line, exiting non-zero and logging
// the error on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig merges persistent flags on top of the environment-backed
// defaults and validates the result before any subcommand acts on it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if styleFlag != "" {
		cfg.Style = styleFlag
	}
	if noColorFlag {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	highlight.SetStyle(cfg.Style)
	tui.SetNoColor(cfg.NoColor)
	return cfg, nil
}

// readInput reads args[0], or stdin if no argument (or "-") was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("mdstream: reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("mdstream: reading %s: %w", args[0], err)
	}
	return data, nil
}
