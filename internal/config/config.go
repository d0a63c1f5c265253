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

// Package config loads the reference CLI's configuration: defaults
// merged with MDSTREAM_-prefixed environment variables, following the
// shape of this pack's terminal applications rather than introducing a
// bespoke scheme of its own.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings shared by every mdstream subcommand.
type Config struct {
	// Style is the chroma style name used to highlight fenced code
	// blocks, both in the terminal UI and in the HTML view.
	Style string `mapstructure:"style"`
	// NoColor disables ANSI styling in the terminal UI, for piping its
	// output somewhere that doesn't understand escape codes.
	NoColor bool `mapstructure:"no_color"`
}

// Defaults returns the built-in default settings, the single source of
// truth both Load and its tests consult.
func Defaults() map[string]any {
	return map[string]any{
		"style":    "monokai",
		"no_color": false,
	}
}

// Load builds a Config from defaults overlaid with any MDSTREAM_-
// prefixed environment variables (MDSTREAM_STYLE, MDSTREAM_NO_COLOR).
// Callers that also accept command-line flags overlay those on top of
// the returned Config themselves, then call Validate.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MDSTREAM")
	v.AutomaticEnv()
	for key, val := range Defaults() {
		v.SetDefault(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("mdstream: parsing config: %w", err)
	}
	return &cfg, nil
}

// Validate reports whether cfg is usable, returning a wrapped error
// describing the first problem found rather than panicking.
func (c *Config) Validate() error {
	if c.Style == "" {
		return fmt.Errorf("mdstream: config: style must not be empty")
	}
	return nil
}
