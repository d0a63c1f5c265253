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

// Package goldens provides access to the streaming scenario fixtures
// used by the root package's scenario tests.
package goldens

import (
	_ "embed"
	"encoding/json"
)

// Block mirrors mdstream.Block in a form json.Unmarshal can populate
// without importing the root package (which would be a cyclic
// dependency from its own tests).
type Block struct {
	ID     int    `json:"id"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
	Level  int    `json:"level,omitempty"`
	Lang   string `json:"lang,omitempty"`
	Number int    `json:"number,omitempty"`
}

// Scenario is a single named streaming fixture: an input string fed
// one rune at a time followed by Close, and the block sequence the
// reducer must produce.
type Scenario struct {
	Name   string  `json:"name"`
	Input  string  `json:"input"`
	Blocks []Block `json:"blocks"`
}

//go:embed scenarios.json
var scenarioData []byte

// Load returns the streaming scenario fixtures.
func Load() ([]Scenario, error) {
	var scenarios []Scenario
	if err := json.Unmarshal(scenarioData, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}
