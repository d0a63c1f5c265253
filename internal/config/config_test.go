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

package config

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Style: "monokai"}, wantErr: false},
		{name: "missing style", cfg: Config{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style != "monokai" {
		t.Errorf("Style = %q, want default %q", cfg.Style, "monokai")
	}
	if cfg.NoColor {
		t.Errorf("NoColor = true, want default false")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("MDSTREAM_STYLE", "dracula")
	t.Setenv("MDSTREAM_NO_COLOR", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style != "dracula" {
		t.Errorf("Style = %q, want %q", cfg.Style, "dracula")
	}
	if !cfg.NoColor {
		t.Errorf("NoColor = false, want true")
	}
}
