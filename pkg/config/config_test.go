// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_yaml",
			file: "renumber.yaml",
			config: `
pattern: "scan-{}"
yes: true
dry_run: true
ignore:
  - "*.tmp"
  - ".renumber.*"
`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Pattern, "pattern should be set")
				assert.Equal(t, "scan-{}", *cfg.Pattern, "pattern should match")
				assert.True(t, cfg.Yes, "yes should be true")
				assert.True(t, cfg.DryRun, "dry_run should be true")
				assert.Equal(t, []string{"*.tmp", ".renumber.*"}, cfg.Ignore, "ignore should match")
			},
		},
		{
			name: "yml_extension",
			file: "renumber.yml",
			config: `
pattern: ""
`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Pattern, "an explicit empty pattern should be kept")
				assert.Equal(t, "", cfg.PatternOr("fallback"), "explicit empty pattern should win")
			},
		},
		{
			name:   "empty_yaml",
			file:   "renumber.yaml",
			config: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Nil(t, cfg.Pattern, "pattern should be unset")
				assert.Equal(t, "fallback", cfg.PatternOr("fallback"), "fallback should be used")
			},
		},
		{
			name: "valid_hcl",
			file: "renumber.hcl",
			config: `
pattern = "img-{}"
dry_run = true
ignore  = ["*.lock"]
`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Pattern, "pattern should be set")
				assert.Equal(t, "img-{}", *cfg.Pattern, "pattern should match")
				assert.False(t, cfg.Yes, "yes should default to false")
				assert.True(t, cfg.DryRun, "dry_run should be true")
				assert.Equal(t, []string{"*.lock"}, cfg.Ignore, "ignore should match")
			},
		},
		{
			name:   "valid_json",
			file:   "renumber.json",
			config: `{"pattern": "doc-{}", "yes": true}`,
			check: func(t *testing.T, cfg *Config) {
				require.NotNil(t, cfg.Pattern, "pattern should be set")
				assert.Equal(t, "doc-{}", *cfg.Pattern, "pattern should match")
				assert.True(t, cfg.Yes, "yes should be true")
				assert.Empty(t, cfg.Ignore, "ignore should be empty")
			},
		},
		{
			name:        "unknown_yaml_field",
			file:        "renumber.yaml",
			config:      "recursive: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			file:        "renumber.json",
			config:      `{"recursive": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "unknown_hcl_field",
			file:        "renumber.hcl",
			config:      "recursive = true\n",
			wantErr:     true,
			errContains: "decoding HCL",
		},
		{
			name:        "bad_hcl_syntax",
			file:        "renumber.hcl",
			config:      "pattern = \n",
			wantErr:     true,
			errContains: "parsing HCL",
		},
		{
			name:        "bad_pattern",
			file:        "renumber.yaml",
			config:      "pattern: \"file-(\"\n",
			wantErr:     true,
			errContains: "compiling pattern",
		},
		{
			name:        "bad_ignore",
			file:        "renumber.yaml",
			config:      "ignore: [\"[abc\"]\n",
			wantErr:     true,
			errContains: "ignore[0]: invalid pattern",
		},
		{
			name:        "blank_ignore",
			file:        "renumber.yaml",
			config:      "ignore: [\" \"]\n",
			wantErr:     true,
			errContains: "ignore[0]: empty pattern",
		},
		{
			name:        "unsupported_extension",
			file:        "renumber.toml",
			config:      "pattern = \"x\"\n",
			wantErr:     true,
			errContains: `unsupported config file extension ".toml"`,
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := "/cfg/" + tt.file
			err := afero.WriteFile(fs, path, []byte(tt.config), 0o644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, fs, path)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), afero.NewMemMapFs(), "/nope/renumber.yaml")
	require.Error(t, err, "Load should fail for a missing file")
	assert.Contains(t, err.Error(), "reading config file", "error should name the failing step")
}

func TestGetParser(t *testing.T) {
	assert.IsType(t, &YAMLParser{}, GetParser("a.yaml"))
	assert.IsType(t, &YAMLParser{}, GetParser("a.yml"))
	assert.IsType(t, &HCLParser{}, GetParser("a.hcl"))
	assert.IsType(t, &JSONParser{}, GetParser("A.JSON"))
	assert.Nil(t, GetParser("a.ini"))
}
