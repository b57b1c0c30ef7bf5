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
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/renumber/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte, filename string) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config holds defaults for a run. Command-line values win over it.
type Config struct {
	Pattern *string  `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"` // Rename pattern
	Yes     bool     `json:"yes,omitempty" yaml:"yes,omitempty" hcl:"yes,optional"`             // Rename without asking
	DryRun  bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"` // Only print the plan
	Ignore  []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`    // Globs for files to leave alone
}

// 🎯 Load loads the configuration from a file. The format follows the
// extension: .yaml/.yml, .hcl or .json.
func Load(ctx context.Context, fs afero.Fs, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	// Read config file
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data, filepath.Base(path))
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks that the pattern compiles and the ignore globs are
// well formed.
func (cfg *Config) Validate() error {
	if cfg.Pattern != nil {
		if _, err := pattern.Compile(*cfg.Pattern); err != nil {
			return errors.Errorf("pattern: %w", err)
		}
	}
	for i, glob := range cfg.Ignore {
		if strings.TrimSpace(glob) == "" {
			return errors.Errorf("ignore[%d]: empty pattern", i)
		}
		if !doublestar.ValidatePattern(glob) {
			return errors.Errorf("ignore[%d]: invalid pattern %q", i, glob)
		}
	}
	return nil
}

// PatternOr returns the configured pattern, or fallback when none is set.
func (cfg *Config) PatternOr(fallback string) string {
	if cfg.Pattern == nil {
		return fallback
	}
	return *cfg.Pattern
}
