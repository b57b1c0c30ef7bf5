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

package scan

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/renumber/pkg/pattern"
	"github.com/walteh/renumber/pkg/sequence"
	"gitlab.com/tozd/go/errors"
)

// 📋 Result is the classification of one directory level.
type Result struct {
	Dir     string              // Directory that was scanned
	Skipped []string            // Conforming files, in listing order
	Pending []string            // Files to rename, sorted by path
	Ignored []string            // Files excluded by an ignore glob
	Used    *sequence.Allocator // Numbers carried by conforming files
}

// 🔍 Scanner classifies the regular files of a directory against a pattern.
type Scanner struct {
	fs      afero.Fs
	pattern *pattern.Pattern
	ignore  []string
}

// 🏭 New creates a scanner. Ignore globs use doublestar syntax and are
// matched against file names.
func New(fs afero.Fs, p *pattern.Pattern, ignore ...string) (*Scanner, error) {
	if fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if p == nil {
		return nil, errors.Errorf("pattern is required")
	}
	for _, glob := range ignore {
		if !doublestar.ValidatePattern(glob) {
			return nil, errors.Errorf("invalid ignore pattern %q", glob)
		}
	}
	return &Scanner{fs: fs, pattern: p, ignore: ignore}, nil
}

// 📂 Scan lists dir (not recursively) and sorts its regular files into
// conforming, pending and ignored. Directories, symlinks and special files
// are never listed, though a conforming name among them keeps its number
// out of circulation.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	res := &Result{
		Dir:  dir,
		Used: sequence.NewAllocator(),
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("scanning %s: %w", dir, err)
		}

		if !entry.Mode().IsRegular() {
			// never renamed, but a conforming name still holds its number so
			// no file is renamed onto it
			if n, ok, _ := s.pattern.Match(entry.Name()); ok {
				res.Used.Use(n)
			}
			logger.Debug().Str("name", entry.Name()).Str("mode", entry.Mode().String()).Msg("not a regular file")
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)

		if s.ignored(name) {
			// an ignored file still holds its number so nothing is renamed onto it
			if n, ok, _ := s.pattern.Match(name); ok {
				res.Used.Use(n)
			}
			logger.Debug().Str("path", path).Msg("ignored")
			res.Ignored = append(res.Ignored, path)
			continue
		}

		n, ok, err := s.pattern.Match(name)
		if err != nil {
			return nil, errors.Errorf("matching %s: %w", path, err)
		}
		if ok {
			logger.Debug().Str("path", path).Uint64("number", n).Msg("already conforms")
			res.Used.Use(n)
			res.Skipped = append(res.Skipped, path)
			continue
		}

		res.Pending = append(res.Pending, path)
	}

	slices.Sort(res.Pending)

	logger.Debug().
		Str("dir", dir).
		Str("matcher", s.pattern.Expr()).
		Int("skipped", len(res.Skipped)).
		Int("pending", len(res.Pending)).
		Int("ignored", len(res.Ignored)).
		Msg("directory scanned")

	return res, nil
}

// ignored reports whether name matches any ignore glob. Globs were
// validated in New, so match errors cannot occur.
func (s *Scanner) ignored(name string) bool {
	for _, glob := range s.ignore {
		if ok, _ := doublestar.Match(glob, name); ok {
			return true
		}
	}
	return false
}
