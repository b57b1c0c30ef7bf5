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

package operation

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/walteh/renumber/pkg/log"
	"github.com/walteh/renumber/pkg/pattern"
	"github.com/walteh/renumber/pkg/prompt"
	"github.com/walteh/renumber/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the renamer
type Options struct {
	// Fs is the filesystem holding the target directory
	Fs afero.Fs
	// Pattern is the compiled rename pattern
	Pattern *pattern.Pattern
	// Ignore lists globs for files that are never touched
	Ignore []string
	// DryRun prints the plan without renaming anything
	DryRun bool
	// AcceptAll renames without asking
	AcceptAll bool
	// Confirmer is asked once per file unless DryRun or AcceptAll is set
	Confirmer prompt.Confirmer
}

// 🏃 Renamer renumbers the files of a directory.
type Renamer struct {
	fs        afero.Fs
	pattern   *pattern.Pattern
	scanner   *scan.Scanner
	dryRun    bool
	acceptAll bool
	confirmer prompt.Confirmer
}

// 🏭 New creates a new renamer with the given options
func New(opts Options) (*Renamer, error) {
	if opts.Fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if opts.Pattern == nil {
		return nil, errors.Errorf("pattern is required")
	}
	if opts.Confirmer == nil && !opts.DryRun && !opts.AcceptAll {
		return nil, errors.Errorf("confirmer is required unless renames are accepted or dry")
	}

	scanner, err := scan.New(opts.Fs, opts.Pattern, opts.Ignore...)
	if err != nil {
		return nil, errors.Errorf("creating scanner: %w", err)
	}

	return &Renamer{
		fs:        opts.Fs,
		pattern:   opts.Pattern,
		scanner:   scanner,
		dryRun:    opts.DryRun,
		acceptAll: opts.AcceptAll,
		confirmer: opts.Confirmer,
	}, nil
}

// 🔄 Run renumbers the regular files of dir.
//
// The report goes to the log.Logger carried by ctx. Only scanning can fail. Once renaming starts, declined and failed files
// are reported and left in place, and the number they were offered goes to
// the next file.
func (r *Renamer) Run(ctx context.Context, dir string) (*Summary, error) {
	logger := log.FromContext(ctx)

	res, err := r.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, errors.Errorf("scanning: %w", err)
	}

	for _, path := range res.Skipped {
		logger.Skipping(path)
	}

	summary := &Summary{
		Dir:     dir,
		Skipped: res.Skipped,
		Ignored: res.Ignored,
		Used:    res.Used.Used(),
	}

	for _, path := range res.Pending {
		summary.Renames = append(summary.Renames, r.renameOne(ctx, logger, res, path))
	}

	return summary, nil
}

// renameOne handles a single pending file.
func (r *Renamer) renameOne(ctx context.Context, logger *log.Logger, res *scan.Result, path string) Rename {
	if !r.isFile(path) {
		logger.Zerolog().Debug().Str("path", path).Msg("no longer a regular file")
		return Rename{From: path, Outcome: OutcomeVanished}
	}

	n := res.Used.Next()
	to := filepath.Join(filepath.Dir(path), r.pattern.Name(n, path))
	rec := Rename{From: path, To: to, Number: n}

	if r.dryRun {
		logger.Proposal(path, to, true)
		res.Used.Commit()
		rec.Outcome = OutcomePlanned
		return rec
	}

	logger.Proposal(path, to, false)

	if !r.acceptAll && !r.confirmer.Confirm(ctx, prompt.Question) {
		logger.Declined(path)
		rec.Outcome = OutcomeDeclined
		return rec
	}

	if err := r.fs.Rename(path, to); err != nil {
		logger.RenameFailed(path, to, err)
		rec.Outcome = OutcomeFailed
		rec.Err = err
		return rec
	}

	logger.Renamed(path, to)
	res.Used.Commit()
	rec.Outcome = OutcomeRenamed
	return rec
}

func (r *Renamer) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
