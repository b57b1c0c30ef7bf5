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

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renumber/cmd/renumber/opts"
	"github.com/walteh/renumber/pkg/config"
	"github.com/walteh/renumber/pkg/log"
	"github.com/walteh/renumber/pkg/operation"
	"github.com/walteh/renumber/pkg/pattern"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the command-line flags
type rootFlags struct {
	configFile string
	yes        bool
	dryRun     bool
	ignore     []string
	debug      bool
}

// newRootCmd creates the renumber command
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "renumber <target> [pattern]",
		Short: "Rename the files of a directory into a numbered sequence",
		Long: `renumber renames the files of a directory into a numbered sequence.

Use {} in the pattern to place the number: "file-{}" renames files to
file-1.*, file-2.*, and so on. Without {} the number is appended to the
pattern, and without a pattern the file name is simply the number.

Files that already follow the pattern are skipped and keep their number.
Remaining files are renamed in path order, each taking the lowest free
number. Extensions are preserved.`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       GetVersionInfo().Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, o, flags, args)
		},
	}
	cmd.SetVersionTemplate(FormatVersion())

	addRootFlags(cmd, flags)

	return cmd
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "accept all rename requests")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "perform a dry run without renaming files")
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "config file with run defaults (.yaml, .yml, .hcl or .json)")
	cmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil, "glob of file names to leave alone (repeatable)")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// runRoot renumbers the target directory
func runRoot(cmd *cobra.Command, o *opts.RootOpts, flags *rootFlags, args []string) error {
	// only argument errors print usage
	cmd.SilenceUsage = true

	level := zerolog.WarnLevel
	if flags.debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), level)
	ctx := logger.Zerolog().WithContext(cmd.Context())
	ctx = log.NewContext(ctx, logger)

	cfg := &config.Config{}
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, o.Fs, flags.configFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	raw := cfg.PatternOr("")
	if len(args) > 1 {
		raw = args[1]
	}
	p, err := pattern.Compile(raw)
	if err != nil {
		return errors.Errorf("invalid pattern: %w", err)
	}

	yes := cfg.Yes
	if cmd.Flags().Changed("yes") {
		yes = flags.yes
	}
	dryRun := cfg.DryRun
	if cmd.Flags().Changed("dry-run") {
		dryRun = flags.dryRun
	}

	r, err := operation.New(operation.Options{
		Fs:        o.Fs,
		Pattern:   p,
		Ignore:    append(append([]string{}, cfg.Ignore...), flags.ignore...),
		DryRun:    dryRun,
		AcceptAll: yes,
		Confirmer: o.Confirmer,
	})
	if err != nil {
		return errors.Errorf("creating renamer: %w", err)
	}

	summary, err := r.Run(ctx, args[0])
	if err != nil {
		return errors.Errorf("renumbering %s: %w", args[0], err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("dir", summary.Dir).
		Int("skipped", len(summary.Skipped)).
		Int("ignored", len(summary.Ignored)).
		Int("renamed", summary.Count(operation.OutcomeRenamed)).
		Int("planned", summary.Count(operation.OutcomePlanned)).
		Int("declined", summary.Count(operation.OutcomeDeclined)).
		Int("failed", summary.Count(operation.OutcomeFailed)).
		Msg("run complete")

	return nil
}
