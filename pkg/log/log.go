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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 Logger writes the user-facing rename report and mirrors every event
// into zerolog.
//
// Report lines go to out, failures go to errOut. Their wording is part of
// the tool's output contract; color only decorates it.
type Logger struct {
	zlog   zerolog.Logger
	out    io.Writer
	errOut io.Writer
	mu     sync.Mutex
}

// 🏭 New creates a new logger. Diagnostic records below level are dropped.
func New(out, errOut io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: errOut, NoColor: color.NoColor}).
		With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:   zlog,
		out:    out,
		errOut: errOut,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Zerolog returns the diagnostic logger.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// ⏭️ Skipping reports a file that already follows the pattern.
func (l *Logger) Skipping(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s %s\n", color.New(color.Faint).Sprint("Skipping"), path)
	l.zlog.Debug().Str("path", path).Msg("skipping conforming file")
}

// 🔄 Proposal reports a planned rename. Dry runs are marked as such.
func (l *Logger) Proposal(from, to string, dryRun bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	arrow := color.New(color.FgCyan).Sprint("->")
	if dryRun {
		fmt.Fprintf(l.out, "%s %s %s %s\n", color.New(color.FgYellow).Sprint("[Dry Run]"), from, arrow, to)
	} else {
		fmt.Fprintf(l.out, "%s %s %s\n", from, arrow, to)
	}

	l.zlog.Debug().
		Str("from", from).
		Str("to", to).
		Bool("dry_run", dryRun).
		Msg("rename proposed")
}

// ✅ Renamed records a completed rename.
func (l *Logger) Renamed(from, to string) {
	l.zlog.Debug().Str("from", from).Str("to", to).Msg("renamed")
}

// ⏸️ Declined records a rename the user turned down.
func (l *Logger) Declined(from string) {
	l.zlog.Debug().Str("path", from).Msg("rename declined")
}

// ❌ RenameFailed reports a rename the filesystem refused.
func (l *Logger) RenameFailed(from, to string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "%s %v\n", color.New(color.FgRed).Sprint("Failed to rename:"), err)
	l.zlog.Debug().Err(err).Str("from", from).Str("to", to).Msg("rename failed")
}
