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

// Package prompt asks the user whether a rename may proceed.
package prompt

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// Question is asked once per pending file.
const Question = "Do you wish to proceed?"

// 🎯 Confirmer decides whether a single rename goes ahead.
type Confirmer interface {
	Confirm(ctx context.Context, question string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, question string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, question string) bool {
	return f(ctx, question)
}

// Always returns a Confirmer that gives the same answer every time.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(context.Context, string) bool { return answer })
}

// showFunc displays a yes/no prompt; onInterrupt runs if the user aborts it.
type showFunc func(question string, defaultValue bool, onInterrupt func()) (bool, error)

// 🖥️ Terminal asks on an interactive terminal. Any failure to get an answer
// counts as a no.
type Terminal struct {
	in           *os.File
	defaultValue bool
	show         showFunc
}

// 🏭 NewTerminal creates a terminal confirmer reading from in. The default
// answer is yes.
func NewTerminal(in *os.File) *Terminal {
	return &Terminal{
		in:           in,
		defaultValue: true,
		show:         showPterm,
	}
}

// Confirm implements Confirmer.
func (t *Terminal) Confirm(ctx context.Context, question string) bool {
	if !t.interactive() {
		zerolog.Ctx(ctx).Debug().Msg("stdin is not a terminal, declining")
		return false
	}
	return t.answer(ctx, question)
}

func (t *Terminal) answer(ctx context.Context, question string) bool {
	logger := zerolog.Ctx(ctx)

	if ctx.Err() != nil {
		return false
	}

	interrupted := false
	ok, err := t.show(question, t.defaultValue, func() { interrupted = true })
	if err != nil {
		logger.Debug().Err(err).Msg("prompt failed, declining")
		return false
	}
	if interrupted {
		logger.Debug().Msg("prompt interrupted, declining")
		return false
	}
	return ok
}

func (t *Terminal) interactive() bool {
	if t.in == nil {
		return false
	}
	fd := t.in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func showPterm(question string, defaultValue bool, onInterrupt func()) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		WithOnInterruptFunc(onInterrupt).
		Show(question)
}
