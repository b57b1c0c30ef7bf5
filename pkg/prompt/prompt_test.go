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

package prompt

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlways(t *testing.T) {
	ctx := context.Background()
	assert.True(t, Always(true).Confirm(ctx, Question), "Always(true) should accept")
	assert.False(t, Always(false).Confirm(ctx, Question), "Always(false) should decline")
}

func TestConfirmFunc(t *testing.T) {
	var asked []string
	c := ConfirmFunc(func(_ context.Context, q string) bool {
		asked = append(asked, q)
		return len(asked) > 1
	})

	assert.False(t, c.Confirm(context.Background(), "first"), "first answer should be no")
	assert.True(t, c.Confirm(context.Background(), "second"), "second answer should be yes")
	assert.Equal(t, []string{"first", "second"}, asked, "questions should be passed through")
}

func TestTerminalNonInteractive(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err, "creating pipe should succeed")
	defer r.Close()
	defer w.Close()

	term := NewTerminal(r)
	term.show = func(string, bool, func()) (bool, error) {
		t.Fatal("prompt should not be shown without a terminal")
		return true, nil
	}

	assert.False(t, term.Confirm(context.Background(), Question), "a pipe should decline")
	assert.False(t, NewTerminal(nil).Confirm(context.Background(), Question), "no input should decline")
}

func TestTerminalAnswers(t *testing.T) {
	tests := []struct {
		name string
		show showFunc
		ctx  func() context.Context
		want bool
	}{
		{
			name: "accepted",
			show: func(q string, def bool, _ func()) (bool, error) { return q == Question && def, nil },
			want: true,
		},
		{
			name: "declined",
			show: func(string, bool, func()) (bool, error) { return false, nil },
			want: false,
		},
		{
			name: "error_declines",
			show: func(string, bool, func()) (bool, error) { return true, errors.New("read failed") },
			want: false,
		},
		{
			name: "interrupt_declines",
			show: func(_ string, _ bool, onInterrupt func()) (bool, error) {
				onInterrupt()
				return true, nil
			},
			want: false,
		},
		{
			name: "cancelled_context_declines",
			show: func(string, bool, func()) (bool, error) { return true, nil },
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term := &Terminal{defaultValue: true, show: tt.show}
			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			got := term.answer(ctx, Question)
			assert.Equal(t, tt.want, got, "answer should match")
		})
	}
}
