// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import "testing"

func TestNewColorizer(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
		tty     bool
		want    bool
	}{
		{name: "enabled", term: "xterm-256color", tty: true, want: true},
		{name: "no color", noColor: "1", term: "xterm", tty: true},
		{name: "dumb", term: "dumb", tty: true},
		{name: "no term", tty: true},
		{name: "not a tty", term: "xterm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			prev := isTerminalFn
			isTerminalFn = func(int) bool { return tt.tty }
			defer func() { isTerminalFn = prev }()

			if got := NewColorizer(1).Enabled; got != tt.want {
				t.Errorf("Enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorizerWrap(t *testing.T) {
	off := Colorizer{}
	if got := off.Red("x"); got != "x" {
		t.Errorf("disabled Red = %q, want %q", got, "x")
	}
	on := Colorizer{Enabled: true}
	if got, want := on.Red("x"), "\x1b[31mx\x1b[0m"; got != want {
		t.Errorf("Red = %q, want %q", got, want)
	}
	if got, want := on.Green("ok"), "\x1b[32mok\x1b[0m"; got != want {
		t.Errorf("Green = %q, want %q", got, want)
	}
	if got, want := on.Dim("d"), "\x1b[90md\x1b[0m"; got != want {
		t.Errorf("Dim = %q, want %q", got, want)
	}
}
