// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tui decorates terminal output.
package tui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var isTerminalFn = term.IsTerminal

// Colorizer wraps text in color escapes when enabled.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for the file descriptor fd. Color is
// disabled when NO_COLOR is set, TERM is empty or "dumb", or fd is not a
// terminal.
func NewColorizer(fd int) Colorizer {
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	if !isTerminalFn(fd) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled {
		return text
	}
	p := color.New(attrs...)
	p.EnableColor()
	return p.Sprint(text)
}

func (c Colorizer) Red(text string) string   { return c.wrap(text, color.FgRed) }
func (c Colorizer) Green(text string) string { return c.wrap(text, color.FgGreen) }
func (c Colorizer) Dim(text string) string   { return c.wrap(text, color.FgHiBlack) }
