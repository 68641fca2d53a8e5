// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Colorizer paints text for a terminal. The zero value paints nothing.
type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only if enabled is true
// and the environment does not opt out through NO_COLOR or a dumb TERM.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Heading styles section titles such as "Usage:".
func (c Colorizer) Heading(text string) string {
	return c.Paint(text, color.Bold, color.Underline)
}

// Label styles option and argument names.
func (c Colorizer) Label(text string) string {
	return c.Paint(text, color.FgGreen)
}

// Error styles error messages.
func (c Colorizer) Error(text string) string {
	return c.Paint(text, color.FgRed)
}

// Dim styles secondary text such as defaults.
func (c Colorizer) Dim(text string) string {
	return c.Paint(text, color.FgHiBlack)
}

// Paint wraps text in the escape sequences for attrs. Empty text is never
// wrapped.
func (c Colorizer) Paint(text string, attrs ...color.Attribute) string {
	if !c.Enabled || text == "" || len(attrs) == 0 {
		return text
	}
	// color disables itself globally when stdout is not a tty; the caller
	// already decided.
	p := color.New(attrs...)
	p.EnableColor()
	return p.Sprint(text)
}
