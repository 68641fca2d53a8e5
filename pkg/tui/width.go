// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"fortio.org/safecast"
	"golang.org/x/term"
)

// Width returns the column count of the terminal behind f. It reports false
// when f is not a terminal or its size is unknown.
func Width(f *os.File) (int, bool) {
	fd, err := safecast.Conv[int](f.Fd())
	if err != nil || !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	fd, err := safecast.Conv[int](f.Fd())
	return err == nil && term.IsTerminal(fd)
}
