// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrap implements a greedy word wrap measured in terminal columns.
//
// The input is a sequence of chunks that are logically one text; chunk
// boundaries mean nothing and a line may span several chunks. The output is
// a sequence of Items: a Part continues the current line, a Break ends it.
//
// The wrap is single pass and does not try to balance line lengths.
package wrap

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Kind tells how an Item ends.
type Kind uint8

const (
	// Part is text that does not end the line.
	Part Kind = iota
	// Break is text followed by a line break.
	Break
)

func (k Kind) String() string {
	if k == Break {
		return "break"
	}
	return "part"
}

// Item is one piece of wrapped output.
type Item struct {
	Kind Kind
	Text string
}

// Wrapper produces Items from its chunks. Create one with New.
type Wrapper struct {
	max    int
	spent  int
	chunks []string
	curr   string
}

// New returns a Wrapper that fits chunks into lines of max columns. It
// panics if no chunks are given.
func New(max int, chunks ...string) *Wrapper {
	if len(chunks) == 0 {
		panic("wrap: New called without chunks")
	}
	if max < 0 {
		max = 0
	}
	w := &Wrapper{max: max, curr: chunks[0], chunks: chunks[1:]}
	if w.curr == "" {
		w.advance()
	}
	return w
}

// advance moves to the next non-empty chunk, leaving curr empty at the end.
func (w *Wrapper) advance() {
	w.curr = ""
	for len(w.chunks) > 0 && w.curr == "" {
		w.curr, w.chunks = w.chunks[0], w.chunks[1:]
	}
}

// Next returns the next Item, or false when the text is exhausted.
func (w *Wrapper) Next() (Item, bool) {
	if w.curr == "" {
		return Item{}, false
	}
	l, r, width := split(w.curr, w.max-w.spent)
	if l == "" && r == w.curr && w.spent == 0 {
		// Nothing fits on an empty line: a zero limit or a rune wider than
		// the limit. Force one rune so the wrap always makes progress.
		_, size := utf8.DecodeRuneInString(w.curr)
		l, r = w.curr[:size], w.curr[size:]
		width = runewidth.StringWidth(l)
	}

	w.spent += width
	if w.max > w.spent {
		if r == "" {
			w.advance()
			return Item{Kind: Part, Text: l}, true
		}
		w.curr = r
		w.spent = 0
		return Item{Kind: Break, Text: l}, true
	}

	if r == "" {
		w.advance()
	} else {
		w.curr = r
	}
	w.spent = 0
	return Item{Kind: Break, Text: l}, true
}

// All returns an iterator over the remaining Items.
func (w *Wrapper) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			it, ok := w.Next()
			if !ok || !yield(it) {
				return
			}
		}
	}
}

// Lines wraps chunks to max columns and returns the resulting lines. Parts
// are joined; every Break ends a line. A trailing Part forms the last line.
func Lines(max int, chunks ...string) []string {
	if len(chunks) == 0 {
		return nil
	}
	var (
		lines []string
		b     strings.Builder
		open  bool
	)
	for it := range New(max, chunks...).All() {
		b.WriteString(it.Text)
		open = true
		if it.Kind == Break {
			lines = append(lines, b.String())
			b.Reset()
			open = false
		}
	}
	if open {
		lines = append(lines, b.String())
	}
	return lines
}

// split cuts s so that the left side fits in at columns, preferring to cut
// at the last space that fits. The space at a soft cut is dropped. A space
// does not count against the limit when it is the last rune considered, so
// "A B C" split at 3 is ("A B", "C"). width is the display width of left.
func split(s string, at int) (left, right string, width int) {
	var (
		cols      int
		hard      int
		hardCols  int
		lastSpace = -1
		softCols  int
	)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		cols += runewidth.RuneWidth(r)
		fit := cols
		if r == ' ' {
			fit--
		}
		if fit > at {
			break
		}
		if r == ' ' {
			lastSpace, softCols = i, cols-1
		}
		i += size
		hard, hardCols = i, cols
	}

	switch {
	case lastSpace < 0:
		return s[:hard], s[hard:], hardCols
	case hard == len(s):
		return s, "", hardCols
	default:
		return s[:lastSpace], s[lastSpace+1:], softCols
	}
}
