// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer turns command-line arguments into tokens.
//
// Parsing notes:
//   - "-xyz" is three short options x, y and z. None of them takes a value, so
//     "-xyz value" is three shorts and a positional; write "-xy -z value" to
//     bind the value to z.
//   - "-x -y" is two short options.
//   - "-x -" is the short option x with the value "-" (see Options.StrictDash).
//   - A lone "-" is the positional argument "-".
//   - Everything after "--" is positional.
//   - Short options are keyed by rune. A byte in a short cluster that is not
//     valid UTF-8 becomes utf8.RuneError, so "-\xff" renders as "-\uFFFD"
//     and not as the raw argument. Long keys, values and positionals keep
//     their bytes.
package lexer

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/vvvv/pkg/token"
)

// Options tunes the lexer.
type Options struct {
	// StrictDash stops the literal "-" from being taken as the value of a
	// preceding option; it stays a positional argument instead.
	StrictDash bool
}

// Lexer is a single-pass, forward-only tokenizer over an argument list.
// The zero value is an exhausted lexer.
type Lexer struct {
	args []string
	pos  int
	opts Options

	// remainder of a short-option cluster still to be emitted
	shorts string
	off    int

	posOnly bool
}

// New returns a lexer over args. args must not include the program name.
func New(args []string) *Lexer {
	return &Lexer{args: args}
}

// NewWithOptions returns a lexer over args using opts.
func NewWithOptions(args []string, opts Options) *Lexer {
	return &Lexer{args: args, opts: opts}
}

// Tokenize lexes all of args.
func Tokenize(args []string) []token.Token {
	toks := make([]token.Token, 0, len(args))
	for tok := range New(args).All() {
		toks = append(toks, tok)
	}
	return toks
}

// Next returns the next token. The boolean is false once the arguments and
// any queued cluster characters are exhausted.
func (lx *Lexer) Next() (token.Token, bool) {
	if lx.off < len(lx.shorts) {
		r, size := utf8.DecodeRuneInString(lx.shorts[lx.off:])
		lx.off += size
		if lx.off == len(lx.shorts) {
			lx.shorts, lx.off = "", 0
		}
		return token.Short(r), true
	}

	if lx.pos >= len(lx.args) {
		return token.Token{}, false
	}
	arg := lx.args[lx.pos]
	lx.pos++

	if lx.posOnly {
		return token.Positional(arg), true
	}

	switch {
	case arg == "--":
		lx.posOnly = true
		return token.DashDash(), true
	case strings.HasPrefix(arg, "--"):
		key := arg[2:]
		if v, ok := lx.value(); ok {
			return token.LongValue(key, v), true
		}
		return token.Long(key), true
	case arg == "-":
		return token.Positional(arg), true
	case strings.HasPrefix(arg, "-"):
		keys := arg[1:]
		r, size := utf8.DecodeRuneInString(keys)
		if size < len(keys) {
			lx.shorts, lx.off = keys, size
			return token.Short(r), true
		}
		if v, ok := lx.value(); ok {
			return token.ShortValue(r, v), true
		}
		return token.Short(r), true
	default:
		return token.Positional(arg), true
	}
}

// value consumes the next argument when it can be an option value: anything
// that does not look like an option, plus "-" unless StrictDash is set.
func (lx *Lexer) value() (string, bool) {
	if lx.pos >= len(lx.args) {
		return "", false
	}
	next := lx.args[lx.pos]
	if next == "-" {
		if lx.opts.StrictDash {
			return "", false
		}
	} else if strings.HasPrefix(next, "-") {
		return "", false
	}
	lx.pos++
	return next, true
}

// All returns an iterator over the remaining tokens.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok, ok := lx.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Consumed reports how many raw arguments have been read so far.
func (lx *Lexer) Consumed() int {
	return lx.pos
}

// PositionalOnly reports whether a "--" has been seen.
func (lx *Lexer) PositionalOnly() bool {
	return lx.posOnly
}
