// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fromargs builds typed values from command-line arguments by folding
// lexed tokens into a caller-defined Initializer.
//
// Three drivers share the protocol:
//   - ParseFirst stops at the first rejected token.
//   - Parse feeds every token and reports all errors in order.
//   - Iter yields the same errors lazily, then the result.
package fromargs

import (
	"iter"
	"strings"

	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/lexer"
	"github.com/yeetrun/vvvv/pkg/token"
)

// Initializer is a partially built T.
//
// Accept integrates one token and returns an error if the token cannot be
// applied. It must not panic on user input. After a DashDash token every
// following token is a positional, so implementations usually stop checking
// option shapes from then on.
//
// Finish consumes the initializer and returns the built value or a terminal
// error, typically argerr.RequiredOption. It is called at most once.
type Initializer[T any] interface {
	Accept(tok token.Token) error
	Finish() (T, error)
}

// Errors is an ordered list of build errors: token errors in token order,
// then the Finish error if there was one.
type Errors []error

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap lets errors.Is and errors.As inspect every element.
func (e Errors) Unwrap() []error {
	return e
}

// Own returns a copy of e with every argerr.Owner replaced by its owning
// form, so the list no longer refers to the argument strings.
func (e Errors) Own() Errors {
	out := make(Errors, len(e))
	for i, err := range e {
		if o, ok := err.(argerr.Owner); ok {
			err = o.Owned()
		}
		out[i] = err
	}
	return out
}

// ParseFirst lexes args and feeds the tokens to init, returning the first
// error Accept reports. Finish is only called when every token was accepted.
func ParseFirst[T any](args []string, init Initializer[T]) (T, error) {
	return ParseFirstTokens(lexer.New(args).All(), init)
}

// ParseFirstTokens is ParseFirst over an already lexed token sequence.
func ParseFirstTokens[T any](toks iter.Seq[token.Token], init Initializer[T]) (T, error) {
	for tok := range toks {
		if err := init.Accept(tok); err != nil {
			var zero T
			return zero, err
		}
	}
	return init.Finish()
}

// Parse lexes args and feeds every token to init, collecting each error
// Accept reports. Finish is always called. The result is valid only if no
// token was rejected and Finish succeeded; otherwise the returned error is
// an Errors holding every failure in order, even when there is only one.
func Parse[T any](args []string, init Initializer[T]) (T, error) {
	return ParseTokens(lexer.New(args).All(), init)
}

// ParseTokens is Parse over an already lexed token sequence.
func ParseTokens[T any](toks iter.Seq[token.Token], init Initializer[T]) (T, error) {
	var errs Errors
	for tok := range toks {
		if err := init.Accept(tok); err != nil {
			errs = append(errs, err)
		}
	}
	v, err := init.Finish()
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return v, nil
}

// Iter returns a single-use sequence over the outcome of building from args.
// Each token error is yielded as (zero, err) when it occurs; the last item is
// the result of Finish. Even for empty args one item is yielded. Ranging over
// the sequence a second time yields nothing.
func Iter[T any](args []string, init Initializer[T]) iter.Seq2[T, error] {
	return IterTokens(lexer.New(args).All(), init)
}

// IterTokens is Iter over an already lexed token sequence.
func IterTokens[T any](toks iter.Seq[token.Token], init Initializer[T]) iter.Seq2[T, error] {
	done := false
	return func(yield func(T, error) bool) {
		if done {
			return
		}
		done = true
		var zero T
		for tok := range toks {
			if err := init.Accept(tok); err != nil && !yield(zero, err) {
				// Finish stays uncalled; the initializer is abandoned.
				return
			}
		}
		yield(init.Finish())
	}
}
