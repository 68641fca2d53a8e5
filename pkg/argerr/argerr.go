// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argerr defines the errors produced while building a value from
// command-line tokens.
//
// Error carries a caller-chosen payload type E for value conversion failures.
// Like tokens, errors come in a view form (Error, holding token.Token) and an
// owning form (OwnError, holding token.OwnToken).
package argerr

import (
	"errors"
	"fmt"

	"github.com/yeetrun/vvvv/pkg/token"
)

// Sentinel errors returned by switch and counter implementations.
var (
	// ErrSwitchAlreadySet is returned when a switch is set a second time.
	ErrSwitchAlreadySet = errors.New("switch already set")

	// ErrTooManyOptions is returned when a counter cannot be incremented.
	ErrTooManyOptions = errors.New("too many options")
)

// Kind classifies an Error.
type Kind uint8

const (
	_ Kind = iota
	// UnknownOption: the option key is not recognized.
	UnknownOption
	// UnexpectedMulti: the option was already given.
	UnexpectedMulti
	// ExpectedValue: the option requires a value and has none.
	ExpectedValue
	// UnexpectedValue: the option is a flag but carries a value.
	UnexpectedValue
	// ExpectedPositional: a positional argument was required.
	ExpectedPositional
	// UnexpectedPositional: no more positional arguments are accepted.
	UnexpectedPositional
	// RequiredOption: a required option never appeared.
	RequiredOption
	// TooManyOptions: a counter overflowed.
	TooManyOptions
	// ValueParse: the caller failed to convert a value.
	ValueParse
)

func (k Kind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case UnexpectedMulti:
		return "option given more than once"
	case ExpectedValue:
		return "option requires a value"
	case UnexpectedValue:
		return "option does not take a value"
	case ExpectedPositional:
		return "missing positional argument"
	case UnexpectedPositional:
		return "unexpected positional argument"
	case RequiredOption:
		return "missing required option"
	case TooManyOptions:
		return "option given too many times"
	case ValueParse:
		return "invalid value"
	default:
		return fmt.Sprintf("argerr.Kind(%d)", uint8(k))
	}
}

// Error is a build failure. Token is the offending token for every kind
// except RequiredOption, which names the missing option in Option instead.
// For ValueParse the Token is optional and Custom holds the payload.
type Error[E any] struct {
	Kind   Kind
	Token  token.Token
	Option string
	Custom E

	hasToken bool
}

// Unknown returns an UnknownOption error for tok.
func Unknown[E any](tok token.Token) *Error[E] { return withToken[E](UnknownOption, tok) }

// Multi returns an UnexpectedMulti error for tok.
func Multi[E any](tok token.Token) *Error[E] { return withToken[E](UnexpectedMulti, tok) }

// NeedValue returns an ExpectedValue error for tok.
func NeedValue[E any](tok token.Token) *Error[E] { return withToken[E](ExpectedValue, tok) }

// NoValue returns an UnexpectedValue error for tok.
func NoValue[E any](tok token.Token) *Error[E] { return withToken[E](UnexpectedValue, tok) }

// NeedPositional returns an ExpectedPositional error for tok.
func NeedPositional[E any](tok token.Token) *Error[E] { return withToken[E](ExpectedPositional, tok) }

// ExtraPositional returns an UnexpectedPositional error for tok.
func ExtraPositional[E any](tok token.Token) *Error[E] {
	return withToken[E](UnexpectedPositional, tok)
}

// TooMany returns a TooManyOptions error for tok.
func TooMany[E any](tok token.Token) *Error[E] { return withToken[E](TooManyOptions, tok) }

// Required returns a RequiredOption error naming key.
func Required[E any](key string) *Error[E] {
	return &Error[E]{Kind: RequiredOption, Option: key}
}

// Parse returns a ValueParse error carrying payload for the value of tok.
func Parse[E any](tok token.Token, payload E) *Error[E] {
	e := withToken[E](ValueParse, tok)
	e.Custom = payload
	return e
}

// Custom returns a ValueParse error carrying payload and no token.
func Custom[E any](payload E) *Error[E] {
	return &Error[E]{Kind: ValueParse, Custom: payload}
}

func withToken[E any](k Kind, tok token.Token) *Error[E] {
	return &Error[E]{Kind: k, Token: tok, hasToken: true}
}

// HasToken reports whether e refers to an offending token.
func (e *Error[E]) HasToken() bool { return e.hasToken }

// ErrorKind returns e.Kind.
func (e *Error[E]) ErrorKind() Kind { return e.Kind }

func (e *Error[E]) Error() string {
	switch {
	case e.Kind == RequiredOption:
		return fmt.Sprintf("%s: %s", e.Kind, e.Option)
	case e.Kind == ValueParse && e.hasToken:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Token, e.Custom)
	case e.Kind == ValueParse:
		return fmt.Sprintf("%s: %v", e.Kind, e.Custom)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Token)
	}
}

// Unwrap exposes the custom payload when it is itself an error. Counter
// overflows unwrap to ErrTooManyOptions.
func (e *Error[E]) Unwrap() error {
	if err, ok := any(e.Custom).(error); ok {
		return err
	}
	if e.Kind == TooManyOptions {
		return ErrTooManyOptions
	}
	return nil
}

// Own returns the owning form of e. The payload is carried unchanged.
func (e *Error[E]) Own() *OwnError[E] {
	return &OwnError[E]{
		Kind:     e.Kind,
		Token:    e.Token.Own(),
		Option:   e.Option,
		Custom:   e.Custom,
		hasToken: e.hasToken,
	}
}

// Owned implements Owner.
func (e *Error[E]) Owned() error { return e.Own() }

// OwnError is the owning counterpart of Error.
type OwnError[E any] struct {
	Kind   Kind
	Token  token.OwnToken
	Option string
	Custom E

	hasToken bool
}

// Borrow returns the view form of e.
func (e *OwnError[E]) Borrow() *Error[E] {
	return &Error[E]{
		Kind:     e.Kind,
		Token:    e.Token.Token(),
		Option:   e.Option,
		Custom:   e.Custom,
		hasToken: e.hasToken,
	}
}

func (e *OwnError[E]) Error() string { return e.Borrow().Error() }

// Unwrap exposes the custom payload when it is itself an error.
func (e *OwnError[E]) Unwrap() error { return e.Borrow().Unwrap() }

// ErrorKind returns e.Kind.
func (e *OwnError[E]) ErrorKind() Kind { return e.Kind }

// Owned implements Owner; e is already owned.
func (e *OwnError[E]) Owned() error { return e }

// Owner is implemented by errors that can produce an owning copy of
// themselves without the caller knowing their payload type.
type Owner interface {
	error
	Owned() error
}

type kinded interface {
	ErrorKind() Kind
}

// KindOf returns the Kind of the first Error or OwnError in err's chain, or
// zero if there is none.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return 0
}

// Is reports whether err's chain contains an Error or OwnError of kind k.
func Is(err error, k Kind) bool {
	return k != 0 && KindOf(err) == k
}
