// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical units produced from command-line
// arguments.
//
// A Token is a view: its strings are slices of the arguments it was lexed
// from. An OwnToken holds private copies and can outlive the argument list.
// The only way between the two is Token.Own and OwnToken.Token.
package token

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	KindPositional Kind = iota
	KindShort
	KindLong
	KindDashDash
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindShort:
		return "short"
	case KindLong:
		return "long"
	case KindDashDash:
		return "dashdash"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of the argument stream.
//
// Which fields are meaningful depends on Kind:
//
//	KindPositional  Text
//	KindShort       Rune, Value/HasValue
//	KindLong        Text (the key), Value/HasValue
//	KindDashDash    none
type Token struct {
	Kind     Kind
	Text     string
	Rune     rune
	Value    string
	HasValue bool
}

// Positional returns a bare value token.
func Positional(text string) Token {
	return Token{Kind: KindPositional, Text: text}
}

// Short returns a short option token without a value, e.g. -k.
func Short(key rune) Token {
	return Token{Kind: KindShort, Rune: key}
}

// ShortValue returns a short option token with a value, e.g. -k value.
func ShortValue(key rune, value string) Token {
	return Token{Kind: KindShort, Rune: key, Value: value, HasValue: true}
}

// Long returns a long option token without a value, e.g. --key.
func Long(key string) Token {
	return Token{Kind: KindLong, Text: key}
}

// LongValue returns a long option token with a value, e.g. --key value.
func LongValue(key, value string) Token {
	return Token{Kind: KindLong, Text: key, Value: value, HasValue: true}
}

// DashDash returns the -- separator token.
func DashDash() Token {
	return Token{Kind: KindDashDash}
}

// IsOption reports whether t is a short or long option.
func (t Token) IsOption() bool {
	return t.Kind == KindShort || t.Kind == KindLong
}

// Key returns the option key without dashes: the rune of a short option or
// the key of a long one. It returns "" for other kinds.
func (t Token) Key() string {
	switch t.Kind {
	case KindShort:
		return string(t.Rune)
	case KindLong:
		return t.Text
	default:
		return ""
	}
}

// Matches reports whether t is the short option short or the long option
// long. A zero short or empty long never matches.
func (t Token) Matches(short rune, long string) bool {
	switch t.Kind {
	case KindShort:
		return short != 0 && t.Rune == short
	case KindLong:
		return long != "" && t.Text == long
	default:
		return false
	}
}

// WithoutValue returns t with its value dropped.
func (t Token) WithoutValue() Token {
	t.Value, t.HasValue = "", false
	return t
}

// String renders t the way it appeared on the command line.
func (t Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case KindPositional:
		return t.Text
	case KindShort:
		b.Grow(2 + utf8.RuneLen(t.Rune) + len(t.Value))
		b.WriteByte('-')
		b.WriteRune(t.Rune)
	case KindLong:
		b.Grow(3 + len(t.Text) + len(t.Value))
		b.WriteString("--")
		b.WriteString(t.Text)
	case KindDashDash:
		return "--"
	}
	if t.HasValue {
		b.WriteByte(' ')
		b.WriteString(t.Value)
	}
	return b.String()
}

// Own returns a copy of t that shares no memory with the arguments t was
// lexed from.
func (t Token) Own() OwnToken {
	return OwnToken{
		kind:     t.Kind,
		text:     strings.Clone(t.Text),
		r:        t.Rune,
		value:    strings.Clone(t.Value),
		hasValue: t.HasValue,
	}
}

// OwnToken is the owning counterpart of Token.
type OwnToken struct {
	kind     Kind
	text     string
	r        rune
	value    string
	hasValue bool
}

// Token returns the view of o.
func (o OwnToken) Token() Token {
	return Token{
		Kind:     o.kind,
		Text:     o.text,
		Rune:     o.r,
		Value:    o.value,
		HasValue: o.hasValue,
	}
}

// Kind returns the variant of o.
func (o OwnToken) Kind() Kind { return o.kind }

func (o OwnToken) String() string {
	return o.Token().String()
}
