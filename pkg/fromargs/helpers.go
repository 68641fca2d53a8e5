// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fromargs

import (
	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/flagval"
	"github.com/yeetrun/vvvv/pkg/token"
)

// The helpers below are what a hand-written or generated Accept method is
// made of. E is the payload type of the argerr.Error values they return.

// TryInsert fills an empty option slot from tok. It returns an
// UnexpectedMulti error if *slot is already set, an ExpectedValue error if
// tok has no value, and a ValueParse error carrying payload(err) if parse
// fails. *slot is only written on success.
func TryInsert[E, V any](slot **V, tok token.Token, parse func(string) (V, error), payload func(error) E) error {
	if *slot != nil {
		return argerr.Multi[E](tok)
	}
	if !tok.HasValue {
		return argerr.NeedValue[E](tok)
	}
	v, err := parse(tok.Value)
	if err != nil {
		return argerr.Parse(tok, payload(err))
	}
	*slot = &v
	return nil
}

// TryAppend parses the value of tok and appends it to *dst, for options that
// may repeat.
func TryAppend[E, V any](dst *[]V, tok token.Token, parse func(string) (V, error), payload func(error) E) error {
	if !tok.HasValue {
		return argerr.NeedValue[E](tok)
	}
	v, err := parse(tok.Value)
	if err != nil {
		return argerr.Parse(tok, payload(err))
	}
	*dst = append(*dst, v)
	return nil
}

// TrySet turns on sw for the flag tok. A value on tok is an UnexpectedValue
// error and a second occurrence an UnexpectedMulti error.
func TrySet[E any](sw flagval.Switch, tok token.Token) error {
	if tok.HasValue {
		return argerr.NoValue[E](tok)
	}
	if err := sw.Set(); err != nil {
		return argerr.Multi[E](tok)
	}
	return nil
}

// TryInc increments c for the counted flag tok. A value on tok is an
// UnexpectedValue error and an overflow a TooManyOptions error.
func TryInc[E any](c flagval.Counter, tok token.Token) error {
	if tok.HasValue {
		return argerr.NoValue[E](tok)
	}
	if err := c.Inc(); err != nil {
		return argerr.TooMany[E](tok)
	}
	return nil
}

// Raw is a parse function that keeps the value as is.
func Raw(s string) (string, error) {
	return s, nil
}

// AsIs is a payload function for initializers whose payload type is error.
func AsIs(err error) error {
	return err
}
