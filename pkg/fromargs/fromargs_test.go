// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fromargs

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/flagval"
	"github.com/yeetrun/vvvv/pkg/lexer"
	"github.com/yeetrun/vvvv/pkg/token"
)

type testArgs struct {
	A    string
	B    int
	C    bool
	D    uint32
	X    string
	Rest []string
}

type testPayload struct {
	Field string
	Err   error
}

type testErr = argerr.Error[testPayload]

func payloadFor(field string) func(error) testPayload {
	return func(err error) testPayload { return testPayload{Field: field, Err: err} }
}

// testInit requires -a and -b, takes switch -c, counter -d, optional -x and
// collects everything after -- into Rest.
type testInit struct {
	term bool
	a    *string
	b    *int
	c    flagval.Flag
	d    flagval.Count[uint32]
	x    *string
	rest []string

	finished int
}

func (in *testInit) Accept(tok token.Token) error {
	if in.term {
		in.rest = append(in.rest, tok.Text)
		return nil
	}
	switch tok.Kind {
	case token.KindDashDash:
		in.term = true
		return nil
	case token.KindPositional:
		return argerr.ExtraPositional[testPayload](tok)
	case token.KindLong:
		return argerr.Unknown[testPayload](tok)
	}
	switch tok.Rune {
	case 'a':
		return TryInsert(&in.a, tok, Raw, payloadFor("a"))
	case 'b':
		return TryInsert(&in.b, tok, strconv.Atoi, payloadFor("b"))
	case 'c':
		return TrySet[testPayload](&in.c, tok)
	case 'd':
		return TryInc[testPayload](&in.d, tok)
	case 'x':
		return TryInsert(&in.x, tok, Raw, payloadFor("x"))
	default:
		return argerr.Unknown[testPayload](tok)
	}
}

func (in *testInit) Finish() (testArgs, error) {
	in.finished++
	if in.a == nil {
		return testArgs{}, argerr.Required[testPayload]("a")
	}
	if in.b == nil {
		return testArgs{}, argerr.Required[testPayload]("b")
	}
	out := testArgs{A: *in.a, B: *in.b, C: in.c.IsSet(), D: in.d.N, Rest: in.rest}
	if in.x != nil {
		out.X = *in.x
	}
	return out, nil
}

func TestParseSuccess(t *testing.T) {
	args := []string{"-a", "a_val", "-c", "-ddd", "-d", "-b", "42", "--", "-a", "tail"}
	got, err := Parse(args, &testInit{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := testArgs{A: "a_val", B: 42, C: true, D: 4, Rest: []string{"-a", "tail"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

// describe flattens an error into comparable parts.
func describe(err error) (argerr.Kind, string) {
	var e *testErr
	if !errors.As(err, &e) {
		return 0, err.Error()
	}
	if e.Kind == argerr.RequiredOption {
		return e.Kind, e.Option
	}
	return e.Kind, e.Token.String()
}

func TestParseAccumulatesInOrder(t *testing.T) {
	init := &testInit{}
	_, err := Parse([]string{"-a", "one", "-a", "two"}, init)

	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Parse() error = %T %v, want Errors", err, err)
	}
	if len(errs) != 2 {
		t.Fatalf("len(errs) = %d, want 2: %v", len(errs), errs)
	}
	if k, s := describe(errs[0]); k != argerr.UnexpectedMulti || s != "-a two" {
		t.Errorf("errs[0] = %v %q, want duplicate -a two", k, s)
	}
	if k, s := describe(errs[1]); k != argerr.RequiredOption || s != "b" {
		t.Errorf("errs[1] = %v %q, want missing b", k, s)
	}
	if init.finished != 1 {
		t.Errorf("Finish called %d times, want 1", init.finished)
	}
}

func TestParseSingleErrorStillList(t *testing.T) {
	_, err := Parse([]string{"-a", "x"}, &testInit{})
	errs, ok := err.(Errors)
	if !ok || len(errs) != 1 {
		t.Fatalf("Parse() error = %#v, want one-element Errors", err)
	}
	if !argerr.Is(err, argerr.RequiredOption) {
		t.Errorf("error does not classify as RequiredOption: %v", err)
	}
}

func TestParseTokenErrorsWithSuccessfulFinish(t *testing.T) {
	_, err := Parse([]string{"-a", "x", "-b", "1", "stray", "--long"}, &testInit{})
	errs, ok := err.(Errors)
	if !ok || len(errs) != 2 {
		t.Fatalf("Parse() error = %v, want two errors", err)
	}
	if k, _ := describe(errs[0]); k != argerr.UnexpectedPositional {
		t.Errorf("errs[0] kind = %v", k)
	}
	if k, _ := describe(errs[1]); k != argerr.UnknownOption {
		t.Errorf("errs[1] kind = %v", k)
	}
}

func TestParseFirstStopsEarly(t *testing.T) {
	init := &testInit{}
	_, err := ParseFirst([]string{"-a", "one", "-a", "two", "-z"}, init)
	if k, s := describe(err); k != argerr.UnexpectedMulti || s != "-a two" {
		t.Fatalf("ParseFirst() error = %v, want duplicate -a", err)
	}
	if _, ok := err.(Errors); ok {
		t.Errorf("ParseFirst() returned a list")
	}
	if init.finished != 0 {
		t.Errorf("Finish called %d times, want 0", init.finished)
	}
}

func TestParseFirstFinishError(t *testing.T) {
	_, err := ParseFirst([]string{"-b", "3"}, &testInit{})
	if k, s := describe(err); k != argerr.RequiredOption || s != "a" {
		t.Fatalf("ParseFirst() error = %v, want missing a", err)
	}
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind argerr.Kind
	}{
		{"value parse", []string{"-b", "nope"}, argerr.ValueParse},
		{"missing value", []string{"-b"}, argerr.ExpectedValue},
		{"flag with value", []string{"-c", "yes"}, argerr.UnexpectedValue},
		{"repeated switch", []string{"-cc"}, argerr.UnexpectedMulti},
		{"counter with value", []string{"-d", "3"}, argerr.UnexpectedValue},
		{"unknown short", []string{"-q"}, argerr.UnknownOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFirst(tt.args, &testInit{})
			if got := argerr.KindOf(err); got != tt.kind {
				t.Fatalf("KindOf(%v) = %v, want %v", err, got, tt.kind)
			}
		})
	}
}

func TestValueParsePayload(t *testing.T) {
	_, err := ParseFirst([]string{"-b", "nope"}, &testInit{})
	var e *testErr
	if !errors.As(err, &e) {
		t.Fatalf("error = %T", err)
	}
	if e.Custom.Field != "b" || !errors.Is(e.Custom.Err, strconv.ErrSyntax) {
		t.Errorf("payload = %+v", e.Custom)
	}
	if e.Token != token.ShortValue('b', "nope") {
		t.Errorf("token = %v", e.Token)
	}
}

func TestCounterOverflow(t *testing.T) {
	init := &testInit{d: flagval.Count[uint32]{N: ^uint32(0)}}
	err := init.Accept(token.Short('d'))
	if !argerr.Is(err, argerr.TooManyOptions) || !errors.Is(err, argerr.ErrTooManyOptions) {
		t.Fatalf("Accept() error = %v, want TooManyOptions", err)
	}
	if init.d.N != ^uint32(0) {
		t.Errorf("counter changed on overflow: %d", init.d.N)
	}
}

func TestIterYieldsErrorsThenResult(t *testing.T) {
	type step struct {
		Kind  argerr.Kind
		Text  string
		Value testArgs
	}
	var got []step
	for v, err := range Iter([]string{"-a", "1", "-a", "2", "-q", "-b", "5"}, &testInit{}) {
		if err != nil {
			k, s := describe(err)
			got = append(got, step{Kind: k, Text: s})
			continue
		}
		got = append(got, step{Value: v})
	}
	want := []step{
		{Kind: argerr.UnexpectedMulti, Text: "-a 2"},
		{Kind: argerr.UnknownOption, Text: "-q"},
		{Value: testArgs{A: "1", B: 5}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Iter() mismatch (-want +got):\n%s", diff)
	}
}

func TestIterEmptyInputYieldsFinish(t *testing.T) {
	init := &testInit{}
	seq := Iter(nil, init)
	n := 0
	for _, err := range seq {
		n++
		if !argerr.Is(err, argerr.RequiredOption) {
			t.Errorf("err = %v, want RequiredOption", err)
		}
	}
	if n != 1 {
		t.Fatalf("yielded %d items, want 1", n)
	}
	for range seq {
		t.Fatalf("second pass yielded an item")
	}
	if init.finished != 1 {
		t.Errorf("Finish called %d times, want 1", init.finished)
	}
}

func TestIterBreakSkipsFinish(t *testing.T) {
	init := &testInit{}
	for _, err := range Iter([]string{"-q", "-b", "1"}, init) {
		if err == nil {
			t.Fatalf("first item is not an error")
		}
		break
	}
	if init.finished != 0 {
		t.Errorf("Finish called after break")
	}
}

func TestParseTokensWithOptions(t *testing.T) {
	toks := lexer.NewWithOptions([]string{"-a", "-", "-b", "1"}, lexer.Options{StrictDash: true}).All()
	_, err := ParseTokens(toks, &testInit{})
	errs, ok := err.(Errors)
	if !ok {
		t.Fatalf("ParseTokens() error = %v", err)
	}
	// -a loses its value to StrictDash, and "-" becomes a stray positional.
	kinds := make([]argerr.Kind, len(errs))
	for i, e := range errs {
		kinds[i] = argerr.KindOf(e)
	}
	want := []argerr.Kind{argerr.ExpectedValue, argerr.UnexpectedPositional, argerr.RequiredOption}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorsOwnAndMessage(t *testing.T) {
	_, err := Parse([]string{"-a", "1", "-a", "2"}, &testInit{})
	errs := err.(Errors)
	owned := errs.Own()
	for i, e := range owned {
		if _, ok := e.(*argerr.OwnError[testPayload]); !ok {
			t.Errorf("owned[%d] = %T", i, e)
		}
		if e.Error() != errs[i].Error() {
			t.Errorf("owned[%d] = %q, want %q", i, e.Error(), errs[i].Error())
		}
	}
	want := "option given more than once: -a 2\nmissing required option: b"
	if errs.Error() != want {
		t.Errorf("Errors.Error() = %q, want %q", errs.Error(), want)
	}

	plain := Errors{errors.New("plain")}.Own()
	if plain[0].Error() != "plain" {
		t.Errorf("non-owner error changed: %v", plain[0])
	}
}
