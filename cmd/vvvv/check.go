// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/flagval"
	"github.com/yeetrun/vvvv/pkg/fromargs"
	"github.com/yeetrun/vvvv/pkg/help"
	"github.com/yeetrun/vvvv/pkg/token"
	"github.com/yeetrun/vvvv/pkg/tui"
)

// demoArgs is the sample program that check and usage work against.
type demoArgs struct {
	Count   uint
	Verbose int
	Shout   bool
	Output  string
	Include []string
	Name    string
	Rest    []string
}

type demoInit struct {
	count   *uint
	verbose flagval.Count[uint8]
	shout   flagval.Flag
	output  *string
	include []string
	name    *string
	rest    []string
}

func (in *demoInit) Accept(tok token.Token) error {
	switch tok.Kind {
	case token.KindDashDash:
		return nil
	case token.KindPositional:
		if in.name == nil {
			name := tok.Text
			in.name = &name
			return nil
		}
		in.rest = append(in.rest, tok.Text)
		return nil
	}
	switch {
	case tok.Matches('n', "count"):
		return fromargs.TryInsert(&in.count, tok, parseUint, fromargs.AsIs)
	case tok.Matches('v', "verbose"):
		return fromargs.TryInc[error](&in.verbose, tok)
	case tok.Matches(0, "shout"):
		return fromargs.TrySet[error](&in.shout, tok)
	case tok.Matches('o', "output"):
		return fromargs.TryInsert(&in.output, tok, fromargs.Raw, fromargs.AsIs)
	case tok.Matches('I', "include"):
		return fromargs.TryAppend(&in.include, tok, fromargs.Raw, fromargs.AsIs)
	}
	return argerr.Unknown[error](tok)
}

func (in *demoInit) Finish() (demoArgs, error) {
	if in.name == nil {
		return demoArgs{}, argerr.Required[error]("NAME")
	}
	if in.count != nil && *in.count == 0 {
		return demoArgs{}, argerr.Custom[error](errors.New("--count must be at least 1"))
	}
	verbose, err := in.verbose.Int()
	if err != nil {
		return demoArgs{}, err
	}
	out := demoArgs{
		Count:   1,
		Verbose: verbose,
		Shout:   in.shout.IsSet(),
		Output:  "-",
		Include: in.include,
		Name:    *in.name,
		Rest:    in.rest,
	}
	if in.count != nil {
		out.Count = *in.count
	}
	if in.output != nil {
		out.Output = *in.output
	}
	return out, nil
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	return uint(n), err
}

func demoPage(style tui.Colorizer) help.Page {
	return help.Page{
		Name:  "demo",
		Text:  "Greets NAME, then echoes the remaining arguments.",
		Style: style,
		Positionals: []help.Pos{
			{Name: "NAME", Descr: "who to greet"},
			{Name: "REST", Descr: "anything else, echoed back"},
		},
		Options: []help.Opt{
			{Short: 'n', Long: "count", Kind: help.Value, ValueName: "N", Default: "1", HasDefault: true, Descr: "how many times to greet"},
			{Short: 'v', Long: "verbose", Kind: help.Count, Descr: "print more, repeat for even more"},
			{Long: "shout", Kind: help.Flag, Descr: "greet in capitals"},
			{Short: 'o', Long: "output", Kind: help.Value, ValueName: "FILE", Default: "-", HasDefault: true, Descr: "where to write the greeting"},
			{Short: 'I', Long: "include", Kind: help.Value, ValueName: "DIR", Descr: "extra search directory, may repeat"},
		},
	}
}

// handleCheck parses its arguments for the sample program with the
// accumulating driver. All errors are returned together.
func (a *app) handleCheck(_ context.Context, args []string) error {
	args = commandArgs(args, "check")
	v, err := fromargs.ParseTokens(a.tokens(args), &demoInit{})
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "name\t%s\n", v.Name)
	fmt.Fprintf(tw, "count\t%d\n", v.Count)
	fmt.Fprintf(tw, "verbose\t%d\n", v.Verbose)
	fmt.Fprintf(tw, "shout\t%t\n", v.Shout)
	fmt.Fprintf(tw, "output\t%s\n", v.Output)
	fmt.Fprintf(tw, "include\t%s\n", strings.Join(v.Include, ","))
	fmt.Fprintf(tw, "rest\t%s\n", strings.Join(v.Rest, " "))
	return tw.Flush()
}

func (a *app) handleUsage(_ context.Context, args []string) error {
	if rest := commandArgs(args, "usage"); len(rest) > 0 {
		return fmt.Errorf("usage takes no arguments")
	}
	return demoPage(a.style).Write(a.out, a.settings.Width)
}
