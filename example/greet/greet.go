// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command greet is a small program whose arguments are parsed by a
// hand-written fromargs.Initializer.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/flagval"
	"github.com/yeetrun/vvvv/pkg/fromargs"
	"github.com/yeetrun/vvvv/pkg/help"
	"github.com/yeetrun/vvvv/pkg/token"
	"github.com/yeetrun/vvvv/pkg/tui"
)

type greetArgs struct {
	Times   uint8
	Verbose uint
	Shout   bool
	Help    bool
	Names   []string
}

type greetInit struct {
	times    *uint8
	verbose  flagval.AtMost
	shout    flagval.Flag
	help     flagval.Flag
	names    []string
	finished bool
}

func newGreetInit() *greetInit {
	return &greetInit{verbose: flagval.AtMost{Max: 2}}
}

func (in *greetInit) Accept(tok token.Token) error {
	switch tok.Kind {
	case token.KindDashDash:
		return nil
	case token.KindPositional:
		in.names = append(in.names, tok.Text)
		return nil
	}
	switch {
	case tok.Matches('n', "times"):
		return fromargs.TryInsert(&in.times, tok, parseTimes, fromargs.AsIs)
	case tok.Matches('v', "verbose"):
		return fromargs.TryInc[error](&in.verbose, tok)
	case tok.Matches(0, "shout"):
		return fromargs.TrySet[error](&in.shout, tok)
	case tok.Matches('h', "help"):
		return fromargs.TrySet[error](&in.help, tok)
	}
	return argerr.Unknown[error](tok)
}

func (in *greetInit) Finish() (greetArgs, error) {
	if in.finished {
		panic("greet: Finish called twice")
	}
	in.finished = true

	out := greetArgs{
		Times:   1,
		Verbose: in.verbose.N,
		Shout:   in.shout.IsSet(),
		Help:    in.help.IsSet(),
		Names:   in.names,
	}
	if in.times != nil {
		out.Times = *in.times
	}
	if len(out.Names) == 0 && !out.Help {
		return greetArgs{}, argerr.Required[error]("NAME")
	}
	return out, nil
}

func parseTimes(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[uint8](n)
}

func greetPage(style tui.Colorizer) help.Page {
	return help.Page{
		Name:  "greet",
		Text:  "Say hello to everyone named on the command line.",
		Style: style,
		Positionals: []help.Pos{
			{Name: "NAME", Descr: "someone to greet, may repeat"},
		},
		Options: []help.Opt{
			{Short: 'n', Long: "times", Kind: help.Value, ValueName: "N", Default: "1", HasDefault: true, Descr: "greetings per name, at most 255"},
			{Short: 'v', Long: "verbose", Kind: help.Count, Descr: "say more, up to twice"},
			{Long: "shout", Kind: help.Flag, Descr: "greet in capitals"},
			{Short: 'h', Long: "help", Kind: help.Flag, Descr: "show this help"},
		},
	}
}

func greet(w io.Writer, args greetArgs) {
	for _, name := range args.Names {
		msg := "Hello, " + name + "!"
		switch args.Verbose {
		case 1:
			msg += " Nice to see you."
		case 2:
			msg += " Nice to see you. It has been a while."
		}
		if args.Shout {
			msg = strings.ToUpper(msg)
		}
		for range args.Times {
			fmt.Fprintln(w, msg)
		}
	}
}

func main() {
	style := tui.NewColorizer(tui.IsTerminal(os.Stderr))

	var args greetArgs
	failed := false
	for v, err := range fromargs.Iter(os.Args[1:], newGreetInit()) {
		if err != nil {
			fmt.Fprintln(os.Stderr, style.Error("greet:"), err)
			failed = true
			continue
		}
		args = v
	}
	if failed {
		fmt.Fprintln(os.Stderr, "run 'greet --help' for usage")
		os.Exit(2)
	}

	if args.Help {
		width, _ := tui.Width(os.Stdout)
		page := greetPage(tui.NewColorizer(tui.IsTerminal(os.Stdout)))
		if err := page.Write(os.Stdout, width); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	greet(os.Stdout, args)
}
