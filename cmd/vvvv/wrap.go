// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yeetrun/vvvv/pkg/argerr"
	"github.com/yeetrun/vvvv/pkg/flagval"
	"github.com/yeetrun/vvvv/pkg/fromargs"
	"github.com/yeetrun/vvvv/pkg/token"
	"github.com/yeetrun/vvvv/pkg/wrap"
)

type wrapArgs struct {
	Cols    int
	HasCols bool
	Show    bool
	Text    []string
}

// wrapInit accepts [-c N] [-s] TEXT...
type wrapInit struct {
	cols *int
	show flagval.Flag
	text []string
}

func (in *wrapInit) Accept(tok token.Token) error {
	switch {
	case tok.Kind == token.KindPositional:
		in.text = append(in.text, tok.Text)
		return nil
	case tok.Kind == token.KindDashDash:
		return nil
	case tok.Matches('c', "cols"):
		return fromargs.TryInsert(&in.cols, tok, parseCols, fromargs.AsIs)
	case tok.Matches('s', "show"):
		return fromargs.TrySet[error](&in.show, tok)
	}
	return argerr.Unknown[error](tok)
}

func (in *wrapInit) Finish() (wrapArgs, error) {
	if len(in.text) == 0 {
		return wrapArgs{}, argerr.Required[error]("TEXT")
	}
	out := wrapArgs{Show: in.show.IsSet(), Text: in.text}
	if in.cols != nil {
		out.Cols, out.HasCols = *in.cols, true
	}
	return out, nil
}

func parseCols(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative column count %d", n)
	}
	return n, nil
}

// handleWrap wraps its text arguments, joined by single spaces, to -c
// columns or the configured width. Zero columns means unbounded.
func (a *app) handleWrap(_ context.Context, args []string) error {
	args = commandArgs(args, "wrap")
	wa, err := fromargs.ParseFirstTokens(a.tokens(args), &wrapInit{})
	if err != nil {
		return err
	}
	cols := a.settings.Width
	if wa.HasCols {
		cols = wa.Cols
	}
	if cols == 0 {
		cols = math.MaxInt32
	}

	// One chunk: soft breaks only happen inside a chunk.
	text := strings.Join(wa.Text, " ")

	if wa.Show {
		for it := range wrap.New(cols, text).All() {
			fmt.Fprintf(a.out, "%s\t%q\n", a.style.Label(it.Kind.String()), it.Text)
		}
		return nil
	}
	for _, l := range wrap.Lines(cols, text) {
		fmt.Fprintln(a.out, l)
	}
	return nil
}
