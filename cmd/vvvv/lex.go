// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/yeetrun/vvvv/pkg/lexer"
)

// handleLex prints one row per token with the number of raw arguments the
// token consumed. The count is the last column so styling it does not
// disturb the alignment.
func (a *app) handleLex(_ context.Context, args []string) error {
	args = commandArgs(args, "lex")
	lx := lexer.NewWithOptions(args, a.lexOptions())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tTOKEN\tARGS")
	prev := 0
	for tok := range lx.All() {
		n := lx.Consumed()
		fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.Kind, tok, a.style.Dim(strconv.Itoa(n-prev)))
		prev = n
	}
	return tw.Flush()
}
