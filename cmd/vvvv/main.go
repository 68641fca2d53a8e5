// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vvvv inspects how command lines are lexed, wrapped and checked.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shayne/yargs"
	"github.com/yeetrun/vvvv/pkg/fromargs"
	"github.com/yeetrun/vvvv/pkg/lexer"
	"github.com/yeetrun/vvvv/pkg/token"
	"github.com/yeetrun/vvvv/pkg/tui"
)

type globalFlagsParsed struct {
	Width      int  `flag:"width" help:"Wrap output to N columns (VVVV_WIDTH)"`
	NoColor    bool `flag:"no-color" help:"Disable colored output"`
	StrictDash bool `flag:"strict-dash" help:"Do not accept - as an option value"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	if result.Flags.Width < 0 {
		return globalFlagsParsed{}, nil, fmt.Errorf("--width must not be negative, got %d", result.Flags.Width)
	}
	return result.Flags, result.RemainingArgs, nil
}

// app carries the effective settings to the command handlers.
type app struct {
	out      io.Writer
	settings settings
	style    tui.Colorizer
}

func (a *app) lexOptions() lexer.Options {
	return lexer.Options{StrictDash: a.settings.StrictDash}
}

func (a *app) tokens(args []string) iter.Seq[token.Token] {
	return lexer.NewWithOptions(args, a.lexOptions()).All()
}

func (a *app) handlers() map[string]yargs.SubcommandHandler {
	return map[string]yargs.SubcommandHandler{
		"lex":   a.handleLex,
		"wrap":  a.handleWrap,
		"check": a.handleCheck,
		"usage": a.handleUsage,
	}
}

func (a *app) groups() map[string]yargs.Group {
	return map[string]yargs.Group{
		"config": {
			Description: "Inspect the effective configuration",
			Commands: map[string]yargs.SubcommandHandler{
				"show": a.handleConfigShow,
				"path": a.handleConfigPath,
			},
		},
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	return yargs.RunSubcommandsWithGroups(ctx, args, buildHelpConfig(), globalFlagsParsed{}, a.handlers(), a.groups())
}

// commandArgs drops the command name that yargs leaves in front of the
// arguments it hands to a handler.
func commandArgs(args []string, name string) []string {
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if arg == name {
			return append(slices.Clone(args[:i]), args[i+1:]...)
		}
		break
	}
	return args
}

func (a *app) handleConfigShow(_ context.Context, args []string) error {
	if rest := commandArgs(args, "show"); len(rest) > 0 {
		return fmt.Errorf("config show takes no arguments")
	}
	return toml.NewEncoder(a.out).Encode(a.settings)
}

func (a *app) handleConfigPath(_ context.Context, args []string) error {
	if rest := commandArgs(args, "path"); len(rest) > 0 {
		return fmt.Errorf("config path takes no arguments")
	}
	if a.settings.Path == "" {
		return fmt.Errorf("no %s found", configName)
	}
	_, err := fmt.Fprintln(a.out, a.settings.Path)
	return err
}

func printCLIError(w io.Writer, style tui.Colorizer, err error) {
	if err == nil {
		return
	}
	var errs fromargs.Errors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Fprintln(w, style.Error("error:"), e)
		}
		return
	}
	fmt.Fprintln(w, style.Error("error:"), err)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "vvvv",
			Description: "Inspect how command lines are lexed into tokens, check them against a sample program and wrap help text.",
			Examples: []string{
				"vvvv lex -abc --key value -- -x",
				"vvvv check -vv -n 3 world",
				"vvvv --width 40 usage",
				"vvvv wrap -c 20 some long text to wrap",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"lex": {
				Name:        "lex",
				Description: "Print the tokens an argument list lexes into",
				Usage:       "ARGS...",
				Examples:    []string{"vvvv lex -o - -vvv --name x file"},
			},
			"wrap": {
				Name:        "wrap",
				Description: "Word-wrap text to a column limit",
				Usage:       "[-c N] [-s] [--] TEXT...",
				Examples: []string{
					"vvvv wrap -c 12 DO NOT BECOME ADDICTED TO OXYGEN",
					"vvvv wrap -s -c 12 -- DO NOT BECOME ADDICTED TO OXYGEN",
				},
			},
			"check": {
				Name:        "check",
				Description: "Parse arguments for the sample program and report every error",
				Usage:       "ARGS...",
				Examples:    []string{"vvvv check -n 2 -n 3 --bogus"},
			},
			"usage": {
				Name:        "usage",
				Description: "Print the help page of the sample program",
			},
		},
		Groups: map[string]yargs.GroupInfo{
			"config": {
				Name:        "config",
				Description: "Inspect the effective configuration",
				Commands: map[string]yargs.SubCommandInfo{
					"show": {Name: "show", Description: "Print the merged settings as TOML"},
					"path": {Name: "path", Description: "Print the path of the vvvv.toml in use"},
				},
			},
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("vvvv: ")

	globalFlags, remaining, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	loc, err := loadConfigFromCwd()
	if err != nil {
		log.Printf("failed to load config: %v", err)
	}
	s := resolveSettings(loc, os.Getenv, globalFlags, func() (int, bool) { return tui.Width(os.Stdout) })

	a := &app{
		out:      os.Stdout,
		settings: s,
		style:    tui.NewColorizer(s.Color && tui.IsTerminal(os.Stdout)),
	}
	if err := a.run(context.Background(), remaining); err != nil {
		printCLIError(os.Stderr, a.style, err)
		os.Exit(1)
	}
}
