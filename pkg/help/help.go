// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help renders --help pages for programs built on fromargs.
package help

import (
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yeetrun/vvvv/pkg/tui"
	"github.com/yeetrun/vvvv/pkg/wrap"
)

// indent is the left margin of table rows and the gap between a label and
// its description.
const indent = 4

// OptKind is the shape of an option.
type OptKind uint8

const (
	// Value options take a value: -n 3, --count 3.
	Value OptKind = iota
	// Flag options are switches.
	Flag
	// Count options may repeat: -vvv.
	Count
)

// Requirement says whether an option must be given.
type Requirement uint8

const (
	Optional Requirement = iota
	Required
	// RequiredIf options are required under the condition in Opt.If.
	RequiredIf
)

// Pos describes a positional argument.
type Pos struct {
	Name  string
	Descr string
}

// Opt describes an option. At least one of Short and Long should be set.
type Opt struct {
	Short      rune
	Long       string
	Kind       OptKind
	ValueName  string // shown as <ValueName>; "val" when empty
	Default    string
	HasDefault bool
	Descr      string
	Required   Requirement
	If         string
}

// Page is a help page. A page with Raw set is written verbatim; otherwise
// it is laid out from the remaining fields.
type Page struct {
	Name        string
	Raw         string
	Text        string
	Usage       string // generated from Name, Options and Positionals when empty
	Positionals []Pos
	Options     []Opt
	Style       tui.Colorizer
}

// String renders p for the given terminal width.
func (p Page) String(width int) string {
	if p.Raw != "" {
		return p.Raw
	}
	if width <= 0 {
		width = math.MaxInt32
	}

	var b strings.Builder
	if p.Text != "" {
		for _, para := range strings.Split(strings.TrimRight(p.Text, "\n"), "\n") {
			for _, l := range wrap.Lines(width, para) {
				b.WriteString(l)
				b.WriteByte('\n')
			}
			if para == "" {
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(p.Style.Heading("Usage:"))
	b.WriteByte('\n')
	for _, l := range wrap.Lines(width-2, p.usage()) {
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteByte('\n')
	}

	if len(p.Positionals) > 0 {
		rows := make([]row, len(p.Positionals))
		for i, pos := range p.Positionals {
			rows[i] = row{label: pos.Name, descr: []string{pos.Descr}}
		}
		p.table(&b, "Positional arguments:", rows, width)
	}
	if len(p.Options) > 0 {
		rows := make([]row, len(p.Options))
		for i, o := range p.Options {
			rows[i] = row{label: o.label(), descr: o.descr()}
		}
		p.table(&b, "Options:", rows, width)
	}
	return b.String()
}

// Write writes p rendered for width to w. width <= 0 means unbounded.
func (p Page) Write(w io.Writer, width int) error {
	_, err := io.WriteString(w, p.String(width))
	return err
}

type row struct {
	label string
	descr []string // chunks
}

func (p Page) table(b *strings.Builder, title string, rows []row, width int) {
	b.WriteByte('\n')
	b.WriteString(p.Style.Heading(title))
	b.WriteByte('\n')

	labelCols := 0
	for _, r := range rows {
		labelCols = max(labelCols, runewidth.StringWidth(r.label))
	}
	descrInd := indent + labelCols + indent
	pad := strings.Repeat(" ", descrInd)

	for _, r := range rows {
		b.WriteString(pad[:indent])
		b.WriteString(p.Style.Label(r.label))
		lines := wrap.Lines(width-descrInd, r.descr...)
		if len(lines) == 0 {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(pad[:descrInd-indent-runewidth.StringWidth(r.label)])
		for i, l := range lines {
			if i > 0 {
				b.WriteString(pad)
			}
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
}

func (p Page) usage() string {
	if p.Usage != "" {
		return p.Usage
	}
	var parts []string
	if p.Name != "" {
		parts = append(parts, p.Name)
	}
	for _, o := range p.Options {
		s := o.name()
		if o.Kind == Value {
			s += " <" + o.valueName() + ">"
		}
		if o.Required != Required {
			s = "[" + s + "]"
		}
		if o.Kind == Count {
			s += "..."
		}
		parts = append(parts, s)
	}
	for _, pos := range p.Positionals {
		parts = append(parts, "<"+pos.Name+">")
	}
	return strings.Join(parts, " ")
}

// name is the shortest spelling of o.
func (o Opt) name() string {
	if o.Short != 0 {
		return "-" + string(o.Short)
	}
	return "--" + o.Long
}

func (o Opt) valueName() string {
	if o.ValueName == "" {
		return "val"
	}
	return o.ValueName
}

// label renders -s, --long, or -s, --long followed by <value> for value
// options.
func (o Opt) label() string {
	var s string
	switch {
	case o.Short != 0 && o.Long != "":
		s = "-" + string(o.Short) + ", --" + o.Long
	case o.Short != 0:
		s = "-" + string(o.Short)
	case o.Long != "":
		s = "--" + o.Long
	}
	if o.Kind == Value {
		s += " <" + o.valueName() + ">"
	}
	return s
}

func (o Opt) descr() []string {
	chunks := []string{o.Descr}
	if o.Kind == Value && o.HasDefault {
		chunks = append(chunks, " [default: ", o.Default, "]")
	}
	if o.Required == RequiredIf && o.If != "" {
		chunks = append(chunks, " [required if ", o.If, "]")
	}
	if o.Descr == "" && len(chunks) > 1 {
		chunks[1] = strings.TrimPrefix(chunks[1], " ")
	}
	return chunks
}
