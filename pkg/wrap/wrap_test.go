// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-runewidth"
)

func TestSplit(t *testing.T) {
	for _, text := range []string{
		"DO NOT BECOME ADDICTED TO OXYGEN",
		"áá ááá áááááá áááááááá áá áááááá",
	} {
		words := strings.Split(text, " ")
		// upTo returns the first n words joined and the rest.
		upTo := func(n int) (string, string) {
			return strings.Join(words[:n], " "), strings.Join(words[n:], " ")
		}
		firstRune := string([]rune(text)[:1])

		tests := []struct {
			at          int
			left, right string
		}{
			{0, "", text},
			{1, firstRune, strings.TrimPrefix(text, firstRune)},
		}
		for _, c := range []struct{ at, words int }{
			{4, 1}, {6, 2}, {7, 2}, {12, 2}, {13, 3}, {18, 3}, {24, 4},
		} {
			l, r := upTo(c.words)
			tests = append(tests, struct {
				at          int
				left, right string
			}{c.at, l, r})
		}
		tests = append(tests, struct {
			at          int
			left, right string
		}{1 << 20, text, ""})

		for _, tt := range tests {
			l, r, w := split(text, tt.at)
			if l != tt.left || r != tt.right {
				t.Errorf("split(%q, %d) = (%q, %q), want (%q, %q)", text, tt.at, l, r, tt.left, tt.right)
			}
			if want := runewidth.StringWidth(l); w != want {
				t.Errorf("split(%q, %d) width = %d, want %d", text, tt.at, w, want)
			}
		}
	}
}

func TestSplitTrailingSpace(t *testing.T) {
	l, r, w := split("A B C", 3)
	if l != "A B" || r != "C" || w != 3 {
		t.Errorf("split = (%q, %q, %d), want (%q, %q, 3)", l, r, w, "A B", "C")
	}
}

func collect(w *Wrapper) []Item {
	var items []Item
	for it := range w.All() {
		items = append(items, it)
	}
	return items
}

func TestWrapAcrossChunks(t *testing.T) {
	got := collect(New(12, "DO NOT BECOME", " ", "ADDICTED TO OXYGEN"))
	want := []Item{
		{Break, "DO NOT"},
		{Part, "BECOME"},
		{Part, " "},
		{Break, "ADDIC"},
		{Break, "TED TO"},
		{Part, "OXYGEN"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name   string
		max    int
		chunks []string
		want   []string
	}{
		{"across chunks", 12, []string{"DO NOT BECOME", " ", "ADDICTED TO OXYGEN"}, []string{"DO NOT", "BECOME ADDIC", "TED TO", "OXYGEN"}},
		{"exact fill", 5, []string{"hello"}, []string{"hello"}},
		{"fits", 80, []string{"short"}, []string{"short"}},
		{"empty chunks skipped", 10, []string{"", "ab", "", "cd"}, []string{"abcd"}},
		{"all empty", 10, []string{""}, nil},
		{"no chunks", 10, nil, nil},
		{"zero width", 0, []string{"ab"}, []string{"a", "b"}},
		{"negative width", -3, []string{"ab"}, []string{"a", "b"}},
		{"wide runes", 1, []string{"世界"}, []string{"世", "界"}},
		{"wide runes fit", 4, []string{"世界 世界"}, []string{"世界", "世界"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.max, tt.chunks...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lines(%d, %q) mismatch (-want +got):\n%s", tt.max, tt.chunks, diff)
			}
		})
	}
}

func TestLinesKeepWords(t *testing.T) {
	const text = "the quick brown fox ate a lazy dog and then took a long nap in the warm sun"
	for max := 5; max <= 40; max++ {
		lines := Lines(max, text)
		for _, l := range lines {
			if w := runewidth.StringWidth(l); w > max {
				t.Errorf("max %d: line %q has width %d", max, l, w)
			}
		}
		if got := strings.Join(lines, " "); got != text {
			t.Errorf("max %d: rejoined = %q", max, got)
		}
	}
}

func TestNewPanicsWithoutChunks(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("New() did not panic")
		}
	}()
	New(10)
}

func TestNextAfterEnd(t *testing.T) {
	w := New(10, "a")
	if it, ok := w.Next(); !ok || it != (Item{Part, "a"}) {
		t.Fatalf("Next() = %v, %v", it, ok)
	}
	for range 2 {
		if _, ok := w.Next(); ok {
			t.Fatalf("Next() after end returned an item")
		}
	}
}
