// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import "testing"

func TestRenderSmallDirectivesOnly(t *testing.T) {
	toks, err := Parse("~6.2.0b~n", []interface{}{3})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := renderTokens(toks, DefaultOptions)
	if err != nil {
		t.Fatalf("renderTokens: %v", err)
	}
	want := "000011\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderFloatDirectives(t *testing.T) {
	tests := []struct {
		format string
		arg    float64
		want   string
	}{
		{"~.3f", 3.14159, "3.142"},
		{"~e", 0.000123, "1.23000e-4"},
	}
	for _, tt := range tests {
		toks, err := Parse(tt.format, []interface{}{tt.arg})
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.format, err)
		}
		got, err := renderTokens(toks, DefaultOptions)
		if err != nil {
			t.Fatalf("renderTokens(%q): %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("render(%q, %v) = %q, want %q", tt.format, tt.arg, got, tt.want)
		}
	}
}

func TestRenderStringField(t *testing.T) {
	toks, err := Parse("~10s|", []interface{}{"hi"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := renderTokens(toks, DefaultOptions)
	if err != nil {
		t.Fatalf("renderTokens: %v", err)
	}
	want := "        hi|"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBigDirectivesShareBudget(t *testing.T) {
	toks, err := Parse("~s and ~s", []interface{}{"aaaaaaaaaa", "bbbbbbbbbb"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := renderTokens(toks, Options{CharsLimit: 12})
	if err != nil {
		t.Fatalf("renderTokens: %v", err)
	}
	// " and " (5 chars) is literal/other; the remaining budget (7) is
	// re-split per directive: the first ~s gets 7/2 = 3, the second the
	// 4 left over.
	if charCount(got, Latin1) > 12+6 { // allow ellipsis overhead slack
		t.Errorf("budgeted render exceeded expectations: %q (len %d)", got, len(got))
	}
}

func TestRenderBadArgTypePropagatesError(t *testing.T) {
	toks, err := Parse("~b", []interface{}{"not an int"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = renderTokens(toks, DefaultOptions)
	if err == nil {
		t.Fatal("expected error rendering ~b with a non-integer argument")
	}
}
