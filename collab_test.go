// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"strings"
	"testing"
)

func TestDefaultTermWriterPlainScalar(t *testing.T) {
	tests := []struct {
		v    interface{}
		want string
	}{
		{2, "2"},
		{"hi", "hi"},
		{3.5, "3.5"},
		{true, "true"},
	}
	for _, tt := range tests {
		got := defaultTermWriter.Write(tt.v, -1, Latin1, MapsOrderUndefined)
		if got != tt.want {
			t.Errorf("defaultTermWriter.Write(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestDefaultTermWriterCompositeHasNoTypeHeader(t *testing.T) {
	type point struct{ X, Y int }
	got := defaultTermWriter.Write(point{X: 3, Y: 4}, -1, Latin1, MapsOrderUndefined)
	if strings.Contains(got, "(") && strings.Contains(got, "point)") {
		t.Errorf("defaultTermWriter.Write(struct) leaked a type annotation: %q", got)
	}
	if !strings.Contains(got, "3") || !strings.Contains(got, "4") {
		t.Errorf("defaultTermWriter.Write(struct) dropped field values: %q", got)
	}
}

func TestRenderCharsWPlainInteger(t *testing.T) {
	got, err := RenderChars("~w+~w=~w", []interface{}{2, 3, 5})
	if err != nil {
		t.Fatalf("RenderChars: %v", err)
	}
	if got != "2+3=5" {
		t.Errorf("got %q, want %q", got, "2+3=5")
	}
}
