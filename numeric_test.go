// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"math"
	"testing"
)

func TestRenderDigits(t *testing.T) {
	tests := []struct {
		v     uint64
		base  int
		upper bool
		want  string
	}{
		{0, 10, false, "0"},
		{3, 2, false, "11"},
		{255, 16, false, "ff"},
		{255, 16, true, "FF"},
		{36*36 - 1, 36, false, "zz"},
	}
	for _, tt := range tests {
		got := renderDigits(tt.v, tt.base, tt.upper)
		if got != tt.want {
			t.Errorf("renderDigits(%d, %d, %v) = %q, want %q", tt.v, tt.base, tt.upper, got, tt.want)
		}
	}
}

func TestFormatIntegerVerb(t *testing.T) {
	tests := []struct {
		v      int64
		base   int
		upper  bool
		prefix string
		want   string
	}{
		{3, 2, false, "", "11"},
		{-3, 2, false, "", "-11"},
		{255, 16, false, "16#", "16#ff"},
		{255, 16, true, "", "FF"},
	}
	for _, tt := range tests {
		got := formatIntegerVerb(tt.v, tt.base, tt.upper, tt.prefix)
		if got != tt.want {
			t.Errorf("formatIntegerVerb(%d, %d, %v, %q) = %q, want %q", tt.v, tt.base, tt.upper, tt.prefix, got, tt.want)
		}
	}
}

func TestFloatDecompose(t *testing.T) {
	d := floatDecompose(0.000123, 64)
	if d.digits != "123" || d.exp != -3 || d.negative {
		t.Errorf("floatDecompose(0.000123) = %+v", d)
	}
	z := floatDecompose(0, 64)
	if z.digits != "0" || z.exp != 1 || z.negative {
		t.Errorf("floatDecompose(0) = %+v", z)
	}
	nz := floatDecompose(math.Copysign(0, -1), 64)
	if !nz.negative {
		t.Errorf("floatDecompose(-0.0) should keep sign, got %+v", nz)
	}
}

func TestFormatE(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{0.000123, 6, "1.23000e-4"},
		{0, 6, "0.00000e+0"},
	}
	for _, tt := range tests {
		d := floatDecompose(tt.v, 64)
		got := formatE(d, tt.prec, false)
		if got != tt.want {
			t.Errorf("formatE(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestFormatF(t *testing.T) {
	tests := []struct {
		v    float64
		prec int
		want string
	}{
		{3.14159, 3, "3.142"},
		{0.0009, 2, "0.00"},
		{9.995, 2, "10.00"},
		{-1.5, 0, "-2"},
	}
	for _, tt := range tests {
		d := floatDecompose(tt.v, 64)
		got := formatF(d, tt.prec)
		if got != tt.want {
			t.Errorf("formatF(%v, %d) = %q, want %q", tt.v, tt.prec, got, tt.want)
		}
	}
}

func TestBaseFromPrecision(t *testing.T) {
	base, err := baseFromPrecision(noField(), 10)
	if err != nil || base != 10 {
		t.Errorf("default base = %d, %v, want 10, nil", base, err)
	}
	base, err = baseFromPrecision(litField(2), 10)
	if err != nil || base != 2 {
		t.Errorf("explicit base = %d, %v, want 2, nil", base, err)
	}
	_, err = baseFromPrecision(litField(37), 10)
	if err != ErrBadBase {
		t.Errorf("out of range base: got %v, want ErrBadBase", err)
	}
}
