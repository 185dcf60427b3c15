// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCharsBasic(t *testing.T) {
	got, err := RenderChars("~w plus ~w is ~w", []interface{}{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "1 plus 2 is 3", got)
}

func TestRenderBytesMatchesChars(t *testing.T) {
	s, err := RenderChars("~s", []interface{}{"hi"})
	require.NoError(t, err)
	b, err := RenderBytes("~s", []interface{}{"hi"})
	require.NoError(t, err)
	assert.Equal(t, s, string(b))
}

func TestRenderCharsPropagatesParseError(t *testing.T) {
	_, err := RenderChars("~w", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingArg))
}

func TestMustRenderCharsPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from MustRenderChars on bad format")
		}
	}()
	MustRenderChars("~w", nil)
}

func TestIndentColumnPublic(t *testing.T) {
	if got := IndentColumn("abc", 2); got != 5 {
		t.Errorf("IndentColumn = %d, want 5", got)
	}
}

func TestRenderCharsWithCharsLimit(t *testing.T) {
	got, err := RenderChars("~s", []interface{}{"this is a long string"}, Options{CharsLimit: 8})
	if err != nil {
		t.Fatalf("RenderChars: %v", err)
	}
	if charCount(got, Latin1) > 8 {
		t.Errorf("render exceeded chars limit: %q", got)
	}
}
