// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ioformat implements a format-directed text renderer modeled on
// Erlang's io_lib:format/2: a small tilde-verb directive language, parsed
// once into a token list and rendered in two passes so that a handful of
// "big", unbounded directives (terms, pretty-printed terms, strings) can be
// fairly sized against an overall character budget.
package ioformat

// RenderChars parses format against args and renders the result as a
// string, applying opts (zero value: unlimited output, default
// collaborators). This is the direct analogue of io_lib:format/2 returning
// a flat character list rather than an I/O list.
func RenderChars(format string, args []interface{}, opts ...Options) (string, error) {
	o := resolveOptions(opts)
	toks, err := Parse(format, args)
	if err != nil {
		return "", err
	}
	return renderTokens(toks, o)
}

// RenderBytes is RenderChars encoded to UTF-8 bytes, for callers writing
// directly to an io.Writer or a byte-oriented protocol.
func RenderBytes(format string, args []interface{}, opts ...Options) ([]byte, error) {
	s, err := RenderChars(format, args, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// MustRenderChars is RenderChars for call sites with a compile-time-constant
// format string and arguments known to match it, panicking on error. Named
// and shaped after the teacher's own convention of a Must-prefixed wrapper
// around a fallible constructor (regexp.MustCompile, template.Must).
func MustRenderChars(format string, args []interface{}, opts ...Options) string {
	s, err := RenderChars(format, args, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// IndentColumn reports the terminal column reached after printing text
// starting at column start, per spec §4.5: newline resets to zero, tab
// advances to the next multiple of 8, everything else advances by display
// width. This is the same column accounting the renderer's pretty-printer
// collaborator uses internally, exposed for callers composing their own
// output above or below a RenderChars call.
func IndentColumn(text string, start int) int {
	return indentColumn(text, start)
}

func resolveOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions
	}
	return opts[0]
}
