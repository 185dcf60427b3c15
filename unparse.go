// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import "strings"

// Unparse reconstructs a (format, args) pair from a token list such that
// Parse(Unparse(toks)) reproduces an equivalent token list (spec §4.2's
// round-trip law: structural, not byte-identical — a modifier sequence
// always re-emits in canonical t/l/k-or-K order regardless of how the
// original text ordered them, since the grammar in §4.1 reads them
// greedily in any order but this function always writes them back in one
// fixed order).
func Unparse(toks []Token) (string, []interface{}) {
	var b strings.Builder
	var args []interface{}
	for _, t := range toks {
		if t.IsLit {
			b.WriteRune(rune(t.Lit))
			continue
		}
		d := t.Dir
		b.WriteByte('~')
		writeField(&b, d.Adjust, d.Width)
		if _, ok := d.Prec.get(); ok || d.PadChar != ' ' {
			b.WriteByte('.')
			writeFieldValue(&b, d.Prec)
			if d.PadChar != ' ' {
				b.WriteByte('.')
				b.WriteRune(d.PadChar)
			}
		}
		if d.Encoding == Unicode {
			b.WriteByte('t')
		}
		if !d.Strings {
			b.WriteByte('l')
		}
		switch d.MapsOrder {
		case MapsOrderOrdered:
			b.WriteByte('k')
		case MapsOrderReversed:
			b.WriteByte('K')
			args = append(args, Reversed)
		case MapsOrderComparator:
			b.WriteByte('K')
			args = append(args, d.Comparator)
		}
		b.WriteByte(byte(d.Control))
		args = append(args, d.Args...)
		if d.Control == CTermUpper || d.Control == CPrettyHigh {
			// ~W/~P consume depth as a trailing argument, not as part of
			// the directive text (spec §4.1) — re-emit it so the unparsed
			// format/args pair re-parses to the same directive.
			args = append(args, d.Depth)
		}
	}
	return b.String(), args
}

func writeField(b *strings.Builder, adj Adjust, f field) {
	if adj == AdjustLeft {
		// A bare `-` with no following width digits is itself a valid
		// directive (e.g. `~-s`), so the adjust marker must survive even
		// when no width value follows it.
		b.WriteByte('-')
	}
	if v, ok := f.get(); ok {
		b.WriteString(itoa(v))
	}
}

func writeFieldValue(b *strings.Builder, f field) {
	v, _ := f.get()
	b.WriteString(itoa(v))
}
