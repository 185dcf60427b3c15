// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// tabStop is the fixed column interval used by indentColumn, matching
// spec §4.5.
const tabStop = 8

// charCount returns the user-visible length of s under the given encoding:
// code-point count for Latin1, grapheme-cluster count for Unicode. This is
// the uniform width-accounting primitive spec §4.5 requires; the teacher's
// own `fmt.padString` instead always used utf8.RuneCountInString (format.go,
// padString) because Go's fmt has no grapheme-aware mode to choose between.
func charCount(s string, enc Encoding) int {
	if enc == Unicode {
		return uniseg.GraphemeClusterCount(s)
	}
	return utf8.RuneCountInString(s)
}

// indentColumn advances a terminal column counter through text, starting at
// start: '\n' resets to 0, '\t' advances to the next multiple of tabStop,
// any other grapheme advances by its display width (double for East-Asian
// wide characters, via go-runewidth — the teacher's fmt package has no
// column-tracking concept at all, since Go's Printf never needs to wrap
// pretty-printed output across a terminal).
func indentColumn(text string, start int) int {
	col := start
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		switch cluster {
		case "\n":
			col = 0
		case "\t":
			col += tabStop - col%tabStop
		default:
			w := 0
			for _, r := range cluster {
				if rw := runewidth.RuneWidth(r); rw > w {
					w = rw
				}
			}
			if w == 0 {
				w = 1
			}
			col += w
		}
	}
	return col
}

// truncateTo slices text down to at most n user-visible units under enc:
// byte slicing for Latin1 (the spec treats latin1 "chars" as raw bytes/code
// points), grapheme slicing for Unicode.
func truncateTo(text string, n int, enc Encoding) string {
	if n < 0 {
		return text
	}
	if enc == Latin1 {
		if len(text) <= n {
			return text
		}
		return text[:n]
	}
	if charCount(text, enc) <= n {
		return text
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(text)
	count := 0
	for count < n && g.Next() {
		b.WriteString(g.Str())
		count++
	}
	return b.String()
}

// ellipsise implements spec §4.5: if text exceeds limit user-visible units,
// keep limit-3 and append "...". If keeping exactly `limit` units leaves a
// remainder of 3 characters or fewer, the text is emitted verbatim instead
// (no ellipsis for a near-fit), avoiding an ellipsis that is longer than the
// text it would have elided.
func ellipsise(text string, limit int, enc Encoding) string {
	total := charCount(text, enc)
	if total <= limit {
		return text
	}
	if total-limit <= 3 {
		return text
	}
	if limit <= 3 {
		// Not enough room for any payload plus the ellipsis; just dump the
		// dots truncated to the limit, mirroring the `****` overflow marker
		// used elsewhere in the engine for "can't fit" situations.
		return truncateTo("...", limit, enc)
	}
	return truncateTo(text, limit-3, enc) + "..."
}

// adjust concatenates payload and padding in the order spec §4.5 specifies:
// [payload, pad] when left-adjusted, [pad, payload] otherwise.
func adjust(payload, padding string, side Adjust) string {
	if side == AdjustLeft {
		return payload + padding
	}
	return padding + payload
}

// padding returns a string of n copies of pad (a single code point), the
// generalisation of the teacher's padZeroBytes/padSpaceBytes fixed buffers
// (format.go) to an arbitrary pad rune instead of just '0' and ' '.
func padding(n int, pad rune) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n * utf8.RuneLen(pad))
	for i := 0; i < n; i++ {
		b.WriteRune(pad)
	}
	return b.String()
}

// fitField applies width F and precision P to a rendered payload of known
// char length, per spec §4.3's field-adjustment rule:
//
//	both none:    unchanged
//	field only:   pad to F with pad_char, direction = adjust
//	prec only:    truncate/pad to exactly P, left-adjusted
//	F >= P:       normalise payload to P first (overflow marker if already
//	              longer, pad if shorter), then pad to F
//
// overflow is the marker used when a precision-limited payload is already
// longer than P (a row of '*' for numeric/term forms; an empty overflow
// slices the payload instead). `~s` does not use fitField: its slicing
// field adjustment is fitStringField in render.go.
func fitField(payload string, w, p field, padChar rune, adj Adjust, enc Encoding, overflow string) string {
	wv, wok := w.get()
	pv, pok := p.get()
	length := charCount(payload, enc)

	switch {
	case !wok && !pok:
		return payload
	case wok && !pok:
		if length >= wv {
			return payload
		}
		return adjust(payload, padding(wv-length, padChar), adj)
	case !wok && pok:
		return normaliseToPrecision(payload, pv, padChar, enc, overflow)
	default: // wok && pok; if F < P the normalised payload already fills F
		payload = normaliseToPrecision(payload, pv, padChar, enc, overflow)
		length = charCount(payload, enc)
		if length >= wv {
			return payload
		}
		return adjust(payload, padding(wv-length, padChar), adj)
	}
}

func normaliseToPrecision(payload string, p int, padChar rune, enc Encoding, overflow string) string {
	length := charCount(payload, enc)
	switch {
	case length == p:
		return payload
	case length < p:
		return adjust(payload, padding(p-length, padChar), AdjustLeft)
	default:
		if overflow != "" {
			return strings.Repeat(overflow, p)
		}
		return truncateTo(payload, p, enc)
	}
}
