// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import "strings"

// Options carries the only tunable the public API exposes: a cap on the
// total number of user-visible characters in the output (spec §6.1).
// CharsLimit is -1 for unlimited, matching spec's "default -1" convention.
type Options struct {
	CharsLimit int

	// TermWriter and PrettyPrinter override the §6.4 collaborators; nil
	// selects the package defaults (collab.go).
	TermWriter    TermWriter
	PrettyPrinter PrettyPrinter
}

func (o Options) charsLimit() int {
	if o.CharsLimit == 0 {
		return -1
	}
	return o.CharsLimit
}

func (o Options) termWriter() TermWriter {
	if o.TermWriter != nil {
		return o.TermWriter
	}
	return defaultTermWriter
}

func (o Options) prettyPrinter() PrettyPrinter {
	if o.PrettyPrinter != nil {
		return o.PrettyPrinter
	}
	return defaultPrettyPrinter
}

// DefaultOptions matches the spec's documented defaults: no chars limit.
var DefaultOptions = Options{CharsLimit: -1}

// renderer carries the options of one render call. The folded state of the
// second pass (remaining budget, count of big directives left, running
// indent column) lives in renderTokens' local variables.
type renderer struct {
	opts Options
}

// renderTokens implements the two-pass algorithm of spec §4.3: build_small
// renders every small directive and tallies counters; if there are no big
// directives the small pass is the final output; otherwise build_limited
// renders the big directives under a shrinking per-directive budget.
func renderTokens(toks []Token, opts Options) (string, error) {
	r := &renderer{opts: opts}

	type piece struct {
		lit    string // rendered/literal text (may be empty, e.g. ~i)
		big    *Directive
	}
	pieces := make([]piece, 0, len(toks))
	var c counters

	for _, t := range toks {
		if t.IsLit {
			s := string(rune(t.Lit))
			pieces = append(pieces, piece{lit: s})
			c.other += charCount(s, Latin1)
			continue
		}
		d := t.Dir
		if d.Control.isBig() {
			pieces = append(pieces, piece{big: d})
			if d.Control == CPrettyLow || d.Control == CPrettyHigh {
				c.p++
			} else {
				c.w++
			}
			continue
		}
		s, err := renderSmall(d)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, piece{lit: s})
		c.other += charCount(s, Latin1)
	}

	if c.total() == 0 {
		var b strings.Builder
		for _, p := range pieces {
			b.WriteString(p.lit)
		}
		return b.String(), nil
	}

	limit := r.opts.charsLimit()
	remaining := -1
	if limit >= 0 {
		remaining = limit - c.other
		if remaining < 0 {
			remaining = 0
		}
	}
	count := c.total()
	column := 0

	var b strings.Builder
	for _, p := range pieces {
		if p.big == nil {
			b.WriteString(p.lit)
			column = advanceColumn(p.lit, column)
			continue
		}
		budget := -1
		if remaining >= 0 {
			if count > 0 {
				budget = remaining / count
			} else {
				budget = remaining
			}
		}
		out, err := renderBig(p.big, budget, column, r.opts)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		if remaining >= 0 {
			remaining -= charCount(out, p.big.Encoding)
			if remaining < 0 {
				remaining = 0
			}
		}
		count--
		if p.big.Control == CPrettyLow || p.big.Control == CPrettyHigh {
			column = indentColumn(out, column)
		} else {
			column = advanceColumn(out, column)
		}
	}
	return b.String(), nil
}

// advanceColumn folds literal/small-directive text into the running indent
// column the same way indentColumn does for pretty-printed output (spec
// §4.3 step 5): newline resets, tab advances to the next stop, everything
// else advances by grapheme width.
func advanceColumn(s string, col int) int {
	return indentColumn(s, col)
}

// renderSmall fully renders a small directive in place (spec's
// build_small), dispatching on control char.
func renderSmall(d *Directive) (string, error) {
	switch d.Control {
	case CTilde:
		return applyField(d, "~")
	case CNewline:
		return applyField(d, "\n")
	case CIgnore:
		return "", nil
	case CChar:
		return renderChar(d)
	case CBaseLower, CBaseUpper:
		return renderIntDirective(d, "")
	case CHexLower, CHexUpper:
		prefixArg := d.Args[1]
		prefix, ok := prefixArg.(string)
		if !ok {
			return "", newFormatError("render", -1, ErrBadArgType)
		}
		return renderIntDirective(d, prefix)
	case CPrefixLow, CPrefixHigh:
		base, err := baseFromPrecision(d.Prec, 10)
		if err != nil {
			return "", newFormatError("render", -1, err)
		}
		return renderIntDirective(d, itoa(base)+"#")
	case CFloatE, CFloatF, CFloatG:
		return renderFloat(d)
	default:
		return "", newFormatError("render", -1, ErrBadFormat)
	}
}

func applyField(d *Directive, s string) (string, error) {
	return fitField(s, d.Width, noField(), d.PadChar, d.Adjust, Latin1, ""), nil
}

func renderChar(d *Directive) (string, error) {
	v, ok := toInt(d.Args[0])
	if !ok {
		return "", newFormatError("render", -1, ErrBadArgType)
	}
	count := 1
	if pv, ok := d.Prec.get(); ok {
		count = pv
	}
	r := rune(v)
	if d.Encoding == Latin1 {
		r = rune(byte(v))
	}
	if count < 0 {
		count = 0
	}
	s := strings.Repeat(string(r), count)
	return fitField(s, d.Width, noField(), d.PadChar, d.Adjust, d.Encoding, ""), nil
}

func renderIntDirective(d *Directive, prefix string) (string, error) {
	v, ok := toInt64(d.Args[0])
	if !ok {
		return "", newFormatError("render", -1, ErrBadArgType)
	}
	base, err := baseFromPrecision(d.Prec, 10)
	if err != nil {
		return "", newFormatError("render", -1, err)
	}
	upper := d.Control == CBaseUpper || d.Control == CHexUpper || d.Control == CPrefixHigh
	s := formatIntegerVerb(v, base, upper, prefix)
	return fitField(s, d.Width, noField(), d.PadChar, d.Adjust, Latin1, ""), nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int8:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func renderFloat(d *Directive) (string, error) {
	v, ok := toFloat64(d.Args[0])
	if !ok {
		return "", newFormatError("render", -1, ErrBadArgType)
	}
	dec := floatDecompose(v, 64)
	var s string
	switch d.Control {
	case CFloatE:
		prec := 6
		if pv, ok := d.Prec.get(); ok {
			prec = pv
		}
		if prec < 2 {
			return "", newFormatError("render", -1, ErrBadPrecision)
		}
		s = formatE(dec, prec, false)
	case CFloatF:
		prec := 6
		if pv, ok := d.Prec.get(); ok {
			prec = pv
		}
		if prec < 1 {
			return "", newFormatError("render", -1, ErrBadPrecision)
		}
		s = formatF(dec, prec)
	case CFloatG:
		prec := len(dec.digits)
		if pv, ok := d.Prec.get(); ok {
			prec = pv
			if prec < 1 {
				return "", newFormatError("render", -1, ErrBadPrecision)
			}
		}
		s = formatG(dec, prec, false)
	}
	return fitField(s, d.Width, noField(), d.PadChar, d.Adjust, Latin1, ""), nil
}

// renderBig renders a big directive under its per-directive char budget
// (spec §4.3's second pass, steps 1-2). column is the running indent used
// only by the pretty-printer collaborator.
func renderBig(d *Directive, budget, column int, opts Options) (string, error) {
	switch d.Control {
	case CString:
		return renderString(d, budget)
	case CTermLower, CTermUpper:
		return renderTerm(d, budget, opts)
	case CPrettyLow, CPrettyHigh:
		return renderPretty(d, budget, column, opts)
	default:
		return "", newFormatError("render", -1, ErrBadFormat)
	}
}

// charDataToString flattens the handful of "character data" shapes the
// engine accepts for `~s` (string, []byte, []rune, fmt.Stringer-ish) into a
// plain string.
func charDataToString(v interface{}, enc Encoding) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []byte:
		return string(x), true
	case []rune:
		return string(x), true
	case fmt_Stringer:
		return x.String(), true
	default:
		return "", false
	}
}

// fmt_Stringer mirrors the teacher's Stringer interface (print.go), so that
// render.go can accept any value with a String method without importing
// the fmt package.
type fmt_Stringer interface {
	String() string
}

func renderString(d *Directive, budget int) (string, error) {
	s, ok := charDataToString(d.Args[0], d.Encoding)
	if !ok {
		return "", newFormatError("render", -1, ErrBadArgType)
	}
	if budget >= 0 {
		s = ellipsise(s, budget, d.Encoding)
	}
	return fitStringField(s, d.Width, d.Prec, d.PadChar, d.Adjust, d.Encoding)
}

// fitStringField is the §4.3 field-adjustment algorithm for ~s, where
// precision truncation slices (no **** marker — spec explicitly calls this
// out as the one exception).
func fitStringField(payload string, w, p field, padChar rune, adj Adjust, enc Encoding) (string, error) {
	if pv, ok := p.get(); ok {
		payload = truncateTo(payload, pv, enc)
		payload = adjust(payload, padding(maxInt(0, pv-charCount(payload, enc)), padChar), AdjustLeft)
	}
	if wv, ok := w.get(); ok {
		length := charCount(payload, enc)
		if length < wv {
			payload = adjust(payload, padding(wv-length, padChar), adj)
		}
	}
	return payload, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func renderTerm(d *Directive, budget int, opts Options) (string, error) {
	s := opts.termWriter().Write(d.Args[0], d.Depth, d.Encoding, d.MapsOrder)
	if budget >= 0 {
		s = ellipsise(s, budget, d.Encoding)
	}
	return fitField(s, d.Width, d.Prec, d.PadChar, d.Adjust, d.Encoding, "*"), nil
}

func renderPretty(d *Directive, budget, column int, opts Options) (string, error) {
	lineLength := 80
	s := opts.prettyPrinter().PrettyPrint(d.Args[0], budget, column, lineLength, d.Depth, d.Encoding, d.Strings, d.MapsOrder)
	return fitField(s, d.Width, d.Prec, d.PadChar, d.Adjust, d.Encoding, "*"), nil
}
