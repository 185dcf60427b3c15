// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

// Reversed is the sentinel comparator token that marks a `~K` directive as
// requesting reverse map ordering rather than an arbitrary comparator
// (spec §3's MapsOrder "reversed" value). Pass it as the consumed argument
// for a `~K` directive to request it, or compare against it when handling
// a parsed Directive.Comparator.
var Reversed = &struct{ name string }{"reversed"}

// Parse tokenises format and consumes arguments from args per spec §4.1,
// returning the directive/literal sequence. It is modeled on the teacher's
// doPrintf scanning loop (print.go) generalised from Go's percent-verb
// grammar to this tilde-verb grammar, but unlike doPrintf it builds an
// explicit token list rather than rendering inline, because the two-pass
// renderer needs the whole list before it can size big-directive budgets.
func Parse(format string, args []interface{}) ([]Token, error) {
	p := &parser{runes: []rune(format), args: args}
	var toks []Token
	for p.i < len(p.runes) {
		r := p.runes[p.i]
		if r != '~' {
			toks = append(toks, litToken(r))
			p.i++
			continue
		}
		startPos := p.i
		p.i++
		if p.i >= len(p.runes) {
			return nil, newFormatError("parse", startPos, ErrBadFormat)
		}
		tok, err := p.parseDirective(startPos)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

type parser struct {
	runes  []rune
	i      int
	args   []interface{}
	argIdx int
}

func (p *parser) peek() rune {
	if p.i >= len(p.runes) {
		return 0
	}
	return p.runes[p.i]
}

func (p *parser) nextArg() (interface{}, bool) {
	if p.argIdx >= len(p.args) {
		return nil, false
	}
	a := p.args[p.argIdx]
	p.argIdx++
	return a, true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanDigits reads a run of decimal digits starting at p.i, which must
// already point at a digit.
func (p *parser) scanDigits() int {
	n := 0
	for p.i < len(p.runes) && isDigit(p.runes[p.i]) {
		n = n*10 + int(p.runes[p.i]-'0')
		p.i++
	}
	return n
}

// parseFieldValue parses a width- or precision-shaped value: a digit run,
// or `*` consuming one integer argument. Returns field-not-present if
// neither applies.
func (p *parser) parseFieldValue(pos int) (field, error) {
	if p.peek() == '*' {
		p.i++
		v, ok := p.nextArg()
		if !ok {
			return field{}, newFormatError("parse", pos, ErrMissingArg)
		}
		iv, ok := toInt(v)
		if !ok {
			return field{}, newFormatError("parse", pos, ErrBadArgType)
		}
		return litField(iv), nil
	}
	if isDigit(p.peek()) {
		return litField(p.scanDigits()), nil
	}
	return noField(), nil
}

// parseDirective parses everything after the leading '~' through the
// control character, per the fixed sub-element order in spec §4.1.
func (p *parser) parseDirective(startPos int) (Token, error) {
	d := newDirective(0)

	leftAdjust := false
	if p.peek() == '-' {
		leftAdjust = true
		p.i++
	}
	w, err := p.parseFieldValue(startPos)
	if err != nil {
		return Token{}, err
	}
	if v, ok := w.get(); ok && v < 0 {
		// A `*`-supplied negative width also signals left-adjust, using the
		// magnitude as the field width (spec §4.1 step 1).
		leftAdjust = true
		w = litField(-v)
	}
	d.Width = w
	if leftAdjust {
		d.Adjust = AdjustLeft
	}

	if p.peek() == '.' {
		p.i++
		prec, err := p.parseFieldValue(startPos)
		if err != nil {
			return Token{}, err
		}
		if _, ok := prec.get(); !ok {
			// "A period with no following number specifies precision 0",
			// mirrored from the teacher's doc.go Printf-width convention.
			prec = litField(0)
		}
		d.Prec = prec

		if p.peek() == '.' {
			p.i++
			if p.peek() == '*' {
				p.i++
				v, ok := p.nextArg()
				if !ok {
					return Token{}, newFormatError("parse", startPos, ErrMissingArg)
				}
				r, ok := toRune(v)
				if !ok {
					return Token{}, newFormatError("parse", startPos, ErrBadArgType)
				}
				d.PadChar = r
			} else {
				if p.i >= len(p.runes) {
					return Token{}, newFormatError("parse", startPos, ErrBadFormat)
				}
				d.PadChar = p.runes[p.i]
				p.i++
			}
		}
	}

modifiers:
	for p.i < len(p.runes) {
		switch p.runes[p.i] {
		case 't':
			d.Encoding = Unicode
			p.i++
		case 'l':
			d.Strings = false
			p.i++
		case 'k':
			d.MapsOrder = MapsOrderOrdered
			p.i++
		case 'K':
			p.i++
			v, ok := p.nextArg()
			if !ok {
				return Token{}, newFormatError("parse", startPos, ErrMissingArg)
			}
			if v == Reversed {
				d.MapsOrder = MapsOrderReversed
			} else {
				d.MapsOrder = MapsOrderComparator
				d.Comparator = v
			}
		default:
			break modifiers
		}
	}

	if p.i >= len(p.runes) {
		return Token{}, newFormatError("parse", startPos, ErrBadFormat)
	}
	c := ControlChar(p.runes[p.i])
	p.i++
	return p.dispatch(c, d, startPos)
}

// dispatch consumes the control-char-specific argument(s) per the table in
// spec §4.3 and returns the finished directive token.
func (p *parser) dispatch(c ControlChar, d Directive, pos int) (Token, error) {
	d.Control = c
	switch c {
	case CTilde, CNewline:
		// zero args

	case CIgnore:
		v, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		d.Args = []interface{}{v}

	case CChar, CBaseLower, CBaseUpper, CPrefixLow, CPrefixHigh,
		CFloatE, CFloatF, CFloatG, CString:
		v, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		d.Args = []interface{}{v}

	case CHexLower, CHexUpper:
		v, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		prefix, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		d.Args = []interface{}{v, prefix}

	case CTermLower, CPrettyLow:
		v, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		d.Args = []interface{}{v}
		d.Depth = -1

	case CTermUpper, CPrettyHigh:
		v, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		depthArg, ok := p.nextArg()
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrMissingArg)
		}
		depth, ok := toInt(depthArg)
		if !ok {
			return Token{}, newFormatError("parse", pos, ErrBadArgType)
		}
		d.Args = []interface{}{v}
		d.Depth = depth

	default:
		return Token{}, newFormatError("parse", pos, ErrBadFormat)
	}
	return dirToken(&d), nil
}

// toInt extracts an int from the handful of numeric-ish types callers
// reasonably pass for widths, precisions, and depths.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// toRune extracts a rune from an int-like value or a single-rune string,
// for pad chars supplied via `.*`.
func toRune(v interface{}) (rune, bool) {
	switch n := v.(type) {
	case rune:
		return n, true
	case string:
		rs := []rune(n)
		if len(rs) == 1 {
			return rs[0], true
		}
		return 0, false
	default:
		if iv, ok := toInt(v); ok {
			return rune(iv), true
		}
		return 0, false
	}
}
