// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ioformat

import "errors"

// ErrBadFormat is returned (wrapped in a FormatError) when the scanner hits
// an unrecognised control character or a directive could not be parsed.
var ErrBadFormat = errors.New("bad directive")

// ErrMissingArg is returned when a directive requires more arguments than
// remain in the argument list.
var ErrMissingArg = errors.New("missing argument")

// ErrBadArgType is returned when an argument has the wrong type for its
// position, such as a non-integer value consumed by a `*` width or a
// non-integer depth for `~W`/`~P`.
var ErrBadArgType = errors.New("argument has wrong type")

// ErrBadPrecision is returned when a control char's precision falls outside
// its accepted range (e.g. `~e` with precision < 2, `~f`/`~g` with
// precision < 1).
var ErrBadPrecision = errors.New("precision out of range")

// ErrBadBase is returned when `~b`/`~B` request a base outside [2, 36].
var ErrBadBase = errors.New("base out of range")

// FormatError reports a fatal parse or render failure, together with the
// code-point offset in the format string where it was detected.
//
// Modeled on strconv.NumError: a thin struct that carries enough context to
// build a one-line message without looping back through the formatter
// itself (the formatter cannot safely call itself to report its own
// errors).
type FormatError struct {
	// Op names the stage that failed: "parse" or "render".
	Op string
	// Position is the code-point offset into the format string, or -1 if
	// not applicable (render-time errors carry -1).
	Position int
	// Err is one of the sentinel errors above, or a wrapped cause.
	Err error
}

func (e *FormatError) Error() string {
	msg := "ioformat: " + e.Op + " error"
	if e.Position >= 0 {
		msg += " at position " + itoa(e.Position)
	}
	return msg + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

func newFormatError(op string, pos int, err error) *FormatError {
	return &FormatError{Op: op, Position: pos, Err: err}
}

// itoa avoids pulling in strconv just for a small non-negative int, mirroring
// the teacher's "use simple byte plumbing to avoid large dependency" stance
// (print.go's buffer type does the same for []byte vs bytes.Buffer).
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
