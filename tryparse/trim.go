// Copyright (c) 2026 aerth
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package tryparse

import (
	"unicode"
	"unicode/utf8"
)

// TrimRange narrows (at, n) past leading and trailing Unicode whitespace.
// Not ok when the range is empty or all whitespace; the returned indexes are
// meaningless then. Never reads outside the given range, never copies.
//
// Panics with *RangeError if (at, n) is not a sub-range of s.
func TrimRange(s string, at, n int) (int, int, bool) {
	checkRange(s, at, n)
	return trim(s, at, n)
}

// trim assumes the range was already checked. Whitespace is decoded rune by
// rune at the edges only, so a stray 0xA0 byte inside a multibyte rune is
// not mistaken for NBSP.
func trim(s string, at, n int) (int, int, bool) {
	lo, hi := at, at+n
	for lo < hi {
		r, size := utf8.DecodeRuneInString(s[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		lo += size
	}
	for hi > lo {
		r, size := utf8.DecodeLastRuneInString(s[lo:hi])
		if !unicode.IsSpace(r) {
			break
		}
		hi -= size
	}
	if lo == hi {
		return lo, 0, false
	}
	return lo, hi - lo, true
}
