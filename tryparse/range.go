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
	"fmt"
	"path/filepath"
	"runtime"
)

// RangeError is the panic value for a bad (index, length) pair. Getting one
// means the CALLER is broken, not the input: ranges are supposed to be
// computed against the string they index. Parse failures never panic.
type RangeError struct {
	Index   int
	Length  int
	TextLen int
	site    string
}

func (e *RangeError) Error() string {
	if e.site == "" {
		return fmt.Sprintf("tryparse: bad range [%d:+%d] for text of length %d", e.Index, e.Length, e.TextLen)
	}
	return fmt.Sprintf("tryparse: bad range [%d:+%d] for text of length %d (from %s)", e.Index, e.Length, e.TextLen, e.site)
}

// CheckRange panics with a *RangeError unless (at, n) is a sub-range of s.
// Zero-length ranges are fine anywhere inside, including at == len(s).
func CheckRange(s string, at, n int) {
	checkRange(s, at, n)
}

// written as n > len-at so a huge at plus huge n cannot wrap around int
func checkRange(s string, at, n int) {
	if at < 0 || n < 0 || at > len(s) || n > len(s)-at {
		panic(&RangeError{Index: at, Length: n, TextLen: len(s), site: callsite(3)})
	}
}

// callsite names the frame that handed us the bad range.
// Same trick as runtime.Caller loggers everywhere: skip our own frames.
func callsite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
