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

import "strconv"

// Floats are not our department: these just trim with our trimmer and hand
// the rest to strconv.ParseFloat, folded into the same (value, ok) shape as
// the integer family. Whatever strconv refuses (including out-of-range), we
// refuse.

// Float64 parses s as a float64, ignoring leading/trailing whitespace.
func Float64(s string) (float64, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[lo:lo+n], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Float32 parses s as a float32, ignoring leading/trailing whitespace.
func Float32(s string) (float32, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[lo:lo+n], 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}
