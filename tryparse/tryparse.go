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

// tryparse package turns text into fixed-width integers without ever wrapping
// silently: a value that does not fit its width is a failed parse, full stop.
//
// Three entry points per width. Int32(s) trims whitespace off both ends and
// then wants digits and nothing else. Int32Range(s, at, n) is the same over a
// sub-range. Int32Exact(s, at, n) skips the trimming: every byte of the range
// must be part of the number. Failures come back as (0, false); only a bad
// (at, n) pair panics, because that is the caller's bug, not the input's (see
// CheckRange).
//
// Base 10 only, '-' only (no '+'), ASCII digits only. All functions are pure
// and allocation-free, call them from anywhere.
package tryparse

import "math"

// Int32 parses s as an int32, ignoring leading/trailing whitespace.
// Not ok: empty (or all-whitespace) input, stray characters, value outside
// [-2147483648, 2147483647].
func Int32(s string) (int32, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	return parseSigned[int32](s[lo:lo+n], cutoffInt32, math.MinInt32)
}

// Int32Range is Int32 over the sub-range starting at `at`, `n` bytes long.
// Panics with *RangeError when the range is outside s.
func Int32Range(s string, at, n int) (int32, bool) {
	checkRange(s, at, n)
	lo, ln, ok := trim(s, at, n)
	if !ok {
		return 0, false
	}
	return parseSigned[int32](s[lo:lo+ln], cutoffInt32, math.MinInt32)
}

// Int32Exact parses the range with no whitespace tolerance at all: sign and
// digits must fill it exactly. Panics with *RangeError when the range is
// outside s.
func Int32Exact(s string, at, n int) (int32, bool) {
	checkRange(s, at, n)
	return parseSigned[int32](s[at:at+n], cutoffInt32, math.MinInt32)
}

// Uint32 parses s as a uint32, ignoring leading/trailing whitespace.
// Negative numbers are not ok, they do not round or clamp.
func Uint32(s string) (uint32, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	return parseUnsigned[uint32](s[lo:lo+n], cutoffUint32)
}

// Uint32Range is Uint32 over a sub-range (panics on a bad range).
func Uint32Range(s string, at, n int) (uint32, bool) {
	checkRange(s, at, n)
	lo, ln, ok := trim(s, at, n)
	if !ok {
		return 0, false
	}
	return parseUnsigned[uint32](s[lo:lo+ln], cutoffUint32)
}

// Uint32Exact parses the range as digits only, all of them.
func Uint32Exact(s string, at, n int) (uint32, bool) {
	checkRange(s, at, n)
	return parseUnsigned[uint32](s[at:at+n], cutoffUint32)
}

// Int64 parses s as an int64, ignoring leading/trailing whitespace.
func Int64(s string) (int64, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	return parseSigned[int64](s[lo:lo+n], cutoffInt64, math.MinInt64)
}

// Int64Range is Int64 over a sub-range (panics on a bad range).
func Int64Range(s string, at, n int) (int64, bool) {
	checkRange(s, at, n)
	lo, ln, ok := trim(s, at, n)
	if !ok {
		return 0, false
	}
	return parseSigned[int64](s[lo:lo+ln], cutoffInt64, math.MinInt64)
}

// Int64Exact parses the range with no whitespace tolerance.
func Int64Exact(s string, at, n int) (int64, bool) {
	checkRange(s, at, n)
	return parseSigned[int64](s[at:at+n], cutoffInt64, math.MinInt64)
}

// Uint64 parses s as a uint64, ignoring leading/trailing whitespace.
func Uint64(s string) (uint64, bool) {
	lo, n, ok := trim(s, 0, len(s))
	if !ok {
		return 0, false
	}
	return parseUnsigned[uint64](s[lo:lo+n], cutoffUint64)
}

// Uint64Range is Uint64 over a sub-range (panics on a bad range).
func Uint64Range(s string, at, n int) (uint64, bool) {
	checkRange(s, at, n)
	lo, ln, ok := trim(s, at, n)
	if !ok {
		return 0, false
	}
	return parseUnsigned[uint64](s[lo:lo+ln], cutoffUint64)
}

// Uint64Exact parses the range as digits only, all of them.
func Uint64Exact(s string, at, n int) (uint64, bool) {
	checkRange(s, at, n)
	return parseUnsigned[uint64](s[at:at+n], cutoffUint64)
}
