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

import "golang.org/x/exp/constraints"

// Per-width accumulator cutoffs, checked before every multiply-by-ten.
//
// Signed parsing accumulates negative (see parseSigned); an accumulator below
// its cutoff could take a digit and wrap so far that the sign-flip check
// misses it. Unsigned parsing accumulates positive; an accumulator above its
// cutoff could take a digit and wrap back past itself, defeating the
// new-less-than-old check. At or inside the cutoff, every wrap is caught.
const (
	cutoffInt32  int32  = -214748364
	cutoffInt64  int64  = -1844674407370955160
	cutoffUint32 uint32 = 477218587
	cutoffUint64 uint64 = 2049638230412172400
)

// parseSigned reads base-10 digits with an optional leading '-'.
// Digits only: no '+', no spaces, no partial matches.
//
// The running value is kept NEGATIVE for both signs, because two's complement
// holds one more magnitude below zero than above it. Accumulating -n instead
// of n is what lets min ("-2147483648" and friends) come out exact; the
// positive twin of min does not exist, so a signless input that lands on min
// is an overflow.
func parseSigned[T constraints.Signed](s string, cutoff, min T) (T, bool) {
	if len(s) == 0 {
		return 0, false
	}
	neg := s[0] == '-'
	if neg {
		s = s[1:]
		if len(s) == 0 {
			return 0, false // lone sign
		}
	}
	var n T
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		if d > 9 {
			return 0, false
		}
		if n < cutoff {
			return 0, false
		}
		n = n*10 - T(d)
		if n > 0 {
			return 0, false // wrapped below min
		}
	}
	if neg {
		return n, true
	}
	if n == min {
		return 0, false
	}
	return -n, true
}

// parseUnsigned reads base-10 digits, nothing else. A '-' is just another
// bad character here.
func parseUnsigned[T constraints.Unsigned](s string, cutoff T) (T, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var n T
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		if d > 9 {
			return 0, false
		}
		if n > cutoff {
			return 0, false
		}
		next := n*10 + T(d)
		if next < n {
			return 0, false // wrapped past max
		}
		n = next
	}
	return n, true
}
