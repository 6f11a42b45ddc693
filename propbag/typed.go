package propbag

import (
	"time"

	"github.com/aerth/strictly/tryparse"
)

// Typed getters. Each one reads the first value under key and runs it
// through the strict parser for its width: whitespace at the edges is fine,
// anything else (garbage, '+', wrong range for the width) is a miss. A miss
// and a missing key look the same, use Has to tell them apart.

// Int32 parses the first value under key as an int32.
func (b *Bag) Int32(key string) (int32, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	return tryparse.Int32(v)
}

// Uint32 parses the first value under key as a uint32.
func (b *Bag) Uint32(key string) (uint32, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	return tryparse.Uint32(v)
}

// Int64 parses the first value under key as an int64.
func (b *Bag) Int64(key string) (int64, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	return tryparse.Int64(v)
}

// Uint64 parses the first value under key as a uint64.
func (b *Bag) Uint64(key string) (uint64, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	return tryparse.Uint64(v)
}

// Float64 parses the first value under key as a float64.
func (b *Bag) Float64(key string) (float64, bool) {
	v, ok := b.Get(key)
	if !ok {
		return 0, false
	}
	return tryparse.Float64(v)
}

// Int32Or is Int32 with a fallback.
func (b *Bag) Int32Or(key string, def int32) int32 {
	if v, ok := b.Int32(key); ok {
		return v
	}
	return def
}

// Uint32Or is Uint32 with a fallback.
func (b *Bag) Uint32Or(key string, def uint32) uint32 {
	if v, ok := b.Uint32(key); ok {
		return v
	}
	return def
}

// Int64Or is Int64 with a fallback.
func (b *Bag) Int64Or(key string, def int64) int64 {
	if v, ok := b.Int64(key); ok {
		return v
	}
	return def
}

// Uint64Or is Uint64 with a fallback.
func (b *Bag) Uint64Or(key string, def uint64) uint64 {
	if v, ok := b.Uint64(key); ok {
		return v
	}
	return def
}

// Float64Or is Float64 with a fallback.
func (b *Bag) Float64Or(key string, def float64) float64 {
	if v, ok := b.Float64(key); ok {
		return v
	}
	return def
}

// UnixTime reads the first value under key as Unix seconds.
func (b *Bag) UnixTime(key string) (time.Time, bool) {
	sec, ok := b.Int64(key)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}

// parseAll maps parse over every value. One bad element fails the lot, there
// are no partial results.
func parseAll[T any](vs []string, parse func(string) (T, bool)) ([]T, bool) {
	if len(vs) == 0 {
		return nil, false
	}
	out := make([]T, len(vs))
	for i, v := range vs {
		n, ok := parse(v)
		if !ok {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// Int32s parses every value under key as int32s.
func (b *Bag) Int32s(key string) ([]int32, bool) {
	if b == nil {
		return nil, false
	}
	return parseAll(b.vals[key], tryparse.Int32)
}

// Uint32s parses every value under key as uint32s.
func (b *Bag) Uint32s(key string) ([]uint32, bool) {
	if b == nil {
		return nil, false
	}
	return parseAll(b.vals[key], tryparse.Uint32)
}

// Int64s parses every value under key as int64s.
func (b *Bag) Int64s(key string) ([]int64, bool) {
	if b == nil {
		return nil, false
	}
	return parseAll(b.vals[key], tryparse.Int64)
}

// Uint64s parses every value under key as uint64s.
func (b *Bag) Uint64s(key string) ([]uint64, bool) {
	if b == nil {
		return nil, false
	}
	return parseAll(b.vals[key], tryparse.Uint64)
}
