package tryparse

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32(t *testing.T) {
	tests := []struct {
		in   string
		want int32
		ok   bool
	}{
		{"0", 0, true},
		{"-0", 0, true},
		{"007", 7, true},
		{"-007", -7, true},
		{"123", 123, true},
		{"-123", -123, true},
		{" 123 ", 123, true},
		{"\t\n 42 \r", 42, true},
		{"2147483647", math.MaxInt32, true},
		{"-2147483648", math.MinInt32, true},
		{"2147483648", 0, false},
		{"-2147483649", 0, false},
		{"3000000000", 0, false},
		{"-3000000000", 0, false},
		{"21474836470", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"-", 0, false},
		{" - ", 0, false},
		{"- 1", 0, false},
		{"+123", 0, false},
		{"123abc", 0, false},
		{"abc123", 0, false},
		{"12 3", 0, false},
		{"12.0", 0, false},
		{"--12", 0, false},
		{"1-2", 0, false},
		{"12-", 0, false},
		{"١٢٣", 0, false}, // arabic-indic digits, we are not locale aware
		{"１２３", 0, false}, // fullwidth digits
	}
	for _, tt := range tests {
		got, ok := Int32(tt.in)
		require.Equal(t, tt.ok, ok, "Int32(%q)", tt.in)
		require.Equal(t, tt.want, got, "Int32(%q)", tt.in)
	}
}

func TestUint32(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"0", 0, true},
		{"007", 7, true},
		{"123", 123, true},
		{" 123 ", 123, true},
		{"4294967295", math.MaxUint32, true},
		{"4294967296", 0, false},
		{"4772185879", 0, false},
		{"4772185880", 0, false},
		{"42949672950", 0, false},
		{"-1", 0, false},
		{"-0", 0, false},
		{"+1", 0, false},
		{"", 0, false},
		{" ", 0, false},
		{"-", 0, false},
		{"12a", 0, false},
		{"1 2", 0, false},
	}
	for _, tt := range tests {
		got, ok := Uint32(tt.in)
		require.Equal(t, tt.ok, ok, "Uint32(%q)", tt.in)
		require.Equal(t, tt.want, got, "Uint32(%q)", tt.in)
	}
}

func TestInt64(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"0", 0, true},
		{"-0", 0, true},
		{"007", 7, true},
		{"922337203685477580", 922337203685477580, true},
		{"9223372036854775807", math.MaxInt64, true},
		{"-9223372036854775808", math.MinInt64, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
		{"9223372036854775810", 0, false},
		{"9999999999999999999", 0, false},
		{"99999999999999999999999999999999", 0, false},
		{"-99999999999999999999999999999999", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"+9", 0, false},
		{"12x", 0, false},
	}
	for _, tt := range tests {
		got, ok := Int64(tt.in)
		require.Equal(t, tt.ok, ok, "Int64(%q)", tt.in)
		require.Equal(t, tt.want, got, "Int64(%q)", tt.in)
	}
}

func TestUint64(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"007", 7, true},
		{"9223372036854775808", 9223372036854775808, true}, // too big for int64, fine here
		{"18446744073709551615", math.MaxUint64, true},
		{"18446744073709551616", 0, false},
		{"18446744073709551620", 0, false},
		{"18546744073709551616", 0, false},
		{"20496382304121724000", 0, false},
		{"99999999999999999999", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{"", 0, false},
		{"e", 0, false},
	}
	for _, tt := range tests {
		got, ok := Uint64(tt.in)
		require.Equal(t, tt.ok, ok, "Uint64(%q)", tt.in)
		require.Equal(t, tt.want, got, "Uint64(%q)", tt.in)
	}
}

func TestExactFamilyDoesNotTrim(t *testing.T) {
	t.Run("With padded input", func(t *testing.T) {
		_, ok := Int32Exact(" 123 ", 0, 5)
		require.False(t, ok)
		_, ok = Uint32Exact(" 1", 0, 2)
		require.False(t, ok)
		_, ok = Int64Exact("1 ", 0, 2)
		require.False(t, ok)
		_, ok = Uint64Exact("\t7", 0, 2)
		require.False(t, ok)
	})

	t.Run("With exact sub-range", func(t *testing.T) {
		got, ok := Int32Exact("abc123def", 3, 3)
		require.True(t, ok)
		require.Equal(t, int32(123), got)

		got64, ok := Int64Exact("x-456y", 1, 4)
		require.True(t, ok)
		require.Equal(t, int64(-456), got64)

		gotu, ok := Uint64Exact("18446744073709551615", 0, 20)
		require.True(t, ok)
		require.Equal(t, uint64(math.MaxUint64), gotu)
	})

	t.Run("With empty sub-range", func(t *testing.T) {
		_, ok := Int32Exact("123", 3, 0) // valid range, nothing to parse
		require.False(t, ok)
		_, ok = Uint64Exact("", 0, 0)
		require.False(t, ok)
	})
}

func TestRangeFamilyTrims(t *testing.T) {
	got, ok := Int32Range("xx 42 yy", 2, 4)
	require.True(t, ok)
	require.Equal(t, int32(42), got)

	gotu, ok := Uint64Range("= 99\t;", 1, 4)
	require.True(t, ok)
	require.Equal(t, uint64(99), gotu)

	_, ok = Int64Range("a 1 2 b", 1, 5) // trims to "1 2", still garbage
	require.False(t, ok)

	_, ok = Uint32Range("    ", 1, 2) // all whitespace
	require.False(t, ok)
}

func TestCrossWidthBoundaries(t *testing.T) {
	// the same string lands differently depending on width/signedness
	_, ok := Int64("9223372036854775808")
	require.False(t, ok)
	u64, ok := Uint64("9223372036854775808")
	require.True(t, ok)
	require.Equal(t, uint64(9223372036854775808), u64)

	_, ok = Int32("4294967295")
	require.False(t, ok)
	u32, ok := Uint32("4294967295")
	require.True(t, ok)
	require.Equal(t, uint32(math.MaxUint32), u32)

	i64, ok := Int64("2147483648") // too big for int32, fine for int64
	require.True(t, ok)
	require.Equal(t, int64(2147483648), i64)
}

func TestRoundTrip(t *testing.T) {
	// whatever strconv renders, we must read back exactly
	rng := rand.New(rand.NewSource(1))

	t.Run("int32", func(t *testing.T) {
		vals := []int32{0, 1, -1, 7, 10, -10, 1000000, math.MaxInt32, math.MinInt32, math.MaxInt32 - 1, math.MinInt32 + 1}
		for i := 0; i < 500; i++ {
			vals = append(vals, int32(rng.Uint32()))
		}
		for _, v := range vals {
			got, ok := Int32(strconv.FormatInt(int64(v), 10))
			require.True(t, ok, "%d", v)
			require.Equal(t, v, got)
		}
	})

	t.Run("uint32", func(t *testing.T) {
		vals := []uint32{0, 1, 9, 10, math.MaxUint32, math.MaxUint32 - 1}
		for i := 0; i < 500; i++ {
			vals = append(vals, rng.Uint32())
		}
		for _, v := range vals {
			got, ok := Uint32(strconv.FormatUint(uint64(v), 10))
			require.True(t, ok, "%d", v)
			require.Equal(t, v, got)
		}
	})

	t.Run("int64", func(t *testing.T) {
		vals := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MaxInt64 - 1, math.MinInt64 + 1}
		for i := 0; i < 500; i++ {
			vals = append(vals, int64(rng.Uint64()))
		}
		for _, v := range vals {
			got, ok := Int64(strconv.FormatInt(v, 10))
			require.True(t, ok, "%d", v)
			require.Equal(t, v, got)
		}
	})

	t.Run("uint64", func(t *testing.T) {
		vals := []uint64{0, 1, math.MaxUint64, math.MaxUint64 - 1}
		for i := 0; i < 500; i++ {
			vals = append(vals, rng.Uint64())
		}
		for _, v := range vals {
			got, ok := Uint64(strconv.FormatUint(v, 10))
			require.True(t, ok, "%d", v)
			require.Equal(t, v, got)
		}
	})
}

func TestUnicodeWhitespaceTolerance(t *testing.T) {
	// NBSP, thin space and ideographic space are whitespace, so the
	// tolerant family eats them
	got, ok := Int32("\u00a0\u2009123\u3000")
	require.True(t, ok)
	require.Equal(t, int32(123), got)

	// zero width space is NOT whitespace
	_, ok = Int32("123\u200b")
	require.False(t, ok)

	// whitespace inside the number stays fatal even for the tolerant family
	_, ok = Int32("1\u00a02")
	require.False(t, ok)
}

func TestFloatDelegation(t *testing.T) {
	f, ok := Float64(" 3.25 ")
	require.True(t, ok)
	require.Equal(t, 3.25, f)

	f, ok = Float64("1e3")
	require.True(t, ok)
	require.Equal(t, 1000.0, f)

	f, ok = Float64("NaN") // strconv takes it, so do we
	require.True(t, ok)
	require.True(t, math.IsNaN(f))

	_, ok = Float64("")
	require.False(t, ok)
	_, ok = Float64("   ")
	require.False(t, ok)
	_, ok = Float64("abc")
	require.False(t, ok)
	_, ok = Float64("1e999")
	require.False(t, ok)

	f32, ok := Float32("3.5")
	require.True(t, ok)
	require.Equal(t, float32(3.5), f32)

	_, ok = Float32("1e40") // fits float64, not float32
	require.False(t, ok)
}
