package flagx

import (
	"flag"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerth/strictly/tryparse"
)

func TestStrictWidths(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var p32 int32
	var pu32 uint32
	var p64 int64
	var pu64 uint64
	Var(fs, &p32, tryparse.Int32, "i32", -1, "int32")
	Var(fs, &pu32, tryparse.Uint32, "u32", 0, "uint32")
	Var(fs, &p64, tryparse.Int64, "i64", 0, "int64")
	Var(fs, &pu64, tryparse.Uint64, "u64", 0, "uint64")

	err := fs.Parse([]string{
		"-i32", " 42 ",
		"-u32", "4294967295",
		"-i64", "-9223372036854775808",
		"-u64", "18446744073709551615",
	})
	require.NoError(t, err)
	require.Equal(t, int32(42), p32)
	require.Equal(t, uint32(math.MaxUint32), pu32)
	require.Equal(t, int64(math.MinInt64), p64)
	require.Equal(t, uint64(math.MaxUint64), pu64)
}

func TestStrictRejections(t *testing.T) {
	cases := [][]string{
		{"-i32", "+5"},
		{"-i32", "3000000000"},
		{"-i32", "0x10"},
		{"-i32", "12x"},
		{"-u32", "-1"},
		{"-u32", "4294967296"},
	}
	for _, args := range cases {
		fs := flag.NewFlagSet("t", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var p32 int32
		var pu32 uint32
		Var(fs, &p32, tryparse.Int32, "i32", 0, "")
		Var(fs, &pu32, tryparse.Uint32, "u32", 0, "")
		require.Error(t, fs.Parse(args), "%v", args)
	}
}

func TestDefaultsAndString(t *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var p int64
	Var(fs, &p, tryparse.Int64, "n", 77, "a number")
	require.Equal(t, int64(77), p) // default lands before Parse, like flag.IntVar

	f := fs.Lookup("n")
	require.Equal(t, "77", f.Value.String())
	require.Equal(t, int64(77), f.Value.(flag.Getter).Get())

	require.NoError(t, fs.Parse(nil))
	require.Equal(t, int64(77), p)
}

func TestCommandLineHelpers(t *testing.T) {
	// flag.CommandLine is global, unique names keep reruns safe
	var a int32
	var b uint32
	var c int64
	var d uint64
	Int32Var(&a, "flagx-test-i32", 1, "")
	Uint32Var(&b, "flagx-test-u32", 2, "")
	Int64Var(&c, "flagx-test-i64", 3, "")
	Uint64Var(&d, "flagx-test-u64", 4, "")
	require.Equal(t, int32(1), a)
	require.Equal(t, int64(3), c)
	require.Equal(t, uint64(4), d)
	require.Equal(t, "2", flag.CommandLine.Lookup("flagx-test-u32").Value.String())
}
