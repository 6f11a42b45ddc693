// flagx package provides flag.Value flavors whose integers cross the same
// strict boundary as the rest of this collection: width checked at the right
// bit, '+' and hex refused, whitespace at the edges tolerated. The stock
// flag package would happily take "0x10" for an int flag, these will not.
package flagx

import (
	"flag"
	"fmt"

	"github.com/aerth/strictly/tryparse"
)

var (
	_ flag.Value  = (*strictValue[int64])(nil) // compile-time interface check
	_ flag.Getter = (*strictValue[int64])(nil)
)

// -- strict integer Value
// shaped like the values in go.dev/src/flag/flag.go, the parsing is ours
type strictValue[T int32 | uint32 | int64 | uint64] struct {
	p     *T
	parse func(string) (T, bool)
}

func newStrictValue[T int32 | uint32 | int64 | uint64](val T, p *T, parse func(string) (T, bool)) *strictValue[T] {
	*p = val
	return &strictValue[T]{p: p, parse: parse}
}

func (v *strictValue[T]) Set(s string) error {
	n, ok := v.parse(s)
	if !ok {
		return fmt.Errorf("invalid %T %q (want a plain base 10 integer in range)", *v.p, s)
	}
	*v.p = n
	return nil
}

func (v *strictValue[T]) Get() any { return *v.p }

func (v *strictValue[T]) String() string {
	if v.p == nil { // the flag package probes a zero Value for defaults
		return "0"
	}
	return fmt.Sprintf("%d", *v.p)
}

// Var defines a strict flag on fs (flag.CommandLine when fs is nil) with
// whatever parse you hand it. The XxxVar helpers below cover the usual
// widths.
func Var[T int32 | uint32 | int64 | uint64](fs *flag.FlagSet, p *T, parse func(string) (T, bool), name string, value T, usage string) {
	if fs == nil {
		fs = flag.CommandLine
	}
	fs.Var(newStrictValue(value, p, parse), name, usage)
}

// Int32Var defines an int32 flag on flag.CommandLine. "3000000000" on the
// command line is an error, not a negative surprise.
func Int32Var(p *int32, name string, value int32, usage string) {
	Var(nil, p, tryparse.Int32, name, value, usage)
}

// Uint32Var defines a uint32 flag on flag.CommandLine.
func Uint32Var(p *uint32, name string, value uint32, usage string) {
	Var(nil, p, tryparse.Uint32, name, value, usage)
}

// Int64Var defines an int64 flag on flag.CommandLine.
func Int64Var(p *int64, name string, value int64, usage string) {
	Var(nil, p, tryparse.Int64, name, value, usage)
}

// Uint64Var defines a uint64 flag on flag.CommandLine.
func Uint64Var(p *uint64, name string, value uint64, usage string) {
	Var(nil, p, tryparse.Uint64, name, value, usage)
}
