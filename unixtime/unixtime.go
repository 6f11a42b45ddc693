// unixtime package provides a time.Time wrapper that lives on the wire as an
// integer Unix timestamp (seconds, unless you swap the unit). The decode
// side is strict: a JSON token that is not a plain base 10 integer fitting
// int64 is an error, no floats, no quoted numbers, no '+'. "0" and "null"
// both mean the zero time. Use a pointer (*UnixTime) with `omitempty` in
// structs for JSON marshaling.
package unixtime

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	"github.com/aerth/strictly/tryparse"
)

var Errorf = fmt.Errorf

var (
	_ driver.Valuer = UnixTime{}
	_ driver.Valuer = (*NotNull)(nil)
)

// UnixTime is a time.Time that marshals to/from integer wire units. The
// zero time is "0" in JSON and NULL in SQL.
type UnixTime struct {
	time.Time
}

// NotNull is UnixTime for NOT NULL columns: the zero time goes into the
// database as a zero time.Time, never as NULL.
type NotNull struct {
	UnixTime
}

// New wraps an existing time.Time.
func New(t time.Time) *UnixTime {
	return &UnixTime{Time: t}
}

// Now returns the current time, UTC, monotonic reading stripped.
func Now() *UnixTime {
	return New(time.Now().UTC())
}

// To and From set the wire unit. Swap both together or every timestamp
// comes back a thousandfold wrong.
var (
	To   = SecondsTo
	From = SecondsFrom
)

func SecondsFrom(t time.Time) int64 { return t.Unix() }
func SecondsTo(i int64) time.Time   { return time.Unix(i, 0) }
func MilliFrom(t time.Time) int64   { return t.UnixMilli() }
func MilliTo(i int64) time.Time     { return time.UnixMilli(i) }
func MicroFrom(t time.Time) int64   { return t.UnixMicro() }
func MicroTo(i int64) time.Time     { return time.UnixMicro(i) }

var epoch = time.Unix(0, 0)

// MarshalJSON renders integer wire units, "0" for anything at or before the
// epoch.
func (u UnixTime) MarshalJSON() ([]byte, error) {
	if u.Time.After(epoch) {
		return strconv.AppendInt(nil, From(u.Time), 10), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON wants a plain base 10 integer token that fits int64,
// nothing else. "0" and "null" come back as the zero time.
func (u *UnixTime) UnmarshalJSON(dat []byte) error {
	s := string(dat)
	if s == "null" {
		u.Time = time.Time{}
		return nil
	}
	n, ok := tryparse.Int64Exact(s, 0, len(s))
	if !ok {
		return Errorf("unixtime: %q is not a plain integer timestamp", s)
	}
	if n == 0 {
		u.Time = time.Time{}
		return nil
	}
	u.Time = To(n)
	return nil
}

// Endian is the byte order MarshalBinary writes. Swap for binary.BigEndian
// before the first marshal if the other side expects network order.
var Endian binary.ByteOrder = binary.LittleEndian

// MarshalBinary writes 8 bytes of wire units, all zero at or before the
// epoch.
func (u UnixTime) MarshalBinary() ([]byte, error) {
	var buf [8]byte
	if u.Time.After(epoch) {
		Endian.PutUint64(buf[:], uint64(From(u.Time)))
	}
	return buf[:], nil
}

// UnmarshalBinary wants exactly the 8 bytes MarshalBinary wrote.
func (u *UnixTime) UnmarshalBinary(dat []byte) error {
	if len(dat) != 8 {
		return Errorf("unixtime: want 8 bytes, got %d", len(dat))
	}
	u.Time = To(int64(Endian.Uint64(dat)))
	if !u.Time.After(epoch) {
		u.Time = time.Time{}
	}
	return nil
}

// LooseScan turns off the sanity bounds on Scan.
var LooseScan bool

// A scanned time past here usually means milliseconds fed as seconds.
var tooLate = time.Unix(20e9, 0) // around year 2603

// Scan implements sql.Scanner. Drivers hand back time.Time mostly, RFC 3339
// text sometimes, NULL as nil.
func (u *UnixTime) Scan(v any) error {
	if v == nil {
		u.Time = time.Time{} // reset, the dest may be reused
		return nil
	}
	switch x := v.(type) {
	case time.Time:
		u.Time = x
	case string:
		t, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return err
		}
		u.Time = t
	case []byte:
		t, err := time.Parse(time.RFC3339Nano, string(x))
		if err != nil {
			return err
		}
		u.Time = t
	default:
		return Errorf("unixtime: cannot scan %T", v)
	}
	if LooseScan {
		return nil
	}
	if u.Time.Before(epoch) {
		return Errorf("unixtime: scanned time %v is before the epoch", u.Time)
	}
	if u.Time.After(tooLate) {
		return Errorf("unixtime: scanned time %v is too far out, milliseconds as seconds?", u.Time)
	}
	return nil
}

// Value implements driver.Valuer: NULL for the zero time.
func (u UnixTime) Value() (driver.Value, error) {
	if u.Time.IsZero() {
		return nil, nil
	}
	return u.Time, nil
}

// Value always hands the driver a time.Time, zero or not.
func (u *NotNull) Value() (driver.Value, error) {
	if u == nil {
		return time.Time{}, nil
	}
	return u.Time, nil
}
