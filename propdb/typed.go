package propdb

import "github.com/aerth/strictly/tryparse"

// Typed reads. Stored strings cross exactly the same accept/reject boundary
// as everything else in this collection: whitespace at the edges tolerated,
// garbage and out-of-width values are a miss. A missing bag, a missing key
// and a storage error all read as not ok here, reach for Get when you need
// to tell them apart.

// Int32 reads bag[key] as an int32.
func (d *DB) Int32(bag, key string) (int32, bool) {
	v, ok, err := d.Get(bag, key)
	if err != nil || !ok {
		return 0, false
	}
	return tryparse.Int32(v)
}

// Uint32 reads bag[key] as a uint32.
func (d *DB) Uint32(bag, key string) (uint32, bool) {
	v, ok, err := d.Get(bag, key)
	if err != nil || !ok {
		return 0, false
	}
	return tryparse.Uint32(v)
}

// Int64 reads bag[key] as an int64.
func (d *DB) Int64(bag, key string) (int64, bool) {
	v, ok, err := d.Get(bag, key)
	if err != nil || !ok {
		return 0, false
	}
	return tryparse.Int64(v)
}

// Uint64 reads bag[key] as a uint64.
func (d *DB) Uint64(bag, key string) (uint64, bool) {
	v, ok, err := d.Get(bag, key)
	if err != nil || !ok {
		return 0, false
	}
	return tryparse.Uint64(v)
}
