// Copyright © 2026 aerth
// Permission is hereby granted, free of charge, to any person obtaining a copy of this software and associated documentation files (the “Software”), to deal in the Software without restriction, including without limitation the rights to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is furnished to do so, subject to the following conditions:
// The above copyright notice and this permission notice shall be included in all copies or substantial portions of the Software.
// THE SOFTWARE IS PROVIDED “AS IS”, WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// propdb package keeps property bags on disk, one bbolt file, no server.
// Raw string properties live in a sub-bucket per bag; whole-bag snapshots
// and any other JSON-encodable values go through PutObj/GetObj. The typed
// readers run stored strings through the same strict integer boundary as
// the tryparse package.
package propdb

import (
	"errors"

	"go.etcd.io/bbolt"

	"github.com/aerth/strictly/diaglog"
)

var (
	propsBucket   = []byte("props")
	objectsBucket = []byte("objects")
)

// ErrNoBag means the named bag has never been written.
var ErrNoBag = errors.New("propdb: no such bag")

// ErrNotFound means no object is stored under that name.
var ErrNotFound = errors.New("propdb: not found")

// Debug makes every read and write chatty on Log.
var Debug = false

// Log takes the Debug chatter. Swap for your own logger if journald is not
// where you want it.
var Log = diaglog.New("propdb", diaglog.PriDebug)

// DB is an open property database. Safe for concurrent use, bbolt does the
// locking.
type DB struct {
	bolt *bbolt.DB
}

// Open opens (creating if needed) the property database at path.
func Open(path string) (*DB, error) {
	b, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = b.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(propsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(objectsBucket)
		return err
	})
	if err != nil {
		b.Close()
		return nil, err
	}
	return &DB{bolt: b}, nil
}

// Close releases the file.
func (d *DB) Close() error { return d.bolt.Close() }

// Put stores value under key in the named bag, creating the bag on first
// write.
func (d *DB) Put(bag, key, value string) error {
	d.debugf("put %s[%s]", bag, key)
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		bu, err := tx.Bucket(propsBucket).CreateBucketIfNotExists([]byte(bag))
		if err != nil {
			return err
		}
		return bu.Put([]byte(key), []byte(value))
	})
}

// Get reads key from the named bag. The bool says whether the key was
// there; err is reserved for real storage trouble.
func (d *DB) Get(bag, key string) (string, bool, error) {
	d.debugf("get %s[%s]", bag, key)
	var v string
	var found bool
	err := d.bolt.View(func(tx *bbolt.Tx) error {
		bu := tx.Bucket(propsBucket).Bucket([]byte(bag))
		if bu == nil {
			return nil
		}
		raw := bu.Get([]byte(key))
		if raw == nil {
			return nil
		}
		v, found = string(raw), true
		return nil
	})
	return v, found, err
}

// Del removes key from the named bag. A missing key or bag is not an error.
func (d *DB) Del(bag, key string) error {
	d.debugf("del %s[%s]", bag, key)
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		bu := tx.Bucket(propsBucket).Bucket([]byte(bag))
		if bu == nil {
			return nil
		}
		return bu.Delete([]byte(key))
	})
}

// DelBag removes a whole bag and everything in it. A missing bag is not an
// error.
func (d *DB) DelBag(bag string) error {
	d.debugf("delbag %s", bag)
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		err := tx.Bucket(propsBucket).DeleteBucket([]byte(bag))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

// Bags lists every bag that has taken at least one Put, in byte order.
func (d *DB) Bags() ([]string, error) {
	var out []string
	err := d.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(propsBucket).ForEachBucket(func(k []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Keys lists the keys in a bag, in byte order. ErrNoBag when the bag has
// never been written.
func (d *DB) Keys(bag string) ([]string, error) {
	var out []string
	err := d.bolt.View(func(tx *bbolt.Tx) error {
		bu := tx.Bucket(propsBucket).Bucket([]byte(bag))
		if bu == nil {
			return ErrNoBag
		}
		return bu.ForEach(func(k, _ []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (d *DB) debugf(format string, args ...any) {
	if Debug {
		Log.Printf(format, args...)
	}
}
