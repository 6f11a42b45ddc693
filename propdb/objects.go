package propdb

import (
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"github.com/aerth/strictly/propbag"
)

// PutObj stores any JSON-encodable value under name. Generic functions
// because Go methods cannot be.
func PutObj[T any](d *DB, name string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	d.debugf("putobj %s (%d bytes)", name, len(data))
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(objectsBucket).Put([]byte(name), data)
	})
}

// GetObj fetches a value stored by PutObj. ErrNotFound when name was never
// stored.
func GetObj[T any](d *DB, name string) (T, error) {
	var v T
	d.debugf("getobj %s", name)
	err := d.bolt.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(objectsBucket).Get([]byte(name))
		if raw == nil {
			return ErrNotFound
		}
		return json.Unmarshal(raw, &v)
	})
	return v, err
}

// DelObj removes a stored object. A missing name is not an error.
func DelObj(d *DB, name string) error {
	d.debugf("delobj %s", name)
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(objectsBucket).Delete([]byte(name))
	})
}

// SaveBag stores a snapshot of the whole bag under name, multi-values
// included.
func (d *DB) SaveBag(name string, b *propbag.Bag) error {
	return PutObj(d, name, b)
}

// LoadBag restores a bag stored by SaveBag. ErrNoBag when it never was.
// Key order follows propbag's JSON rules (sorted).
func (d *DB) LoadBag(name string) (*propbag.Bag, error) {
	b, err := GetObj[*propbag.Bag](d, name)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNoBag
	}
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = propbag.New()
	}
	return b, nil
}
