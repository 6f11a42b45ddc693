// propbag package is an insertion-ordered string property collection: keys
// keep the order they first arrived in, each key can hold more than one
// value, and the typed getters put every read through the same strict
// integer boundary as the tryparse package, so "3000000000" is not an int32
// here either.
//
// The zero Bag is ready to use. Reads through a nil *Bag behave like reads
// from an empty bag; only writes need an actual Bag.
package propbag

import "sort"

// Bag holds string properties, ordered, possibly repeated.
type Bag struct {
	keys []string
	vals map[string][]string
}

// New returns an empty bag.
func New() *Bag { return &Bag{} }

// FromMap builds a bag from a plain map. A map has no order to preserve, so
// keys land sorted. Keys mapped to empty slices are dropped.
func FromMap(m map[string][]string) *Bag {
	b := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range m[k] {
			b.Add(k, v)
		}
	}
	return b
}

// Add appends a value under key. A new key joins the end of the order.
func (b *Bag) Add(key, value string) {
	if b.vals == nil {
		b.vals = make(map[string][]string)
	}
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = append(b.vals[key], value)
}

// Set replaces everything under key with the one value given. A new key
// joins the end of the order, an existing one keeps its slot.
func (b *Bag) Set(key, value string) {
	if b.vals == nil {
		b.vals = make(map[string][]string)
	}
	if _, ok := b.vals[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.vals[key] = []string{value}
}

// Del drops key and all its values, reporting whether it was there.
func (b *Bag) Del(key string) bool {
	if b == nil || b.vals == nil {
		return false
	}
	if _, ok := b.vals[key]; !ok {
		return false
	}
	delete(b.vals, key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the first value under key.
func (b *Bag) Get(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	vs := b.vals[key]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Values returns a copy of all values under key, oldest first.
func (b *Bag) Values(key string) []string {
	if b == nil || len(b.vals[key]) == 0 {
		return nil
	}
	return append([]string(nil), b.vals[key]...)
}

// Keys returns a copy of the keys in insertion order.
func (b *Bag) Keys() []string {
	if b == nil || len(b.keys) == 0 {
		return nil
	}
	return append([]string(nil), b.keys...)
}

// Has reports whether key is present.
func (b *Bag) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.vals[key]
	return ok
}

// Len is the number of keys.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}
