package propbag

import (
	"bytes"
	"encoding/json"
)

var (
	_ json.Marshaler   = (*Bag)(nil)
	_ json.Unmarshaler = (*Bag)(nil)
)

// MarshalJSON renders the bag as an object of key to value-array, keys in
// insertion order.
func (b *Bag) MarshalJSON() ([]byte, error) {
	if b == nil || len(b.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kj, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kj)
		buf.WriteByte(':')
		vj, err := json.Marshal(b.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vj)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the bag's contents. JSON objects do not promise a
// key order, so keys come back sorted, whatever order they were written in.
func (b *Bag) UnmarshalJSON(data []byte) error {
	var m map[string][]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	fresh := FromMap(m)
	b.keys, b.vals = fresh.keys, fresh.vals
	return nil
}
