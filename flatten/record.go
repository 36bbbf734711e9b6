package flatten

import (
	"encoding/json"
	"iter"

	"github.com/ehsanranjbar/flatjson/internal/ordmap"
	"github.com/ehsanranjbar/flatjson/value"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Record is the flat result of flattening: path-keys mapped to terminal values
// in the order they were produced.
type Record struct {
	m *ordmap.Map[string, any]
}

// NewRecord creates an empty Record.
func NewRecord() *Record {
	return &Record{m: ordmap.New[string, any](0)}
}

func (r *Record) pairs() *ordmap.Map[string, any] {
	if r.m == nil {
		r.m = ordmap.New[string, any](0)
	}
	return r.m
}

// Set sets the value of a path-key.
func (r *Record) Set(key string, v any) {
	r.pairs().Set(key, v)
}

// Get returns the value of a path-key.
func (r *Record) Get(key string) (any, bool) {
	return r.pairs().Get(key)
}

// Len returns the number of path-keys.
func (r *Record) Len() int {
	return r.pairs().Len()
}

// Keys returns the path-keys in order.
func (r *Record) Keys() []string {
	return r.pairs().Keys()
}

// Values returns the values in key order.
func (r *Record) Values() []any {
	return r.pairs().Values()
}

// All returns an iterator over the pairs in order.
func (r *Record) All() iter.Seq2[string, any] {
	return r.pairs().All()
}

// Map returns the record as an unordered map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, r.Len())
	for k, v := range r.All() {
		m[k] = v
	}
	return m
}

// Object returns the record as an ordered object.
func (r *Record) Object() value.Object {
	obj := make(value.Object, 0, r.Len())
	for k, v := range r.All() {
		obj = append(obj, value.Member{Key: k, Value: v})
	}
	return obj
}

// MarshalJSON implements the json.Marshaler interface.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Object())
}

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
func (r *Record) EncodeMsgpack(enc *msgpack.Encoder) error {
	return r.Object().EncodeMsgpack(enc)
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (r *Record) DecodeMsgpack(dec *msgpack.Decoder) error {
	var obj value.Object
	if err := obj.DecodeMsgpack(dec); err != nil {
		return err
	}

	r.m = ordmap.New[string, any](len(obj))
	for _, m := range obj {
		r.m.Set(m.Key, m.Value)
	}
	return nil
}
