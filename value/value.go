// Package value defines the JSON value model that flatjson operates on.
//
// A value is one of nil, bool, a number (json.Number or any Go numeric type),
// string, Object or Array. Object keeps its members in insertion order so that
// flattened keys come out in the same order as the source document.
// Plain map[string]any and []any are accepted as well; map members are visited
// in sorted key order since Go maps carry no order of their own.
package value

import (
	"encoding/json"
	"maps"
	"slices"
)

// Kind classifies a value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// KindOf returns the kind of the given value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number,
		float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case Object, map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindInvalid
	}
}

// Member is a single key-value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an ordered collection of members.
type Object []Member

// Len returns the number of members.
func (o Object) Len() int {
	return len(o)
}

// Get returns the value of the member with the given key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set returns the object with the given key set to v.
// An existing member keeps its position.
func (o Object) Set(key string, v any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// Keys returns the keys of the object in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Array is an ordered sequence of values.
type Array = []any

// Members returns the members of an object value in iteration order.
// It returns nil for anything that is not an object.
func Members(v any) []Member {
	switch v := v.(type) {
	case Object:
		return v
	case map[string]any:
		members := make([]Member, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			members = append(members, Member{Key: k, Value: v[k]})
		}
		return members
	default:
		return nil
	}
}

// Elements returns the elements of an array value.
// It returns nil for anything that is not an array.
func Elements(v any) []any {
	if a, ok := v.([]any); ok {
		return a
	}
	return nil
}
