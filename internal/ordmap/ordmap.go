package ordmap

import (
	"errors"
	"iter"
	"slices"
)

var (
	// ErrKeyExists is returned when a key already exists in the map.
	ErrKeyExists = errors.New("key already exists")
)

// Map is a map that maintains the insertion order of the keys.
type Map[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []V
}

// New creates a new Map with room for n entries.
func New[K comparable, V any](n int) *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]int, n),
		keys:  make([]K, 0, n),
		vals:  make([]V, 0, n),
	}
}

// Add adds a key-value pair to the map. it returns error if the key already exists.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, ok := m.index[key]; ok {
		return ErrKeyExists
	}

	m.Set(key, value)
	return nil
}

// Set sets the value of a key. A new key is appended, an existing one keeps its position.
func (m *Map[K, V]) Set(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	i, ok := m.index[key]
	if !ok {
		return value, false
	}
	return m.vals[i], true
}

// Merge sets every pair of other into m in other's order.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// All returns an iterator over all key-value pairs in order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in order.
func (m *Map[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns a copy of the values in order.
func (m *Map[K, V]) Values() []V {
	return slices.Clone(m.vals)
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// Delete deletes a key from the map.
func (m *Map[K, V]) Delete(key K) {
	i, ok := m.index[key]
	if !ok {
		return
	}

	delete(m.index, key)
	m.keys = slices.Delete(m.keys, i, i+1)
	m.vals = slices.Delete(m.vals, i, i+1)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
}
