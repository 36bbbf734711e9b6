package iters

import "github.com/ehsanranjbar/flatjson"

// Collect collects all the items from the iterator and returns them as a slice.
func Collect[K, V any](it flatjson.Iterator[K, V]) ([]V, error) {
	var items []V
	for it.Rewind(); it.Valid(); it.Next() {
		v, err := it.Value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// CollectKeys collects all the keys from the iterator.
func CollectKeys[K, V any](it flatjson.Iterator[K, V]) []K {
	var keys []K
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

// ConsumeAndCount consumes the iterator, closes it and returns the count of items.
func ConsumeAndCount(it NopIterator) uint {
	defer it.Close()

	var count uint
	for it.Rewind(); it.Valid(); it.Next() {
		count++
	}

	return count
}

// NopIterator is an iterator that only implements the Rewind, Valid, Next and Close methods.
type NopIterator interface {
	Rewind()
	Valid() bool
	Next()
	Close()
}
