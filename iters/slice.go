package iters

import "github.com/ehsanranjbar/flatjson"

// Slice returns an iterator over s keyed by index.
func Slice[T any](s []T) flatjson.Iterator[int, T] {
	return &sliceIterator[T]{s: s}
}

type sliceIterator[T any] struct {
	s []T
	i int
}

// Close implements the Iterator interface.
func (it *sliceIterator[T]) Close() {}

// Next implements the Iterator interface.
func (it *sliceIterator[T]) Next() {
	it.i++
}

// Rewind implements the Iterator interface.
func (it *sliceIterator[T]) Rewind() {
	it.i = 0
}

// Seek implements the Iterator interface.
func (it *sliceIterator[T]) Seek(key int) {
	it.i = max(key, 0)
}

// Valid implements the Iterator interface.
func (it *sliceIterator[T]) Valid() bool {
	return it.i < len(it.s)
}

// Key implements the Iterator interface.
func (it *sliceIterator[T]) Key() int {
	return it.i
}

// Value implements the Iterator interface.
func (it *sliceIterator[T]) Value() (value T, err error) {
	return it.s[it.i], nil
}
