package store

import (
	badger "github.com/dgraph-io/badger/v4"
	"github.com/ehsanranjbar/flatjson/codec"
)

// Iterator is an iterator over rows that unmarshals ids and values.
type Iterator struct {
	base        *badger.Iterator
	prefix      []byte
	idCodec     codec.Codec[uint64]
	cachedValue *Row
}

func newIterator(base *badger.Iterator, prefix []byte, idCodec codec.Codec[uint64]) *Iterator {
	return &Iterator{base: base, prefix: prefix, idCodec: idCodec}
}

// Close closes the iterator.
func (it *Iterator) Close() {
	it.base.Close()
}

// Next moves to the next row.
func (it *Iterator) Next() {
	it.base.Next()
	it.cachedValue = nil
}

// Rewind rewinds the iterator.
func (it *Iterator) Rewind() {
	it.base.Rewind()
	it.cachedValue = nil
}

// Seek moves to the first row with an id greater than or equal to id.
func (it *Iterator) Seek(id uint64) {
	bz, err := it.idCodec.Encode(id)
	if err != nil {
		panic(err)
	}

	it.base.Seek(append(append([]byte{}, it.prefix...), bz...))
	it.cachedValue = nil
}

// Valid returns if the iterator is valid.
func (it *Iterator) Valid() bool {
	return it.base.Valid()
}

// Key returns the id of the current row.
func (it *Iterator) Key() uint64 {
	key := it.base.Item().Key()
	id, err := it.idCodec.Decode(key[len(it.prefix):])
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the current row.
func (it *Iterator) Value() (*Row, error) {
	if it.cachedValue != nil {
		return it.cachedValue, nil
	}

	row := &Row{}
	err := it.base.Item().Value(func(val []byte) error {
		return row.UnmarshalBinary(val)
	})
	if err != nil {
		return nil, err
	}
	row.Id = it.Key()
	it.cachedValue = row
	return row, nil
}
