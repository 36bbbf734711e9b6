package store

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	badger "github.com/dgraph-io/badger/v4"
)

// index adds or removes id from the bitmap of column. Empty bitmaps are deleted.
func (ins *Instance) index(column string, id uint64, add bool) error {
	key, err := ins.store.columnKey(column)
	if err != nil {
		return err
	}

	bm, err := ins.bitmap(key)
	if err != nil {
		return err
	}
	if add {
		bm.Add(id)
	} else {
		bm.Remove(id)
	}

	if bm.IsEmpty() {
		ins.store.logger.Debug("column dropped", "column", column)
		return ins.txn.Delete(key)
	}

	data, err := bm.MarshalBinary()
	if err != nil {
		return err
	}
	return ins.txn.Set(key, data)
}

func (ins *Instance) bitmap(key []byte) (*roaring64.Bitmap, error) {
	bm := roaring64.New()

	item, err := ins.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return bm, nil
	}
	if err != nil {
		return nil, err
	}

	err = item.Value(func(val []byte) error {
		return bm.UnmarshalBinary(val)
	})
	return bm, err
}

// WithColumn returns the ids of the rows that carry column.
func (ins *Instance) WithColumn(column string) (*roaring64.Bitmap, error) {
	key, err := ins.store.columnKey(column)
	if err != nil {
		return nil, err
	}
	return ins.bitmap(key)
}

// Columns returns every column carried by at least one row, sorted.
func (ins *Instance) Columns() ([]string, error) {
	prefix := ins.store.segment(columnsSegment)
	it := ins.txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
	defer it.Close()

	var cols []string
	for it.Rewind(); it.Valid(); it.Next() {
		col, err := ins.store.colCodec.Decode(it.Item().KeyCopy(nil)[len(prefix):])
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}
