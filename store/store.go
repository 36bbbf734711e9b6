// Package store stages flattened records in a BadgerDB before they are loaded
// into a relational database.
//
// Every row gets an increasing numeric id and a random UUID. The store keeps an
// index from each column to the ids of the rows that carry it, and rows can be
// filtered with qlbridge expressions such as `user_address_city = "Boston"`.
package store

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/araddon/qlbridge/expr"
	qlvm "github.com/araddon/qlbridge/vm"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/ehsanranjbar/flatjson"
	"github.com/ehsanranjbar/flatjson/codec"
	"github.com/ehsanranjbar/flatjson/flatten"
	"github.com/ehsanranjbar/flatjson/internal/qlutil"
	"github.com/ehsanranjbar/flatjson/iters"
	"github.com/google/uuid"
)

var (
	// ErrInvalidQuery is returned when a query expression cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrNilRecord is returned when adding a nil record.
	ErrNilRecord = errors.New("nil record")
)

const (
	rowsSegment    = 'r'
	columnsSegment = 'c'
	seqSegment     = 's'
)

// Store is a store for flattened rows under a key prefix.
type Store struct {
	prefix   []byte
	idCodec  codec.Codec[uint64]
	colCodec codec.Codec[string]
	logger   *slog.Logger
}

// New creates a new Store.
func New(prefix []byte, opts ...func(*Store)) *Store {
	s := &Store{
		prefix:   prefix,
		idCodec:  codec.Uint64Codec{},
		colCodec: codec.StringCodec{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLogger sets the logger of the Store.
func WithLogger(logger *slog.Logger) func(*Store) {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Prefix returns the prefix of the store.
func (s *Store) Prefix() []byte {
	return s.prefix
}

// Instantiate creates a new Instance bound to txn.
func (s *Store) Instantiate(txn *badger.Txn) *Instance {
	return &Instance{store: s, txn: txn}
}

func (s *Store) segment(seg byte) []byte {
	key := make([]byte, 0, len(s.prefix)+1)
	key = append(key, s.prefix...)
	return append(key, seg)
}

func (s *Store) rowKey(id uint64) ([]byte, error) {
	bz, err := s.idCodec.Encode(id)
	if err != nil {
		return nil, err
	}
	return append(s.segment(rowsSegment), bz...), nil
}

func (s *Store) columnKey(column string) ([]byte, error) {
	bz, err := s.colCodec.Encode(column)
	if err != nil {
		return nil, err
	}
	return append(s.segment(columnsSegment), bz...), nil
}

// Instance is an instance of the Store bound to a transaction.
type Instance struct {
	store *Store
	txn   *badger.Txn
}

// Add stores rec as a new row and indexes its columns.
func (ins *Instance) Add(rec *flatten.Record) (*Row, error) {
	if rec == nil {
		return nil, ErrNilRecord
	}

	id, err := ins.nextId()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate id: %w", err)
	}
	uid, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("failed to generate uuid: %w", err)
	}

	row := &Row{Id: id, UUID: uid, Record: rec}
	if err := ins.set(row); err != nil {
		return nil, err
	}
	for _, col := range rec.Keys() {
		if err := ins.index(col, id, true); err != nil {
			return nil, fmt.Errorf("failed to index column %q: %w", col, err)
		}
	}

	ins.store.logger.Debug("row added", "id", id, "uuid", uid, "columns", rec.Len())
	return row, nil
}

func (ins *Instance) set(row *Row) error {
	key, err := ins.store.rowKey(row.Id)
	if err != nil {
		return err
	}
	data, err := row.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal row %d: %w", row.Id, err)
	}
	return ins.txn.Set(key, data)
}

func (ins *Instance) nextId() (uint64, error) {
	key := ins.store.segment(seqSegment)

	var last uint64
	item, err := ins.txn.Get(key)
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, err
	default:
		err = item.Value(func(val []byte) error {
			last, err = ins.store.idCodec.Decode(val)
			return err
		})
		if err != nil {
			return 0, err
		}
	}

	next := last + 1
	bz, err := ins.store.idCodec.Encode(next)
	if err != nil {
		return 0, err
	}
	return next, ins.txn.Set(key, bz)
}

// Get returns the row with the given id.
func (ins *Instance) Get(id uint64) (*Row, error) {
	key, err := ins.store.rowKey(id)
	if err != nil {
		return nil, err
	}

	item, err := ins.txn.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get row %d: %w", id, err)
	}
	row := &Row{}
	err = item.Value(func(val []byte) error {
		return row.UnmarshalBinary(val)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal row %d: %w", id, err)
	}
	row.Id = id
	return row, nil
}

// Delete removes the row with the given id and drops it from the column index.
func (ins *Instance) Delete(id uint64) error {
	row, err := ins.Get(id)
	if err != nil {
		return err
	}

	key, err := ins.store.rowKey(id)
	if err != nil {
		return err
	}
	if err := ins.txn.Delete(key); err != nil {
		return err
	}
	for _, col := range row.Record.Keys() {
		if err := ins.index(col, id, false); err != nil {
			return fmt.Errorf("failed to unindex column %q: %w", col, err)
		}
	}

	ins.store.logger.Debug("row deleted", "id", id, "uuid", row.UUID)
	return nil
}

// NewIterator returns an iterator over all rows in id order.
func (ins *Instance) NewIterator() *Iterator {
	prefix := ins.store.segment(rowsSegment)
	return newIterator(
		ins.txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         prefix,
		}),
		prefix,
		ins.store.idCodec,
	)
}

// Query returns an iterator over the rows matching the qlbridge expression q.
// Column names are the flattened keys and `_id` resolves to the row id.
func (ins *Instance) Query(q string) (flatjson.Iterator[uint64, *Row], error) {
	qe, err := expr.ParseExpression(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	iter := iters.Filter(
		ins.NewIterator(),
		func(id uint64, row *Row) bool {
			ctx := qlutil.NewRecordContext(id, row.Record)
			t, _ := qlvm.MatchesExpr(ctx, qe)
			return t
		})
	return iter, nil
}
