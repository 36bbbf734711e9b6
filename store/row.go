package store

import (
	"github.com/ehsanranjbar/flatjson/flatten"
	"github.com/google/uuid"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Row is a flattened record staged in the store.
type Row struct {
	Id     uint64          `msgpack:"-" json:"id"`
	UUID   uuid.UUID       `msgpack:"uuid" json:"uuid"`
	Record *flatten.Record `msgpack:"record" json:"record"`
}

// rowFields has the fields of Row without its methods so msgpack encodes it as a struct.
type rowFields Row

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r Row) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal((*rowFields)(&r))
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (r *Row) UnmarshalBinary(data []byte) error {
	return msgpack.Unmarshal(data, (*rowFields)(r))
}
