package qlutil

import (
	"encoding/json"
	"fmt"
	"time"

	qlvalue "github.com/araddon/qlbridge/value"
	"github.com/ehsanranjbar/flatjson/flatten"
)

// IdKey is the identifier that resolves to the id of the record in expressions.
const IdKey = "_id"

// RecordContext is a wrapper around a flattened record that implements the qlbridge.ContextReader interface.
type RecordContext struct {
	id  uint64
	rec *flatten.Record
}

// NewRecordContext creates a new RecordContext.
func NewRecordContext(id uint64, rec *flatten.Record) *RecordContext {
	return &RecordContext{id: id, rec: rec}
}

// Get implements the qlbridge.ContextReader interface.
func (c *RecordContext) Get(key string) (qlvalue.Value, bool) {
	if key == IdKey {
		return qlvalue.NewValue(int64(c.id)), true
	}

	v, ok := c.rec.Get(key)
	if !ok {
		return qlvalue.NewErrorValue(fmt.Errorf("column %q not found", key)), false
	}
	return qlvalue.NewValue(native(v)), true
}

// Row implements the qlbridge.ContextReader interface.
func (c *RecordContext) Row() map[string]qlvalue.Value {
	row := make(map[string]qlvalue.Value, c.rec.Len())
	for k, v := range c.rec.All() {
		row[k] = qlvalue.NewValue(native(v))
	}
	return row
}

// Ts implements the qlbridge.ContextReader interface.
// Records carry no timestamp.
func (c *RecordContext) Ts() time.Time { return time.Time{} }

// native narrows numbers to int64 or float64 which qlbridge compares natively.
func native(v any) any {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}
