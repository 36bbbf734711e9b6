package value

import (
	"encoding/json"
	"fmt"

	msgpack "github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface.
// Members are written as a msgpack map in order.
func (o Object) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(o)); err != nil {
		return err
	}
	for _, m := range o {
		if err := enc.EncodeString(m.Key); err != nil {
			return err
		}
		if err := EncodeValue(enc, m.Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (o *Object) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n == -1 {
		*o = nil
		return nil
	}

	obj := make(Object, 0, n)
	for range n {
		key, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := DecodeValue(dec)
		if err != nil {
			return fmt.Errorf("failed to decode member %q: %w", key, err)
		}
		obj = append(obj, Member{Key: key, Value: v})
	}
	*o = obj
	return nil
}

// EncodeValue writes v to enc. Numbers held as json.Number are written as
// msgpack integers or floats rather than strings.
func EncodeValue(enc *msgpack.Encoder, v any) error {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return enc.EncodeInt(i)
		}
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", v, err)
		}
		return enc.EncodeFloat64(f)
	case Object:
		return v.EncodeMsgpack(enc)
	case []any:
		if err := enc.EncodeArrayLen(len(v)); err != nil {
			return err
		}
		for _, e := range v {
			if err := EncodeValue(enc, e); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(v)
	}
}

// DecodeValue reads a value written by EncodeValue. Maps decode to Object
// and numbers to int64, uint64 or float64.
func DecodeValue(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		var o Object
		err := o.DecodeMsgpack(dec)
		return o, err
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		if n == -1 {
			return nil, nil
		}
		arr := make(Array, n)
		for i := range arr {
			arr[i], err = DecodeValue(dec)
			if err != nil {
				return nil, err
			}
		}
		return arr, nil
	default:
		return dec.DecodeInterfaceLoose()
	}
}
