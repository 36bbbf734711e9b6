package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTrailingData is returned when a document is followed by more data.
	ErrTrailingData = errors.New("trailing data after JSON document")
)

// Parse decodes a single JSON document keeping object key order.
func Parse(data []byte) (any, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON document from r keeping object key order.
// Objects decode to Object, arrays to []any and numbers to json.Number.
func Decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch tok {
	case json.Delim('{'):
		return decodeObject(dec)
	case json.Delim('['):
		return decodeArray(dec)
	default:
		return tok, nil
	}
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = obj.Set(key, v)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// MarshalJSON implements the json.Marshaler interface, writing members in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(m.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal member %q: %w", m.Key, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface, keeping member order.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	obj, ok := v.(Object)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into Object", KindOf(v))
	}
	*o = obj
	return nil
}
