package codec

import (
	"fmt"

	"github.com/ehsanranjbar/flatjson/codec/lex"
)

// Codec is an interface for encoding and decoding values.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Encoder is an interface for encoding values.
type Encoder[T any] interface {
	Encode(v T) ([]byte, error)
}

// Decoder is an interface for decoding values.
type Decoder[T any] interface {
	Decode(bz []byte) (T, error)
}

// StringCodec is a codec for strings.
type StringCodec struct{}

// Encode encodes the given string to bytes.
func (StringCodec) Encode(v string) ([]byte, error) {
	return []byte(v), nil
}

// Decode decodes the given bytes to a string.
func (StringCodec) Decode(bz []byte) (string, error) {
	return string(bz), nil
}

// Uint64Codec is a codec for uint64s which keeps their numeric order.
type Uint64Codec struct{}

// Encode encodes the given uint64 to bytes.
func (Uint64Codec) Encode(v uint64) ([]byte, error) {
	return lex.EncodeUint64(v), nil
}

// Decode decodes the given bytes to a uint64.
func (Uint64Codec) Decode(bz []byte) (uint64, error) {
	if len(bz) != 8 {
		return 0, fmt.Errorf("invalid uint64 length %d", len(bz))
	}
	return lex.DecodeUint64(bz), nil
}
