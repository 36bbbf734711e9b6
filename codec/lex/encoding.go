// Package lex encodes integers so that their byte order matches their numeric order.
package lex

import "encoding/binary"

// EncodeUint64 returns the big-endian representation of v.
func EncodeUint64(v uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, v)
}

// DecodeUint64 returns the uint64 held in the first eight bytes of b.
func DecodeUint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// EncodeInt64 returns the representation of v with the sign bit flipped so
// negative numbers sort first.
func EncodeInt64(v int64) []byte {
	return EncodeUint64(uint64(v) ^ (1 << 63))
}

// DecodeInt64 reverses EncodeInt64.
func DecodeInt64(b []byte) int64 {
	return int64(DecodeUint64(b) ^ (1 << 63))
}
