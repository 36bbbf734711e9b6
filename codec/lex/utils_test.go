package lex_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/ehsanranjbar/flatjson/codec/lex"
	"github.com/stretchr/testify/require"
)

func TestUint64Order(t *testing.T) {
	values := []uint64{0, 1, 255, 256, 1 << 32, math.MaxUint64}
	for i := 1; i < len(values); i++ {
		a, b := lex.EncodeUint64(values[i-1]), lex.EncodeUint64(values[i])
		require.Equal(t, -1, bytes.Compare(a, b), "%d < %d", values[i-1], values[i])
		require.Equal(t, values[i], lex.DecodeUint64(b))
	}
}

func TestInt64Order(t *testing.T) {
	values := []int64{math.MinInt64, -1, 0, 1, math.MaxInt64}
	for i := 1; i < len(values); i++ {
		a, b := lex.EncodeInt64(values[i-1]), lex.EncodeInt64(values[i])
		require.Equal(t, -1, bytes.Compare(a, b), "%d < %d", values[i-1], values[i])
		require.Equal(t, values[i], lex.DecodeInt64(b))
	}
}
