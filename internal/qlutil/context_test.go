package qlutil

import (
	"encoding/json"
	"testing"

	"github.com/araddon/qlbridge/expr"
	qlvm "github.com/araddon/qlbridge/vm"
	"github.com/ehsanranjbar/flatjson/flatten"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *flatten.Record {
	rec := flatten.NewRecord()
	rec.Set("user_name", "Alice")
	rec.Set("user_age", json.Number("31"))
	rec.Set("score", 4.5)
	rec.Set("tags", []any{})
	rec.Set("nickname", nil)
	return rec
}

func TestRecordContextGet(t *testing.T) {
	ctx := NewRecordContext(7, sampleRecord())

	v, ok := ctx.Get("user_name")
	require.True(t, ok)
	require.Equal(t, "Alice", v.Value())

	v, ok = ctx.Get("user_age")
	require.True(t, ok)
	require.Equal(t, int64(31), v.Value())

	v, ok = ctx.Get(IdKey)
	require.True(t, ok)
	require.Equal(t, int64(7), v.Value())

	_, ok = ctx.Get("missing")
	require.False(t, ok)

	require.Len(t, ctx.Row(), 5)
	require.True(t, ctx.Ts().IsZero())
}

func TestRecordContextMatches(t *testing.T) {
	tests := []struct {
		q    string
		want bool
	}{
		{q: `user_name = "Alice"`, want: true},
		{q: `user_name = "Bob"`, want: false},
		{q: `user_age > 30`, want: true},
		{q: `user_age > 30 AND score < 4`, want: false},
		{q: `user_name like "Al*"`, want: true},
	}

	ctx := NewRecordContext(1, sampleRecord())
	for _, test := range tests {
		t.Run(test.q, func(t *testing.T) {
			qe, err := expr.ParseExpression(test.q)
			require.NoError(t, err)

			got, _ := qlvm.MatchesExpr(ctx, qe)
			require.Equal(t, test.want, got)
		})
	}
}

func TestNative(t *testing.T) {
	require.Equal(t, int64(3), native(json.Number("3")))
	require.Equal(t, 2.5, native(json.Number("2.5")))
	require.Equal(t, int64(9), native(uint16(9)))
	require.Equal(t, float64(float32(0.25)), native(float32(0.25)))
	require.Equal(t, "x", native("x"))
	require.Nil(t, native(nil))
}
