package value_test

import (
	"encoding/json"
	"testing"

	"github.com/ehsanranjbar/flatjson/value"
	"github.com/stretchr/testify/require"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want value.Kind
	}{
		{name: "Nil", v: nil, want: value.KindNull},
		{name: "Bool", v: true, want: value.KindBool},
		{name: "String", v: "x", want: value.KindString},
		{name: "Int", v: 42, want: value.KindNumber},
		{name: "Float", v: 4.2, want: value.KindNumber},
		{name: "JSON Number", v: json.Number("1"), want: value.KindNumber},
		{name: "Object", v: value.Object{}, want: value.KindObject},
		{name: "Map", v: map[string]any{}, want: value.KindObject},
		{name: "Array", v: []any{}, want: value.KindArray},
		{name: "Unsupported", v: struct{}{}, want: value.KindInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, value.KindOf(test.v))
		})
	}
}

func TestMembers(t *testing.T) {
	t.Run("Object keeps order", func(t *testing.T) {
		obj := value.Object{{Key: "b", Value: 1}, {Key: "a", Value: 2}}
		require.Equal(t, []value.Member(obj), value.Members(obj))
	})

	t.Run("Map is sorted", func(t *testing.T) {
		members := value.Members(map[string]any{"b": 1, "a": 2})
		require.Equal(t, []value.Member{{Key: "a", Value: 2}, {Key: "b", Value: 1}}, members)
	})

	t.Run("Not an object", func(t *testing.T) {
		require.Nil(t, value.Members([]any{1}))
	})
}

func TestObjectSet(t *testing.T) {
	obj := value.Object{}
	obj = obj.Set("a", 1)
	obj = obj.Set("b", 2)
	obj = obj.Set("a", 3)

	require.Equal(t, []string{"a", "b"}, obj.Keys())
	v, ok := obj.Get("a")
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = obj.Get("c")
	require.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    any
		wantErr bool
	}{
		{
			name:  "Object order",
			input: `{"z": 1, "a": {"y": null, "b": [true, "s"]}}`,
			want: value.Object{
				{Key: "z", Value: json.Number("1")},
				{Key: "a", Value: value.Object{
					{Key: "y", Value: nil},
					{Key: "b", Value: []any{true, "s"}},
				}},
			},
		},
		{
			name:  "Empty containers",
			input: `{"o": {}, "a": []}`,
			want: value.Object{
				{Key: "o", Value: value.Object{}},
				{Key: "a", Value: []any{}},
			},
		},
		{
			name:  "Top level array",
			input: `[1, 2]`,
			want:  []any{json.Number("1"), json.Number("2")},
		},
		{
			name:  "Duplicate key keeps first position",
			input: `{"a": 1, "b": 2, "a": 3}`,
			want: value.Object{
				{Key: "a", Value: json.Number("3")},
				{Key: "b", Value: json.Number("2")},
			},
		},
		{
			name:    "Trailing data",
			input:   `{"a": 1} {"b": 2}`,
			wantErr: true,
		},
		{
			name:    "Malformed",
			input:   `{"a": }`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := value.Parse([]byte(test.input))
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	obj := value.Object{
		{Key: "z", Value: 1},
		{Key: "a", Value: []any{value.Object{{Key: "q", Value: "it's"}}}},
		{Key: "n", Value: nil},
	}

	bz, err := json.Marshal(obj)
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":[{"q":"it's"}],"n":null}`, string(bz))

	var back value.Object
	require.NoError(t, json.Unmarshal(bz, &back))
	require.Equal(t, []string{"z", "a", "n"}, back.Keys())
}

func TestObjectMsgpack(t *testing.T) {
	obj := value.Object{
		{Key: "z", Value: json.Number("7")},
		{Key: "f", Value: json.Number("1.5")},
		{Key: "a", Value: value.Object{{Key: "s", Value: "x"}}},
		{Key: "arr", Value: []any{}},
		{Key: "n", Value: nil},
	}

	bz, err := msgpack.Marshal(obj)
	require.NoError(t, err)

	var back value.Object
	require.NoError(t, msgpack.Unmarshal(bz, &back))
	require.Equal(t, value.Object{
		{Key: "z", Value: int64(7)},
		{Key: "f", Value: 1.5},
		{Key: "a", Value: value.Object{{Key: "s", Value: "x"}}},
		{Key: "arr", Value: []any{}},
		{Key: "n", Value: nil},
	}, back)
}
