package dbformat

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ehsanranjbar/flatjson/value"
	"golang.org/x/exp/constraints"
)

// Null is the SQL literal for a null value.
const Null = "NULL"

// Literal renders v as a SQL literal.
//
// Strings are single-quoted with embedded quotes doubled, containers are
// rendered as quoted JSON text the same way, numbers and booleans are left
// unquoted and nil becomes NULL.
func Literal(v any) (string, error) {
	switch value.KindOf(v) {
	case value.KindNull:
		return Null, nil
	case value.KindString:
		return Quote(v.(string)), nil
	case value.KindBool:
		return strconv.FormatBool(v.(bool)), nil
	case value.KindNumber:
		return number(v), nil
	case value.KindArray, value.KindObject:
		bz, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to encode %s literal: %w", value.KindOf(v), err)
		}
		return Quote(string(bz)), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// Quote wraps s in single quotes doubling every single quote inside it.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func number(v any) string {
	switch n := v.(type) {
	case json.Number:
		return n.String()
	case float64:
		return formatFloat(n, 64)
	case float32:
		return formatFloat(n, 32)
	case int:
		return formatSigned(n)
	case int8:
		return formatSigned(n)
	case int16:
		return formatSigned(n)
	case int32:
		return formatSigned(n)
	case int64:
		return formatSigned(n)
	case uint:
		return formatUnsigned(n)
	case uint8:
		return formatUnsigned(n)
	case uint16:
		return formatUnsigned(n)
	case uint32:
		return formatUnsigned(n)
	case uint64:
		return formatUnsigned(n)
	default:
		return fmt.Sprint(v)
	}
}

func formatSigned[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatUnsigned[T constraints.Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// formatFloat writes plain decimals and switches to exponent form outside
// [1e-6, 1e21), matching how JSON producers usually print numbers.
func formatFloat[T constraints.Float](v T, bits int) string {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
