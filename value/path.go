package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Extract returns the value at the given dot separated path of v.
//
// Object members are selected by key and array elements by index. A `*` segment
// applied to an array maps the rest of the path over every element and
// concatenates array results. An empty path returns v itself.
func Extract(v any, path string) (any, error) {
	if path == "" {
		return v, nil
	}

	head, rest, _ := strings.Cut(path, ".")
	if head == "" {
		return Extract(v, rest)
	}

	switch KindOf(v) {
	case KindObject:
		var ok bool
		v, ok = memberValue(v, head)
		if !ok {
			return nil, fmt.Errorf("key %q not found", head)
		}
	case KindArray:
		elems := Elements(v)
		if head == "*" {
			result := make(Array, 0, len(elems))
			for _, e := range elems {
				ev, err := Extract(e, rest)
				if err != nil {
					return nil, err
				}
				if KindOf(ev) == KindArray {
					result = append(result, Elements(ev)...)
				} else {
					result = append(result, ev)
				}
			}
			return result, nil
		}

		i, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", head, err)
		}
		if i < 0 || i >= len(elems) {
			return nil, fmt.Errorf("index %d out of range", i)
		}
		v = elems[i]
	default:
		return nil, fmt.Errorf("cannot extract path %q from %s", path, KindOf(v))
	}

	return Extract(v, rest)
}

func memberValue(v any, key string) (any, bool) {
	switch v := v.(type) {
	case Object:
		return v.Get(key)
	case map[string]any:
		mv, ok := v[key]
		return mv, ok
	default:
		return nil, false
	}
}
