// Package flatten turns a nested JSON value into a single level Record whose keys
// are the paths of the terminal values joined by a separator.
//
// Only objects are flattened: any other root yields an empty Record. Arrays are
// expanded element by element using the index as the path segment, except for an
// empty array which is kept as is. Every descent into an object or an array
// element consumes one unit of the depth budget.
package flatten

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ehsanranjbar/flatjson/value"
)

var (
	// ErrDepthExceeded is returned when the depth budget runs out before an object is processed.
	ErrDepthExceeded = errors.New("maximum depth exceeded, possible circular reference")
)

const (
	// DefaultMaxDepth is the depth budget used when none is given.
	DefaultMaxDepth = 100
	// DefaultSeparator joins path segments.
	DefaultSeparator = "_"
)

// Options controls flattening.
type Options struct {
	// MaxDepth is the remaining recursion budget. Values <= 0 fail on the first object.
	MaxDepth int
	// IgnoreNull omits null values instead of emitting them.
	IgnoreNull bool
	// Separator joins path segments. Empty means DefaultSeparator.
	Separator string
	// ExpandNestedArrays expands an array that is itself an array element.
	// When false such an element contributes nothing.
	ExpandNestedArrays bool
}

// DefaultOptions returns the options used by Flatten callers that have no preference.
func DefaultOptions() Options {
	return Options{
		MaxDepth:  DefaultMaxDepth,
		Separator: DefaultSeparator,
	}
}

// Flatter is an interface for flattening a hierarchy of values to a record of paths -> values.
type Flatter interface {
	Flatten(v any) (*Record, error)
}

// Flatten flattens v under the given prefix. The input is never modified.
func Flatten(v any, prefix string, opts Options) (*Record, error) {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	rec := NewRecord()
	w := walker{opts: opts, rec: rec}
	if err := w.object(v, prefix, opts.MaxDepth); err != nil {
		return nil, err
	}
	return rec, nil
}

type walker struct {
	opts Options
	rec  *Record
}

func (w walker) join(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + w.opts.Separator + segment
}

func (w walker) null(key string) {
	if !w.opts.IgnoreNull {
		w.rec.Set(key, nil)
	}
}

func (w walker) object(v any, prefix string, depth int) error {
	if value.KindOf(v) != value.KindObject {
		return nil
	}
	if depth <= 0 {
		return fmt.Errorf("%w at %q", ErrDepthExceeded, prefix)
	}

	for _, m := range value.Members(v) {
		key := w.join(prefix, m.Key)
		switch value.KindOf(m.Value) {
		case value.KindNull:
			w.null(key)
		case value.KindObject:
			if err := w.object(m.Value, key, depth-1); err != nil {
				return err
			}
		case value.KindArray:
			if err := w.array(value.Elements(m.Value), key, depth); err != nil {
				return err
			}
		default:
			w.rec.Set(key, m.Value)
		}
	}
	return nil
}

// array expands elems under key. depth is the budget of the enclosing object.
func (w walker) array(elems []any, key string, depth int) error {
	if len(elems) == 0 {
		w.rec.Set(key, value.Array{})
		return nil
	}

	for i, e := range elems {
		ek := w.join(key, strconv.Itoa(i))
		switch value.KindOf(e) {
		case value.KindNull:
			w.null(ek)
		case value.KindObject:
			if err := w.object(e, ek, depth-1); err != nil {
				return err
			}
		case value.KindArray:
			if !w.opts.ExpandNestedArrays {
				continue
			}
			if depth-1 <= 0 {
				return fmt.Errorf("%w at %q", ErrDepthExceeded, ek)
			}
			if err := w.array(value.Elements(e), ek, depth-1); err != nil {
				return err
			}
		default:
			w.rec.Set(ek, e)
		}
	}
	return nil
}

// Flattener flattens values with a fixed set of options.
type Flattener struct {
	opts Options
}

// New creates a new Flattener starting from DefaultOptions.
func New(opts ...func(*Flattener)) *Flattener {
	f := &Flattener{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithMaxDepth sets the depth budget of the Flattener.
func WithMaxDepth(n int) func(*Flattener) {
	return func(f *Flattener) {
		f.opts.MaxDepth = n
	}
}

// WithIgnoreNull sets whether the Flattener omits null values.
func WithIgnoreNull(ignore bool) func(*Flattener) {
	return func(f *Flattener) {
		f.opts.IgnoreNull = ignore
	}
}

// WithSeparator sets the path separator of the Flattener.
func WithSeparator(sep string) func(*Flattener) {
	return func(f *Flattener) {
		f.opts.Separator = sep
	}
}

// WithNestedArrays sets whether arrays nested directly in arrays are expanded.
func WithNestedArrays(expand bool) func(*Flattener) {
	return func(f *Flattener) {
		f.opts.ExpandNestedArrays = expand
	}
}

// Options returns the options of the Flattener.
func (f *Flattener) Options() Options {
	return f.opts
}

// Flatten implements the Flatter interface.
func (f *Flattener) Flatten(v any) (*Record, error) {
	return Flatten(v, "", f.opts)
}
