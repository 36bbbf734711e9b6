// Package dbformat renders flattened records as column and value lists ready to be
// interpolated into an INSERT statement.
//
// Values are escaped by doubling single quotes only. Nothing here makes the output
// safe for untrusted input; use parameterized queries for that.
package dbformat

import (
	"fmt"
	"strings"

	"github.com/ehsanranjbar/flatjson/flatten"
)

// Record holds the headers and the SQL literals of a flattened value, index for index.
type Record struct {
	Headers      []string `json:"headers"`
	Values       []string `json:"values"`
	HeaderString string   `json:"headerString"`
	ValueString  string   `json:"valueString"`
}

// InsertStatement returns an INSERT statement for the record into table.
func (r *Record) InsertStatement(table string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, r.HeaderString, r.ValueString)
}

// Formatter formats values for database loading.
type Formatter struct {
	flatter flatten.Flatter
}

// New creates a new Formatter which flattens with the default options.
func New(opts ...func(*Formatter)) *Formatter {
	f := &Formatter{flatter: flatten.New()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithFlattener sets the flattener used by the Formatter.
func WithFlattener(flatter flatten.Flatter) func(*Formatter) {
	return func(f *Formatter) {
		f.flatter = flatter
	}
}

// Format flattens v and renders the result.
func (f *Formatter) Format(v any) (*Record, error) {
	rec, err := f.flatter.Flatten(v)
	if err != nil {
		return nil, err
	}
	return FormatRecord(rec)
}

// Format flattens v with the default options and renders the result.
func Format(v any) (*Record, error) {
	return New().Format(v)
}

// FormatRecord renders an already flattened record.
func FormatRecord(rec *flatten.Record) (*Record, error) {
	r := &Record{
		Headers: make([]string, 0, rec.Len()),
		Values:  make([]string, 0, rec.Len()),
	}
	for k, v := range rec.All() {
		lit, err := Literal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to format %q: %w", k, err)
		}
		r.Headers = append(r.Headers, k)
		r.Values = append(r.Values, lit)
	}

	r.HeaderString = strings.Join(r.Headers, ",")
	r.ValueString = strings.Join(r.Values, ",")
	return r, nil
}
