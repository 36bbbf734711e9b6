// Package flatjson flattens nested JSON documents into single level records and
// renders them for loading into relational databases.
//
// The work is split into packages: value holds the ordered JSON model, flatten
// produces records, dbformat renders them as SQL literals and store stages
// them in an embedded key-value store.
package flatjson

// Iterator is the interface that represents a cursor over keyed values.
type Iterator[K, V any] interface {
	Close()
	Next()
	Rewind()
	Seek(key K)
	Valid() bool
	Key() K
	Value() (value V, err error)
}
