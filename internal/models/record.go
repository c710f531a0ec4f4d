// Package models defines the data types shared across the enrichment pipeline.
package models

// Record is one CSV row as an ordered list of string fields.
// Rows in a flexible file may carry fewer or more fields than the header,
// so every positional access goes through Get.
type Record []string

// Get returns the field at index i and whether it exists.
func (r Record) Get(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	copy(out, r)
	return out
}

// Insert returns a new record with value inserted at index i.
// An index at or beyond the record length appends instead.
func (r Record) Insert(i int, value string) Record {
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		return append(r.Clone(), value)
	}
	out := make(Record, 0, len(r)+1)
	out = append(out, r[:i]...)
	out = append(out, value)
	out = append(out, r[i:]...)
	return out
}
