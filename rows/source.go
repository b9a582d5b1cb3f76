// Package rows extracts company name and registration number pairs from
// spreadsheet workbooks.
package rows

import (
	"iter"
	"sync/atomic"
)

// Row is a single (name, id) pair. Order of rows defines page placement.
type Row struct {
	Name string
	ID   string
}

// Source is a pre-materialized single-pass sequence of rows.
type Source struct {
	rows     []Row
	consumed atomic.Bool
}

// NewSource wraps rows into single-pass Source.
func NewSource(rows []Row) *Source {
	return &Source{rows: rows}
}

// Len returns total number of rows regardless of consumption.
func (s *Source) Len() int {
	return len(s.rows)
}

// All returns sequence of rows. Only the first iteration produces rows,
// any later iteration yields nothing.
func (s *Source) All() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		if s.consumed.Swap(true) {
			return
		}
		for _, r := range s.rows {
			if !yield(r) {
				return
			}
		}
	}
}
