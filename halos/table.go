package halos

import (
	"fmt"
	"sort"
)

// Table is a minimal keyed column store: every column is a []float64 of the
// same length. The first column set fixes the row count.
type Table struct {
	rows  int
	fixed bool
	cols  map[string][]float64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// SetColumn stores a copy of vals under name. The first column fixes the
// table's row count; later columns of a different length return
// ErrColumnLength. Re-setting an existing column replaces it.
func (t *Table) SetColumn(name string, vals []float64) error {
	if t.fixed && len(vals) != t.rows {
		return fmt.Errorf("%w: column %q has %d rows, table has %d",
			ErrColumnLength, name, len(vals), t.rows)
	}
	cp := make([]float64, len(vals))
	copy(cp, vals)
	t.cols[name] = cp
	t.rows = len(vals)
	t.fixed = true
	return nil
}

// Column returns the column stored under name. The returned slice is the
// table's backing storage: callers must treat it as read-only.
func (t *Table) Column(name string) ([]float64, error) {
	vals, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return vals, nil
}

// Len returns the table's row count.
func (t *Table) Len() int { return t.rows }

// Keys returns the column names in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.cols))
	for k := range t.cols {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
