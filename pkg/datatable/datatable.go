// Package datatable provides named lookup tables over raw data exports.
//
// Lookups are case-insensitive, stored names keep their original case.
// Secondary indexes project every row to a key and map that key either
// to one row name or to a list of row names.
package datatable

import (
	"strings"
)

// Row is a single record of a raw table identified by its name.
type Row interface {
	RowName() string
}

// Table is an immutable, name-indexed collection of rows.
type Table[T Row] struct {
	name string
	rows []T
	idx  map[string]int
}

// New creates a Table from rows. Two rows with names that differ only
// in case are a DuplicateKeyError.
func New[T Row](name string, rows []T) (*Table[T], error) {
	res := &Table[T]{
		name: name,
		rows: rows,
		idx:  make(map[string]int, len(rows)),
	}
	for i, v := range rows {
		key := strings.ToLower(v.RowName())
		if _, ok := res.idx[key]; ok {
			return nil, DuplicateKeyError(name, v.RowName())
		}
		res.idx[key] = i
	}
	return res, nil
}

// Name returns the name of the table, e.g. D_ItemsStatic.
func (t *Table[T]) Name() string {
	return t.name
}

// Rows returns rows in their original order.
func (t *Table[T]) Rows() []T {
	return t.rows
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Get finds a row by its name ignoring case.
func (t *Table[T]) Get(name string) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	i, ok := t.idx[strings.ToLower(name)]
	if !ok {
		return zero, false
	}
	return t.rows[i], true
}

// Has returns true if a row with the name exists.
func (t *Table[T]) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// IndexOne builds a 1:1 index. The key function returns false for
// rows that have no key, such rows are skipped. If two rows produce
// the same key the result is DuplicateKeyError.
func (t *Table[T]) IndexOne(
	keyFn func(T) (string, bool),
) (*OneIndex, error) {
	res := &OneIndex{data: make(map[string]string)}
	for _, v := range t.rows {
		key, ok := keyFn(v)
		if !ok {
			continue
		}
		lk := strings.ToLower(key)
		if _, exists := res.data[lk]; exists {
			return nil, DuplicateKeyError(t.name, key)
		}
		res.data[lk] = v.RowName()
	}
	return res, nil
}

// IndexMany builds a 1:many index. Row names under the same key keep
// the order in which they appear in the table.
func (t *Table[T]) IndexMany(keyFn func(T) (string, bool)) *ManyIndex {
	res := &ManyIndex{data: make(map[string][]string)}
	for _, v := range t.rows {
		key, ok := keyFn(v)
		if !ok {
			continue
		}
		lk := strings.ToLower(key)
		res.data[lk] = append(res.data[lk], v.RowName())
	}
	return res
}

// OneIndex maps a key to a single row name.
type OneIndex struct {
	data map[string]string
}

// Get returns the row name for the key ignoring case.
func (o *OneIndex) Get(key string) (string, bool) {
	res, ok := o.data[strings.ToLower(key)]
	return res, ok
}

// Len returns the number of keys in the index.
func (o *OneIndex) Len() int {
	return len(o.data)
}

// ManyIndex maps a key to a list of row names.
type ManyIndex struct {
	data map[string][]string
}

// Get returns row names for the key ignoring case. The result is nil
// for unknown keys.
func (m *ManyIndex) Get(key string) []string {
	return m.data[strings.ToLower(key)]
}

// Len returns the number of keys in the index.
func (m *ManyIndex) Len() int {
	return len(m.data)
}
