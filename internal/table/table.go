// Package table provides the in-memory tabular dataset the pipeline
// operates on: an ordered set of named columns over string cells.
// Loaders materialize inputs into a Table; the core transforms it; the
// writer emits it. Columns the pipeline does not recognize ride along
// untouched.
package table

import "github.com/rotisserie/eris"

// Table is a column-ordered, row-major table of string cells.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]string
}

// New creates an empty table with the given column set.
// Column names must be unique.
func New(cols []string) (*Table, error) {
	t := &Table{
		cols:  make([]string, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	copy(t.cols, cols)
	for i, c := range cols {
		if _, dup := t.index[c]; dup {
			return nil, eris.Errorf("table: duplicate column %q", c)
		}
		t.index[c] = i
	}
	return t, nil
}

// Columns returns the column names in order. The slice must not be mutated.
func (t *Table) Columns() []string { return t.cols }

// ColumnIndex returns the position of a column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	i, ok := t.index[name]
	if !ok {
		return -1
	}
	return i
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// AppendRow adds a row. Its width must match the column count.
func (t *Table) AppendRow(row []string) error {
	if len(row) != len(t.cols) {
		return eris.Errorf("table: row has %d cells, want %d", len(row), len(t.cols))
	}
	t.rows = append(t.rows, row)
	return nil
}

// Row returns row i. The slice must not be resized by callers.
func (t *Table) Row(i int) []string { return t.rows[i] }

// Rows returns all rows. Used by the writer and by sorting transforms.
func (t *Table) Rows() [][]string { return t.rows }

// Cell returns the value at (row, column). ok is false when the column
// does not exist.
func (t *Table) Cell(row int, col string) (string, bool) {
	i, found := t.index[col]
	if !found {
		return "", false
	}
	return t.rows[row][i], true
}

// SetCell writes a value at (row, column), reporting whether the column
// exists.
func (t *Table) SetCell(row int, col, value string) bool {
	i, found := t.index[col]
	if !found {
		return false
	}
	t.rows[row][i] = value
	return true
}
