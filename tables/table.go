package tables

import (
	"go-ml.dev/pkg/zorros"
)

/*
Table is a column-oriented set of raw tabular data.
Cells are kept as the source produced them; empty and NA-like strings mean
a missing value. A Table is never mutated after construction, folds and
subsets are produced as new tables sharing no cell storage.
*/
type Table struct {
	names []string
	index map[string]int
	cols  [][]string
}

/*
New creates a table from column names and column-major cell data
*/
func New(names []string, cols [][]string) (*Table, error) {
	if len(names) != len(cols) {
		return nil, zorros.Errorf("tables: %v names for %v columns", len(names), len(cols))
	}
	index := map[string]int{}
	length := -1
	for i, name := range names {
		if _, exists := index[name]; exists {
			return nil, zorros.Errorf("tables: duplicated column `%v`", name)
		}
		index[name] = i
		if length < 0 {
			length = len(cols[i])
		} else if len(cols[i]) != length {
			return nil, zorros.Errorf("tables: column `%v` has %v cells, expected %v", name, len(cols[i]), length)
		}
	}
	return &Table{names: names, index: index, cols: cols}, nil
}

/*
Len returns the count of rows in the table
*/
func (t *Table) Len() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

/*
Names returns a copy of the table column names in declaration order
*/
func (t *Table) Names() []string {
	r := make([]string, len(t.names))
	copy(r, t.names)
	return r
}

/*
Has returns true if the table contains the named column
*/
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

/*
Col returns the named column cells. The returned slice is owned by the
table and must not be modified.
*/
func (t *Table) Col(name string) []string {
	i, ok := t.index[name]
	if !ok {
		panic(zorros.Panic(zorros.Errorf("tables: no column `%v`", name)))
	}
	return t.cols[i]
}

/*
Select returns a new table holding the given rows in the given order.
Row indices can repeat.
*/
func (t *Table) Select(rows []int) *Table {
	cols := make([][]string, len(t.cols))
	for i := range t.cols {
		c := make([]string, len(rows))
		for j, r := range rows {
			c[j] = t.cols[i][r]
		}
		cols[i] = c
	}
	return &Table{names: t.names, index: t.index, cols: cols}
}

/*
Head returns a new table holding at most n first rows
*/
func (t *Table) Head(n int) *Table {
	if n > t.Len() {
		n = t.Len()
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return t.Select(rows)
}

// NA-like markers producible by the usual CSV exports and SQL NULLs.
var missing = map[string]bool{"": true, "NA": true, "NaN": true, "NULL": true}

/*
IsMissing returns true if the raw cell value means a missing value
*/
func IsMissing(v string) bool {
	return missing[v]
}
