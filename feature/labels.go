package feature

import (
	"strconv"

	"go-ml.dev/pkg/tabeval/tables"
	"go-ml.dev/pkg/zorros"
)

/*
Labels extracts the integer class labels of the named column
*/
func Labels(t *tables.Table, column string) ([]int, error) {
	if !t.Has(column) {
		return nil, zorros.Errorf("no label column `%v` in the dataset", column)
	}
	col := t.Col(column)
	y := make([]int, len(col))
	for i, v := range col {
		if tables.IsMissing(v) {
			return nil, zorros.Errorf("missing label in row %v", i)
		}
		x, err := strconv.Atoi(v)
		if err != nil {
			return nil, zorros.Wrapf(err, "bad label `%v` in row %v", v, i)
		}
		y[i] = x
	}
	return y, nil
}
