package feature

import (
	"golang.org/x/xerrors"

	"go-ml.dev/pkg/tabeval/tables"
)

// ErrSchema means a malformed or inconsistent feature schema.
// It's a configuration failure and is never produced by Transform.
var ErrSchema = xerrors.New("invalid feature schema")

/*
Schema declares how raw table columns turn into model features.
Numeric columns pass through with imputed missing values, categorical
columns expand into indicator blocks, the label column is excluded from
both. A schema is fixed configuration, it is never derived from data.
*/
type Schema struct {
	Numeric     []string // columns used as numeric features
	Categorical []string // columns expanded into one-hot indicator blocks
	Label       string   // label column, not a feature
}

/*
Validate checks internal schema consistency and, when t is not nil,
that every named column exists in the table
*/
func (s Schema) Validate(t *tables.Table) error {
	if s.Label == "" {
		return xerrors.Errorf("no label column: %w", ErrSchema)
	}
	seen := map[string]bool{}
	for _, c := range s.Numeric {
		seen[c] = true
	}
	for _, c := range s.Categorical {
		if seen[c] {
			return xerrors.Errorf("column `%v` is both numeric and categorical: %w", c, ErrSchema)
		}
	}
	for _, c := range append(append([]string{}, s.Numeric...), s.Categorical...) {
		if c == s.Label {
			return xerrors.Errorf("label column `%v` used as a feature: %w", c, ErrSchema)
		}
	}
	if t != nil {
		for _, c := range append(append([]string{s.Label}, s.Numeric...), s.Categorical...) {
			if !t.Has(c) {
				return xerrors.Errorf("column `%v` is absent from the dataset: %w", c, ErrSchema)
			}
		}
	}
	return nil
}
