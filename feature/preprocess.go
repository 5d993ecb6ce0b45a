package feature

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"go-ml.dev/pkg/tabeval/tables"
	"go-ml.dev/pkg/zorros"
)

// Unknown is the default substitute for missing categorical cells.
const Unknown = "Unknown"

/*
Preprocessor configures how a raw table is shaped into a numeric matrix
*/
type Preprocessor struct {
	NumericFill float64 // substitute for missing numeric cells, 0 by default
	MissingTag  string  // substitute for missing categorical cells, Unknown by default
}

type catBlock struct {
	column string
	cats   []string       // fitted categories in lexicographic order
	pos    map[string]int // category -> offset inside the block
}

/*
Fitted is a preprocessor state bound to one training partition.
It has to be fit on the fold's train rows only and applied as is to the
fold's validation rows, otherwise validation statistics leak into training.
*/
type Fitted struct {
	schema Schema
	fill   float64
	tag    string
	blocks []catBlock
	width  int
}

/*
Fit records, from the given rows, the imputation constants and the
per-column category sets defining the output matrix layout
*/
func (p Preprocessor) Fit(t *tables.Table, s Schema) (*Fitted, error) {
	if err := s.Validate(t); err != nil {
		return nil, err
	}
	tag := p.MissingTag
	if tag == "" {
		tag = Unknown
	}
	f := &Fitted{schema: s, fill: p.NumericFill, tag: tag}
	f.width = len(s.Numeric)
	for _, name := range s.Categorical {
		set := map[string]bool{}
		for _, v := range t.Col(name) {
			if !tables.IsMissing(v) {
				set[v] = true
			}
		}
		cats := make([]string, 0, len(set))
		for v := range set {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		pos := make(map[string]int, len(cats))
		for i, v := range cats {
			pos[v] = i
		}
		f.blocks = append(f.blocks, catBlock{column: name, cats: cats, pos: pos})
		f.width += len(cats)
	}
	if f.width == 0 {
		return nil, zorros.Errorf("schema produces no features")
	}
	return f, nil
}

/*
Width returns the count of engineered feature columns
*/
func (f *Fitted) Width() int { return f.width }

/*
Names returns the engineered feature names, numeric columns first then
one `column=category` name per indicator
*/
func (f *Fitted) Names() []string {
	names := append([]string{}, f.schema.Numeric...)
	for _, b := range f.blocks {
		for _, c := range b.cats {
			names = append(names, b.column+"="+c)
		}
	}
	return names
}

/*
Transform shapes table rows into a dense numeric matrix using the fitted
state. It never fails on well-formed rows: a missing numeric cell becomes
the fill value, a missing categorical cell becomes the missing tag, and a
category unseen at fit time yields an all-zero indicator block.
*/
func (f *Fitted) Transform(t *tables.Table) (*mat.Dense, error) {
	if err := f.schema.Validate(t); err != nil {
		return nil, err
	}
	n := t.Len()
	if n == 0 {
		return nil, zorros.Errorf("cannot transform an empty table")
	}
	data := make([]float64, n*f.width)
	j := 0
	for _, name := range f.schema.Numeric {
		col := t.Col(name)
		for i, v := range col {
			x := f.fill
			if !tables.IsMissing(v) {
				if parsed, err := strconv.ParseFloat(v, 64); err == nil {
					x = parsed
				}
			}
			data[i*f.width+j] = x
		}
		j++
	}
	for _, b := range f.blocks {
		col := t.Col(b.column)
		for i, v := range col {
			if tables.IsMissing(v) {
				v = f.tag
			}
			if k, ok := b.pos[v]; ok {
				data[i*f.width+j+k] = 1
			}
		}
		j += len(b.cats)
	}
	return mat.NewDense(n, f.width, data), nil
}
