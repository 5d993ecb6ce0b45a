package model

import (
	"encoding"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/tabeval/feature"
	"go-ml.dev/pkg/tabeval/tables"
	"go-ml.dev/pkg/zorros"
)

/*
Classifier is an opaque classification capability. Any implementation
able to learn from a numeric matrix and predict integer class labels
fits, the pipeline has no opinion on the algorithm behind it.
*/
type Classifier interface {
	Fit(x *mat.Dense, y []int) error
	Predict(x *mat.Dense) ([]int, error)
}

/*
Factory produces a fresh untrained classifier instance.
Evaluation constructs one instance per fold so no state leaks between folds.
*/
type Factory func() Classifier

/*
Dataset is a source of rows, labels and the schema shaping rows into features
*/
type Dataset struct {
	Source *tables.Table  // raw rows, never mutated by the pipeline
	Labels []int          // class label per row
	Schema feature.Schema // feature layout
}

/*
Path returns the absolute path of the model artifact with the given name
*/
func Path(s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	return iokit.CacheFile(filepath.Join("go-ml", "Models", s))
}

/*
Save writes a binary model snapshot to the output
*/
func Save(output iokit.Output, m encoding.BinaryMarshaler) error {
	b, err := m.MarshalBinary()
	if err != nil {
		return zorros.Trace(err)
	}
	w, err := output.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer w.End()
	if _, err = w.Write(b); err != nil {
		return zorros.Trace(err)
	}
	if err = w.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
