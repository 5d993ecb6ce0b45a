package model

import (
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"go-ml.dev/pkg/tabeval/feature"
	"go-ml.dev/pkg/tabeval/fu"
	"go-ml.dev/pkg/tabeval/split"
	"go-ml.dev/pkg/zorros"
)

// ErrEmptyFold means a fold with no validation rows reached evaluation.
var ErrEmptyFold = xerrors.New("fold has no validation rows")

// DefaultPrecision is the decimal precision of reported summary statistics.
const DefaultPrecision = 4

/*
Result is a cross-validation outcome for one classifier: the per-fold
accuracy sequence and its summary, rounded half-to-even for reporting
*/
type Result struct {
	Folds []float64 // accuracy per fold, in fold order
	Mean  float64
	Std   float64 // population standard deviation
	Min   float64
	Max   float64
}

/*
Evaluator scores a classifier by k-fold cross-validation
*/
type Evaluator struct {
	Preprocessor feature.Preprocessor // per-fold feature shaping
	Precision    int                  // summary rounding digits, DefaultPrecision if 0
}

/*
Evaluate runs one fit/predict round per fold and aggregates accuracy.

The preprocessor is refit on every fold's train partition and only
applied to the validation partition, so no validation categories or
statistics leak into training. A fresh classifier comes from the factory
per fold. Input rows and labels are never mutated.
*/
func (e Evaluator) Evaluate(f Factory, ds Dataset, folds []split.Fold) (*Result, error) {
	if ds.Source.Len() != len(ds.Labels) {
		return nil, zorros.Errorf("%v labels for %v rows", len(ds.Labels), ds.Source.Len())
	}
	accs := make([]float64, 0, len(folds))
	for i, fold := range folds {
		if len(fold.Test) == 0 {
			return nil, xerrors.Errorf("fold %v: %w", i, ErrEmptyFold)
		}
		fitted, err := e.Preprocessor.Fit(ds.Source.Select(fold.Train), ds.Schema)
		if err != nil {
			return nil, err
		}
		xTrain, err := fitted.Transform(ds.Source.Select(fold.Train))
		if err != nil {
			return nil, err
		}
		xTest, err := fitted.Transform(ds.Source.Select(fold.Test))
		if err != nil {
			return nil, err
		}
		c := f()
		if err = c.Fit(xTrain, gather(ds.Labels, fold.Train)); err != nil {
			return nil, zorros.Wrapf(err, "fold %v fit failed: %v", i, err)
		}
		pred, err := c.Predict(xTest)
		if err != nil {
			return nil, zorros.Wrapf(err, "fold %v predict failed: %v", i, err)
		}
		accs = append(accs, Accuracy(gather(ds.Labels, fold.Test), pred))
	}
	return summarize(accs, fu.Fnzi(e.Precision, DefaultPrecision)), nil
}

func summarize(accs []float64, digits int) *Result {
	return &Result{
		Folds: accs,
		Mean:  fu.RoundEven(stat.Mean(accs, nil), digits),
		Std:   fu.RoundEven(stat.PopStdDev(accs, nil), digits),
		Min:   fu.RoundEven(floats.Min(accs), digits),
		Max:   fu.RoundEven(floats.Max(accs), digits),
	}
}

func gather(y []int, rows []int) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = y[r]
	}
	return out
}
