package model

import (
	"fmt"
	"reflect"

	"go-ml.dev/pkg/tabeval/split"
	"go-ml.dev/pkg/zorros"
)

/*
NamedClassifier binds a reporting name to a classifier factory
*/
type NamedClassifier struct {
	Name string
	New  Factory
}

/*
Experiment evaluates a set of named classifiers over one shared k-fold
partition so their scores are directly comparable
*/
type Experiment struct {
	Classifiers []NamedClassifier // evaluated in declaration order
	Split       split.Config      // fold partition, computed once per run
	Evaluator   Evaluator         // per-classifier evaluation
	Verbose     interface{}       // print function func(string)
}

/*
Run cross-validates every classifier against the dataset.

The schema and the fold configuration are checked before any fitting
happens. Folds are computed once and reused identically for every
classifier. The first failing evaluation aborts the whole run, no
partial result is reported for a failed classifier.
*/
func (e Experiment) Run(ds Dataset) (map[string]*Result, error) {
	if err := ds.Schema.Validate(ds.Source); err != nil {
		return nil, err
	}
	folds, err := split.KFold(ds.Source.Len(), e.Split)
	if err != nil {
		return nil, err
	}
	results := map[string]*Result{}
	for _, c := range e.Classifiers {
		r, err := e.Evaluator.Evaluate(c.New, ds, folds)
		if err != nil {
			return nil, zorros.Wrapf(err, "evaluation of `%v` failed: %v", c.Name, err)
		}
		results[c.Name] = r
		e.verbose(fmt.Sprintf(
			"%v: accuracy %.4f ±%.4f [%.4f, %.4f] over %d folds",
			c.Name, r.Mean, r.Std, r.Min, r.Max, len(r.Folds)))
	}
	return results, nil
}

/*
LuckyRun runs the experiment and throws any occurred errors as a panic
*/
func (e Experiment) LuckyRun(ds Dataset) map[string]*Result {
	r, err := e.Run(ds)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

func (e Experiment) verbose(s string) {
	if e.Verbose != nil {
		vf := reflect.ValueOf(e.Verbose)
		vf.Call([]reflect.Value{reflect.ValueOf(s)})
	}
}
