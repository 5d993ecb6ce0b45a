/*
Package hyperopt selects classifier hyper-parameters by exhaustive grid
search over cross-validated accuracy. All candidates are scored against
the same fold partition so the comparison is apples-to-apples.
*/
package hyperopt

import (
	"sort"

	"go-ml.dev/pkg/tabeval/model"
	"go-ml.dev/pkg/tabeval/split"
	"go-ml.dev/pkg/zorros"
)

/*
Params is a set of hyper-parameters used to generate new model
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Report is a result of hyper-parameters optimization
*/
type Report struct {
	Params
	Result *model.Result
}

/*
Space is a definition of hyper-parameters optimization space
*/
type Space struct {
	Dataset   model.Dataset   // rows, labels and schema to evaluate against
	Split     split.Config    // shared fold partition
	Evaluator model.Evaluator // scoring configuration

	// the model generation function
	ModelFunc func(Params) model.Classifier

	// parameter name -> candidate values
	Grid map[string][]float64
}

/*
GridSearch scores every parameter combination and returns the one with
the best mean cross-validated accuracy, earlier combinations winning ties
*/
func (s Space) GridSearch() (*Report, error) {
	if s.ModelFunc == nil {
		return nil, zorros.Errorf("no model generation function")
	}
	folds, err := split.KFold(s.Dataset.Source.Len(), s.Split)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(s.Grid))
	for k := range s.Grid {
		names = append(names, k)
	}
	sort.Strings(names)
	var best *Report
	for _, p := range enumerate(names, s.Grid) {
		params := p
		r, err := s.Evaluator.Evaluate(
			func() model.Classifier { return s.ModelFunc(params) },
			s.Dataset, folds)
		if err != nil {
			return nil, zorros.Wrapf(err, "grid point %v failed: %v", params, err)
		}
		if best == nil || r.Mean > best.Result.Mean {
			best = &Report{Params: params, Result: r}
		}
	}
	return best, nil
}

// enumerate walks the cartesian product of candidate values in the
// deterministic order given by sorted parameter names.
func enumerate(names []string, grid map[string][]float64) []Params {
	out := []Params{{}}
	for _, name := range names {
		var next []Params
		for _, p := range out {
			for _, v := range grid[name] {
				q := Params{}
				for k, w := range p {
					q[k] = w
				}
				q[name] = v
				next = append(next, q)
			}
		}
		out = next
	}
	return out
}
