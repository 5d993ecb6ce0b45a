package hyperopt

import (
	"testing"

	"gotest.tools/assert"

	"go-ml.dev/pkg/tabeval/feature"
	"go-ml.dev/pkg/tabeval/model"
	"go-ml.dev/pkg/tabeval/split"
	"go-ml.dev/pkg/tabeval/tables"
	"go-ml.dev/pkg/tabeval/trees"
)

func Test_ParamsGet(t *testing.T) {
	p := Params{"depth": 3}
	assert.Equal(t, p.Get("depth", 1.0), 3.0)
	assert.Equal(t, p.Get("trees", 10.0), 10.0)
}

// two interleaved patterns per class, separable only by two nested
// splits: the grid search has to prefer the deeper tree
func Test_GridSearch(t *testing.T) {
	x0 := []string{"-1", "1", "-1", "1", "-1", "1", "-1", "1"}
	x1 := []string{"-1", "-1", "1", "1", "-1", "-1", "1", "1"}
	y := []string{"0", "0", "0", "1", "0", "0", "0", "1"}
	q, err := tables.New([]string{"x0", "x1", "y"}, [][]string{x0, x1, y})
	assert.NilError(t, err)
	ds := model.Dataset{
		Source: q,
		Labels: []int{0, 0, 0, 1, 0, 0, 0, 1},
		Schema: feature.Schema{Numeric: []string{"x0", "x1"}, Label: "y"},
	}
	s := Space{
		Dataset: ds,
		Split:   split.Config{K: 2},
		ModelFunc: func(p Params) model.Classifier {
			return trees.NewDecisionTree(trees.WithMaxDepth(int(p.Get("depth", 1))))
		},
		Grid: map[string][]float64{"depth": {1, 2}},
	}
	r, err := s.GridSearch()
	assert.NilError(t, err)
	assert.Equal(t, r.Params["depth"], 2.0)
	assert.Equal(t, r.Result.Mean, 1.0)
}

func Test_GridSearchNoModelFunc(t *testing.T) {
	_, err := Space{}.GridSearch()
	assert.Assert(t, err != nil)
}
