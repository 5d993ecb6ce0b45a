package model

import (
	"gonum.org/v1/gonum/mat"

	"go-ml.dev/pkg/zorros"
)

/*
Majority is the most-frequent-class baseline classifier.
It ignores features entirely and predicts the label seen most often
during fitting, ties going to the smaller label.
*/
type Majority struct {
	label  int
	fitted bool
}

func (m *Majority) Fit(x *mat.Dense, y []int) error {
	if len(y) == 0 {
		return zorros.Errorf("majority: no labels to fit")
	}
	counts := map[int]int{}
	for _, v := range y {
		counts[v]++
	}
	best, bestn := 0, -1
	for v, n := range counts {
		if n > bestn || (n == bestn && v < best) {
			best, bestn = v, n
		}
	}
	m.label = best
	m.fitted = true
	return nil
}

func (m *Majority) Predict(x *mat.Dense) ([]int, error) {
	if !m.fitted {
		return nil, zorros.Errorf("majority: not fitted")
	}
	n, _ := x.Dims()
	out := make([]int, n)
	for i := range out {
		out[i] = m.label
	}
	return out, nil
}
