package trees

import (
	"bytes"
	"encoding/gob"
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"go-ml.dev/pkg/tabeval/fu"
	"go-ml.dev/pkg/tabeval/model"
	"go-ml.dev/pkg/zorros"
)

/*
RandomForest is a bagged ensemble of decision trees deciding by
majority vote. Zero-value fields fall back to the documented defaults
when fitting starts.

Each tree trains on its own bootstrap sample with a seed derived from
Seed and the tree index, so fitting is deterministic no matter how the
per-tree goroutines are scheduled.
*/
type RandomForest struct {
	Trees           int    // count of trees, 100 by default
	MaxDepth        int    // per-tree depth limit, 0 means no limit
	MinSamplesSplit int    // per-tree, 2 by default
	MinSamplesLeaf  int    // per-tree, 1 by default
	MaxFeatures     int    // features tried per node, sqrt(p) by default
	NoBootstrap     bool   // disable bootstrap sampling
	Seed            uint64 // base seed of sampling and subspacing

	estimators []*DecisionTree
}

var _ model.Classifier = (*RandomForest)(nil)

/*
Fit trains the forest on the matrix x and integer labels y
*/
func (rf *RandomForest) Fit(x *mat.Dense, y []int) error {
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return zorros.Errorf("randomforest: empty feature matrix")
	}
	if len(y) != n {
		return zorros.Errorf("randomforest: %v labels for %v rows", len(y), n)
	}
	trees := fu.Fnzi(rf.Trees, 100)
	maxf := rf.MaxFeatures
	if maxf == 0 {
		maxf = fu.Maxi(1, int(math.Sqrt(float64(p))))
	}
	rf.estimators = make([]*DecisionTree, trees)
	errs := make(chan error, trees)
	var wg sync.WaitGroup
	for i := 0; i < trees; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seed := rf.Seed + uint64(i)
			sample := make([]int, n)
			if rf.NoBootstrap {
				for j := range sample {
					sample[j] = j
				}
			} else {
				rnd := rand.New(rand.NewSource(seed))
				for j := range sample {
					sample[j] = rnd.Intn(n)
				}
			}
			sx := mat.NewDense(n, p, nil)
			sy := make([]int, n)
			for j, r := range sample {
				sx.SetRow(j, x.RawRowView(r))
				sy[j] = y[r]
			}
			tree := NewDecisionTree(
				WithMaxDepth(rf.MaxDepth),
				WithMinSamplesSplit(fu.Fnzi(rf.MinSamplesSplit, 2)),
				WithMinSamplesLeaf(fu.Fnzi(rf.MinSamplesLeaf, 1)),
				WithMaxFeatures(maxf),
				WithSeed(seed))
			if err := tree.Fit(sx, sy); err != nil {
				errs <- err
				return
			}
			rf.estimators[i] = tree
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		rf.estimators = nil
		return err
	}
	return nil
}

/*
Predict returns the per-row majority vote of all trees,
ties going to the smaller label
*/
func (rf *RandomForest) Predict(x *mat.Dense) ([]int, error) {
	if len(rf.estimators) == 0 {
		return nil, zorros.Errorf("randomforest: not fitted")
	}
	n, _ := x.Dims()
	votes := make([][]int, len(rf.estimators))
	errs := make(chan error, len(rf.estimators))
	var wg sync.WaitGroup
	for i, tree := range rf.estimators {
		wg.Add(1)
		go func(i int, tree *DecisionTree) {
			defer wg.Done()
			pred, err := tree.Predict(x)
			if err != nil {
				errs <- err
				return
			}
			votes[i] = pred
		}(i, tree)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		return nil, err
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		counts := map[int]int{}
		for _, pred := range votes {
			counts[pred[i]]++
		}
		labels := make([]int, 0, len(counts))
		for lab := range counts {
			labels = append(labels, lab)
		}
		sort.Ints(labels)
		best, bestn := labels[0], counts[labels[0]]
		for _, lab := range labels[1:] {
			if counts[lab] > bestn {
				best, bestn = lab, counts[lab]
			}
		}
		out[i] = best
	}
	return out, nil
}

type forestSnapshot struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int
	NoBootstrap     bool
	Seed            uint64
	Estimators      [][]byte
}

/*
MarshalBinary implements encoding.BinaryMarshaler using gob
*/
func (rf *RandomForest) MarshalBinary() ([]byte, error) {
	s := forestSnapshot{
		Trees:           rf.Trees,
		MaxDepth:        rf.MaxDepth,
		MinSamplesSplit: rf.MinSamplesSplit,
		MinSamplesLeaf:  rf.MinSamplesLeaf,
		MaxFeatures:     rf.MaxFeatures,
		NoBootstrap:     rf.NoBootstrap,
		Seed:            rf.Seed,
	}
	for _, tree := range rf.estimators {
		b, err := tree.MarshalBinary()
		if err != nil {
			return nil, err
		}
		s.Estimators = append(s.Estimators, b)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, zorros.Trace(err)
	}
	return buf.Bytes(), nil
}

/*
UnmarshalBinary implements encoding.BinaryUnmarshaler using gob
*/
func (rf *RandomForest) UnmarshalBinary(data []byte) error {
	var s forestSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return zorros.Trace(err)
	}
	rf.Trees = s.Trees
	rf.MaxDepth = s.MaxDepth
	rf.MinSamplesSplit = s.MinSamplesSplit
	rf.MinSamplesLeaf = s.MinSamplesLeaf
	rf.MaxFeatures = s.MaxFeatures
	rf.NoBootstrap = s.NoBootstrap
	rf.Seed = s.Seed
	rf.estimators = nil
	for _, b := range s.Estimators {
		tree := &DecisionTree{}
		if err := tree.UnmarshalBinary(b); err != nil {
			return err
		}
		rf.estimators = append(rf.estimators, tree)
	}
	return nil
}
