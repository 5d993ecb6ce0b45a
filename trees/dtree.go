/*
Package trees implements concrete classifiers for the evaluation
pipeline: a CART-style decision tree and a bagged random forest.
Both are interchangeable behind the model.Classifier capability.
*/
package trees

import (
	"bytes"
	"encoding/gob"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"go-ml.dev/pkg/tabeval/model"
	"go-ml.dev/pkg/zorros"
)

/*
DecisionTree is a CART-style classifier over a dense numeric matrix.
Splits are numeric thresholds (x <= threshold goes left), which matches
matrices produced by the feature preprocessor.
*/
type DecisionTree struct {
	MaxDepth        int    // 0 means no depth limit
	MinSamplesSplit int    // minimum samples to attempt a split
	MinSamplesLeaf  int    // minimum samples required in each leaf
	Criterion       string // "gini" or "entropy"
	MaxFeatures     int    // 0 means all features, otherwise sampled per node
	Seed            uint64 // seed of the feature subsampling

	root    *node
	classes []int // labels in order of first occurrence
}

var _ model.Classifier = (*DecisionTree)(nil)

type node struct {
	Leaf      bool
	Feature   int
	Threshold float64
	Left      *node
	Right     *node
	N         int
	Probas    []float64 // class distribution aligned with tree classes
	Pred      int       // index of the majority class
}

/*
Option is a functional config of a decision tree
*/
type Option func(*DecisionTree)

func WithMaxDepth(d int) Option        { return func(t *DecisionTree) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) Option { return func(t *DecisionTree) { t.MinSamplesSplit = n } }
func WithMinSamplesLeaf(n int) Option  { return func(t *DecisionTree) { t.MinSamplesLeaf = n } }
func WithCriterion(c string) Option    { return func(t *DecisionTree) { t.Criterion = c } }
func WithMaxFeatures(k int) Option     { return func(t *DecisionTree) { t.MaxFeatures = k } }
func WithSeed(seed uint64) Option      { return func(t *DecisionTree) { t.Seed = seed } }

/*
NewDecisionTree returns a classifier with sensible defaults
*/
func NewDecisionTree(opts ...Option) *DecisionTree {
	t := &DecisionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Criterion:       "gini",
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

/*
Fit grows the tree from the matrix x and integer labels y.
Training is deterministic for a fixed (x, y, Seed).
*/
func (t *DecisionTree) Fit(x *mat.Dense, y []int) error {
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return zorros.Errorf("dtree: empty feature matrix")
	}
	if len(y) != n {
		return zorros.Errorf("dtree: %v labels for %v rows", len(y), n)
	}
	index := map[int]int{}
	t.classes = nil
	for _, lab := range y {
		if _, ok := index[lab]; !ok {
			index[lab] = len(t.classes)
			t.classes = append(t.classes, lab)
		}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	g := &grower{
		tree:     t,
		x:        x,
		y:        y,
		index:    index,
		p:        p,
		impurity: giniFromCounts,
		rnd:      rand.New(rand.NewSource(t.Seed)),
	}
	if t.Criterion == "entropy" {
		g.impurity = entropyFromCounts
	}
	t.root = g.build(idx, 0)
	return nil
}

/*
Predict returns the majority-class label of the leaf each row falls into
*/
func (t *DecisionTree) Predict(x *mat.Dense) ([]int, error) {
	if t.root == nil {
		return nil, zorros.Errorf("dtree: not fitted")
	}
	n, _ := x.Dims()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		nd := t.walk(x.RawRowView(i))
		out[i] = t.classes[nd.Pred]
	}
	return out, nil
}

func (t *DecisionTree) walk(row []float64) *node {
	nd := t.root
	for !nd.Leaf {
		if row[nd.Feature] <= nd.Threshold {
			nd = nd.Left
		} else {
			nd = nd.Right
		}
	}
	return nd
}

type grower struct {
	tree     *DecisionTree
	x        *mat.Dense
	y        []int
	index    map[int]int // label -> class index
	p        int
	impurity func([]int) float64
	rnd      *rand.Rand
}

type pair struct {
	v float64
	i int
}

func (g *grower) build(idx []int, depth int) *node {
	t := g.tree
	counts := make([]int, len(t.classes))
	for _, i := range idx {
		counts[g.index[g.y[i]]]++
	}
	nd := &node{N: len(idx), Probas: countsToProbas(counts), Pred: argmax(counts)}
	if isPure(counts) || len(idx) < t.MinSamplesSplit ||
		(t.MaxDepth > 0 && depth >= t.MaxDepth) {
		nd.Leaf = true
		return nd
	}
	feature, threshold, left, right := g.bestSplit(idx, counts)
	if feature < 0 {
		nd.Leaf = true
		return nd
	}
	nd.Feature = feature
	nd.Threshold = threshold
	nd.Left = g.build(left, depth+1)
	nd.Right = g.build(right, depth+1)
	return nd
}

// bestSplit scans candidate thresholds of the tried features and keeps
// the first split with the strictly best impurity decrease. Features are
// scanned in ascending order so the result does not depend on anything
// but the data and the sampling seed.
func (g *grower) bestSplit(idx []int, parent []int) (feature int, threshold float64, left, right []int) {
	t := g.tree
	feature = -1
	features := make([]int, g.p)
	for j := range features {
		features[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < g.p {
		g.rnd.Shuffle(g.p, func(i, j int) { features[i], features[j] = features[j], features[i] })
		features = features[:t.MaxFeatures]
		sort.Ints(features)
	}
	parentImpurity := g.impurity(parent)
	bestGain := 0.0
	var bestPairs []pair
	bestCut := 0
	pairs := make([]pair, len(idx))
	leftCounts := make([]int, len(parent))
	rightCounts := make([]int, len(parent))
	for _, f := range features {
		for k, i := range idx {
			pairs[k] = pair{g.x.At(i, f), i}
		}
		sort.Slice(pairs, func(a, b int) bool { return pairs[a].v < pairs[b].v })
		for k := range leftCounts {
			leftCounts[k] = 0
			rightCounts[k] = parent[k]
		}
		for s := 1; s < len(pairs); s++ {
			ci := g.index[g.y[pairs[s-1].i]]
			leftCounts[ci]++
			rightCounts[ci]--
			if pairs[s].v == pairs[s-1].v {
				continue
			}
			if s < t.MinSamplesLeaf || len(pairs)-s < t.MinSamplesLeaf {
				continue
			}
			nl, nr := float64(s), float64(len(pairs)-s)
			weighted := nl/float64(len(pairs))*g.impurity(leftCounts) +
				nr/float64(len(pairs))*g.impurity(rightCounts)
			if gain := parentImpurity - weighted; gain > bestGain {
				bestGain = gain
				feature = f
				threshold = (pairs[s-1].v + pairs[s].v) / 2
				bestPairs = append(bestPairs[:0], pairs...)
				bestCut = s
			}
		}
	}
	if feature < 0 {
		return
	}
	left = make([]int, 0, bestCut)
	right = make([]int, 0, len(bestPairs)-bestCut)
	for k, p := range bestPairs {
		if k < bestCut {
			left = append(left, p.i)
		} else {
			right = append(right, p.i)
		}
	}
	return
}

func giniFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / n
		res += p * (1 - p)
	}
	return res
}

func entropyFromCounts(counts []int) float64 {
	n := 0.0
	for _, c := range counts {
		n += float64(c)
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		res -= p * math.Log2(p)
	}
	return res
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func countsToProbas(counts []int) []float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	p := make([]float64, len(counts))
	if n == 0 {
		return p
	}
	for i, c := range counts {
		p[i] = float64(c) / float64(n)
	}
	return p
}

func argmax(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}

type treeSnapshot struct {
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Criterion       string
	MaxFeatures     int
	Seed            uint64
	Classes         []int
	Root            *node
}

/*
MarshalBinary implements encoding.BinaryMarshaler using gob
*/
func (t *DecisionTree) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(treeSnapshot{
		MaxDepth:        t.MaxDepth,
		MinSamplesSplit: t.MinSamplesSplit,
		MinSamplesLeaf:  t.MinSamplesLeaf,
		Criterion:       t.Criterion,
		MaxFeatures:     t.MaxFeatures,
		Seed:            t.Seed,
		Classes:         t.classes,
		Root:            t.root,
	})
	if err != nil {
		return nil, zorros.Trace(err)
	}
	return buf.Bytes(), nil
}

/*
UnmarshalBinary implements encoding.BinaryUnmarshaler using gob
*/
func (t *DecisionTree) UnmarshalBinary(data []byte) error {
	var s treeSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return zorros.Trace(err)
	}
	t.MaxDepth = s.MaxDepth
	t.MinSamplesSplit = s.MinSamplesSplit
	t.MinSamplesLeaf = s.MinSamplesLeaf
	t.Criterion = s.Criterion
	t.MaxFeatures = s.MaxFeatures
	t.Seed = s.Seed
	t.classes = s.Classes
	t.root = s.Root
	return nil
}
