/*
Package split produces deterministic k-fold cross-validation partitions.
*/
package split

import (
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
)

// ErrConfig means out-of-range k-fold parameters.
var ErrConfig = xerrors.New("invalid k-fold configuration")

/*
Config defines a k-fold partition of a dataset
*/
type Config struct {
	K       int    // count of folds, must be in [2, row count]
	Shuffle bool   // permute row indices before grouping
	Seed    uint64 // seed of the shuffle permutation
}

/*
Fold is one train/validation index pair. Test indices of the folds of
one partition cover every row exactly once.
*/
type Fold struct {
	Train []int
	Test  []int
}

/*
KFold partitions n row indices into c.K folds. The same (n, Config)
always yields the same folds: shuffling uses a private source seeded
with c.Seed, never the global random state.

Indices are permuted (or kept in order when Shuffle is off) and cut into
K contiguous groups, the first n mod K groups one row longer. Each group
in turn is a fold's validation set, the rest its train set.
*/
func KFold(n int, c Config) ([]Fold, error) {
	if c.K < 2 || c.K > n {
		return nil, xerrors.Errorf("k=%v is out of range for %v rows: %w", c.K, n, ErrConfig)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if c.Shuffle {
		rnd := rand.New(rand.NewSource(c.Seed))
		rnd.Shuffle(n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
	}
	folds := make([]Fold, c.K)
	start := 0
	for i := 0; i < c.K; i++ {
		size := n / c.K
		if i < n%c.K {
			size++
		}
		test := make([]int, size)
		copy(test, perm[start:start+size])
		train := make([]int, 0, n-size)
		train = append(train, perm[:start]...)
		train = append(train, perm[start+size:]...)
		folds[i] = Fold{Train: train, Test: test}
		start += size
	}
	return folds, nil
}
