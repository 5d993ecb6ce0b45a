package split

import (
	"sort"
	"testing"

	"golang.org/x/xerrors"
	"gotest.tools/assert"
)

func Test_KFoldDeterministic(t *testing.T) {
	for _, shuffle := range []bool{false, true} {
		a, err := KFold(50, Config{K: 7, Shuffle: shuffle, Seed: 13})
		assert.NilError(t, err)
		b, err := KFold(50, Config{K: 7, Shuffle: shuffle, Seed: 13})
		assert.NilError(t, err)
		assert.DeepEqual(t, a, b)
	}
}

func Test_KFoldSeedMatters(t *testing.T) {
	a, err := KFold(50, Config{K: 5, Shuffle: true, Seed: 1})
	assert.NilError(t, err)
	b, err := KFold(50, Config{K: 5, Shuffle: true, Seed: 2})
	assert.NilError(t, err)
	same := true
	for i := range a {
		for j := range a[i].Test {
			if a[i].Test[j] != b[i].Test[j] {
				same = false
			}
		}
	}
	assert.Assert(t, !same)
}

// test sets of one partition cover every row index exactly once
func Test_KFoldPartition(t *testing.T) {
	for _, c := range []Config{
		{K: 2}, {K: 4}, {K: 7, Shuffle: true, Seed: 3}, {K: 11, Shuffle: true, Seed: 5},
	} {
		n := 23
		folds, err := KFold(n, c)
		assert.NilError(t, err)
		assert.Equal(t, len(folds), c.K)
		var all []int
		for _, f := range folds {
			assert.Equal(t, len(f.Train)+len(f.Test), n)
			all = append(all, f.Test...)
		}
		assert.Equal(t, len(all), n)
		sort.Ints(all)
		for i, v := range all {
			assert.Equal(t, v, i)
		}
	}
}

func Test_KFoldSizes(t *testing.T) {
	folds, err := KFold(10, Config{K: 4})
	assert.NilError(t, err)
	// first n mod k folds take one extra row
	assert.Equal(t, len(folds[0].Test), 3)
	assert.Equal(t, len(folds[1].Test), 3)
	assert.Equal(t, len(folds[2].Test), 2)
	assert.Equal(t, len(folds[3].Test), 2)
}

func Test_KFoldNoShuffleOrder(t *testing.T) {
	folds, err := KFold(6, Config{K: 3})
	assert.NilError(t, err)
	assert.DeepEqual(t, folds[0].Test, []int{0, 1})
	assert.DeepEqual(t, folds[0].Train, []int{2, 3, 4, 5})
	assert.DeepEqual(t, folds[1].Test, []int{2, 3})
	assert.DeepEqual(t, folds[2].Test, []int{4, 5})
}

func Test_KFoldConfigErrors(t *testing.T) {
	_, err := KFold(10, Config{K: 1})
	assert.Assert(t, xerrors.Is(err, ErrConfig))
	_, err = KFold(10, Config{K: 11})
	assert.Assert(t, xerrors.Is(err, ErrConfig))
	_, err = KFold(10, Config{K: 0})
	assert.Assert(t, xerrors.Is(err, ErrConfig))
}
