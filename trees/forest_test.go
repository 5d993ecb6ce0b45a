package trees

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gotest.tools/assert"
)

func blobs() (*mat.Dense, []int) {
	// two well-separated 2d blobs, three points of each duplicated
	data := []float64{
		0, 0, 0.2, 0.1, 0.1, 0.3, 0, 0, 0.2, 0.1, 0.1, 0.3,
		5, 5, 5.2, 5.1, 5.1, 5.3, 5, 5, 5.2, 5.1, 5.1, 5.3,
	}
	y := []int{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
	return mat.NewDense(12, 2, data), y
}

func Test_ForestSeparable(t *testing.T) {
	x, y := blobs()
	rf := &RandomForest{Trees: 15, Seed: 7}
	assert.NilError(t, rf.Fit(x, y))
	pred, err := rf.Predict(x)
	assert.NilError(t, err)
	assert.DeepEqual(t, pred, y)
}

func Test_ForestDeterministic(t *testing.T) {
	x, y := blobs()
	probe := mat.NewDense(2, 2, []float64{0.4, 0.2, 4.8, 5.0})
	a := &RandomForest{Trees: 15, Seed: 3}
	b := &RandomForest{Trees: 15, Seed: 3}
	assert.NilError(t, a.Fit(x, y))
	assert.NilError(t, b.Fit(x, y))
	pa, err := a.Predict(probe)
	assert.NilError(t, err)
	pb, err := b.Predict(probe)
	assert.NilError(t, err)
	assert.DeepEqual(t, pa, pb)
}

func Test_ForestNoBootstrap(t *testing.T) {
	x, y := blobs()
	rf := &RandomForest{Trees: 5, NoBootstrap: true}
	assert.NilError(t, rf.Fit(x, y))
	pred, err := rf.Predict(x)
	assert.NilError(t, err)
	assert.DeepEqual(t, pred, y)
}

func Test_ForestNotFitted(t *testing.T) {
	rf := &RandomForest{}
	_, err := rf.Predict(mat.NewDense(1, 2, nil))
	assert.Assert(t, err != nil)
}

func Test_ForestGobRoundtrip(t *testing.T) {
	x, y := blobs()
	rf := &RandomForest{Trees: 5, Seed: 1}
	assert.NilError(t, rf.Fit(x, y))
	b, err := rf.MarshalBinary()
	assert.NilError(t, err)
	restored := &RandomForest{}
	assert.NilError(t, restored.UnmarshalBinary(b))
	p1, err := rf.Predict(x)
	assert.NilError(t, err)
	p2, err := restored.Predict(x)
	assert.NilError(t, err)
	assert.DeepEqual(t, p1, p2)
}
