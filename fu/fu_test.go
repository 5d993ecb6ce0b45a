package fu

import (
	"testing"

	"gotest.tools/assert"
)

func Test_Fnzi(t *testing.T) {
	assert.Equal(t, Fnzi(0, 0, 3), 3)
	assert.Equal(t, Fnzi(5, 3), 5)
	assert.Equal(t, Fnzi(0, 0), 0)
	assert.Equal(t, Fnzi(), 0)
}

func Test_MaxiMini(t *testing.T) {
	assert.Equal(t, Maxi(2, 7), 7)
	assert.Equal(t, Maxi(7, 2), 7)
	assert.Equal(t, Mini(2, 7), 2)
	assert.Equal(t, Mini(7, 2), 2)
}

func Test_Mean(t *testing.T) {
	assert.Equal(t, Mean([]float64{1, 2, 3, 4}), 2.5)
}

func Test_RoundEven(t *testing.T) {
	assert.Equal(t, RoundEven(1.5, 0), 2.0) // half goes to even
	assert.Equal(t, RoundEven(2.5, 0), 2.0)
	assert.Equal(t, RoundEven(0.25, 1), 0.2)
	assert.Equal(t, RoundEven(0.375, 2), 0.38)
	assert.Equal(t, RoundEven(0.12341, 4), 0.1234)
	assert.Equal(t, RoundEven(0.12349, 4), 0.1235)
}
