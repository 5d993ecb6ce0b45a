package tables

import (
	"testing"

	"gotest.tools/assert"
)

func Test_New(t *testing.T) {
	q, err := New([]string{"a", "b"}, [][]string{{"1", "2"}, {"x", "y"}})
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 2)
	assert.DeepEqual(t, q.Names(), []string{"a", "b"})
	assert.Assert(t, q.Has("a"))
	assert.Assert(t, !q.Has("c"))

	_, err = New([]string{"a"}, [][]string{{"1"}, {"2"}})
	assert.Assert(t, err != nil)
	_, err = New([]string{"a", "a"}, [][]string{{"1"}, {"2"}})
	assert.Assert(t, err != nil)
	_, err = New([]string{"a", "b"}, [][]string{{"1", "2"}, {"x"}})
	assert.Assert(t, err != nil)
}

func Test_Select(t *testing.T) {
	q, err := New([]string{"a"}, [][]string{{"r0", "r1", "r2", "r3"}})
	assert.NilError(t, err)
	s := q.Select([]int{3, 1, 1})
	assert.Equal(t, s.Len(), 3)
	assert.DeepEqual(t, s.Col("a"), []string{"r3", "r1", "r1"})
	// the source table is untouched
	assert.DeepEqual(t, q.Col("a"), []string{"r0", "r1", "r2", "r3"})
}

func Test_Head(t *testing.T) {
	q, err := New([]string{"a"}, [][]string{{"r0", "r1", "r2"}})
	assert.NilError(t, err)
	assert.Equal(t, q.Head(2).Len(), 2)
	assert.Equal(t, q.Head(10).Len(), 3)
}

func Test_IsMissing(t *testing.T) {
	for _, v := range []string{"", "NA", "NaN", "NULL"} {
		assert.Assert(t, IsMissing(v), v)
	}
	assert.Assert(t, !IsMissing("0"))
	assert.Assert(t, !IsMissing("Unknown"))
}
