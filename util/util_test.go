package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{150, 150, 300, 150, 300}, Diff([]int{0, 150, 300, 600, 750, 1050}))
	assert.Nil(Diff([]int{3}))
	assert.Equal([]float64{0.5}, Diff([]float64{1, 1.5}))
}

func TestDistinctSortedLeavesInputAlone(t *testing.T) {
	in := []int{3, 1, 2, 1, 3}
	assert := assert.New(t)
	assert.Equal([]int{1, 2, 3}, DistinctSorted(in))
	assert.Equal([]int{3, 1, 2, 1, 3}, in)
}

func TestMinAndSum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Min(2, 5))
	assert.Equal(-1.5, Min(3.0, -1.5))
	assert.Equal(8, Sum([]int{3, 1, 2, 2}))
	assert.Equal(uint8(0), Sum([]uint8{}))
}

func TestGetSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetSortedKeys(m))
}

func TestSet(t *testing.T) {
	s := Set([]int{1, 2, 2})
	assert := assert.New(t)
	assert.Len(s, 2)
	_, ok := s[2]
	assert.True(ok)
}
