package povel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/povel/util"
)

// referenceOf only compiles while util.Number satisfies the model's constraint.
func referenceOf[T util.Number](onsets []T) (T, error) {
	return ReferenceInterval(onsets)
}

func TestReferenceIntervalSharedNumber(t *testing.T) {
	assert := assert.New(t)

	ref, err := referenceOf([]uint8{0, 1, 3, 4})
	assert.NoError(err)
	assert.Equal(uint8(2), ref)

	refMillis, err := referenceOf([]float64{0, 150, 300, 600})
	assert.NoError(err)
	assert.Equal(300.0, refMillis)
}

func TestClusterOnsetsPovelPatterns(t *testing.T) {
	for _, ibi := range []int{1, 150, 200, 250} {
		for _, p := range povelPatterns {
			name := fmt.Sprintf("ibi %d pattern %v", ibi, p.pattern)
			t.Run(name, func(t *testing.T) {
				clusters, err := ClusterOnsets(beats(ibi, p.pattern), nil)
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(p.clusters, clusters)
			})
		}
	}
}

func TestClusterOnsetsUsesDistinctIntervalMedian(t *testing.T) {
	// intervals 150,150,300,150,300 -> distinct {150,300} -> reference 300
	onsets := []int{0, 150, 300, 600, 750, 1050}

	ref, err := ReferenceInterval(onsets)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(300, ref)

	clusters, err := ClusterOnsets(onsets, nil)
	assert.NoError(err)
	assert.Equal([]int{3, 2, 1}, clusters)
}

func TestClusterOnsetsTwoOnsets(t *testing.T) {
	clusters, err := ClusterOnsets([]float64{0, 100}, nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{1, 1}, clusters)
}

func TestClusterOnsetsMaxDurationBound(t *testing.T) {
	onsets := beats(500, []int{1, 1, 2, 3, 1, 3, 1, 4})

	// 500 is above the default bound, so only the final onset may cluster
	clusters, err := ClusterOnsets(onsets, nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]int{1, 1, 1, 1, 1, 1, 2}, clusters)

	opts := DefaultOptions()
	opts.MaxClusteringDur = 1000
	clusters, err = ClusterOnsets(onsets, &opts)
	assert.NoError(err)
	assert.Equal([]int{3, 1, 2, 2}, clusters)

	// a zero bound switches off the final onset's clustering as well
	opts.MaxClusteringDur = 0
	clusters, err = ClusterOnsets(onsets, &opts)
	assert.NoError(err)
	assert.Equal([]int{1, 1, 1, 1, 1, 1, 1, 1}, clusters)
}

func TestClusterOnsetsPartitionsOnsets(t *testing.T) {
	sequences := [][]float64{
		{0, 1},
		{0, 10, 20, 30},
		{0, 0.5, 1.5, 1.75, 4, 4.25, 4.5, 9},
		{3, 7, 8, 9, 15, 16, 40},
	}
	for _, onsets := range sequences {
		clusters, err := ClusterOnsets(onsets, nil)
		assert := assert.New(t)
		assert.NoError(err)
		total := 0
		for _, size := range clusters {
			assert.GreaterOrEqual(size, 1)
			total += size
		}
		assert.Equal(len(onsets), total)
	}
}

func TestClusterOnsetsErrors(t *testing.T) {
	_, err := ClusterOnsets([]int{5}, nil)
	assert.ErrorIs(t, err, ErrInsufficientOnsets)

	_, err = ClusterOnsets([]int{}, nil)
	assert.ErrorIs(t, err, ErrInsufficientOnsets)

	_, err = ClusterOnsets([]int{0, 4, 4, 8}, nil)
	assert.ErrorIs(t, err, ErrUnorderedOnsets)

	_, err = ClusterOnsets([]int{-1, 4}, nil)
	assert.ErrorIs(t, err, ErrUnorderedOnsets)

	opts := Options{MaxClusteringDur: -1, CounterevidenceWeight: 4}
	_, err = ClusterOnsets([]int{0, 4}, &opts)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}
