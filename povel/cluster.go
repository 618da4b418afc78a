package povel

import (
	"github.com/jsphweid/povel/util"
)

// ReferenceInterval is the clustering threshold of an onset sequence: the
// middle element (index len/2) of its distinct, sorted inter-onset intervals.
// This is not the statistical median of the raw intervals.
func ReferenceInterval[T Number](onsets []T) (T, error) {
	if err := validateOnsets(onsets); err != nil {
		var zero T
		return zero, err
	}
	return referenceInterval(util.Diff(onsets)), nil
}

func referenceInterval[T Number](iois []T) T {
	distinct := util.DistinctSorted(iois)
	return distinct[len(distinct)/2]
}

// ClusterOnsets groups onsets into clusters and returns the number of onsets
// in each cluster, in order. The sizes sum to len(onsets).
//
// An internal onset joins the running cluster when its preceding interval is
// the shorter of its two neighbouring intervals and is below both the
// reference interval and the maximum clustering duration. The last onset
// joins when the last interval is below the reference interval.
func ClusterOnsets[T Number](onsets []T, opts *Options) ([]int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validateOnsets(onsets); err != nil {
		return nil, err
	}

	iois := util.Diff(onsets)
	reference := referenceInterval(iois)

	clusters := []int{1}
	for i := 1; i < len(onsets)-1; i++ {
		prevDur := iois[i-1]
		nextDur := iois[i]
		minDur := util.Min(prevDur, nextDur)
		if minDur == prevDur && minDur < reference && float64(minDur) < o.MaxClusteringDur {
			clusters[len(clusters)-1]++
		} else {
			clusters = append(clusters, 1)
		}
	}

	// the final onset only looks back at the last interval and the reference;
	// the duration bound acts as an on/off switch here
	lastDur := iois[len(iois)-1]
	if lastDur < reference && o.MaxClusteringDur != 0 {
		clusters[len(clusters)-1]++
	} else {
		clusters = append(clusters, 1)
	}

	return clusters, nil
}
