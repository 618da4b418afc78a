package povel

import "fmt"

// AccentedOnsets returns the onsets that are perceived as accented.
func AccentedOnsets[T Number](onsets []T, opts *Options) ([]T, error) {
	clusters, err := ClusterOnsets(onsets, opts)
	if err != nil {
		return nil, err
	}
	return AccentsFromClusters(onsets, clusters)
}

// AccentsFromClusters walks onsets cluster by cluster: an isolated onset is
// accented, a pair accents its second onset, and larger clusters accent their
// first and last onsets.
func AccentsFromClusters[T Number](onsets []T, clusters []int) ([]T, error) {
	total := 0
	for i, size := range clusters {
		if size < 1 {
			return nil, fmt.Errorf("%w: cluster %d has size %d", ErrClusterMismatch, i, size)
		}
		total += size
	}
	if total != len(onsets) {
		return nil, fmt.Errorf("%w: clusters hold %d onsets, got %d", ErrClusterMismatch, total, len(onsets))
	}

	accents := make([]T, 0, 2*len(clusters))
	cursor := 0
	for _, size := range clusters {
		switch size {
		case 1:
			accents = append(accents, onsets[cursor])
		case 2:
			accents = append(accents, onsets[cursor+1])
		default:
			accents = append(accents, onsets[cursor], onsets[cursor+size-1])
		}
		cursor += size
	}
	return accents, nil
}
