// Package povel implements Povel's (1985) clock induction model.
//
// An onset sequence is grouped into perceptual clusters, the cluster
// boundaries determine which onsets are accented, and every candidate clock
// (phase, period) that fits a phrase is scored by how much counterevidence
// the onsets offer against it. The clock with the least counterevidence wins.
//
// Onsets and clocks share one discrete unit (milliseconds or multiples of a
// base step). Coincidence is exact equality; no tolerance is applied.
//
// Example:
//
//	onsets := []int{0, 1, 2, 4, 7, 8, 11, 12}
//	best, err := povel.BestClock(onsets, 1, 16, nil)
//	if err != nil {
//	  // handle ErrInsufficientOnsets or ErrEmptyHypothesisSpace
//	}
//	fmt.Println(best.Hypothesis, best.Counterevidence) // {0 4} 0
package povel
