// Package rhythm converts symbolic rhythms into onset sequences.
package rhythm

import (
	"errors"
	"fmt"

	"github.com/jsphweid/povel/util"
)

var ErrInvalidDuration = errors.New("rhythm: durations must be positive")

// SeqToBeats turns a sequence of beat durations into absolute onsets, one per
// duration, starting at 0 and scaled by the inter-beat interval. The end of
// the last duration is not an onset.
func SeqToBeats[T util.Number](ibi T, durations []T) ([]T, error) {
	if ibi <= 0 {
		return nil, fmt.Errorf("%w: inter-beat interval %v", ErrInvalidDuration, ibi)
	}
	onsets := make([]T, len(durations))
	for i, d := range durations {
		if d <= 0 {
			return nil, fmt.Errorf("%w: duration %d is %v", ErrInvalidDuration, i, d)
		}
		if i > 0 {
			onsets[i] = onsets[i-1] + durations[i-1]*ibi
		}
	}
	return onsets, nil
}

// Length is the total span of a duration sequence in beats.
func Length[T util.Number](durations []T) T {
	return util.Sum(durations)
}

func Scale[T util.Number](onsets []T, factor T) []T {
	res := make([]T, len(onsets))
	for i, v := range onsets {
		res[i] = v * factor
	}
	return res
}

// Durations is the inverse of SeqToBeats for a known phrase length: the
// intervals between onsets followed by the gap to the end of the phrase.
func Durations[T util.Number](onsets []T, length T) ([]T, error) {
	if len(onsets) == 0 {
		return nil, nil
	}
	last := onsets[len(onsets)-1]
	if length <= last {
		return nil, fmt.Errorf("%w: phrase ends at %v before last onset %v", ErrInvalidDuration, length, last)
	}
	return append(util.Diff(onsets), length-last), nil
}
