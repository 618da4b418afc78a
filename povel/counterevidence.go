package povel

import (
	"fmt"

	"github.com/jsphweid/povel/util"
)

// HypothesisCounterevidence scores a clock against onsets. Every tick from
// the phase up to (excluding) the last onset plus one period costs 0 on an
// accented onset, 1 on an unaccented onset and CounterevidenceWeight on
// silence.
func HypothesisCounterevidence[T Number](onsets []T, h Hypothesis[T], opts *Options) (int, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, err
	}
	if h.Period <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidHypothesis, h.Period)
	}
	accents, err := AccentedOnsets(onsets, &o)
	if err != nil {
		return 0, err
	}
	return newScorer(onsets, accents, o.CounterevidenceWeight).score(h), nil
}

type scorer[T Number] struct {
	onsets  map[T]struct{}
	accents map[T]struct{}
	last    T
	weight  int
}

func newScorer[T Number](onsets, accents []T, weight int) *scorer[T] {
	return &scorer[T]{
		onsets:  util.Set(onsets),
		accents: util.Set(accents),
		last:    onsets[len(onsets)-1],
		weight:  weight,
	}
}

func (s *scorer[T]) score(h Hypothesis[T]) int {
	counterevidence := 0
	for tick := h.Phase; tick < s.last+h.Period; tick += h.Period {
		if _, ok := s.accents[tick]; ok {
			continue
		}
		if _, ok := s.onsets[tick]; ok {
			counterevidence++
		} else {
			counterevidence += s.weight
		}
	}
	return counterevidence
}
