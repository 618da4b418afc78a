package povel

import (
	"fmt"
	"math"
	"sort"
)

// HypothesisSpace enumerates the clocks that fit a phrase, ordered by
// ascending period then ascending phase. Periods are k*baseTimeStep for
// k in [1, floor(phraseLength/2)) and must divide phraseLength; phases run
// over 0, 1, ... below the period and are not scaled by baseTimeStep.
func HypothesisSpace[T Number](baseTimeStep, phraseLength T) ([]Hypothesis[T], error) {
	if phraseLength < 2 {
		return nil, fmt.Errorf("%w: phrase length %v", ErrEmptyHypothesisSpace, phraseLength)
	}
	if baseTimeStep <= 0 {
		return nil, fmt.Errorf("%w: base time step %v", ErrEmptyHypothesisSpace, baseTimeStep)
	}

	half := math.Floor(float64(phraseLength) / 2)
	var space []Hypothesis[T]
	for k := 1; float64(k) < half; k++ {
		period := T(k) * baseTimeStep
		if math.Mod(float64(phraseLength), float64(period)) != 0 {
			continue
		}
		for phase := 0; float64(phase) < float64(period); phase++ {
			space = append(space, Hypothesis[T]{Phase: T(phase), Period: period})
		}
	}

	if len(space) == 0 {
		return nil, fmt.Errorf("%w: phrase length %v, base time step %v", ErrEmptyHypothesisSpace, phraseLength, baseTimeStep)
	}
	return space, nil
}

// RankClocks scores the whole hypothesis space and sorts it by ascending
// counterevidence. Ties keep enumeration order.
func RankClocks[T Number](onsets []T, baseTimeStep, phraseLength T, opts *Options) ([]ScoredHypothesis[T], error) {
	scored, err := scoreSpace(onsets, baseTimeStep, phraseLength, opts)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Counterevidence < scored[j].Counterevidence
	})
	return scored, nil
}

// BestClock returns the clock with the least counterevidence. The first
// minimum in enumeration order wins.
func BestClock[T Number](onsets []T, baseTimeStep, phraseLength T, opts *Options) (ScoredHypothesis[T], error) {
	scored, err := scoreSpace(onsets, baseTimeStep, phraseLength, opts)
	if err != nil {
		return ScoredHypothesis[T]{}, err
	}
	best := scored[0]
	for _, sh := range scored[1:] {
		if sh.Counterevidence < best.Counterevidence {
			best = sh
		}
	}
	return best, nil
}

func scoreSpace[T Number](onsets []T, baseTimeStep, phraseLength T, opts *Options) ([]ScoredHypothesis[T], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	accents, err := AccentedOnsets(onsets, &o)
	if err != nil {
		return nil, err
	}
	space, err := HypothesisSpace(baseTimeStep, phraseLength)
	if err != nil {
		return nil, err
	}

	s := newScorer(onsets, accents, o.CounterevidenceWeight)
	scored := make([]ScoredHypothesis[T], len(space))
	for i, h := range space {
		scored[i] = ScoredHypothesis[T]{Hypothesis: h, Counterevidence: s.score(h)}
	}
	return scored, nil
}

// CvToCategory maps counterevidence to a 1-based category.
func CvToCategory(counterevidence int) int {
	return counterevidence + 1
}
