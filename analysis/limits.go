package analysis

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMaxPhraseLength = 4096
	DefaultMaxScoredTicks  = 1_000_000
)

var ErrTooMuchWork = errors.New("analysis: input exceeds work limits")

// Limits bounds the work of one Analyze call. The clock search projects
// every hypothesis up to the last onset, so its cost grows with the onset
// span and with the phrase length, not with the number of onsets.
type Limits struct {
	MaxPhraseLength float64
	MaxScoredTicks  float64
}

func DefaultLimits() Limits {
	return Limits{MaxPhraseLength: DefaultMaxPhraseLength, MaxScoredTicks: DefaultMaxScoredTicks}
}

// Check rejects input whose clock search would exceed the limits. Input the
// model itself rejects (too few onsets, empty hypothesis space) passes and
// fails later with the model's error.
func (l Limits) Check(onsets []float64, p Params) error {
	if !finite(p.BaseTimeStep) || !finite(p.PhraseLength) {
		return fmt.Errorf("%w: base time step %v, phrase length %v", ErrTooMuchWork, p.BaseTimeStep, p.PhraseLength)
	}
	for _, o := range onsets {
		if !finite(o) {
			return fmt.Errorf("%w: onset %v", ErrTooMuchWork, o)
		}
	}
	if p.PhraseLength > l.MaxPhraseLength {
		return fmt.Errorf("%w: phrase length %v above %v", ErrTooMuchWork, p.PhraseLength, l.MaxPhraseLength)
	}
	if len(onsets) == 0 || p.BaseTimeStep <= 0 {
		return nil
	}
	if ticks := ProjectedTicks(onsets[len(onsets)-1], p.BaseTimeStep, p.PhraseLength, l.MaxScoredTicks); ticks > l.MaxScoredTicks {
		return fmt.Errorf("%w: about %.0f clock ticks to score, limit %v", ErrTooMuchWork, ticks, l.MaxScoredTicks)
	}
	return nil
}

// ProjectedTicks estimates how many clock ticks RankClocks scores for a
// sequence ending at last, without building the hypothesis space. Counting
// stops once the total passes stop.
func ProjectedTicks(last, baseTimeStep, phraseLength, stop float64) float64 {
	half := math.Floor(phraseLength / 2)
	total := 0.0
	for k := 1; float64(k) < half && total <= stop; k++ {
		period := float64(k) * baseTimeStep
		if math.Mod(phraseLength, period) != 0 {
			continue
		}
		phases := math.Ceil(period)
		total += phases * (math.Max(last, 0)/period + 1)
	}
	return total
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
