package povel

import (
	"errors"
	"fmt"

	"github.com/jsphweid/povel/util"
)

// Number is any onset unit: integer steps, ticks or (float) milliseconds.
type Number = util.Number

const (
	// DefaultMaxClusteringDur is the largest interval, in onset units, that can
	// still join two onsets into one cluster.
	DefaultMaxClusteringDur = 450

	// DefaultCounterevidenceWeight is the penalty for a clock tick that falls
	// on silence.
	DefaultCounterevidenceWeight = 4
)

var (
	ErrInsufficientOnsets   = errors.New("povel: at least 2 onsets are required")
	ErrUnorderedOnsets      = errors.New("povel: onsets must be non-negative and strictly increasing")
	ErrClusterMismatch      = errors.New("povel: cluster sizes do not partition the onsets")
	ErrInvalidHypothesis    = errors.New("povel: hypothesis period must be positive")
	ErrEmptyHypothesisSpace = errors.New("povel: no clock hypothesis fits the phrase")
	ErrInvalidOptions       = errors.New("povel: invalid options")
)

// Options configures the model constants.
type Options struct {
	// MaxClusteringDur is the interval at or above which onsets never
	// cluster. Zero also keeps the final onset out of any cluster.
	MaxClusteringDur float64

	// CounterevidenceWeight is the cost of a clock tick on silence (W in the
	// paper). A tick on an unaccented onset costs 1, on an accented onset 0.
	CounterevidenceWeight int
}

// DefaultOptions returns the constants from Povel (1985).
func DefaultOptions() Options {
	return Options{
		MaxClusteringDur:      DefaultMaxClusteringDur,
		CounterevidenceWeight: DefaultCounterevidenceWeight,
	}
}

func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	if opts.MaxClusteringDur < 0 {
		return Options{}, fmt.Errorf("%w: MaxClusteringDur %v is negative", ErrInvalidOptions, opts.MaxClusteringDur)
	}
	if opts.CounterevidenceWeight < 0 {
		return Options{}, fmt.Errorf("%w: CounterevidenceWeight %d is negative", ErrInvalidOptions, opts.CounterevidenceWeight)
	}
	return *opts, nil
}

// Hypothesis is a clock: ticks at Phase, Phase+Period, Phase+2*Period, ...
type Hypothesis[T Number] struct {
	Phase  T `json:"phase" yaml:"phase"`
	Period T `json:"period" yaml:"period"`
}

// ScoredHypothesis pairs a clock with its counterevidence.
type ScoredHypothesis[T Number] struct {
	Hypothesis      Hypothesis[T] `json:"hypothesis"`
	Counterevidence int           `json:"counterevidence"`
}

func validateOnsets[T Number](onsets []T) error {
	if len(onsets) < 2 {
		return fmt.Errorf("%w: got %d", ErrInsufficientOnsets, len(onsets))
	}
	for i, onset := range onsets {
		if onset < 0 {
			return fmt.Errorf("%w: onset %d is %v", ErrUnorderedOnsets, i, onset)
		}
		if i > 0 && onset <= onsets[i-1] {
			return fmt.Errorf("%w: onset %d (%v) does not follow %v", ErrUnorderedOnsets, i, onset, onsets[i-1])
		}
	}
	return nil
}
