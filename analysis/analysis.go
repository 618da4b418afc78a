// Package analysis runs the clock induction pipeline on one onset sequence
// and collects every intermediate result.
package analysis

import (
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jsphweid/povel/model"
	"github.com/jsphweid/povel/povel"
	"github.com/jsphweid/povel/util"
)

const (
	DefaultBaseTimeStep = 1
	DefaultPhraseLength = 16
)

type Params struct {
	BaseTimeStep float64
	PhraseLength float64
	// Top is how many ranked clocks to return besides the best, 0 for none.
	Top int
}

func DefaultParams() Params {
	return Params{BaseTimeStep: DefaultBaseTimeStep, PhraseLength: DefaultPhraseLength}
}

type Analyzer struct {
	Logger  *slog.Logger
	Options *povel.Options
	// Limits is nil for unbounded analysis.
	Limits *Limits
}

func New(logger *slog.Logger, opts *povel.Options) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{Logger: logger, Options: opts}
}

func (a *Analyzer) Analyze(onsets []float64, p Params) (model.AnalysisResult, error) {
	id := uuid.New().String()
	log := a.Logger.With("analysis", id)

	if a.Limits != nil {
		if err := a.Limits.Check(onsets, p); err != nil {
			log.Warn("rejected analysis", "error", err)
			return model.AnalysisResult{}, err
		}
	}

	res := model.AnalysisResult{ID: id, Onsets: onsets}

	clusters, err := povel.ClusterOnsets(onsets, a.Options)
	if err != nil {
		log.Warn("could not cluster onsets", "error", err, "onsets", len(onsets))
		return model.AnalysisResult{}, err
	}
	res.IOIs = util.Diff(onsets)
	res.Stats = Describe(res.IOIs)
	res.Clusters = clusters
	log.Debug("clustered onsets", "clusters", clusters, "reference", res.Stats.Reference)

	accents, err := povel.AccentsFromClusters(onsets, clusters)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	res.Accents = accents
	log.Debug("extracted accents", "accents", accents)

	ranked, err := povel.RankClocks(onsets, p.BaseTimeStep, p.PhraseLength, a.Options)
	if err != nil {
		log.Warn("could not search clocks", "error", err,
			"base_time_step", p.BaseTimeStep, "phrase_length", p.PhraseLength)
		return model.AnalysisResult{}, err
	}
	res.Best = toClock(ranked[0])
	res.Category = povel.CvToCategory(ranked[0].Counterevidence)
	if p.Top > 0 {
		n := util.Min(p.Top, len(ranked))
		res.Ranked = make([]model.Clock, n)
		for i := range res.Ranked {
			res.Ranked[i] = toClock(ranked[i])
		}
	}

	log.Info("induced clock",
		"phase", res.Best.Phase,
		"period", res.Best.Period,
		"counterevidence", res.Best.Counterevidence,
		"hypotheses", len(ranked))
	return res, nil
}

// Describe summarises inter-onset intervals. Empty input yields zero stats.
func Describe(iois []float64) model.IOIStats {
	if len(iois) == 0 {
		return model.IOIStats{}
	}
	mean, std := stat.MeanStdDev(iois, nil)
	distinct := util.DistinctSorted(iois)
	return model.IOIStats{
		Count:     len(iois),
		Mean:      mean,
		StdDev:    std,
		Min:       floats.Min(iois),
		Max:       floats.Max(iois),
		Reference: distinct[len(distinct)/2],
	}
}

func toClock(sh povel.ScoredHypothesis[float64]) model.Clock {
	return model.Clock{
		Phase:           sh.Hypothesis.Phase,
		Period:          sh.Hypothesis.Period,
		Counterevidence: sh.Counterevidence,
	}
}
