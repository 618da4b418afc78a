// Package corpus holds named collections of rhythms with the clusters,
// accents and clocks the model is expected to derive for them.
package corpus

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/jsphweid/povel/model"
	"github.com/jsphweid/povel/povel"
	"github.com/jsphweid/povel/rhythm"
)

//go:embed data/*.yaml
var builtin embed.FS

var ErrUnknownCorpus = errors.New("corpus: unknown corpus")

type Example struct {
	Name string `yaml:"name"`
	// Pattern is a sequence of beat durations, scaled by the corpus IBI.
	Pattern []float64 `yaml:"pattern"`
	// Onsets are used as-is when there is no Pattern.
	Onsets []float64 `yaml:"onsets"`

	// Expectations, all optional. Accents are in beats for patterns.
	Clusters  []int        `yaml:"clusters"`
	Accents   []float64    `yaml:"accents"`
	BestClock *model.Clock `yaml:"best_clock"`
}

type Corpus struct {
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	IBI          float64   `yaml:"ibi"`
	BaseTimeStep float64   `yaml:"base_time_step"`
	PhraseLength float64   `yaml:"phrase_length"`
	Examples     []Example `yaml:"examples"`
}

// Onsets returns the absolute onsets of e within c.
func (c Corpus) Onsets(e Example) ([]float64, error) {
	if len(e.Pattern) == 0 {
		return e.Onsets, nil
	}
	return rhythm.SeqToBeats(c.IBI, e.Pattern)
}

// Rescale returns a copy of c with a different inter-beat interval. Clock
// expectations are dropped since they only hold for the original scale.
func Rescale(c Corpus, ibi float64) Corpus {
	res := c
	res.IBI = ibi
	res.Examples = make([]Example, len(c.Examples))
	for i, e := range c.Examples {
		e.BestClock = nil
		res.Examples[i] = e
	}
	return res
}

func Parse(dat []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(dat, &c); err != nil {
		return c, fmt.Errorf("could not parse corpus: %w", err)
	}
	if c.Name == "" {
		return c, errors.New("corpus: missing name")
	}
	if c.IBI == 0 {
		c.IBI = 1
	}
	if c.BaseTimeStep == 0 {
		c.BaseTimeStep = 1
	}
	if c.PhraseLength == 0 {
		c.PhraseLength = 16
	}
	for i := range c.Examples {
		if c.Examples[i].Name == "" {
			c.Examples[i].Name = fmt.Sprintf("%v-%d", c.Name, i+1)
		}
	}
	return c, nil
}

func Load(filepath string) (Corpus, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return Corpus{}, fmt.Errorf("could not read corpus: %w", err)
	}
	return Parse(dat)
}

// Names lists the built-in corpora.
func Names() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		panic("embedded corpora missing: " + err.Error())
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// List is Names plus the YAML corpora found directly in dir.
func List(dir string) []string {
	names := Names()
	if dir == "" {
		return names
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return names
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, strings.TrimSuffix(e.Name(), ext))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func Builtin(name string) (Corpus, error) {
	dat, err := builtin.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return Corpus{}, fmt.Errorf("%w: %v", ErrUnknownCorpus, name)
	}
	return Parse(dat)
}

// Resolve loads nameOrPath directly when it is a YAML file, otherwise looks
// it up among the built-in corpora and then in dir.
func Resolve(nameOrPath, dir string) (Corpus, error) {
	if ext := filepath.Ext(nameOrPath); ext == ".yaml" || ext == ".yml" {
		return Load(nameOrPath)
	}
	if c, err := Builtin(nameOrPath); err == nil {
		return c, nil
	}
	if dir != "" {
		for _, ext := range []string{".yaml", ".yml"} {
			p := filepath.Join(dir, nameOrPath+ext)
			if _, err := os.Stat(p); err == nil {
				return Load(p)
			}
		}
	}
	return Corpus{}, fmt.Errorf("%w: %v", ErrUnknownCorpus, nameOrPath)
}

// Evaluate runs the model over every example and checks the expectations
// that the example carries.
func Evaluate(c Corpus, opts *povel.Options, logger *slog.Logger) model.CorpusReport {
	if logger == nil {
		logger = slog.Default()
	}
	report := model.CorpusReport{Name: c.Name, IBI: c.IBI}

	for _, e := range c.Examples {
		r := evaluateExample(c, e, opts)
		if r.Passed() {
			report.Passed++
		} else {
			report.Failed++
			logger.Warn("example failed", "corpus", c.Name, "example", e.Name,
				"failures", r.Failures, "error", r.Error)
		}
		report.Examples = append(report.Examples, r)
	}

	logger.Info("evaluated corpus", "corpus", c.Name, "ibi", c.IBI,
		"passed", report.Passed, "failed", report.Failed)
	return report
}

func evaluateExample(c Corpus, e Example, opts *povel.Options) model.ExampleReport {
	r := model.ExampleReport{Name: e.Name}

	onsets, err := c.Onsets(e)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	if r.Clusters, err = povel.ClusterOnsets(onsets, opts); err != nil {
		r.Error = err.Error()
		return r
	}
	if r.Accents, err = povel.AccentsFromClusters(onsets, r.Clusters); err != nil {
		r.Error = err.Error()
		return r
	}
	best, err := povel.BestClock(onsets, c.BaseTimeStep, c.PhraseLength, opts)
	if err != nil && e.BestClock != nil {
		r.Error = err.Error()
		return r
	}
	if err == nil {
		r.Best = model.Clock{
			Phase:           best.Hypothesis.Phase,
			Period:          best.Hypothesis.Period,
			Counterevidence: best.Counterevidence,
		}
		r.Category = povel.CvToCategory(best.Counterevidence)
	}

	if e.Clusters != nil && !slices.Equal(e.Clusters, r.Clusters) {
		r.Failures = append(r.Failures, fmt.Sprintf("clusters %v, expected %v", r.Clusters, e.Clusters))
	}
	if e.Accents != nil {
		expected := e.Accents
		if len(e.Pattern) > 0 {
			expected = make([]float64, len(e.Accents))
			for i, a := range e.Accents {
				expected[i] = a * c.IBI
			}
		}
		if !slices.Equal(expected, r.Accents) {
			r.Failures = append(r.Failures, fmt.Sprintf("accents %v, expected %v", r.Accents, expected))
		}
	}
	if e.BestClock != nil && *e.BestClock != r.Best {
		r.Failures = append(r.Failures, fmt.Sprintf("best clock %+v, expected %+v", r.Best, *e.BestClock))
	}
	return r
}
