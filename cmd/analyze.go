package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/analysis"
	"github.com/jsphweid/povel/file"
	"github.com/jsphweid/povel/midi"
	"github.com/jsphweid/povel/model"
	"github.com/jsphweid/povel/rhythm"
)

var analyzeFlags struct {
	model    modelFlags
	file     string
	beats    bool
	ibi      float64
	top      int
	json     bool
	stepsPer uint32
}

func init() {
	analyzeFlags.model.register(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeFlags.file, "file", "f", "", "read onsets from a .mid, .yaml or text file")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.beats, "beats", false, "arguments are beat durations, not onsets")
	analyzeCmd.Flags().Float64Var(&analyzeFlags.ibi, "ibi", 1, "inter-beat interval for --beats")
	analyzeCmd.Flags().IntVar(&analyzeFlags.top, "top", 0, "also list the n best clocks")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.json, "json", false, "print JSON")
	analyzeCmd.Flags().Uint32Var(&analyzeFlags.stepsPer, "steps-per-quarter", 4, "grid for MIDI onsets")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [onsets...]",
	Short: "Finds the best clock for a rhythm",
	Long: `Finds the best clock for a rhythm given as onsets, beat durations
(--beats) or a file (--file).

  povel analyze 0 1 2 4 7 8 11 12
  povel analyze --beats 1 1 2 3 1 3 1 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		onsets, err := readOnsets(args, analyzeFlags.file, analyzeFlags.beats, analyzeFlags.ibi, analyzeFlags.stepsPer)
		if err != nil {
			return err
		}
		f := analyzeFlags.model
		res, err := analysis.New(logger, f.options()).Analyze(onsets, analysis.Params{
			BaseTimeStep: f.baseTimeStep,
			PhraseLength: f.phraseLength,
			Top:          analyzeFlags.top,
		})
		if err != nil {
			return err
		}
		if analyzeFlags.json {
			return printJSON(cmd.OutOrStdout(), res)
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func readOnsets(args []string, path string, beats bool, ibi float64, stepsPerQuarter uint32) ([]float64, error) {
	if path != "" {
		opts := midi.DefaultOptions()
		opts.StepsPerQuarter = stepsPerQuarter
		return file.LoadOnsets(path, opts)
	}
	if len(args) == 0 {
		return nil, errors.New("need onsets as arguments or --file")
	}
	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		nums[i] = v
	}
	if beats {
		return rhythm.SeqToBeats(ibi, nums)
	}
	return nums, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, res model.AnalysisResult) {
	fmt.Fprintf(w, "onsets:          %v\n", res.Onsets)
	fmt.Fprintf(w, "clusters:        %v\n", res.Clusters)
	fmt.Fprintf(w, "accents:         %v\n", res.Accents)
	fmt.Fprintf(w, "best clock:      phase %v, period %v\n", res.Best.Phase, res.Best.Period)
	fmt.Fprintf(w, "counterevidence: %v\n", res.Best.Counterevidence)
	fmt.Fprintf(w, "category:        %v\n", res.Category)
	for i, c := range res.Ranked {
		fmt.Fprintf(w, "%3d. phase %v, period %v: %v\n", i+1, c.Phase, c.Period, c.Counterevidence)
	}
}
