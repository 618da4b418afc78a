package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/povel"
	"github.com/jsphweid/povel/rhythm"
	"github.com/jsphweid/povel/sample"
)

var exportFlags struct {
	weight        int
	maxClusterDur float64
	phrase        int
	out           string
	tpq           uint16
}

func init() {
	exportCmd.Flags().IntVar(&exportFlags.weight, "weight", povel.DefaultCounterevidenceWeight, "counterevidence for a clock tick on silence")
	exportCmd.Flags().Float64Var(&exportFlags.maxClusterDur, "max-cluster-dur", povel.DefaultMaxClusteringDur, "largest interval that can still cluster")
	exportCmd.Flags().IntVar(&exportFlags.phrase, "phrase", 0, "phrase length in sixteenths, defaults to the pattern length")
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "povel.mid", "output MIDI file")
	exportCmd.Flags().Uint16Var(&exportFlags.tpq, "ticks-per-quarter", 960, "MIDI resolution")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <beats...>",
	Short: "Writes a beat pattern and its best clock to a MIDI file",
	Long: `Writes a beat pattern, given as durations in sixteenths, and the
best clock for it to a MIDI file: the pattern on a wood block and
the clock on a side stick.

  povel export -o pattern1.mid 1 1 2 3 1 3 1 4`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		durations, err := parseInts(args)
		if err != nil {
			return err
		}
		onsets, err := rhythm.SeqToBeats(1, durations)
		if err != nil {
			return err
		}
		phrase := exportFlags.phrase
		if phrase == 0 {
			phrase = rhythm.Length(durations)
		}

		opts := &povel.Options{MaxClusteringDur: exportFlags.maxClusterDur, CounterevidenceWeight: exportFlags.weight}
		best, err := povel.BestClock(onsets, 1, phrase, opts)
		if err != nil {
			return err
		}

		sopts := sample.DefaultOptions()
		sopts.PhraseLength = phrase
		sopts.TicksPerQuarter = exportFlags.tpq
		s, err := sample.Create(onsets, best.Hypothesis, sopts)
		if err != nil {
			return err
		}

		f, err := os.Create(exportFlags.out)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := sample.Write(s, f); err != nil {
			return err
		}

		logger.Info("exported pattern", "file", exportFlags.out,
			"phase", best.Hypothesis.Phase, "period", best.Hypothesis.Period,
			"counterevidence", best.Counterevidence)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %v with clock (%v, %v), counterevidence %v\n",
			exportFlags.out, best.Hypothesis.Phase, best.Hypothesis.Period, best.Counterevidence)
		return nil
	},
}

func parseInts(args []string) ([]int, error) {
	res := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: durations must be whole sixteenths: %w", i+1, err)
		}
		res[i] = v
	}
	return res, nil
}
