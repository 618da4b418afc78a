package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/analysis"
	"github.com/jsphweid/povel/file"
	"github.com/jsphweid/povel/midi"
)

var batchFlags struct {
	model    modelFlags
	max      int
	stepsPer uint32
}

func init() {
	batchFlags.model.register(batchCmd)
	batchCmd.Flags().IntVar(&batchFlags.max, "max", 0, "analyze at most this many files, 0 for all")
	batchCmd.Flags().Uint32Var(&batchFlags.stepsPer, "steps-per-quarter", 4, "grid for MIDI onsets")
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Finds the best clock of every MIDI file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := file.GatherPaths(args[0], file.MidiExts, batchFlags.max)
		if err != nil {
			return err
		}

		f := batchFlags.model
		a := analysis.New(logger, f.options())
		params := analysis.Params{BaseTimeStep: f.baseTimeStep, PhraseLength: f.phraseLength}
		opts := midi.DefaultOptions()
		opts.StepsPerQuarter = batchFlags.stepsPer

		w := cmd.OutOrStdout()
		for i, path := range paths {
			logger.Debug("processing midi file", "file", path, "n", i+1, "of", len(paths))
			onsets, err := file.LoadOnsets(path, opts)
			if err != nil {
				logger.Warn("skipping file", "file", path, "error", err)
				continue
			}
			res, err := a.Analyze(onsets, params)
			if err != nil {
				logger.Warn("skipping file", "file", path, "error", err)
				continue
			}
			fmt.Fprintf(w, "%v\tphase %v\tperiod %v\tcv %v\tcategory %v\n",
				path, res.Best.Phase, res.Best.Period, res.Best.Counterevidence, res.Category)
		}
		return nil
	},
}
