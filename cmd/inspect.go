package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/analysis"
	"github.com/jsphweid/povel/file"
	"github.com/jsphweid/povel/midi"
	"github.com/jsphweid/povel/povel"
	"github.com/jsphweid/povel/util"
)

var inspectFlags struct {
	model    modelFlags
	stepsPer uint32
	unit     string
}

func init() {
	inspectFlags.model.register(inspectCmd)
	inspectCmd.Flags().Uint32Var(&inspectFlags.stepsPer, "steps-per-quarter", 4, "grid for MIDI onsets")
	inspectCmd.Flags().StringVar(&inspectFlags.unit, "unit", "steps", "MIDI onset unit: steps, ticks or ms")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Shows intervals, clusters and accents of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := midi.DefaultOptions()
		opts.StepsPerQuarter = inspectFlags.stepsPer
		switch inspectFlags.unit {
		case "steps":
			opts.Unit = midi.Steps
		case "ticks":
			opts.Unit = midi.Ticks
		case "ms":
			opts.Unit = midi.Millis
		default:
			return fmt.Errorf("unknown unit %q", inspectFlags.unit)
		}

		onsets, err := file.LoadOnsets(args[0], opts)
		if err != nil {
			return err
		}
		clusters, err := povel.ClusterOnsets(onsets, inspectFlags.model.options())
		if err != nil {
			return err
		}
		accents, err := povel.AccentsFromClusters(onsets, clusters)
		if err != nil {
			return err
		}
		iois := util.Diff(onsets)
		stats := analysis.Describe(iois)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "onsets:    %v\n", onsets)
		fmt.Fprintf(w, "iois:      %v\n", iois)
		fmt.Fprintf(w, "mean:      %.3f\n", stats.Mean)
		fmt.Fprintf(w, "std dev:   %.3f\n", stats.StdDev)
		fmt.Fprintf(w, "range:     %v - %v\n", stats.Min, stats.Max)
		fmt.Fprintf(w, "reference: %v\n", stats.Reference)
		fmt.Fprintf(w, "clusters:  %v\n", clusters)
		fmt.Fprintf(w, "accents:   %v\n", accents)
		return nil
	},
}
