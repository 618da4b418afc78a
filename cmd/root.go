package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/constants"
	"github.com/jsphweid/povel/logging"
	"github.com/jsphweid/povel/povel"
)

var (
	logger       = slog.Default()
	cleanup      = noCleanup
	setupLogging = logging.Setup

	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "povel",
	Short: "Clock induction for rhythms",
	Long: `Induces the best fitting clock (phase, period) for a sequence of
onsets with the model of Povel (1985): onsets are clustered, cluster
boundaries are accented and every clock is scored by counterevidence.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger, cleanup = setupLogging(logFile, logging.ParseLevel(logLevel))
	},
}

func noCleanup() error { return nil }

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "DEBUG, INFO, WARN or ERROR")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", constants.GetLogFile(), "also write JSON logs to this file")
}

func Execute() {
	cobra.CheckErr(execute())
}

// execute runs the root command and closes the log file also when the
// command fails.
func execute() error {
	err := rootCmd.Execute()
	if cerr := cleanup(); err == nil {
		err = cerr
	}
	cleanup = noCleanup
	return err
}

// modelFlags are the model constants shared by several commands.
type modelFlags struct {
	weight        int
	maxClusterDur float64
	baseTimeStep  float64
	phraseLength  float64
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.weight, "weight", povel.DefaultCounterevidenceWeight, "counterevidence for a clock tick on silence")
	cmd.Flags().Float64Var(&f.maxClusterDur, "max-cluster-dur", povel.DefaultMaxClusteringDur, "largest interval that can still cluster")
	cmd.Flags().Float64Var(&f.baseTimeStep, "base", 1, "base time step periods are multiples of")
	cmd.Flags().Float64Var(&f.phraseLength, "phrase", 16, "phrase length in base steps")
}

func (f *modelFlags) options() *povel.Options {
	return &povel.Options{MaxClusteringDur: f.maxClusterDur, CounterevidenceWeight: f.weight}
}
