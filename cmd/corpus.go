package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/constants"
	"github.com/jsphweid/povel/corpus"
	"github.com/jsphweid/povel/model"
)

var corpusFlags struct {
	model modelFlags
	ibi   float64
	json  bool
}

func init() {
	corpusFlags.model.register(corpusCmd)
	corpusCmd.Flags().Float64Var(&corpusFlags.ibi, "ibi", 0, "re-scale patterns to this inter-beat interval (drops clock checks)")
	corpusCmd.Flags().BoolVar(&corpusFlags.json, "json", false, "print JSON")
	rootCmd.AddCommand(corpusCmd)
}

var corpusCmd = &cobra.Command{
	Use:   "corpus [name|file.yaml]",
	Short: "Lists corpora or checks the model against one",
	Long: `Without arguments lists the built-in corpora and those in
$POVEL_CORPUS_DIR. With a name or a YAML file runs every example and
compares clusters, accents and best clocks with the expected ones.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range corpus.List(constants.GetCorpusDir()) {
				fmt.Fprintln(w, name)
			}
			return nil
		}

		c, err := corpus.Resolve(args[0], constants.GetCorpusDir())
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("base") {
			c.BaseTimeStep = corpusFlags.model.baseTimeStep
		}
		if cmd.Flags().Changed("phrase") {
			c.PhraseLength = corpusFlags.model.phraseLength
		}
		if corpusFlags.ibi > 0 {
			c = corpus.Rescale(c, corpusFlags.ibi)
		}

		report := corpus.Evaluate(c, corpusFlags.model.options(), logger)
		if corpusFlags.json {
			if err := printJSON(w, report); err != nil {
				return err
			}
		} else {
			printReport(w, report)
		}
		if report.Failed > 0 {
			return fmt.Errorf("%d of %d examples failed", report.Failed, report.Failed+report.Passed)
		}
		return nil
	},
}

func printReport(w io.Writer, report model.CorpusReport) {
	fmt.Fprintf(w, "corpus %v (ibi %v)\n", report.Name, report.IBI)
	for _, e := range report.Examples {
		status := "ok  "
		if !e.Passed() {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%v %-12v clusters %v accents %v clock (%v, %v) cv %v\n",
			status, e.Name, e.Clusters, e.Accents, e.Best.Phase, e.Best.Period, e.Best.Counterevidence)
		for _, f := range e.Failures {
			fmt.Fprintf(w, "     %v\n", f)
		}
		if e.Error != "" {
			fmt.Fprintf(w, "     error: %v\n", e.Error)
		}
	}
	fmt.Fprintf(w, "passed: %v, failed: %v\n", report.Passed, report.Failed)
}
