package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/povel/analysis"
	"github.com/jsphweid/povel/constants"
	"github.com/jsphweid/povel/corpus"
	"github.com/jsphweid/povel/model"
	"github.com/jsphweid/povel/povel"
	"github.com/jsphweid/povel/rhythm"
)

// requests larger than this are rejected
const maxRequestBytes = 1 << 20

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the model over HTTP",
	Long: `Serves the model over HTTP:

  POST /analyze          analyze onsets or beats
  GET  /corpora          list corpora
  GET  /corpora/{name}   evaluate a corpus`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("listening", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, NewHandler())
	},
}

func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/corpora", HandleCorpora).Methods("GET")
	router.HandleFunc("/corpora/{name}", HandleCorpus).Methods("GET")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// statusFor maps precondition errors of the model to 400.
func statusFor(err error) int {
	for _, target := range []error{
		povel.ErrInsufficientOnsets,
		povel.ErrUnorderedOnsets,
		povel.ErrClusterMismatch,
		povel.ErrInvalidHypothesis,
		povel.ErrEmptyHypothesisSpace,
		povel.ErrInvalidOptions,
		rhythm.ErrInvalidDuration,
		analysis.ErrTooMuchWork,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return
	}

	var input model.AnalyzeRequest
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	onsets := input.Onsets
	if len(onsets) == 0 && len(input.Beats) > 0 {
		ibi := input.IBI
		if ibi == 0 {
			ibi = 1
		}
		if onsets, err = rhythm.SeqToBeats(ibi, input.Beats); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
	}

	opts := povel.DefaultOptions()
	if input.Weight != nil {
		opts.CounterevidenceWeight = *input.Weight
	}
	if input.MaxClusteringDur != nil {
		opts.MaxClusteringDur = *input.MaxClusteringDur
	}
	params := analysis.DefaultParams()
	if input.BaseTimeStep != 0 {
		params.BaseTimeStep = input.BaseTimeStep
	}
	if input.PhraseLength != 0 {
		params.PhraseLength = input.PhraseLength
	}
	params.Top = input.Top

	limits := analysis.DefaultLimits()
	a := analysis.New(logger, &opts)
	a.Limits = &limits
	res, err := a.Analyze(onsets, params)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleCorpora(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.CorpusListResponse{Corpora: corpus.List(constants.GetCorpusDir())})
}

func HandleCorpus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if filepath.Ext(name) != "" {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %v", corpus.ErrUnknownCorpus, name))
		return
	}
	c, err := corpus.Resolve(name, constants.GetCorpusDir())
	if errors.Is(err, corpus.ErrUnknownCorpus) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, corpus.Evaluate(c, nil, logger))
}
