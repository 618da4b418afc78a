package model

type AnalyzeRequest struct {
	Onsets Onsets    `json:"onsets"`
	Beats  []float64 `json:"beats"`
	IBI    float64   `json:"ibi"`

	BaseTimeStep float64 `json:"base_time_step"`
	PhraseLength float64 `json:"phrase_length"`

	// pointers so an explicit 0 is not mistaken for "use the default"
	Weight           *int     `json:"weight"`
	MaxClusteringDur *float64 `json:"max_clustering_dur"`
	Top              int      `json:"top"`
}

type CorpusListResponse struct {
	Corpora []string `json:"corpora"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
