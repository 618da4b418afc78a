package model

type Onsets = []float64

type Clock struct {
	Phase           float64 `json:"phase" yaml:"phase"`
	Period          float64 `json:"period" yaml:"period"`
	Counterevidence int     `json:"counterevidence" yaml:"counterevidence"`
}

type IOIStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	// Reference is the clustering threshold (middle of the distinct intervals)
	Reference float64 `json:"reference"`
}

type AnalysisResult struct {
	ID       string    `json:"id"`
	Onsets   Onsets    `json:"onsets"`
	IOIs     []float64 `json:"iois"`
	Stats    IOIStats  `json:"stats"`
	Clusters []int     `json:"clusters"`
	Accents  Onsets    `json:"accents"`
	Best     Clock     `json:"best"`
	Category int       `json:"category"`

	// NOTE: only filled when more than the best clock was asked for
	Ranked []Clock `json:"ranked,omitempty"`
}
