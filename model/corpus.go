package model

type ExampleReport struct {
	Name     string `json:"name"`
	Clusters []int  `json:"clusters"`
	Accents  Onsets `json:"accents"`
	Best     Clock  `json:"best"`
	Category int    `json:"category"`

	Failures []string `json:"failures,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func (e ExampleReport) Passed() bool {
	return e.Error == "" && len(e.Failures) == 0
}

type CorpusReport struct {
	Name     string          `json:"name"`
	IBI      float64         `json:"ibi"`
	Examples []ExampleReport `json:"examples"`
	Passed   int             `json:"passed"`
	Failed   int             `json:"failed"`
}
