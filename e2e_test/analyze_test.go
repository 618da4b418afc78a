//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/povel/cmd"
	"github.com/jsphweid/povel/model"
)

func createAnalyzeReqBody(req model.AnalyzeRequest) io.Reader {
	data, err := json.Marshal(req)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func do(req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	cmd.NewHandler().ServeHTTP(w, req)
	return w.Result()
}

func TestAnalyzeBeatsE2E(t *testing.T) {
	body := createAnalyzeReqBody(model.AnalyzeRequest{Beats: []float64{1, 1, 1, 2, 1, 3, 3, 4}})
	resp := do(httptest.NewRequest(http.MethodPost, "/analyze", body))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.AnalysisResult
	if err := json.Unmarshal(respBody, &res); err != nil {
		panic(err.Error())
	}
	assert.Equal([]int{4, 2, 1, 1}, res.Clusters)
	assert.Equal(model.Clock{Phase: 1, Period: 4, Counterevidence: 6}, res.Best)
	assert.Equal(7, res.Category)
	assert.NotEmpty(res.ID)
}

func TestAnalyzeOnsetsWithTopE2E(t *testing.T) {
	weight := 4
	body := createAnalyzeReqBody(model.AnalyzeRequest{
		Onsets:       []float64{0, 1, 2, 4, 7, 8, 11, 12},
		PhraseLength: 16,
		Weight:       &weight,
		Top:          3,
	})
	resp := do(httptest.NewRequest(http.MethodPost, "/analyze", body))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var res model.AnalysisResult
	if err := json.Unmarshal(respBody, &res); err != nil {
		panic(err.Error())
	}
	assert.Equal([]model.Clock{
		{Phase: 0, Period: 4, Counterevidence: 0},
		{Phase: 0, Period: 2, Counterevidence: 8},
		{Phase: 3, Period: 4, Counterevidence: 10},
	}, res.Ranked)
}

func TestAnalyzeBadRequestE2E(t *testing.T) {
	cases := []model.AnalyzeRequest{
		{Onsets: []float64{0}},
		{Onsets: []float64{0, 2, 1}},
		{Onsets: []float64{0, 1, 2}, PhraseLength: 3},
		{Beats: []float64{1, 0}},
	}
	for _, c := range cases {
		resp := do(httptest.NewRequest(http.MethodPost, "/analyze", createAnalyzeReqBody(c)))
		respBody, _ := io.ReadAll(resp.Body)

		assert := assert.New(t)
		assert.Equal(400, resp.StatusCode)

		var e model.ErrorResponse
		assert.NoError(json.Unmarshal(respBody, &e))
		assert.NotEmpty(e.Error)
	}

	resp := do(httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{"))))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAnalyzeWorkLimitsE2E(t *testing.T) {
	cases := []string{
		`{"onsets":[0,1e10]}`,
		`{"onsets":[0,1,2],"phrase_length":2000000}`,
		`{"beats":[1e300,1],"ibi":1e300}`,
	}
	for _, c := range cases {
		resp := do(httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte(c))))
		respBody, _ := io.ReadAll(resp.Body)

		assert := assert.New(t)
		assert.Equal(400, resp.StatusCode, c)

		var e model.ErrorResponse
		assert.NoError(json.Unmarshal(respBody, &e))
		assert.Contains(e.Error, "work limits")
	}
}

func TestCorporaE2E(t *testing.T) {
	resp := do(httptest.NewRequest(http.MethodGet, "/corpora", nil))
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	var list model.CorpusListResponse
	assert.NoError(json.Unmarshal(respBody, &list))
	assert.Contains(list.Corpora, "povel1985")

	resp = do(httptest.NewRequest(http.MethodGet, "/corpora/povel1985", nil))
	respBody, _ = io.ReadAll(resp.Body)
	assert.Equal(200, resp.StatusCode)
	var report model.CorpusReport
	assert.NoError(json.Unmarshal(respBody, &report))
	assert.Equal(8, report.Passed)

	resp = do(httptest.NewRequest(http.MethodGet, "/corpora/nope", nil))
	assert.Equal(404, resp.StatusCode)
}
