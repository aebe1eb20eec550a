package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gobayes/app"
	"gobayes/internal/testkit"
	"gobayes/models"
)

func newTestApp() (*App, *testkit.MemoryRepository) {
	repo := testkit.NewMemoryRepository()
	service := app.NewAnalysisService(repo, 4)
	return NewApp(service), repo
}

func postJSON(t *testing.T, api *App, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleCompute(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"label":        "uniform-test",
		"data_mean":    0.5,
		"data_se":      0.2,
		"distribution": "uniform",
		"h1_value":     2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis models.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.InDelta(t, 5.6696, analysis.BF, 0.01)
	assert.Equal(t, "uniform-test", analysis.Label)
	assert.Empty(t, analysis.LikelihoodCurve)
}

func TestHandleCompute_PlotData(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"data_mean":    0.5,
		"data_se":      0.2,
		"distribution": "normal",
		"h1_value":     2,
		"plot_data":    true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis models.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.NotEmpty(t, analysis.LikelihoodCurve)
	assert.NotEmpty(t, analysis.PriorCurve)
	assert.Len(t, analysis.LikelihoodCurve, len(analysis.PriorCurve))
}

func TestHandleCompute_InvalidSE(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"data_mean":    0.5,
		"data_se":      0,
		"distribution": "uniform",
		"h1_value":     2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestHandleCompute_MissingHypothesis(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"data_mean":    0.5,
		"data_se":      0.2,
		"distribution": "uniform",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "CONFIG_INVALID")
}

func TestHandleCompute_MalformedBody(t *testing.T) {
	api, _ := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bayes-factor", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleComputeBatch(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor/batch", map[string]interface{}{
		"scenarios": []map[string]interface{}{
			{"label": "a", "data_mean": 0.5, "data_se": 0.2, "distribution": "uniform", "h1_value": 2},
			{"label": "b", "data_mean": 0.5, "data_se": 0, "distribution": "uniform", "h1_value": 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Results []struct {
			Label    string           `json:"label"`
			Analysis *models.Analysis `json:"analysis"`
			Error    string           `json:"error"`
			Code     string           `json:"code"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Results, 2)

	assert.NotNil(t, response.Results[0].Analysis)
	assert.Empty(t, response.Results[0].Error)

	assert.Nil(t, response.Results[1].Analysis)
	assert.Equal(t, "INVALID_INPUT", response.Results[1].Code)
}

func TestHandleComputeBatch_Empty(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor/batch", map[string]interface{}{
		"scenarios": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAnalysis(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"data_mean": 0.5, "data_se": 0.2, "distribution": "uniform", "h1_value": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.ID.String(), nil)
	getRec := httptest.NewRecorder()
	api.Router().ServeHTTP(getRec, req)
	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched models.Analysis
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.BF, fetched.BF)
}

func TestHandleGetAnalysis_NotFound(t *testing.T) {
	api, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/does-not-exist", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListAnalyses(t *testing.T) {
	api, _ := newTestApp()

	for i := 0; i < 3; i++ {
		rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
			"data_mean": 0.5, "data_se": 0.2, "distribution": "uniform", "h1_value": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?limit=2", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Analyses []*models.Analysis `json:"analyses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Analyses, 2)
}

func TestHandleAnalysisReport(t *testing.T) {
	api, _ := newTestApp()

	rec := postJSON(t, api, "/api/v1/bayes-factor", map[string]interface{}{
		"label":     "report-test",
		"data_mean": 0.5, "data_se": 0.2, "distribution": "uniform", "h1_value": 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+created.ID.String()+"/report", nil)
	reportRec := httptest.NewRecorder()
	api.Router().ServeHTTP(reportRec, req)
	require.Equal(t, http.StatusOK, reportRec.Code)

	body := reportRec.Body.String()
	assert.Contains(t, reportRec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, body, "report-test")
	assert.Contains(t, body, "<h1")
	assert.Contains(t, body, "evidence in favour of")
}
