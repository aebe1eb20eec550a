package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/internal/errors"
	"gobayes/models"
)

// computeRequest is the JSON body for single computations
type computeRequest struct {
	Label string `json:"label,omitempty"`
	bayes.Request
}

// batchComputeRequest is the JSON body for batch computations
type batchComputeRequest struct {
	Scenarios []computeRequest `json:"scenarios"`
}

// batchItemResponse carries one batch outcome; failed scenarios report
// the error in place of the analysis
type batchItemResponse struct {
	Label    string           `json:"label,omitempty"`
	Analysis *models.Analysis `json:"analysis,omitempty"`
	Error    string           `json:"error,omitempty"`
	Code     string           `json:"code,omitempty"`
}

func (a *App) handleCompute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, "invalid JSON body")
		return
	}

	analysis, err := a.service.Compute(r.Context(), req.Label, req.Request)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (a *App) handleComputeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, "invalid JSON body")
		return
	}
	if len(req.Scenarios) == 0 {
		writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, "scenarios cannot be empty")
		return
	}

	scenarios := make([]models.Scenario, len(req.Scenarios))
	for i, s := range req.Scenarios {
		scenarios[i] = models.Scenario{Label: s.Label, Request: s.Request}
	}

	items := a.service.ComputeBatch(r.Context(), scenarios)
	response := make([]batchItemResponse, len(items))
	for i, item := range items {
		response[i] = batchItemResponse{Label: item.Label, Analysis: item.Analysis}
		if item.Err != nil {
			response[i].Error = item.Err.Error()
			response[i].Code = errors.GetCode(item.Err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": response})
}

func (a *App) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	analyses, err := a.service.List(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if analyses == nil {
		analyses = []*models.Analysis{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"analyses": analyses})
}

func (a *App) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseAnalysisID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.CodeInvalidInput, err.Error())
		return
	}

	analysis, err := a.service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// writeDomainError maps domain errors to HTTP status codes
func writeDomainError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeConfigInvalid, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeIntegrationError:
		status = http.StatusUnprocessableEntity
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	writeError(w, status, code, err.Error())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{"error": message, "code": code})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
