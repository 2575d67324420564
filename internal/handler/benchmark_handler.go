package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/service"
)

type BenchmarkHandler struct {
	Service *service.BenchmarkService
}

// Run executes a benchmark. With "async": true the run is queued for
// the worker instead.
func (h *BenchmarkHandler) Run(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	var body struct {
		BenchmarkType string             `json:"benchmark_type"`
		Metrics       map[string]float64 `json:"metrics"`
		Async         bool               `json:"async"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if body.Async {
		if err := h.Service.Enqueue(orgID, body.BenchmarkType, body.Metrics); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
		return
	}

	result, err := h.Service.Run(orgID, body.BenchmarkType, body.Metrics)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *BenchmarkHandler) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Latest(chi.URLParam(r, "id"), r.URL.Query().Get("type"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "no benchmark runs yet")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
