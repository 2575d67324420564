package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/repository"
)

type MetricsHandler struct {
	Repo repository.MetricsRepositoryInterface
}

func (h *MetricsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var snapshot model.MarketingMetrics
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	snapshot.OrganizationID = chi.URLParam(r, "id")
	if snapshot.Period == "" {
		snapshot.Period = "monthly"
	}

	if err := h.Repo.Create(&snapshot); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record metrics: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, snapshot)
}

func (h *MetricsHandler) List(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "monthly"
	}

	snapshots, err := h.Repo.ListByPeriod(chi.URLParam(r, "id"), period)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": snapshots})
}

func (h *MetricsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Repo.GetLatest(chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if snapshot == nil {
		writeError(w, http.StatusNotFound, "no metrics recorded yet")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
