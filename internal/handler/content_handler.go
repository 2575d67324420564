package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

type ContentHandler struct {
	Service *service.ContentService
}

func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var content model.Content
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	content.OrganizationID = chi.URLParam(r, "id")

	if err := h.Service.CreateContent(&content); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, content)
}

func (h *ContentHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListContent(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items})
}

// Analyze scores the whole library and persists per-piece scores.
func (h *ContentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.AnalyzeLibrary(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}
