package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

type CampaignHandler struct {
	Service *service.CampaignService
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var campaign model.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	campaign.OrganizationID = chi.URLParam(r, "id")

	if err := h.Service.CreateCampaign(&campaign); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": campaigns})
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.Service.GetCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	campaign, err := h.Service.GetCampaign(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(campaign); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	campaign.ID = id

	if err := h.Service.UpdateCampaign(campaign); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteCampaign(chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Score runs the scoring engine and persists the result on the row.
func (h *CampaignHandler) Score(w http.ResponseWriter, r *http.Request) {
	score, err := h.Service.ScoreCampaign(chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}
