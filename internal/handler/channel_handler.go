package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

type ChannelHandler struct {
	Service *service.ChannelService
}

func (h *ChannelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var channel model.Channel
	if err := json.NewDecoder(r.Body).Decode(&channel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	channel.OrganizationID = chi.URLParam(r, "id")

	if err := h.Service.CreateChannel(&channel); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, channel)
}

func (h *ChannelHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	channels, err := h.Service.ListChannels(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": channels})
}

func (h *ChannelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	channel, err := h.Service.GetChannel(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(channel); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	channel.ID = id

	if err := h.Service.UpdateChannel(channel); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, channel)
}

// Analyze runs the channel mix analysis and persists per-channel KPIs.
func (h *ChannelHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	mix, err := h.Service.AnalyzeMix(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mix)
}
