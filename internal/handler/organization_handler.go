package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/repository"
)

type OrganizationHandler struct {
	Repo repository.OrganizationRepositoryInterface
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var org model.Organization
	if err := json.NewDecoder(r.Body).Decode(&org); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if org.Name == "" {
		writeError(w, http.StatusBadRequest, "organization name is required")
		return
	}

	if err := h.Repo.Create(&org); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create organization: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Repo.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": orgs})
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.Repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	org, err := h.Repo.GetByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if err := json.NewDecoder(r.Body).Decode(org); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	org.ID = id

	if err := h.Repo.Update(org); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update organization: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.Delete(chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
