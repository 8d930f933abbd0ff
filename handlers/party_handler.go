package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"courierbilling/models"
	"courierbilling/pricing"
	"courierbilling/repository"
)

type PartyHandler struct {
	Repo      repository.PartyRepository
	Catalogs  repository.CatalogRepository
	RateSlabs repository.RateSlabRepository
}

func (h *PartyHandler) SaveParty(w http.ResponseWriter, r *http.Request) {
	var party models.Party
	if err := json.NewDecoder(r.Body).Decode(&party); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if party.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.Repo.SaveParty(&party); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Party not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save party")
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: party})
}

func (h *PartyHandler) GetParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.Repo.GetParties()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load parties")
		return
	}
	if parties == nil {
		parties = []*models.Party{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: parties})
}

// GetScenarios reports the party's full pricing scenario coverage: every
// catalog combination, with the priced ones carrying their active slab.
func (h *PartyHandler) GetScenarios(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}

	if _, err := h.Repo.GetPartyByID(partyID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Party not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load party")
		return
	}

	catalogs, err := h.Catalogs.GetMasterCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load catalogs")
		return
	}

	existing, err := h.RateSlabs.ListActiveByParty(partyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load rate slabs")
		return
	}

	scenarios := pricing.GenerateScenarios(catalogs, existing)
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"scenarios": scenarios,
			"coverage":  pricing.CoverageOf(scenarios),
		},
	})
}
