package handlers

import (
	"encoding/json"
	"net/http"

	"courierbilling/models"
	"courierbilling/repository"
)

type CompanyHandler struct {
	Repo repository.CompanyRepository
}

func (h *CompanyHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if profile.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.Repo.SaveProfile(&profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save company profile")
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: profile})
}

func (h *CompanyHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Repo.GetProfile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load company profile")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Company profile not found")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: profile})
}
