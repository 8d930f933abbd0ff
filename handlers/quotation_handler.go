package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"courierbilling/models"
	"courierbilling/repository"
)

type QuotationHandler struct {
	Repo repository.QuotationRepository
}

// Get returns the rates for one package type when package_type is given,
// otherwise the party's full quotation list.
func (h *QuotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}

	packageType := r.URL.Query().Get("package_type")
	if packageType != "" {
		rates, err := h.Repo.GetQuotationRates(partyID, packageType)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load quotation rates")
			return
		}
		writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: rates})
		return
	}

	quotations, err := h.Repo.ListByParty(partyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load quotations")
		return
	}
	if quotations == nil {
		quotations = []*models.PartyQuotation{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: quotations})
}

// Save replaces the whole rates object for (party, package_type).
func (h *QuotationHandler) Save(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}

	var q models.PartyQuotation
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if q.PackageType == "" {
		writeError(w, http.StatusBadRequest, "package_type is required")
		return
	}
	q.PartyID = partyID

	if err := h.Repo.SaveQuotation(&q); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save quotation")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: q})
}

func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid party id")
		return
	}

	packageType := r.URL.Query().Get("package_type")
	if packageType == "" {
		writeError(w, http.StatusBadRequest, "package_type is required")
		return
	}

	if err := h.Repo.DeleteQuotation(partyID, packageType); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quotation not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete quotation")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Quotation deleted"})
}
