package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"courierbilling/repository"
)

type CatalogHandler struct {
	Repo repository.CatalogRepository
}

func (h *CatalogHandler) GetCatalogs(w http.ResponseWriter, r *http.Request) {
	catalogs, err := h.Repo.GetMasterCatalogs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load catalogs")
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: catalogs})
}

func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	item, err := h.Repo.CreateItem(kind, body.Title)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: item})
}

func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid catalog item id")
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if body.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	if err := h.Repo.UpdateItem(kind, id, body.Title); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Catalog item not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Catalog item updated"})
}
