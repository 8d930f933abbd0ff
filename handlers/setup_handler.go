package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"courierbilling/repository"
)

type SetupHandler struct {
	Repo repository.SetupRepository
}

// Setup idempotently seeds the reference tables. Its response envelope is
// {ok} rather than {success}, kept for the existing setup client.
func (h *SetupHandler) Setup(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.SeedReferenceData(); err != nil {
		logrus.Errorf("reference data seed failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
}
