package handlers

import (
	"fmt"
	"net/http"

	"courierbilling/csvimport"
	"courierbilling/repository"
)

type ImportHandler struct {
	Repo repository.ImportRepository
}

// ImportCSV accepts a multipart "file" field and maps its rows through
// the static field-mapping table for the requested record type
// (invoices, parties or bookings; invoices when unspecified). Row
// failures are reported in the summary, not fatal.
func (h *ImportHandler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload: "+err.Error())
		return
	}
	defer file.Close()

	recordType := r.URL.Query().Get("type")
	if recordType == "" {
		recordType = "invoices"
	}

	switch recordType {
	case "invoices":
		result, err := csvimport.ParseInvoices(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		inserted, failures := h.Repo.InsertCSVInvoices(result.Rows)
		writeImportSummary(w, result.Total, result.Parsed, inserted, result.Errors, failures)
	case "parties":
		result, err := csvimport.ParseParties(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		inserted, failures := h.Repo.InsertParties(result.Rows)
		writeImportSummary(w, result.Total, result.Parsed, inserted, result.Errors, failures)
	case "bookings":
		result, err := csvimport.ParseBookings(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		inserted, failures := h.Repo.InsertBookings(result.Rows)
		writeImportSummary(w, result.Total, result.Parsed, inserted, result.Errors, failures)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown import type %q", recordType))
	}
}

func writeImportSummary(w http.ResponseWriter, total, parsed, inserted int, rowErrors []csvimport.RowError, failures []string) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"total":           total,
			"parsed":          parsed,
			"inserted":        inserted,
			"row_errors":      rowErrors,
			"insert_failures": failures,
		},
	})
}
