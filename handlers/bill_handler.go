package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"courierbilling/billing"
	"courierbilling/models"
	"courierbilling/repository"
	"courierbilling/utils"
)

type BillHandler struct {
	Repo      repository.BillRepository
	Assembler *billing.Assembler
	SavePath  string
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var body struct {
		models.Bill
		Bookings []models.BookingRef `json:"bookings"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if body.PartyID == 0 || body.BillNumber == "" || body.BillDate.IsZero() {
		writeError(w, http.StatusBadRequest, "party_id, bill_number and bill_date are required")
		return
	}

	if err := h.Repo.CreateBill(&body.Bill, body.Bookings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create bill: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: body.Bill})
}

func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	var partyID int64
	if v := r.URL.Query().Get("party_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid party_id")
			return
		}
		partyID = id
	}

	bills, err := h.Repo.ListBills(partyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load bills")
		return
	}
	if bills == nil {
		bills = []*models.Bill{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: bills})
}

// BillHTML serves the assembled bill document. The operator prints it to
// PDF from the browser.
func (h *BillHandler) BillHTML(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	html, bill, err := h.Assembler.BuildBill(billID)
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
			return
		}
		logrus.WithField("bill_id", billID).Errorf("bill assembly failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to assemble bill")
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, billing.Filename(bill)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// PrintBill renders the assembled bill to a PDF file on disk with
// headless Chrome and stamps pdf_created_at.
func (h *BillHandler) PrintBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bill id")
		return
	}

	html, _, err := h.Assembler.BuildBill(billID)
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			writeError(w, http.StatusNotFound, "Bill not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to assemble bill")
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create save directory: "+err.Error())
		return
	}

	pdfBytes, err := utils.RenderHTMLToPDF(html)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}

	filename := fmt.Sprintf("bill_%d_%d.pdf", billID, time.Now().Unix())
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save PDF: "+err.Error())
		return
	}

	if err := h.Repo.UpdatePDFCreatedAt(billID, time.Now()); err != nil {
		// Log but don't block the response.
		logrus.WithField("bill_id", billID).Warnf("failed to update pdf_created_at: %v", err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: map[string]string{"file": filename}})
}
