package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"courierbilling/auth"
	"courierbilling/models"
	"courierbilling/repository"
)

var validate = newValidator()

// newValidator reports fields by their json names so validation messages
// match the wire contract.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type RateSlabHandler struct {
	Repo repository.RateSlabRepository
}

// UpsertRateSlabRequest carries the snake_case upsert body. The optional
// id forces an update of that row regardless of the key tuple.
type UpsertRateSlabRequest struct {
	ID             int64           `json:"id,omitempty"`
	PartyID        int64           `json:"party_id" validate:"required"`
	ShipmentType   string          `json:"shipment_type" validate:"required,oneof=DOCUMENT NON_DOCUMENT"`
	ModeID         int64           `json:"mode_id" validate:"required"`
	ServiceTypeID  int64           `json:"service_type_id" validate:"required"`
	DistanceSlabID int64           `json:"distance_slab_id" validate:"required"`
	SlabID         int64           `json:"slab_id" validate:"required"`
	Rate           *decimal.Decimal `json:"rate" validate:"required"`
	FuelPct        decimal.Decimal `json:"fuel_pct"`
	Packing        decimal.Decimal `json:"packing"`
	Handling       decimal.Decimal `json:"handling"`
	GSTPct         decimal.Decimal `json:"gst_pct"`
	IsActive       *bool           `json:"is_active"`
}

func (h *RateSlabHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertRateSlabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	slab := &models.PartyRateSlab{
		ID:             req.ID,
		PartyID:        req.PartyID,
		ShipmentType:   req.ShipmentType,
		ModeID:         req.ModeID,
		ServiceTypeID:  req.ServiceTypeID,
		DistanceSlabID: req.DistanceSlabID,
		SlabID:         req.SlabID,
		Rate:           *req.Rate,
		FuelPct:        req.FuelPct,
		Packing:        req.Packing,
		Handling:       req.Handling,
		GSTPct:         req.GSTPct,
		IsActive:       isActive,
	}

	persisted, err := h.Repo.Upsert(slab, changedBy(r))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Rate slab not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save rate slab")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: persisted})
}

func (h *RateSlabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate slab id")
		return
	}

	if err := h.Repo.SoftDelete(id, changedBy(r)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Rate slab not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete rate slab")
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Rate slab deleted"})
}

func (h *RateSlabHandler) List(w http.ResponseWriter, r *http.Request) {
	partyID, err := strconv.ParseInt(r.URL.Query().Get("party_id"), 10, 64)
	if err != nil || partyID == 0 {
		writeError(w, http.StatusBadRequest, "party_id is required")
		return
	}

	slabs, err := h.Repo.ListByParty(partyID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load rate slabs")
		return
	}
	if slabs == nil {
		slabs = []*models.PartyRateSlab{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: slabs})
}

func (h *RateSlabHandler) Audit(w http.ResponseWriter, r *http.Request) {
	slabID, err := strconv.ParseInt(r.URL.Query().Get("party_rate_slab_id"), 10, 64)
	if err != nil || slabID == 0 {
		writeError(w, http.StatusBadRequest, "party_rate_slab_id is required")
		return
	}

	log, err := h.Repo.AuditLog(slabID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load audit log")
		return
	}
	if log == nil {
		log = []*models.PartyRateSlabAudit{}
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: log})
}

// validationMessage names every missing or invalid field.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "invalid request"
	}
	fields := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		fields = append(fields, fe.Field())
	}
	return "missing or invalid field(s): " + strings.Join(fields, ", ")
}

func changedBy(r *http.Request) string {
	if claims := auth.FromContext(r.Context()); claims != nil {
		return claims.Username
	}
	return ""
}
