package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ShipmentDocument    = "DOCUMENT"
	ShipmentNonDocument = "NON_DOCUMENT"
)

// ShipmentTypes in the order the scenario view iterates them.
var ShipmentTypes = []string{ShipmentDocument, ShipmentNonDocument}

// RateSlabKey is the scenario key tuple. At most one active PartyRateSlab
// exists per (party, key).
type RateSlabKey struct {
	ShipmentType   string
	ModeID         int64
	ServiceTypeID  int64
	DistanceSlabID int64
	SlabID         int64
}

type PartyRateSlab struct {
	ID             int64           `json:"id" db:"id"`
	PartyID        int64           `json:"party_id" db:"party_id"`
	ShipmentType   string          `json:"shipment_type" db:"shipment_type"`
	ModeID         int64           `json:"mode_id" db:"mode_id"`
	ServiceTypeID  int64           `json:"service_type_id" db:"service_type_id"`
	DistanceSlabID int64           `json:"distance_slab_id" db:"distance_slab_id"`
	SlabID         int64           `json:"slab_id" db:"slab_id"`
	Rate           decimal.Decimal `json:"rate" db:"rate"`
	FuelPct        decimal.Decimal `json:"fuel_pct" db:"fuel_pct"`
	Packing        decimal.Decimal `json:"packing" db:"packing"`
	Handling       decimal.Decimal `json:"handling" db:"handling"`
	GSTPct         decimal.Decimal `json:"gst_pct" db:"gst_pct"`
	IsActive       bool            `json:"is_active" db:"is_active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty" db:"updated_at"`

	// Display titles joined at read time for the listing UI.
	ModeTitle         string `json:"mode_title,omitempty"`
	ServiceTypeTitle  string `json:"service_type_title,omitempty"`
	DistanceSlabTitle string `json:"distance_slab_title,omitempty"`
	SlabTitle         string `json:"slab_title,omitempty"`
}

func (s *PartyRateSlab) Key() RateSlabKey {
	return RateSlabKey{
		ShipmentType:   s.ShipmentType,
		ModeID:         s.ModeID,
		ServiceTypeID:  s.ServiceTypeID,
		DistanceSlabID: s.DistanceSlabID,
		SlabID:         s.SlabID,
	}
}

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// PartyRateSlabAudit is append-only; one row per mutating operation.
type PartyRateSlabAudit struct {
	ID              int64           `json:"id" db:"id"`
	PartyRateSlabID int64           `json:"party_rate_slab_id" db:"party_rate_slab_id"`
	Action          string          `json:"action" db:"action"`
	BeforeData      json.RawMessage `json:"before_data,omitempty" db:"before_data"`
	AfterData       json.RawMessage `json:"after_data,omitempty" db:"after_data"`
	ChangedBy       string          `json:"changed_by" db:"changed_by"`
	ChangedAt       time.Time       `json:"changed_at" db:"changed_at"`
}
