package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BookingAccount = "account"
	BookingCash    = "cash"
)

type Bill struct {
	ID           int64           `json:"id" db:"id"`
	PartyID      int64           `json:"party_id" db:"party_id"`
	BillNumber   string          `json:"bill_number" db:"bill_number"`
	BillDate     time.Time       `json:"bill_date" db:"bill_date"`
	BaseAmount   decimal.Decimal `json:"base_amount" db:"base_amount"`
	FuelCharges  decimal.Decimal `json:"fuel_charges" db:"fuel_charges"`
	TotalAmount  decimal.Decimal `json:"total_amount" db:"total_amount"`
	Template     string          `json:"template" db:"template"`
	PdfCreatedAt *time.Time      `json:"pdf_created_at,omitempty" db:"pdf_created_at"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`

	Party *Party `json:"party,omitempty"`
}

// BookingRef pins one booking row to a bill in the bill_bookings mapping.
type BookingRef struct {
	BookingType string `json:"booking_type" db:"booking_type"`
	BookingID   int64  `json:"booking_id" db:"booking_id"`
}

type Booking struct {
	ID            int64            `json:"id" db:"id"`
	ConsignmentNo string           `json:"consignment_no" db:"consignment_no"`
	Sender        string           `json:"sender" db:"sender"`
	Receiver      string           `json:"receiver" db:"receiver"`
	Destination   string           `json:"destination" db:"destination"`
	BookingDate   time.Time        `json:"booking_date" db:"booking_date"`
	WeightKG      *decimal.Decimal `json:"weight_kg,omitempty" db:"weight_kg"`
	Amount        decimal.Decimal  `json:"amount" db:"amount"`

	// account | cash, set from the source table on read.
	BookingType string `json:"booking_type"`
}
