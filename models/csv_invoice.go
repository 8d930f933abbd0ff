package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CSVInvoice is one normalized row produced by the CSV import mapper.
type CSVInvoice struct {
	ID            int64            `json:"id" db:"id"`
	InvoiceNumber string           `json:"invoice_number" db:"invoice_number"`
	PartyName     string           `json:"party_name" db:"party_name"`
	InvoiceDate   time.Time        `json:"invoice_date" db:"invoice_date"`
	Amount        decimal.Decimal  `json:"amount" db:"amount"`
	Destination   string           `json:"destination" db:"destination"`
	WeightKG      *decimal.Decimal `json:"weight_kg,omitempty" db:"weight_kg"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}
