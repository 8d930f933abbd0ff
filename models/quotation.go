package models

import "time"

// QuotationRates maps region -> weight-bracket label -> price string.
// Labels are free form ("100 gm", "Add_1000 gm") and deliberately not
// validated against the WeightSlab catalog.
type QuotationRates map[string]map[string]string

type PartyQuotation struct {
	ID          int64          `json:"id" db:"id"`
	PartyID     int64          `json:"party_id" db:"party_id"`
	PackageType string         `json:"package_type" db:"package_type"`
	Rates       QuotationRates `json:"rates" db:"rates"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
