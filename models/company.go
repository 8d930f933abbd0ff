package models

import "time"

// CompanyProfile is the single-row branding record rendered on every bill.
type CompanyProfile struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	AddressLine   string    `json:"address_line" db:"address_line"`
	City          string    `json:"city" db:"city"`
	State         string    `json:"state" db:"state"`
	Pincode       string    `json:"pincode" db:"pincode"`
	GSTIN         string    `json:"gstin" db:"gstin"`
	Phone         string    `json:"phone" db:"phone"`
	BankName      string    `json:"bank_name" db:"bank_name"`
	BankAccountNo string    `json:"bank_account_no" db:"bank_account_no"`
	BankIFSC      string    `json:"bank_ifsc" db:"bank_ifsc"`
	Footnote      string    `json:"footnote" db:"footnote"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
