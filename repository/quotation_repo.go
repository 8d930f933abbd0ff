package repository

import "courierbilling/models"

// QuotationRepository stores the per-party flat price sheets. The rates
// object is replaced wholesale on save, never merged per cell.
type QuotationRepository interface {
	SaveQuotation(q *models.PartyQuotation) error
	GetQuotationRates(partyID int64, packageType string) (models.QuotationRates, error)
	ListByParty(partyID int64) ([]*models.PartyQuotation, error)
	DeleteQuotation(partyID int64, packageType string) error
}
