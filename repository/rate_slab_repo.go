package repository

import "courierbilling/models"

// RateSlabRepository owns the party rate slab rows and their audit trail.
// Every mutation writes its audit row in the same transaction as the
// primary change, so the trail cannot diverge from the stored state.
type RateSlabRepository interface {
	// Upsert updates the row identified by slab.ID, or the active row
	// matching slab's key tuple, and inserts otherwise. Returns the
	// persisted row.
	Upsert(slab *models.PartyRateSlab, changedBy string) (*models.PartyRateSlab, error)
	// SoftDelete marks the row inactive. The row and its audit history
	// are never hard-removed.
	SoftDelete(id int64, changedBy string) error
	// ListByParty returns the party's non-deleted rows decorated with
	// catalog display titles.
	ListByParty(partyID int64) ([]*models.PartyRateSlab, error)
	// ListActiveByParty returns the bare active rows for scenario
	// matching.
	ListActiveByParty(partyID int64) ([]*models.PartyRateSlab, error)
	// AuditLog returns the audit rows for one slab, most recent first.
	AuditLog(rateSlabID int64) ([]*models.PartyRateSlabAudit, error)
}
