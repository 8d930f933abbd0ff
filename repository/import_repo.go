package repository

import "courierbilling/models"

// ImportRepository persists CSV-imported rows. Inserts are sequential and
// independent; a failed row does not roll back the ones before it.
type ImportRepository interface {
	InsertCSVInvoices(rows []models.CSVInvoice) (inserted int, failures []string)
	InsertParties(rows []models.Party) (inserted int, failures []string)
	// InsertBookings routes each row to account_bookings or cash_bookings
	// by its booking type.
	InsertBookings(rows []models.Booking) (inserted int, failures []string)
}
