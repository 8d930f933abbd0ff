package repository

import (
	"time"

	"courierbilling/models"
)

// BillRepository persists bills and resolves their booking rows. It
// satisfies billing.BillSource.
type BillRepository interface {
	CreateBill(bill *models.Bill, refs []models.BookingRef) error
	ListBills(partyID int64) ([]*models.Bill, error)
	GetBill(id int64) (*models.Bill, error)
	GetBillBookingRefs(billID int64) ([]models.BookingRef, error)
	GetBookingsByID(source string, ids []int64) ([]models.Booking, error)
	GetBookingsBySender(source, sender string, from, to time.Time) ([]models.Booking, error)
	UpdatePDFCreatedAt(billID int64, t time.Time) error
}
