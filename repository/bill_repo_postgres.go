package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"courierbilling/models"
)

type PostgresBillRepo struct {
	DB *sql.DB
}

func NewPostgresBillRepo(db *sql.DB) *PostgresBillRepo {
	return &PostgresBillRepo{DB: db}
}

// Whitelist of booking source -> table.
var bookingTables = map[string]string{
	models.BookingAccount: "account_bookings",
	models.BookingCash:    "cash_bookings",
}

const bookingColumns = `id, consignment_no, sender, receiver, destination, booking_date, weight_kg, amount`

// ------------------------ Create / List ------------------------

func (r *PostgresBillRepo) CreateBill(bill *models.Bill, refs []models.BookingRef) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}
	err = tx.QueryRow(`
		INSERT INTO bills(party_id, bill_number, bill_date, base_amount, fuel_charges, total_amount, template, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, bill.PartyID, bill.BillNumber, bill.BillDate, bill.BaseAmount, bill.FuelCharges,
		bill.TotalAmount, bill.Template, bill.CreatedAt).Scan(&bill.ID)
	if err != nil {
		return err
	}

	for _, ref := range refs {
		if _, ok := bookingTables[ref.BookingType]; !ok {
			return fmt.Errorf("unknown booking type %q", ref.BookingType)
		}
		if _, err := tx.Exec(`
			INSERT INTO bill_bookings(bill_id, booking_type, booking_id)
			VALUES($1,$2,$3)
			ON CONFLICT DO NOTHING
		`, bill.ID, ref.BookingType, ref.BookingID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresBillRepo) ListBills(partyID int64) ([]*models.Bill, error) {
	query := `
		SELECT id, party_id, bill_number, bill_date, base_amount, fuel_charges, total_amount, template, pdf_created_at, created_at
		FROM bills
	`
	args := []interface{}{}
	if partyID != 0 {
		query += ` WHERE party_id=$1`
		args = append(args, partyID)
	}
	query += ` ORDER BY bill_date DESC, id DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Bill
	for rows.Next() {
		var b models.Bill
		err := rows.Scan(&b.ID, &b.PartyID, &b.BillNumber, &b.BillDate, &b.BaseAmount,
			&b.FuelCharges, &b.TotalAmount, &b.Template, &b.PdfCreatedAt, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, &b)
	}
	return result, rows.Err()
}

// ------------------------ Assembly reads ------------------------

func (r *PostgresBillRepo) GetBill(id int64) (*models.Bill, error) {
	var b models.Bill
	var p models.Party
	err := r.DB.QueryRow(`
		SELECT b.id, b.party_id, b.bill_number, b.bill_date, b.base_amount, b.fuel_charges,
			b.total_amount, b.template, b.pdf_created_at, b.created_at,
			p.id, p.name, p.address_line, p.city, p.phone, p.gstin, p.is_active, p.created_at
		FROM bills b
		JOIN parties p ON b.party_id = p.id
		WHERE b.id=$1
	`, id).Scan(
		&b.ID, &b.PartyID, &b.BillNumber, &b.BillDate, &b.BaseAmount, &b.FuelCharges,
		&b.TotalAmount, &b.Template, &b.PdfCreatedAt, &b.CreatedAt,
		&p.ID, &p.Name, &p.AddressLine, &p.City, &p.Phone, &p.GSTIN, &p.IsActive, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.Party = &p
	return &b, nil
}

func (r *PostgresBillRepo) GetBillBookingRefs(billID int64) ([]models.BookingRef, error) {
	rows, err := r.DB.Query(`
		SELECT booking_type, booking_id FROM bill_bookings WHERE bill_id=$1 ORDER BY id
	`, billID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.BookingRef
	for rows.Next() {
		var ref models.BookingRef
		if err := rows.Scan(&ref.BookingType, &ref.BookingID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *PostgresBillRepo) GetBookingsByID(source string, ids []int64) ([]models.Booking, error) {
	table, ok := bookingTables[source]
	if !ok {
		return nil, fmt.Errorf("unknown booking source %q", source)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]interface{}, len(ids))
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		args[i] = id
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE id IN (%s)
		ORDER BY booking_date DESC, id DESC
	`, bookingColumns, table, strings.Join(placeholders, ","))

	return r.queryBookings(query, args...)
}

func (r *PostgresBillRepo) GetBookingsBySender(source, sender string, from, to time.Time) ([]models.Booking, error) {
	table, ok := bookingTables[source]
	if !ok {
		return nil, fmt.Errorf("unknown booking source %q", source)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE LOWER(TRIM(sender)) = $1
		  AND booking_date >= $2 AND booking_date < $3
		ORDER BY booking_date DESC, id DESC
	`, bookingColumns, table)

	return r.queryBookings(query, strings.ToLower(strings.TrimSpace(sender)), from, to)
}

func (r *PostgresBillRepo) queryBookings(query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(&b.ID, &b.ConsignmentNo, &b.Sender, &b.Receiver, &b.Destination,
			&b.BookingDate, &b.WeightKG, &b.Amount)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *PostgresBillRepo) UpdatePDFCreatedAt(billID int64, t time.Time) error {
	_, err := r.DB.Exec(`UPDATE bills SET pdf_created_at=$1 WHERE id=$2`, t, billID)
	return err
}
