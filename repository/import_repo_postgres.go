package repository

import (
	"database/sql"
	"fmt"

	"courierbilling/models"
)

type PostgresImportRepo struct {
	DB *sql.DB
}

func NewPostgresImportRepo(db *sql.DB) *PostgresImportRepo {
	return &PostgresImportRepo{DB: db}
}

func (r *PostgresImportRepo) InsertCSVInvoices(rows []models.CSVInvoice) (int, []string) {
	inserted := 0
	var failures []string

	for i := range rows {
		row := &rows[i]
		err := r.DB.QueryRow(`
			INSERT INTO csv_invoices(invoice_number, party_name, invoice_date, amount, destination, weight_kg)
			VALUES($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, row.InvoiceNumber, row.PartyName, row.InvoiceDate, row.Amount, row.Destination, row.WeightKG).Scan(&row.ID)
		if err != nil {
			failures = append(failures, fmt.Sprintf("invoice %s: %v", row.InvoiceNumber, err))
			continue
		}
		inserted++
	}

	return inserted, failures
}

func (r *PostgresImportRepo) InsertParties(rows []models.Party) (int, []string) {
	inserted := 0
	var failures []string

	for i := range rows {
		row := &rows[i]
		err := r.DB.QueryRow(`
			INSERT INTO parties(name, address_line, city, phone, gstin, is_active)
			VALUES($1,$2,$3,$4,$5,TRUE)
			RETURNING id
		`, row.Name, row.AddressLine, row.City, row.Phone, row.GSTIN).Scan(&row.ID)
		if err != nil {
			failures = append(failures, fmt.Sprintf("party %s: %v", row.Name, err))
			continue
		}
		inserted++
	}

	return inserted, failures
}

func (r *PostgresImportRepo) InsertBookings(rows []models.Booking) (int, []string) {
	inserted := 0
	var failures []string

	for i := range rows {
		row := &rows[i]
		table, ok := bookingTables[row.BookingType]
		if !ok {
			failures = append(failures, fmt.Sprintf("booking %s: unknown booking type %q", row.ConsignmentNo, row.BookingType))
			continue
		}
		err := r.DB.QueryRow(fmt.Sprintf(`
			INSERT INTO %s(consignment_no, sender, receiver, destination, booking_date, weight_kg, amount)
			VALUES($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`, table), row.ConsignmentNo, row.Sender, row.Receiver, row.Destination,
			row.BookingDate, row.WeightKG, row.Amount).Scan(&row.ID)
		if err != nil {
			failures = append(failures, fmt.Sprintf("booking %s: %v", row.ConsignmentNo, err))
			continue
		}
		inserted++
	}

	return inserted, failures
}
