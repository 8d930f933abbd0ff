// Package csvimport maps uploaded CSV rows into normalized records
// through static field-mapping tables with per-field validators. One
// mapping table exists per record kind: invoices, parties, bookings.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"courierbilling/models"
)

// FieldMapping binds one CSV column to one target field. Assign runs only
// after Validate accepts the raw value.
type FieldMapping[T any] struct {
	Column   string
	Required bool
	Validate func(value string) error
	Assign   func(row *T, value string)
}

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

func validateDate(value string) error {
	_, err := parseDate(value)
	return err
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

func validateDecimal(value string) error {
	_, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("not a number: %q", value)
	}
	return nil
}

func validateBookingType(value string) error {
	if value != models.BookingAccount && value != models.BookingCash {
		return fmt.Errorf("booking type must be %q or %q", models.BookingAccount, models.BookingCash)
	}
	return nil
}

var invoiceMappings = []FieldMapping[models.CSVInvoice]{
	{
		Column:   "invoice_number",
		Required: true,
		Assign:   func(row *models.CSVInvoice, v string) { row.InvoiceNumber = v },
	},
	{
		Column:   "party_name",
		Required: true,
		Assign:   func(row *models.CSVInvoice, v string) { row.PartyName = v },
	},
	{
		Column:   "invoice_date",
		Required: true,
		Validate: validateDate,
		Assign: func(row *models.CSVInvoice, v string) {
			row.InvoiceDate, _ = parseDate(v)
		},
	},
	{
		Column:   "amount",
		Required: true,
		Validate: validateDecimal,
		Assign: func(row *models.CSVInvoice, v string) {
			row.Amount, _ = decimal.NewFromString(v)
		},
	},
	{
		Column: "destination",
		Assign: func(row *models.CSVInvoice, v string) { row.Destination = v },
	},
	{
		Column:   "weight_kg",
		Validate: validateDecimal,
		Assign: func(row *models.CSVInvoice, v string) {
			w, _ := decimal.NewFromString(v)
			row.WeightKG = &w
		},
	},
}

var partyMappings = []FieldMapping[models.Party]{
	{
		Column:   "name",
		Required: true,
		Assign:   func(row *models.Party, v string) { row.Name = v },
	},
	{
		Column: "address_line",
		Assign: func(row *models.Party, v string) { row.AddressLine = v },
	},
	{
		Column: "city",
		Assign: func(row *models.Party, v string) { row.City = v },
	},
	{
		Column: "phone",
		Assign: func(row *models.Party, v string) { row.Phone = v },
	},
	{
		Column: "gstin",
		Assign: func(row *models.Party, v string) { row.GSTIN = &v },
	},
}

var bookingMappings = []FieldMapping[models.Booking]{
	{
		Column: "consignment_no",
		Assign: func(row *models.Booking, v string) { row.ConsignmentNo = v },
	},
	{
		Column:   "sender",
		Required: true,
		Assign:   func(row *models.Booking, v string) { row.Sender = v },
	},
	{
		Column: "receiver",
		Assign: func(row *models.Booking, v string) { row.Receiver = v },
	},
	{
		Column: "destination",
		Assign: func(row *models.Booking, v string) { row.Destination = v },
	},
	{
		Column:   "booking_date",
		Required: true,
		Validate: validateDate,
		Assign: func(row *models.Booking, v string) {
			row.BookingDate, _ = parseDate(v)
		},
	},
	{
		Column:   "weight_kg",
		Validate: validateDecimal,
		Assign: func(row *models.Booking, v string) {
			w, _ := decimal.NewFromString(v)
			row.WeightKG = &w
		},
	},
	{
		Column:   "amount",
		Required: true,
		Validate: validateDecimal,
		Assign: func(row *models.Booking, v string) {
			row.Amount, _ = decimal.NewFromString(v)
		},
	},
	{
		Column:   "booking_type",
		Validate: validateBookingType,
		Assign:   func(row *models.Booking, v string) { row.BookingType = v },
	},
}

type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result[T any] struct {
	Total  int        `json:"total"`
	Parsed int        `json:"parsed"`
	Rows   []T        `json:"-"`
	Errors []RowError `json:"errors,omitempty"`
}

// ParseInvoices reads a CSV stream with a header row and maps each line
// into a CSVInvoice. Rows with validation errors are collected, not
// fatal; only a malformed stream (unreadable CSV, missing header)
// returns an error.
func ParseInvoices(r io.Reader) (*Result[models.CSVInvoice], error) {
	return parse(r, invoiceMappings)
}

// ParseParties maps party master rows.
func ParseParties(r io.Reader) (*Result[models.Party], error) {
	return parse(r, partyMappings)
}

// ParseBookings maps booking rows. A row without a booking_type lands in
// cash bookings.
func ParseBookings(r io.Reader) (*Result[models.Booking], error) {
	result, err := parse(r, bookingMappings)
	if err != nil {
		return nil, err
	}
	for i := range result.Rows {
		if result.Rows[i].BookingType == "" {
			result.Rows[i].BookingType = models.BookingCash
		}
	}
	return result, nil
}

func parse[T any](r io.Reader, mappings []FieldMapping[T]) (*Result[T], error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, m := range mappings {
		if _, ok := colIndex[m.Column]; !ok && m.Required {
			return nil, fmt.Errorf("missing required column %q", m.Column)
		}
	}

	result := &Result[T]{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Total++
			result.Errors = append(result.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		result.Total++
		var row T
		ok := true
		for _, m := range mappings {
			idx, present := colIndex[m.Column]
			value := ""
			if present && idx < len(record) {
				value = strings.TrimSpace(record[idx])
			}
			if value == "" {
				if m.Required {
					result.Errors = append(result.Errors, RowError{Line: line, Field: m.Column, Message: "required"})
					ok = false
				}
				continue
			}
			if m.Validate != nil {
				if err := m.Validate(value); err != nil {
					result.Errors = append(result.Errors, RowError{Line: line, Field: m.Column, Message: err.Error()})
					ok = false
					continue
				}
			}
			m.Assign(&row, value)
		}
		if ok {
			result.Rows = append(result.Rows, row)
			result.Parsed++
		}
	}

	return result, nil
}
