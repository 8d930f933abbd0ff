package csvimport

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoices(t *testing.T) {
	in := strings.Join([]string{
		"invoice_number,party_name,invoice_date,amount,destination,weight_kg",
		"INV-001,Acme Traders,2025-10-03,1250.50,Mumbai,2.5",
		"INV-002,Beta Couriers,05-10-2025,300,,",
	}, "\n")

	res, err := ParseInvoices(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, res.Parsed)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Rows, 2)

	first := res.Rows[0]
	assert.Equal(t, "INV-001", first.InvoiceNumber)
	assert.Equal(t, "Acme Traders", first.PartyName)
	assert.Equal(t, time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), first.InvoiceDate)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, "Mumbai", first.Destination)
	require.NotNil(t, first.WeightKG)
	assert.True(t, first.WeightKG.Equal(decimal.RequireFromString("2.5")))

	second := res.Rows[1]
	assert.Equal(t, "INV-002", second.InvoiceNumber)
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), second.InvoiceDate)
	assert.Empty(t, second.Destination)
	assert.Nil(t, second.WeightKG)
}

func TestParseInvoicesCollectsRowErrors(t *testing.T) {
	in := strings.Join([]string{
		"invoice_number,party_name,invoice_date,amount",
		"INV-001,Acme Traders,not-a-date,100",
		",Beta Couriers,2025-10-05,200",
		"INV-003,Gamma Freight,2025-10-06,abc",
		"INV-004,Delta Cargo,2025-10-07,400",
	}, "\n")

	res, err := ParseInvoices(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 1, res.Parsed)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "INV-004", res.Rows[0].InvoiceNumber)

	require.Len(t, res.Errors, 3)
	assert.Equal(t, 2, res.Errors[0].Line)
	assert.Equal(t, "invoice_date", res.Errors[0].Field)
	assert.Equal(t, 3, res.Errors[1].Line)
	assert.Equal(t, "invoice_number", res.Errors[1].Field)
	assert.Equal(t, "required", res.Errors[1].Message)
	assert.Equal(t, 4, res.Errors[2].Line)
	assert.Equal(t, "amount", res.Errors[2].Field)
}

func TestParseInvoicesMissingRequiredColumn(t *testing.T) {
	in := "invoice_number,party_name,invoice_date\nINV-001,Acme,2025-10-03"

	_, err := ParseInvoices(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestParseInvoicesHeaderOnly(t *testing.T) {
	in := "invoice_number,party_name,invoice_date,amount\n"

	res, err := ParseInvoices(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Rows)
}

func TestParseParties(t *testing.T) {
	in := strings.Join([]string{
		"name,address_line,city,phone,gstin",
		"Acme Traders,12 MG Road,Mumbai,9876543210,27AAAAA0000A1Z5",
		"Beta Couriers,,,,",
		",45 Park Street,Kolkata,,",
	}, "\n")

	res, err := ParseParties(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Parsed)
	require.Len(t, res.Rows, 2)

	first := res.Rows[0]
	assert.Equal(t, "Acme Traders", first.Name)
	assert.Equal(t, "12 MG Road", first.AddressLine)
	assert.Equal(t, "Mumbai", first.City)
	require.NotNil(t, first.GSTIN)
	assert.Equal(t, "27AAAAA0000A1Z5", *first.GSTIN)

	second := res.Rows[1]
	assert.Equal(t, "Beta Couriers", second.Name)
	assert.Nil(t, second.GSTIN)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, 4, res.Errors[0].Line)
	assert.Equal(t, "name", res.Errors[0].Field)
	assert.Equal(t, "required", res.Errors[0].Message)
}

func TestParseBookings(t *testing.T) {
	in := strings.Join([]string{
		"consignment_no,sender,receiver,destination,booking_date,weight_kg,amount,booking_type",
		"CN-1,Acme Traders,Ravi,Delhi,2025-10-03,1.25,350,account",
		"CN-2,Beta Couriers,,,05-10-2025,,120,",
		"CN-3,Gamma Freight,,,2025-10-06,,90,prepaid",
	}, "\n")

	res, err := ParseBookings(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Parsed)
	require.Len(t, res.Rows, 2)

	first := res.Rows[0]
	assert.Equal(t, "CN-1", first.ConsignmentNo)
	assert.Equal(t, "account", first.BookingType)
	assert.Equal(t, time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), first.BookingDate)
	require.NotNil(t, first.WeightKG)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(350)))

	// Missing booking_type lands in cash.
	second := res.Rows[1]
	assert.Equal(t, "cash", second.BookingType)
	assert.Nil(t, second.WeightKG)

	require.Len(t, res.Errors, 1)
	assert.Equal(t, 4, res.Errors[0].Line)
	assert.Equal(t, "booking_type", res.Errors[0].Field)
}

func TestParseBookingsMissingRequiredColumn(t *testing.T) {
	in := "consignment_no,sender,booking_date\nCN-1,Acme,2025-10-03"

	_, err := ParseBookings(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestParseInvoicesCaseInsensitiveHeader(t *testing.T) {
	in := strings.Join([]string{
		"Invoice_Number, Party_Name ,INVOICE_DATE,Amount",
		"INV-009,Acme Traders,03/10/2025,75",
	}, "\n")

	res, err := ParseInvoices(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "INV-009", res.Rows[0].InvoiceNumber)
	assert.Equal(t, time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC), res.Rows[0].InvoiceDate)
}
