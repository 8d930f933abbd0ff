// Package billing assembles party bills: it resolves the contributing
// booking rows, fills in charge totals and renders the final HTML
// document the operator prints to PDF.
package billing

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"courierbilling/models"
	"courierbilling/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var billTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var ErrBillNotFound = errors.New("bill not found")

// Applied when the bill row carries no fuel charge.
var defaultFuelCharges = decimal.NewFromInt(500)

// BillSource is the slice of the bill repository the assembler reads from.
type BillSource interface {
	GetBill(id int64) (*models.Bill, error)
	GetBillBookingRefs(billID int64) ([]models.BookingRef, error)
	// GetBookingsByID returns the identified rows of one source table,
	// ordered by booking date descending.
	GetBookingsByID(source string, ids []int64) ([]models.Booking, error)
	// GetBookingsBySender returns rows of one source table whose trimmed,
	// case-folded sender equals the given sender and whose booking date
	// falls in [from, to), ordered by booking date descending.
	GetBookingsBySender(source, sender string, from, to time.Time) ([]models.Booking, error)
}

// CompanySource supplies the branding block rendered on every bill.
type CompanySource interface {
	GetProfile() (*models.CompanyProfile, error)
}

// BookingSelector is the strategy for collecting a bill's bookings,
// resolved once per bill: an explicit bill_bookings mapping when one
// exists, otherwise a sender + calendar-month match.
type BookingSelector struct {
	Refs   []models.BookingRef
	Sender string
	From   time.Time
	To     time.Time
}

func (s BookingSelector) Explicit() bool { return len(s.Refs) > 0 }

type Assembler struct {
	Bills   BillSource
	Company CompanySource
}

// RenderData feeds the bill templates.
type RenderData struct {
	Company     *models.CompanyProfile
	Bill        *models.Bill
	Party       *models.Party
	Bookings    []models.Booking
	Date        string
	BaseAmount  decimal.Decimal
	FuelCharges decimal.Decimal
	TotalAmount decimal.Decimal
	TotalWords  string
}

// ResolveSelector decides, once, how this bill's bookings are collected.
func (a *Assembler) ResolveSelector(bill *models.Bill) (BookingSelector, error) {
	refs, err := a.Bills.GetBillBookingRefs(bill.ID)
	if err != nil {
		return BookingSelector{}, fmt.Errorf("load bill_bookings: %w", err)
	}
	if len(refs) > 0 {
		return BookingSelector{Refs: refs}, nil
	}

	partyName := ""
	if bill.Party != nil {
		partyName = bill.Party.Name
	}
	from, to := monthWindow(bill.BillDate)
	return BookingSelector{
		Sender: strings.ToLower(strings.TrimSpace(partyName)),
		From:   from,
		To:     to,
	}, nil
}

// ResolveBookings executes the selector: account bookings first, then
// cash bookings, each date-descending within its source; no further sort
// is applied across the merged list.
func (a *Assembler) ResolveBookings(sel BookingSelector) ([]models.Booking, error) {
	var merged []models.Booking

	for _, source := range []string{models.BookingAccount, models.BookingCash} {
		var (
			rows []models.Booking
			err  error
		)
		if sel.Explicit() {
			ids := idsForSource(sel.Refs, source)
			if len(ids) == 0 {
				continue
			}
			rows, err = a.Bills.GetBookingsByID(source, ids)
		} else {
			rows, err = a.Bills.GetBookingsBySender(source, sel.Sender, sel.From, sel.To)
		}
		if err != nil {
			return nil, fmt.Errorf("load %s bookings: %w", source, err)
		}
		for i := range rows {
			rows[i].BookingType = source
		}
		merged = append(merged, rows...)
	}

	return merged, nil
}

// BuildBill loads, resolves and renders one bill to a complete HTML
// document, returning the loaded bill alongside so callers don't fetch
// it again. Amounts come from the bill row itself; the booking table is
// presentational.
func (a *Assembler) BuildBill(billID int64) (string, *models.Bill, error) {
	bill, err := a.Bills.GetBill(billID)
	if err != nil {
		return "", nil, fmt.Errorf("load bill: %w", err)
	}
	if bill == nil {
		return "", nil, ErrBillNotFound
	}

	sel, err := a.ResolveSelector(bill)
	if err != nil {
		return "", nil, err
	}
	bookings, err := a.ResolveBookings(sel)
	if err != nil {
		return "", nil, err
	}

	company, err := a.Company.GetProfile()
	if err != nil {
		return "", nil, fmt.Errorf("load company profile: %w", err)
	}
	if company == nil {
		company = &models.CompanyProfile{}
	}

	fuel := bill.FuelCharges
	if fuel.IsZero() {
		fuel = defaultFuelCharges
	}

	data := RenderData{
		Company:     company,
		Bill:        bill,
		Party:       bill.Party,
		Bookings:    bookings,
		Date:        bill.BillDate.Format("02-Jan-2006"),
		BaseAmount:  bill.BaseAmount,
		FuelCharges: fuel,
		TotalAmount: bill.TotalAmount,
		TotalWords:  utils.NumberToWords(int(bill.TotalAmount.IntPart())),
	}

	var buf bytes.Buffer
	if err := billTemplates.ExecuteTemplate(&buf, TemplateName(bill.Template), data); err != nil {
		return "", nil, fmt.Errorf("render bill template: %w", err)
	}
	return buf.String(), bill, nil
}

// TemplateName maps the bill's stored template field onto one of the
// three bundled layouts.
func TemplateName(stored string) string {
	switch stored {
	case "Template 1":
		return "bill_template1.html"
	case "Template 2":
		return "bill_template2.html"
	default:
		return "bill_default.html"
	}
}

// Filename names the served HTML document.
func Filename(bill *models.Bill) string {
	return fmt.Sprintf("bill-%s.html", bill.BillNumber)
}

func idsForSource(refs []models.BookingRef, source string) []int64 {
	var ids []int64
	for _, ref := range refs {
		if ref.BookingType == source {
			ids = append(ids, ref.BookingID)
		}
	}
	return ids
}

// monthWindow returns [first day of month, first day of next month).
func monthWindow(t time.Time) (time.Time, time.Time) {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
