package repository

import (
	"database/sql"
	"fmt"
)

type PostgresSetupRepo struct {
	DB *sql.DB
}

func NewPostgresSetupRepo(db *sql.DB) *PostgresSetupRepo {
	return &PostgresSetupRepo{DB: db}
}

var seedRegions = []string{
	"MUMBAI", "DELHI", "KOLKATA", "CHENNAI", "BANGALORE", "HYDERABAD",
	"AHMEDABAD", "PUNE", "REST OF INDIA",
}

var seedCarriers = []string{
	"INDIA POST", "BLUE DART", "DTDC", "DELHIVERY", "PROFESSIONAL",
}

var seedPackageTypes = []string{
	"DOCUMENT", "NON DOCUMENT", "SURFACE PARCEL", "AIR PARCEL",
}

var seedQuotationNotes = []string{
	"Fuel surcharge extra as applicable.",
	"GST extra as per government rules.",
	"Rates valid subject to revision with 15 days notice.",
	"Volumetric weight applies where higher than actual weight.",
}

// SeedReferenceData inserts the reference rows each install starts from.
// Each statement is ON CONFLICT DO NOTHING, so reruns are no-ops.
func (r *PostgresSetupRepo) SeedReferenceData() error {
	seeds := []struct {
		table  string
		column string
		values []string
	}{
		{"regions", "name", seedRegions},
		{"carriers", "name", seedCarriers},
		{"quotation_defaults", "package_type", seedPackageTypes},
		{"quotation_notes", "note", seedQuotationNotes},
	}

	for _, seed := range seeds {
		query := fmt.Sprintf(
			`INSERT INTO %s(%s) VALUES($1) ON CONFLICT (%s) DO NOTHING`,
			seed.table, seed.column, seed.column,
		)
		for _, value := range seed.values {
			if _, err := r.DB.Exec(query, value); err != nil {
				return fmt.Errorf("seed %s: %w", seed.table, err)
			}
		}
	}
	return nil
}
