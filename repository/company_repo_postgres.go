package repository

import (
	"database/sql"
	"time"

	"courierbilling/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

func (r *PostgresCompanyRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO company_profile(name, address_line, city, state, pincode, gstin, phone,
			bank_name, bank_account_no, bank_ifsc, footnote, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id
	`, profile.Name, profile.AddressLine, profile.City, profile.State, profile.Pincode,
		profile.GSTIN, profile.Phone, profile.BankName, profile.BankAccountNo,
		profile.BankIFSC, profile.Footnote, profile.CreatedAt).Scan(&profile.ID)
}

// GetProfile returns the latest saved profile, or nil when none exists.
func (r *PostgresCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.DB.QueryRow(`
		SELECT id, name, address_line, city, state, pincode, gstin, phone,
			bank_name, bank_account_no, bank_ifsc, footnote, created_at
		FROM company_profile
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.AddressLine, &p.City, &p.State, &p.Pincode, &p.GSTIN,
		&p.Phone, &p.BankName, &p.BankAccountNo, &p.BankIFSC, &p.Footnote, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
