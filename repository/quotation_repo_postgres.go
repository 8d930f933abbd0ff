package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"courierbilling/models"
)

type PostgresQuotationRepo struct {
	DB *sql.DB
}

func NewPostgresQuotationRepo(db *sql.DB) *PostgresQuotationRepo {
	return &PostgresQuotationRepo{DB: db}
}

func (r *PostgresQuotationRepo) SaveQuotation(q *models.PartyQuotation) error {
	if q.Rates == nil {
		q.Rates = models.QuotationRates{}
	}
	ratesJSON, err := json.Marshal(q.Rates)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.DB.QueryRow(`
		INSERT INTO party_quotations(party_id, package_type, rates, created_at, updated_at)
		VALUES($1,$2,$3,$4,$4)
		ON CONFLICT (party_id, package_type)
		DO UPDATE SET rates=EXCLUDED.rates, updated_at=EXCLUDED.updated_at
		RETURNING id, created_at, updated_at
	`, q.PartyID, q.PackageType, string(ratesJSON), now).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

func (r *PostgresQuotationRepo) GetQuotationRates(partyID int64, packageType string) (models.QuotationRates, error) {
	var ratesJSON []byte
	err := r.DB.QueryRow(`
		SELECT rates FROM party_quotations WHERE party_id=$1 AND package_type=$2
	`, partyID, packageType).Scan(&ratesJSON)
	if err == sql.ErrNoRows {
		return models.QuotationRates{}, nil
	}
	if err != nil {
		return nil, err
	}

	rates := models.QuotationRates{}
	if err := json.Unmarshal(ratesJSON, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *PostgresQuotationRepo) ListByParty(partyID int64) ([]*models.PartyQuotation, error) {
	rows, err := r.DB.Query(`
		SELECT id, party_id, package_type, rates, created_at, updated_at
		FROM party_quotations
		WHERE party_id=$1
		ORDER BY package_type
	`, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.PartyQuotation
	for rows.Next() {
		var q models.PartyQuotation
		var ratesJSON []byte
		if err := rows.Scan(&q.ID, &q.PartyID, &q.PackageType, &ratesJSON, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.Rates = models.QuotationRates{}
		if err := json.Unmarshal(ratesJSON, &q.Rates); err != nil {
			return nil, err
		}
		result = append(result, &q)
	}
	return result, rows.Err()
}

func (r *PostgresQuotationRepo) DeleteQuotation(partyID int64, packageType string) error {
	res, err := r.DB.Exec(`
		DELETE FROM party_quotations WHERE party_id=$1 AND package_type=$2
	`, partyID, packageType)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
