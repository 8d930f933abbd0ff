package repository

import (
	"database/sql"
	"time"

	"courierbilling/models"
)

type PostgresPartyRepo struct {
	DB *sql.DB
}

func NewPostgresPartyRepo(db *sql.DB) *PostgresPartyRepo {
	return &PostgresPartyRepo{DB: db}
}

func (r *PostgresPartyRepo) SaveParty(party *models.Party) error {
	if party.ID == 0 {
		if party.CreatedAt.IsZero() {
			party.CreatedAt = time.Now().UTC()
		}
		party.IsActive = true
		return r.DB.QueryRow(`
			INSERT INTO parties(name, address_line, city, phone, gstin, is_active, created_at)
			VALUES($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`, party.Name, party.AddressLine, party.City, party.Phone, party.GSTIN, party.IsActive, party.CreatedAt).Scan(&party.ID)
	}

	res, err := r.DB.Exec(`
		UPDATE parties
		SET name=$1, address_line=$2, city=$3, phone=$4, gstin=$5, is_active=$6
		WHERE id=$7
	`, party.Name, party.AddressLine, party.City, party.Phone, party.GSTIN, party.IsActive, party.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPartyRepo) GetParties() ([]*models.Party, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, address_line, city, phone, gstin, is_active, created_at
		FROM parties
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parties []*models.Party
	for rows.Next() {
		var p models.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.AddressLine, &p.City, &p.Phone, &p.GSTIN, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		parties = append(parties, &p)
	}
	return parties, rows.Err()
}

func (r *PostgresPartyRepo) GetPartyByID(id int64) (*models.Party, error) {
	var p models.Party
	err := r.DB.QueryRow(`
		SELECT id, name, address_line, city, phone, gstin, is_active, created_at
		FROM parties
		WHERE id=$1
	`, id).Scan(&p.ID, &p.Name, &p.AddressLine, &p.City, &p.Phone, &p.GSTIN, &p.IsActive, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
