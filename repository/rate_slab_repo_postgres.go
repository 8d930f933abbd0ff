package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"courierbilling/models"
)

type PostgresRateSlabRepo struct {
	DB *sql.DB
}

func NewPostgresRateSlabRepo(db *sql.DB) *PostgresRateSlabRepo {
	return &PostgresRateSlabRepo{DB: db}
}

const rateSlabColumns = `id, party_id, shipment_type, mode_id, service_type_id, distance_slab_id, slab_id,
	rate, fuel_pct, packing, handling, gst_pct, is_active, created_at, updated_at`

// ------------------------ Helper Functions ------------------------

func scanRateSlab(row interface{ Scan(...interface{}) error }) (*models.PartyRateSlab, error) {
	var s models.PartyRateSlab
	err := row.Scan(
		&s.ID, &s.PartyID, &s.ShipmentType, &s.ModeID, &s.ServiceTypeID, &s.DistanceSlabID, &s.SlabID,
		&s.Rate, &s.FuelPct, &s.Packing, &s.Handling, &s.GSTPct, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRateSlabRepo) getByID(tx *sql.Tx, id int64) (*models.PartyRateSlab, error) {
	slab, err := scanRateSlab(tx.QueryRow(
		`SELECT `+rateSlabColumns+` FROM party_rate_slabs WHERE id=$1`, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return slab, err
}

// findActiveByKey resolves the at-most-one active row for the key tuple.
func (r *PostgresRateSlabRepo) findActiveByKey(tx *sql.Tx, key *models.PartyRateSlab) (int64, error) {
	var id int64
	err := tx.QueryRow(`
		SELECT id FROM party_rate_slabs
		WHERE party_id=$1 AND shipment_type=$2 AND mode_id=$3
		  AND service_type_id=$4 AND distance_slab_id=$5 AND slab_id=$6
		  AND is_active
		LIMIT 1
	`, key.PartyID, key.ShipmentType, key.ModeID, key.ServiceTypeID, key.DistanceSlabID, key.SlabID).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return id, err
}

func (r *PostgresRateSlabRepo) insertAudit(tx *sql.Tx, slabID int64, action string, before, after *models.PartyRateSlab, changedBy string) error {
	var beforeData, afterData []byte
	var err error
	if before != nil {
		if beforeData, err = json.Marshal(before); err != nil {
			return err
		}
	}
	if after != nil {
		if afterData, err = json.Marshal(after); err != nil {
			return err
		}
	}
	_, err = tx.Exec(`
		INSERT INTO party_rate_slab_audit(party_rate_slab_id, action, before_data, after_data, changed_by, changed_at)
		VALUES($1,$2,$3,$4,$5,$6)
	`, slabID, action, nullableJSON(beforeData), nullableJSON(afterData), changedBy, time.Now().UTC())
	return err
}

// lib/pq sends []byte as bytea, which a JSONB column rejects, so the
// snapshot goes over the wire as text.
func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

// ------------------------ Upsert ------------------------

func (r *PostgresRateSlabRepo) Upsert(slab *models.PartyRateSlab, changedBy string) (*models.PartyRateSlab, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// An active row for the exact key tuple is updated in place, never
	// duplicated.
	if slab.ID == 0 {
		existingID, err := r.findActiveByKey(tx, slab)
		if err != nil {
			return nil, err
		}
		slab.ID = existingID
	}

	var persisted *models.PartyRateSlab
	if slab.ID != 0 {
		before, err := r.getByID(tx, slab.ID)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		_, err = tx.Exec(`
			UPDATE party_rate_slabs SET
				party_id=$1, shipment_type=$2, mode_id=$3, service_type_id=$4,
				distance_slab_id=$5, slab_id=$6, rate=$7, fuel_pct=$8,
				packing=$9, handling=$10, gst_pct=$11, is_active=$12, updated_at=$13
			WHERE id=$14
		`, slab.PartyID, slab.ShipmentType, slab.ModeID, slab.ServiceTypeID,
			slab.DistanceSlabID, slab.SlabID, slab.Rate, slab.FuelPct,
			slab.Packing, slab.Handling, slab.GSTPct, slab.IsActive, now, slab.ID)
		if err != nil {
			return nil, err
		}

		persisted, err = r.getByID(tx, slab.ID)
		if err != nil {
			return nil, err
		}
		if err := r.insertAudit(tx, slab.ID, models.AuditActionUpdate, before, persisted, changedBy); err != nil {
			return nil, err
		}
	} else {
		err = tx.QueryRow(`
			INSERT INTO party_rate_slabs(
				party_id, shipment_type, mode_id, service_type_id, distance_slab_id, slab_id,
				rate, fuel_pct, packing, handling, gst_pct, is_active
			)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			RETURNING id, created_at
		`, slab.PartyID, slab.ShipmentType, slab.ModeID, slab.ServiceTypeID,
			slab.DistanceSlabID, slab.SlabID, slab.Rate, slab.FuelPct,
			slab.Packing, slab.Handling, slab.GSTPct, slab.IsActive).Scan(&slab.ID, &slab.CreatedAt)
		if err != nil {
			return nil, err
		}

		persisted, err = r.getByID(tx, slab.ID)
		if err != nil {
			return nil, err
		}
		if err := r.insertAudit(tx, slab.ID, models.AuditActionCreate, nil, persisted, changedBy); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return persisted, nil
}

// ------------------------ Soft Delete ------------------------

func (r *PostgresRateSlabRepo) SoftDelete(id int64, changedBy string) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	before, err := r.getByID(tx, id)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE party_rate_slabs SET is_active=FALSE, updated_at=$1 WHERE id=$2
	`, time.Now().UTC(), id); err != nil {
		return err
	}

	if err := r.insertAudit(tx, id, models.AuditActionDelete, before, nil, changedBy); err != nil {
		return err
	}

	return tx.Commit()
}

// ------------------------ Listing ------------------------

func (r *PostgresRateSlabRepo) ListByParty(partyID int64) ([]*models.PartyRateSlab, error) {
	rows, err := r.DB.Query(`
		SELECT s.id, s.party_id, s.shipment_type, s.mode_id, s.service_type_id, s.distance_slab_id, s.slab_id,
			s.rate, s.fuel_pct, s.packing, s.handling, s.gst_pct, s.is_active, s.created_at, s.updated_at,
			m.title, st.title, d.title, w.title
		FROM party_rate_slabs s
		JOIN modes m ON s.mode_id = m.id
		JOIN service_types st ON s.service_type_id = st.id
		JOIN distance_slabs d ON s.distance_slab_id = d.id
		JOIN weight_slabs w ON s.slab_id = w.id
		WHERE s.party_id=$1 AND s.is_active
		ORDER BY s.shipment_type, s.mode_id, s.service_type_id, s.distance_slab_id, s.slab_id
	`, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.PartyRateSlab
	for rows.Next() {
		var s models.PartyRateSlab
		err := rows.Scan(
			&s.ID, &s.PartyID, &s.ShipmentType, &s.ModeID, &s.ServiceTypeID, &s.DistanceSlabID, &s.SlabID,
			&s.Rate, &s.FuelPct, &s.Packing, &s.Handling, &s.GSTPct, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&s.ModeTitle, &s.ServiceTypeTitle, &s.DistanceSlabTitle, &s.SlabTitle,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, rows.Err()
}

func (r *PostgresRateSlabRepo) ListActiveByParty(partyID int64) ([]*models.PartyRateSlab, error) {
	rows, err := r.DB.Query(
		`SELECT `+rateSlabColumns+` FROM party_rate_slabs WHERE party_id=$1 AND is_active`, partyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.PartyRateSlab
	for rows.Next() {
		slab, err := scanRateSlab(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, slab)
	}
	return result, rows.Err()
}

// ------------------------ Audit ------------------------

func (r *PostgresRateSlabRepo) AuditLog(rateSlabID int64) ([]*models.PartyRateSlabAudit, error) {
	rows, err := r.DB.Query(`
		SELECT id, party_rate_slab_id, action, before_data, after_data, changed_by, changed_at
		FROM party_rate_slab_audit
		WHERE party_rate_slab_id=$1
		ORDER BY changed_at DESC, id DESC
	`, rateSlabID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.PartyRateSlabAudit
	for rows.Next() {
		var a models.PartyRateSlabAudit
		var before, after []byte
		if err := rows.Scan(&a.ID, &a.PartyRateSlabID, &a.Action, &before, &after, &a.ChangedBy, &a.ChangedAt); err != nil {
			return nil, err
		}
		a.BeforeData = before
		a.AfterData = after
		result = append(result, &a)
	}
	return result, rows.Err()
}
