package repository

import (
	"database/sql"
	"fmt"

	"courierbilling/models"
)

type PostgresCatalogRepo struct {
	DB *sql.DB
}

func NewPostgresCatalogRepo(db *sql.DB) *PostgresCatalogRepo {
	return &PostgresCatalogRepo{DB: db}
}

// Whitelist of catalog kind -> table; kinds arrive from the URL so they
// never reach the query text unchecked.
var catalogTables = map[string]string{
	CatalogModes:         "modes",
	CatalogServiceTypes:  "service_types",
	CatalogDistanceSlabs: "distance_slabs",
	CatalogWeightSlabs:   "weight_slabs",
}

func (r *PostgresCatalogRepo) GetMasterCatalogs() (*models.MasterCatalogs, error) {
	catalogs := &models.MasterCatalogs{}

	targets := []struct {
		table string
		dest  *[]models.CatalogItem
	}{
		{"modes", &catalogs.Modes},
		{"service_types", &catalogs.ServiceTypes},
		{"distance_slabs", &catalogs.DistanceSlabs},
		{"weight_slabs", &catalogs.WeightSlabs},
	}

	for _, t := range targets {
		items, err := r.listItems(t.table)
		if err != nil {
			return nil, err
		}
		*t.dest = items
	}
	return catalogs, nil
}

func (r *PostgresCatalogRepo) listItems(table string) ([]models.CatalogItem, error) {
	rows, err := r.DB.Query(fmt.Sprintf(`SELECT id, title FROM %s ORDER BY id`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CatalogItem{}
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.ID, &item.Title); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresCatalogRepo) CreateItem(kind, title string) (*models.CatalogItem, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown catalog kind %q", kind)
	}

	item := &models.CatalogItem{Title: title}
	err := r.DB.QueryRow(
		fmt.Sprintf(`INSERT INTO %s(title) VALUES($1) RETURNING id`, table),
		title,
	).Scan(&item.ID)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *PostgresCatalogRepo) UpdateItem(kind string, id int64, title string) error {
	table, ok := catalogTables[kind]
	if !ok {
		return fmt.Errorf("unknown catalog kind %q", kind)
	}

	res, err := r.DB.Exec(fmt.Sprintf(`UPDATE %s SET title=$1 WHERE id=$2`, table), title, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
