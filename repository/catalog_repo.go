package repository

import "courierbilling/models"

// Catalog kinds accepted by the catalog endpoints.
const (
	CatalogModes         = "modes"
	CatalogServiceTypes  = "service-types"
	CatalogDistanceSlabs = "distance-slabs"
	CatalogWeightSlabs   = "weight-slabs"
)

type CatalogRepository interface {
	GetMasterCatalogs() (*models.MasterCatalogs, error)
	CreateItem(kind, title string) (*models.CatalogItem, error)
	UpdateItem(kind string, id int64, title string) error
}
