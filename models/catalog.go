package models

// CatalogItem is one row of a master catalog (mode, service type,
// distance slab or weight slab). Immutable reference data.
type CatalogItem struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

// MasterCatalogs groups the four catalogs the rate-slab engine keys on.
type MasterCatalogs struct {
	Modes         []CatalogItem `json:"modes"`
	ServiceTypes  []CatalogItem `json:"service_types"`
	DistanceSlabs []CatalogItem `json:"distance_slabs"`
	WeightSlabs   []CatalogItem `json:"weight_slabs"`
}

type Region struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Carrier struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
