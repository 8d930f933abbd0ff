// Package pricing holds the rate-slab scenario generation and the
// quotation rate lookup. Both are pure computations over data loaded by
// the repositories.
package pricing

import "courierbilling/models"

// Scenario is one element of the catalog cartesian product, paired with
// the active rate slab that prices it, if any. Derived at read time,
// never persisted.
type Scenario struct {
	ShipmentType   string                `json:"shipment_type"`
	ModeID         int64                 `json:"mode_id"`
	ServiceTypeID  int64                 `json:"service_type_id"`
	DistanceSlabID int64                 `json:"distance_slab_id"`
	SlabID         int64                 `json:"slab_id"`
	Existing       *models.PartyRateSlab `json:"existing,omitempty"`
}

type Coverage struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// GenerateScenarios computes the full scenario list for a party:
// shipment_type outermost, weight slab innermost, one entry per
// combination. Soft-deleted rows never match. The product is not filtered
// by shipment-type applicability of a service type; which service types
// are legitimate for DOCUMENT shipments is a product decision the catalog
// does not encode.
func GenerateScenarios(catalogs *models.MasterCatalogs, existing []*models.PartyRateSlab) []Scenario {
	byKey := make(map[models.RateSlabKey]*models.PartyRateSlab, len(existing))
	for _, row := range existing {
		if row.IsActive {
			byKey[row.Key()] = row
		}
	}

	total := len(models.ShipmentTypes) * len(catalogs.Modes) * len(catalogs.ServiceTypes) *
		len(catalogs.DistanceSlabs) * len(catalogs.WeightSlabs)
	scenarios := make([]Scenario, 0, total)

	for _, shipmentType := range models.ShipmentTypes {
		for _, mode := range catalogs.Modes {
			for _, service := range catalogs.ServiceTypes {
				for _, distance := range catalogs.DistanceSlabs {
					for _, weight := range catalogs.WeightSlabs {
						sc := Scenario{
							ShipmentType:   shipmentType,
							ModeID:         mode.ID,
							ServiceTypeID:  service.ID,
							DistanceSlabID: distance.ID,
							SlabID:         weight.ID,
						}
						sc.Existing = byKey[models.RateSlabKey{
							ShipmentType:   shipmentType,
							ModeID:         mode.ID,
							ServiceTypeID:  service.ID,
							DistanceSlabID: distance.ID,
							SlabID:         weight.ID,
						}]
						scenarios = append(scenarios, sc)
					}
				}
			}
		}
	}

	return scenarios
}

// CoverageOf aggregates priced vs unpriced counts over a scenario list.
func CoverageOf(scenarios []Scenario) Coverage {
	cov := Coverage{Total: len(scenarios)}
	for _, sc := range scenarios {
		if sc.Existing != nil {
			cov.Active++
		} else {
			cov.Inactive++
		}
	}
	return cov
}

// PrefillFromScenario maps a scenario onto an upsert skeleton so the
// operator can jump straight into pricing it. Existing values carry over
// on re-pricing.
func PrefillFromScenario(partyID int64, sc Scenario) models.PartyRateSlab {
	if sc.Existing != nil {
		prefill := *sc.Existing
		return prefill
	}
	return models.PartyRateSlab{
		PartyID:        partyID,
		ShipmentType:   sc.ShipmentType,
		ModeID:         sc.ModeID,
		ServiceTypeID:  sc.ServiceTypeID,
		DistanceSlabID: sc.DistanceSlabID,
		SlabID:         sc.SlabID,
		IsActive:       true,
	}
}
