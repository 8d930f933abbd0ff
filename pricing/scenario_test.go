package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbilling/models"
)

func testCatalogs() *models.MasterCatalogs {
	return &models.MasterCatalogs{
		Modes: []models.CatalogItem{
			{ID: 1, Title: "Air"},
			{ID: 2, Title: "Surface"},
		},
		ServiceTypes: []models.CatalogItem{
			{ID: 10, Title: "Express"},
			{ID: 11, Title: "Standard"},
			{ID: 12, Title: "Economy"},
		},
		DistanceSlabs: []models.CatalogItem{
			{ID: 20, Title: "0-500 km"},
			{ID: 21, Title: "500+ km"},
		},
		WeightSlabs: []models.CatalogItem{
			{ID: 30, Title: "Up to 250 gm"},
			{ID: 31, Title: "Up to 1 kg"},
		},
	}
}

func TestGenerateScenariosTotalCount(t *testing.T) {
	scenarios := GenerateScenarios(testCatalogs(), nil)

	// 2 shipment types x 2 modes x 3 services x 2 distances x 2 weights
	require.Len(t, scenarios, 48)

	cov := CoverageOf(scenarios)
	assert.Equal(t, 48, cov.Total)
	assert.Equal(t, 0, cov.Active)
	assert.Equal(t, 48, cov.Inactive)
	assert.Equal(t, cov.Total, cov.Active+cov.Inactive)
}

func TestGenerateScenariosIterationOrder(t *testing.T) {
	scenarios := GenerateScenarios(testCatalogs(), nil)

	// shipment_type outermost: first half DOCUMENT, second half NON_DOCUMENT
	assert.Equal(t, models.ShipmentDocument, scenarios[0].ShipmentType)
	assert.Equal(t, models.ShipmentDocument, scenarios[23].ShipmentType)
	assert.Equal(t, models.ShipmentNonDocument, scenarios[24].ShipmentType)

	// weight slab innermost: adjacent entries differ only in slab_id
	assert.Equal(t, int64(30), scenarios[0].SlabID)
	assert.Equal(t, int64(31), scenarios[1].SlabID)
	assert.Equal(t, scenarios[0].DistanceSlabID, scenarios[1].DistanceSlabID)
	assert.Equal(t, scenarios[0].ModeID, scenarios[1].ModeID)
}

func TestGenerateScenariosAttachesExisting(t *testing.T) {
	priced := &models.PartyRateSlab{
		ID:             100,
		PartyID:        1,
		ShipmentType:   models.ShipmentDocument,
		ModeID:         1,
		ServiceTypeID:  10,
		DistanceSlabID: 20,
		SlabID:         31,
		Rate:           decimal.NewFromInt(45),
		IsActive:       true,
	}

	scenarios := GenerateScenarios(testCatalogs(), []*models.PartyRateSlab{priced})

	cov := CoverageOf(scenarios)
	assert.Equal(t, 1, cov.Active)
	assert.Equal(t, 47, cov.Inactive)

	var matched *Scenario
	for i := range scenarios {
		if scenarios[i].Existing != nil {
			matched = &scenarios[i]
			break
		}
	}
	require.NotNil(t, matched)
	assert.Equal(t, priced.ID, matched.Existing.ID)
	assert.Equal(t, priced.Key(), models.RateSlabKey{
		ShipmentType:   matched.ShipmentType,
		ModeID:         matched.ModeID,
		ServiceTypeID:  matched.ServiceTypeID,
		DistanceSlabID: matched.DistanceSlabID,
		SlabID:         matched.SlabID,
	})
}

func TestGenerateScenariosIgnoresSoftDeletedRows(t *testing.T) {
	deleted := &models.PartyRateSlab{
		ID:             100,
		PartyID:        1,
		ShipmentType:   models.ShipmentDocument,
		ModeID:         1,
		ServiceTypeID:  10,
		DistanceSlabID: 20,
		SlabID:         30,
		IsActive:       false,
	}

	scenarios := GenerateScenarios(testCatalogs(), []*models.PartyRateSlab{deleted})
	assert.Equal(t, 0, CoverageOf(scenarios).Active)
}

func TestPrefillFromScenario(t *testing.T) {
	t.Run("unpriced scenario", func(t *testing.T) {
		sc := Scenario{
			ShipmentType:   models.ShipmentNonDocument,
			ModeID:         2,
			ServiceTypeID:  11,
			DistanceSlabID: 21,
			SlabID:         31,
		}
		prefill := PrefillFromScenario(7, sc)
		assert.Zero(t, prefill.ID)
		assert.Equal(t, int64(7), prefill.PartyID)
		assert.Equal(t, models.ShipmentNonDocument, prefill.ShipmentType)
		assert.Equal(t, int64(31), prefill.SlabID)
		assert.True(t, prefill.IsActive)
	})

	t.Run("priced scenario carries existing values", func(t *testing.T) {
		existing := &models.PartyRateSlab{
			ID:      42,
			PartyID: 7,
			Rate:    decimal.NewFromInt(30),
		}
		prefill := PrefillFromScenario(7, Scenario{Existing: existing})
		assert.Equal(t, int64(42), prefill.ID)
		assert.True(t, prefill.Rate.Equal(decimal.NewFromInt(30)))
	})
}
