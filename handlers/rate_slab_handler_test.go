package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbilling/models"
	"courierbilling/repository"
)

type mockRateSlabRepo struct {
	upserted  *models.PartyRateSlab
	changedBy string
	deletedID int64

	upsertErr error
	deleteErr error

	listRows  []*models.PartyRateSlab
	auditRows []*models.PartyRateSlabAudit
}

func (m *mockRateSlabRepo) Upsert(slab *models.PartyRateSlab, changedBy string) (*models.PartyRateSlab, error) {
	if m.upsertErr != nil {
		return nil, m.upsertErr
	}
	m.upserted = slab
	m.changedBy = changedBy
	persisted := *slab
	if persisted.ID == 0 {
		persisted.ID = 101
	}
	return &persisted, nil
}

func (m *mockRateSlabRepo) SoftDelete(id int64, changedBy string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedID = id
	m.changedBy = changedBy
	return nil
}

func (m *mockRateSlabRepo) ListByParty(partyID int64) ([]*models.PartyRateSlab, error) {
	return m.listRows, nil
}

func (m *mockRateSlabRepo) ListActiveByParty(partyID int64) ([]*models.PartyRateSlab, error) {
	return m.listRows, nil
}

func (m *mockRateSlabRepo) AuditLog(rateSlabID int64) ([]*models.PartyRateSlabAudit, error) {
	return m.auditRows, nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestUpsertRateSlab(t *testing.T) {
	repo := &mockRateSlabRepo{}
	h := &RateSlabHandler{Repo: repo}

	body := `{
		"party_id": 3,
		"shipment_type": "DOCUMENT",
		"mode_id": 1,
		"service_type_id": 2,
		"distance_slab_id": 4,
		"slab_id": 5,
		"rate": "45.50",
		"fuel_pct": "10"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/party-rate-slabs", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(3), repo.upserted.PartyID)
	assert.Equal(t, models.ShipmentDocument, repo.upserted.ShipmentType)
	assert.Equal(t, "45.5", repo.upserted.Rate.String())
	assert.True(t, repo.upserted.IsActive, "is_active defaults to true when omitted")
}

func TestUpsertRateSlabValidationNamesFields(t *testing.T) {
	h := &RateSlabHandler{Repo: &mockRateSlabRepo{}}

	body := `{"party_id": 3, "shipment_type": "PARCEL", "mode_id": 1, "service_type_id": 2, "distance_slab_id": 4}`
	req := httptest.NewRequest(http.MethodPost, "/api/party-rate-slabs", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "shipment_type")
	assert.Contains(t, resp.Message, "slab_id")
	assert.Contains(t, resp.Message, "rate")
}

func TestValidationMessageUsesWireFieldNames(t *testing.T) {
	// Fields with consecutive capitals must still report their json name.
	var req struct {
		GSTPct *decimal.Decimal `json:"gst_pct" validate:"required"`
	}
	err := validate.Struct(req)
	require.Error(t, err)
	assert.Contains(t, validationMessage(err), "gst_pct")
}

func TestUpsertRateSlabBadJSON(t *testing.T) {
	h := &RateSlabHandler{Repo: &mockRateSlabRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/api/party-rate-slabs", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertRateSlabExplicitInactive(t *testing.T) {
	repo := &mockRateSlabRepo{}
	h := &RateSlabHandler{Repo: repo}

	body := `{
		"party_id": 3,
		"shipment_type": "NON_DOCUMENT",
		"mode_id": 1,
		"service_type_id": 2,
		"distance_slab_id": 4,
		"slab_id": 5,
		"rate": "10",
		"is_active": false
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/party-rate-slabs", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.Upsert(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.upserted)
	assert.False(t, repo.upserted.IsActive)
}

func TestDeleteRateSlab(t *testing.T) {
	repo := &mockRateSlabRepo{}
	h := &RateSlabHandler{Repo: repo}

	r := chi.NewRouter()
	r.Delete("/api/party-rate-slabs/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/party-rate-slabs/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), repo.deletedID)
}

func TestDeleteRateSlabNotFound(t *testing.T) {
	repo := &mockRateSlabRepo{deleteErr: repository.ErrNotFound}
	h := &RateSlabHandler{Repo: repo}

	r := chi.NewRouter()
	r.Delete("/api/party-rate-slabs/{id}", h.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/party-rate-slabs/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestListRateSlabsRequiresPartyID(t *testing.T) {
	h := &RateSlabHandler{Repo: &mockRateSlabRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/api/party-rate-slabs", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRateSlabsEmptyIsArray(t *testing.T) {
	h := &RateSlabHandler{Repo: &mockRateSlabRepo{}}

	req := httptest.NewRequest(http.MethodGet, "/api/party-rate-slabs?party_id=3", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
