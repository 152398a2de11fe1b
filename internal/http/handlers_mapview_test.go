package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/prospect-api/internal/domain/model"
	"github.com/landsight/prospect-api/internal/service"
)

// mockMapViewService is a test double for the map view service.
type mockMapViewService struct {
	loadFunc func(ctx context.Context, bounds model.BoundingBox) (*service.MapView, error)
}

func (m *mockMapViewService) Load(ctx context.Context, bounds model.BoundingBox) (*service.MapView, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, bounds)
	}
	return &service.MapView{Assets: []*model.Asset{}, SubmarketNames: []string{}}, nil
}

func TestMapViewHandlers_Load(t *testing.T) {
	var gotBounds model.BoundingBox
	h := &MapViewHandlers{Svc: &mockMapViewService{
		loadFunc: func(_ context.Context, bounds model.BoundingBox) (*service.MapView, error) {
			gotBounds = bounds
			return &service.MapView{
				Assets:         []*model.Asset{{ID: "asset-1", Lat: 32.78, Lng: -96.80}},
				SubmarketNames: []string{"Uptown"},
			}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/map/view?bbox=-97,32,-96,33", nil)
	w := httptest.NewRecorder()
	h.Load(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, -97.0, gotBounds.West, 1e-9)
	assert.InDelta(t, 33.0, gotBounds.North, 1e-9)
	assert.Contains(t, w.Body.String(), `"submarket_names":["Uptown"]`)
}

func TestMapViewHandlers_Load_RequiresBBox(t *testing.T) {
	h := &MapViewHandlers{Svc: &mockMapViewService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/map/view", nil)
	w := httptest.NewRecorder()
	h.Load(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_bbox")
}
