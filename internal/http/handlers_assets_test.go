package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landsight/prospect-api/internal/data"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// mockAssetsService is a test double for the asset service.
type mockAssetsService struct {
	createFunc func(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error)
	getFunc    func(ctx context.Context, id string) (*model.Asset, error)
	listFunc   func(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error)
	deleteFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockAssetsService) Create(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &model.Asset{ID: "asset-1", Lat: req.Lat, Lng: req.Lng, Title: req.Title}, nil
}

func (m *mockAssetsService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &model.Asset{ID: id, Lat: 32.78, Lng: -96.80}, nil
}

func (m *mockAssetsService) List(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return []*model.Asset{}, nil
}

func (m *mockAssetsService) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return true, nil
}

func pathRequest(method, path string, body string) *http.Request {
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	// Emulate mux wildcard extraction for handlers invoked directly.
	if i := strings.LastIndex(path, "/"); i >= 0 && i < len(path)-1 {
		req.SetPathValue("id", path[i+1:])
	}
	return req
}

func TestAssetHandlers_Create(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{}}

	body := `{"title":"Uptown Tower","lat":32.7995,"lng":-96.8005}`
	req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Uptown Tower"`)
}

func TestAssetHandlers_Create_ValidationError(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{
		createFunc: func(context.Context, *model.CreateAssetRequest) (*model.Asset, error) {
			return nil, errors.New("lat must be between -90 and 90")
		},
	}}

	body := `{"lat":123.0,"lng":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssetHandlers_Create_MalformedJSON(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{}}

	req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_json")
}

func TestAssetHandlers_GetByID_NotFound(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{
		getFunc: func(context.Context, string) (*model.Asset, error) {
			return nil, data.ErrAssetNotFound
		},
	}}

	req := pathRequest(http.MethodGet, "/api/assets/missing", "")
	w := httptest.NewRecorder()
	h.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssetHandlers_List_ParsesBBox(t *testing.T) {
	var got model.AssetsListOptions
	h := &AssetHandlers{Svc: &mockAssetsService{
		listFunc: func(_ context.Context, opts model.AssetsListOptions) ([]*model.Asset, error) {
			got = opts
			return []*model.Asset{}, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/assets?bbox=-97,32,-96,33&submarket=Uptown&demo=true&limit=5", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Bounds)
	assert.InDelta(t, -97.0, got.Bounds.West, 1e-9)
	assert.InDelta(t, 33.0, got.Bounds.North, 1e-9)
	require.NotNil(t, got.Submarket)
	assert.Equal(t, "Uptown", *got.Submarket)
	assert.True(t, got.DemoOnly)
	assert.Equal(t, 5, got.Limit)
}

func TestAssetHandlers_List_RejectsBadBBox(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{}}

	for _, bbox := range []string{"1,2,3", "a,b,c,d", "-96,32,-97,33"} {
		req := httptest.NewRequest(http.MethodGet, "/api/assets?bbox="+bbox, nil)
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equalf(t, http.StatusBadRequest, w.Code, "bbox %q", bbox)
	}
}

func TestAssetHandlers_Delete(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{}}

	req := pathRequest(http.MethodDelete, "/api/assets/asset-1", "")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAssetHandlers_Delete_AlreadyGone(t *testing.T) {
	h := &AssetHandlers{Svc: &mockAssetsService{
		deleteFunc: func(context.Context, string) (bool, error) { return false, nil },
	}}

	req := pathRequest(http.MethodDelete, "/api/assets/asset-1", "")
	w := httptest.NewRecorder()
	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
