package httpx

import (
	"context"
	"net/http"

	"github.com/landsight/prospect-api/internal/domain/model"
	"github.com/landsight/prospect-api/internal/service"
)

// MapViewService defines the service surface the map view handler needs.
type MapViewService interface {
	Load(ctx context.Context, bounds model.BoundingBox) (*service.MapView, error)
}

// MapViewHandlers provides the combined initial-load payload for the map page.
type MapViewHandlers struct {
	Svc MapViewService
}

// Load handles GET /api/map/view?bbox=west,south,east,north.
func (h *MapViewHandlers) Load(w http.ResponseWriter, r *http.Request) {
	bounds, err := parseBBox(r.URL.Query().Get("bbox"))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_bbox", Err: err})
		return
	}

	view, err := h.Svc.Load(r.Context(), *bounds)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "map_view_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, view)
}
