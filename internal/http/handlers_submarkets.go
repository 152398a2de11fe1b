package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/landsight/prospect-api/internal/data"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// SubmarketsService defines the service surface the submarket handlers need.
type SubmarketsService interface {
	Create(ctx context.Context, name string, demo bool) (*model.Submarket, error)
	GetByName(ctx context.Context, name string) (*model.Submarket, error)
	List(ctx context.Context) ([]*model.Submarket, error)
	Names(ctx context.Context) ([]string, error)
	NearestTo(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]*model.Submarket, error)
}

// SubmarketHandlers provides HTTP handlers for submarket lookups.
type SubmarketHandlers struct {
	Svc SubmarketsService
}

// Create handles POST /api/submarkets.
func (h *SubmarketHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Demo bool   `json:"demo"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	sub, err := h.Svc.Create(r.Context(), req.Name, req.Demo)
	if err != nil {
		writeSubmarketError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, sub)
}

// GetByName handles GET /api/submarkets/{name}. Lookup is case-insensitive.
func (h *SubmarketHandlers) GetByName(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Svc.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		writeSubmarketError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, sub)
}

// List handles GET /api/submarkets.
func (h *SubmarketHandlers) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Svc.List(r.Context())
	if err != nil {
		writeSubmarketError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"submarkets": subs})
}

// Names handles GET /api/submarkets/names. The list is deduplicated
// case-insensitively for the dropdown filter.
func (h *SubmarketHandlers) Names(w http.ResponseWriter, r *http.Request) {
	names, err := h.Svc.Names(r.Context())
	if err != nil {
		writeSubmarketError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"names": names})
}

// Nearest handles GET /api/submarkets/nearest?lat=&lng=&radius=&limit=.
// radius is in meters and defaults to 10km.
func (h *SubmarketHandlers) Nearest(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_coordinates",
			Err:     errors.New("lat and lng query parameters are required"),
		})
		return
	}

	const defaultRadiusMeters = 10_000
	radius := defaultRadiusMeters
	if v := parseIntQuery(r, "radius", defaultRadiusMeters); v > 0 {
		radius = v
	}
	limit, _ := ParseLimitOffset(r, 10, 100)

	subs, err := h.Svc.NearestTo(r.Context(), lat, lng, float64(radius), limit)
	if err != nil {
		writeSubmarketError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"submarkets": subs})
}

// writeSubmarketError maps submarket service errors to HTTP responses.
func writeSubmarketError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, data.ErrSubmarketNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case errors.Is(err, data.ErrSubmarketNameExists):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_exists", Err: err})
	case isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_error", Err: err})
	default:
		if p, ok := appErrorParams(err); ok {
			WriteError(w, p)
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}
