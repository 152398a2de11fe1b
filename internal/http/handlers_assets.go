package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/landsight/prospect-api/internal/data"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// AssetsService defines the service surface the asset handlers need.
type AssetsService interface {
	Create(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error)
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AssetHandlers provides HTTP handlers for prospect asset operations.
type AssetHandlers struct {
	Svc AssetsService
}

// Create handles POST /api/assets.
func (h *AssetHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAssetRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	asset, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeAssetError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, asset)
}

// GetByID handles GET /api/assets/{id}.
func (h *AssetHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAssetError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, asset)
}

// List handles GET /api/assets with optional bbox, submarket, demo, limit,
// and offset query parameters. bbox is "west,south,east,north" in degrees.
func (h *AssetHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 200, 1000)
	opts := model.AssetsListOptions{
		Limit:    limit,
		Offset:   offset,
		DemoOnly: r.URL.Query().Get("demo") == "true",
	}

	if sm := strings.TrimSpace(r.URL.Query().Get("submarket")); sm != "" {
		opts.Submarket = &sm
	}

	if raw := r.URL.Query().Get("bbox"); raw != "" {
		bounds, err := parseBBox(raw)
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_bbox", Err: err})
			return
		}
		opts.Bounds = bounds
	}

	assets, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		writeAssetError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"assets": assets})
}

// Delete handles DELETE /api/assets/{id}.
func (h *AssetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeAssetError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("asset not found"),
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseBBox parses "west,south,east,north" into a validated envelope.
func parseBBox(raw string) (*model.BoundingBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.New("bbox must be west,south,east,north")
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New("bbox must contain four numbers")
		}
		vals[i] = v
	}

	bounds := model.BoundingBox{West: vals[0], South: vals[1], East: vals[2], North: vals[3]}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &bounds, nil
}

// writeAssetError maps asset service errors to HTTP responses.
func writeAssetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, data.ErrAssetNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
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
