package service

import (
	"context"
	"strings"

	"github.com/landsight/prospect-api/internal/core"
	"github.com/landsight/prospect-api/internal/domain/model"
	"github.com/landsight/prospect-api/internal/util"
)

// AssetServiceOptions groups dependencies for AssetService.
type AssetServiceOptions struct {
	AssetRepo core.AssetRepository
}

// AssetService orchestrates prospect asset CRUD.
type AssetService struct {
	assets core.AssetRepository
}

// NewAssetService constructs a new AssetService.
func NewAssetService(opts AssetServiceOptions) *AssetService {
	return &AssetService{assets: opts.AssetRepo}
}

// Create creates an asset. The contact phone is normalized to US display
// format before it is stored, so every read path renders it the same way.
func (s *AssetService) Create(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error) {
	if req != nil && req.Phone != nil {
		formatted := util.FormatUSPhone(*req.Phone)
		if formatted == "" {
			req.Phone = nil
		} else {
			req.Phone = &formatted
		}
	}
	return s.assets.Create(ctx, req)
}

// GetByID retrieves an asset by ID.
func (s *AssetService) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	return s.assets.GetByID(ctx, id)
}

// List returns assets using the given filters.
func (s *AssetService) List(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error) {
	return s.assets.List(ctx, normalizeAssetListOptions(opts))
}

// ListInBounds returns assets inside the envelope.
func (s *AssetService) ListInBounds(ctx context.Context, bounds model.BoundingBox) ([]*model.Asset, error) {
	return s.assets.ListInBounds(ctx, bounds)
}

// Delete deletes an asset by ID.
func (s *AssetService) Delete(ctx context.Context, id string) (bool, error) {
	return s.assets.Delete(ctx, id)
}

func normalizeAssetListOptions(opts model.AssetsListOptions) model.AssetsListOptions {
	if opts.Limit <= 0 {
		opts.Limit = 200
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Submarket != nil && strings.TrimSpace(*opts.Submarket) == "" {
		opts.Submarket = nil
	}
	return opts
}
