package service

import (
	"context"

	"github.com/landsight/prospect-api/internal/core"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// SubmarketServiceOptions groups dependencies for SubmarketService.
type SubmarketServiceOptions struct {
	SubmarketRepo core.SubmarketRepository
}

// SubmarketService exposes submarket lookups for the map UI.
type SubmarketService struct {
	submarkets core.SubmarketRepository
}

// NewSubmarketService constructs a new SubmarketService.
func NewSubmarketService(opts SubmarketServiceOptions) *SubmarketService {
	return &SubmarketService{submarkets: opts.SubmarketRepo}
}

// Create creates a submarket by name.
func (s *SubmarketService) Create(ctx context.Context, name string, demo bool) (*model.Submarket, error) {
	return s.submarkets.Create(ctx, name, demo)
}

// GetByName retrieves a submarket by name, case-insensitively.
func (s *SubmarketService) GetByName(ctx context.Context, name string) (*model.Submarket, error) {
	return s.submarkets.GetByName(ctx, name)
}

// List returns all submarkets ordered by name.
func (s *SubmarketService) List(ctx context.Context) ([]*model.Submarket, error) {
	return s.submarkets.List(ctx)
}

// Names returns deduplicated submarket names for autocomplete dropdowns.
func (s *SubmarketService) Names(ctx context.Context) ([]string, error) {
	return s.submarkets.ListNames(ctx)
}

// NearestTo returns submarkets near a point, nearest first.
func (s *SubmarketService) NearestTo(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]*model.Submarket, error) {
	return s.submarkets.NearestTo(ctx, lat, lng, radiusMeters, limit)
}
