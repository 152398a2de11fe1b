package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/landsight/prospect-api/internal/core"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// MapViewServiceOptions groups dependencies for MapViewService.
type MapViewServiceOptions struct {
	AssetRepo     core.AssetRepository
	SubmarketRepo core.SubmarketRepository
}

// MapViewService assembles everything the map page needs in one call:
// assets inside the viewport plus the submarket dropdown contents.
type MapViewService struct {
	assets     core.AssetRepository
	submarkets core.SubmarketRepository
}

// NewMapViewService constructs a new MapViewService.
func NewMapViewService(opts MapViewServiceOptions) *MapViewService {
	return &MapViewService{assets: opts.AssetRepo, submarkets: opts.SubmarketRepo}
}

// MapView is the payload for the initial map page load.
type MapView struct {
	Assets         []*model.Asset `json:"assets"`
	SubmarketNames []string       `json:"submarket_names"`
}

// Load fetches viewport assets and submarket names concurrently.
func (s *MapViewService) Load(ctx context.Context, bounds model.BoundingBox) (*MapView, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	var view MapView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		assets, err := s.assets.ListInBounds(gctx, bounds)
		if err != nil {
			return err
		}
		view.Assets = assets
		return nil
	})
	g.Go(func() error {
		names, err := s.submarkets.ListNames(gctx)
		if err != nil {
			return err
		}
		view.SubmarketNames = names
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}
