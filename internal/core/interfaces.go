package core

import (
	"context"

	"github.com/landsight/prospect-api/internal/domain/maptool"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// AssetRepository defines the interface for prospect asset data operations.
type AssetRepository interface {
	Create(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error)
	GetByID(ctx context.Context, id string) (*model.Asset, error)
	List(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error)
	ListInBounds(ctx context.Context, bounds model.BoundingBox) ([]*model.Asset, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SubmarketRepository defines the interface for submarket data operations.
type SubmarketRepository interface {
	Create(ctx context.Context, name string, demo bool) (*model.Submarket, error)
	GetByName(ctx context.Context, name string) (*model.Submarket, error)
	List(ctx context.Context) ([]*model.Submarket, error)
	ListNames(ctx context.Context) ([]string, error)
	NearestTo(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]*model.Submarket, error)
}

// DemoResetRepository restores the demo dataset atomically.
type DemoResetRepository interface {
	Reset(ctx context.Context, submarkets []string, assets []*model.CreateAssetRequest) error
}

// MapPrefsStore persists per-user map toolbar preferences.
type MapPrefsStore interface {
	Get(ctx context.Context, userID string) (maptool.Preferences, error)
	Save(ctx context.Context, userID string, prefs maptool.Preferences) error
}
