// Package mocks provides mock implementations for testing the prospecting services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockAssetRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(asset, nil)
package mocks

// Generate mock for AssetRepository interface from internal/core package.
// This creates MockAssetRepository with methods for all AssetRepository interface methods:
// Create, GetByID, List, ListInBounds, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=asset_repository_mock.go github.com/landsight/prospect-api/internal/core AssetRepository

// Generate mock for SubmarketRepository interface from internal/core package.
// This creates MockSubmarketRepository with methods for all SubmarketRepository interface methods:
// Create, GetByName, List, ListNames, NearestTo
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=submarket_repository_mock.go github.com/landsight/prospect-api/internal/core SubmarketRepository

// Generate mock for DemoResetRepository interface from internal/core package.
// This creates MockDemoResetRepository with methods for all DemoResetRepository interface methods:
// Reset
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=demo_reset_repository_mock.go github.com/landsight/prospect-api/internal/core DemoResetRepository

// Generate mock for MapPrefsStore interface from internal/core package.
// This creates MockMapPrefsStore with methods for all MapPrefsStore interface methods:
// Get, Save
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=map_prefs_store_mock.go github.com/landsight/prospect-api/internal/core MapPrefsStore
