package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrSubmarketNotFound is returned when a submarket is not found.
	ErrSubmarketNotFound = errors.New("submarket not found")
	// ErrSubmarketNameExists is returned on a duplicate submarket name.
	ErrSubmarketNameExists = errors.New("submarket name already exists")
)
