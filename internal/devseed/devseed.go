// Package devseed holds the canonical demo dataset: a handful of Dallas
// submarkets and prospect assets used by demo mode and local development.
// Demo reset wipes demo-flagged rows and reloads exactly this data.
package devseed

import (
	"context"
	"log/slog"

	"github.com/landsight/prospect-api/internal/domain/model"
)

// Resetter restores the demo dataset. The concrete implementation lives in
// the service layer.
type Resetter interface {
	Reset(ctx context.Context) error
}

// SubmarketNames returns the demo submarket names, in seed order.
func SubmarketNames() []string {
	return []string{
		"Uptown",
		"Downtown",
		"Deep Ellum",
		"Design District",
		"Preston Center",
	}
}

// Assets returns the demo prospect assets. Every asset is demo-flagged so a
// reset can find and remove it.
func Assets() []*model.CreateAssetRequest {
	return []*model.CreateAssetRequest{
		{
			Title:     strPtr("Victory Plaza"),
			Lat:       32.788060,
			Lng:       -96.810110,
			Submarket: strPtr("Uptown"),
			Phone:     strPtr("2145550142"),
			MarkerOptions: map[string]any{
				"label": "A",
			},
			Demo: true,
		},
		{
			Title:     strPtr("Main Street Tower"),
			Lat:       32.781070,
			Lng:       -96.797430,
			Submarket: strPtr("Downtown"),
			Phone:     strPtr("2145550177"),
			Demo:      true,
		},
		{
			Title:     strPtr("Elm & Good Warehouse"),
			Lat:       32.784600,
			Lng:       -96.778500,
			Submarket: strPtr("Deep Ellum"),
			Demo:      true,
		},
		{
			Title:     strPtr("Trinity Showroom"),
			Lat:       32.793400,
			Lng:       -96.823900,
			Submarket: strPtr("Design District"),
			Phone:     strPtr("4695550155"),
			Demo:      true,
		},
		{
			// Untitled asset exercises the info window's default heading.
			Lat:       32.866000,
			Lng:       -96.806000,
			Submarket: strPtr("Preston Center"),
			Demo:      true,
		},
	}
}

// Run loads the demo dataset at startup. It delegates to the demo resetter,
// which is idempotent, so repeated dev boots are safe.
func Run(ctx context.Context, r Resetter, logger *slog.Logger) error {
	if logger != nil {
		logger.InfoContext(ctx, "seeding demo dataset",
			"submarkets", len(SubmarketNames()),
			"assets", len(Assets()))
	}
	return r.Reset(ctx)
}

func strPtr(s string) *string { return &s }
