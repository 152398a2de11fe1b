package data

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/landsight/prospect-api/internal/data/pgxutil"
	"github.com/landsight/prospect-api/internal/domain/model"
)

// DemoRepo restores the demo dataset in a single transaction: wipe all
// demo-flagged rows, then reload the seed. Non-demo rows are never touched.
type DemoRepo struct {
	DB *sql.DB
}

// NewDemoRepo creates a new DemoRepo.
func NewDemoRepo(db *sql.DB) *DemoRepo {
	return &DemoRepo{DB: db}
}

// Reset wipes demo rows and reinserts the given seed data atomically.
// Seed assets are demo-flagged regardless of what the request says.
func (r *DemoRepo) Reset(ctx context.Context, submarkets []string, assets []*model.CreateAssetRequest) error {
	return pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM assets WHERE demo = true`); err != nil {
			return fmt.Errorf("wipe demo assets: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM submarkets WHERE demo = true`); err != nil {
			return fmt.Errorf("wipe demo submarkets: %w", err)
		}

		for _, name := range model.UniqueSubmarketNames(submarkets) {
			// A non-demo submarket with the same name keeps priority;
			// the demo row is simply skipped.
			if _, err := tx.Exec(ctx, `
				INSERT INTO submarkets (name, demo)
				VALUES ($1, true)
				ON CONFLICT (name) DO NOTHING`, name); err != nil {
				return fmt.Errorf("seed submarket %q: %w", name, err)
			}
		}

		for _, req := range assets {
			if req == nil {
				continue
			}
			if err := req.Validate(); err != nil {
				return fmt.Errorf("seed asset: %w", err)
			}
			var submarket string
			if req.Submarket != nil {
				submarket = strings.TrimSpace(*req.Submarket)
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO assets (title, location, submarket_id, phone, marker_options, demo)
				VALUES (
					$1,
					ST_SetSRID(ST_MakePoint($2, $3), 4326),
					(SELECT id FROM submarkets WHERE lower(name) = lower($4)),
					$5, $6, true
				)`,
				req.Title, req.Lng, req.Lat, submarket, req.Phone, req.MarkerOptions,
			); err != nil {
				return fmt.Errorf("seed asset: %w", err)
			}
		}
		return nil
	})
}
