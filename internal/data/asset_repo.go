package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/landsight/prospect-api/internal/data/pgxutil"
	"github.com/landsight/prospect-api/internal/domain/model"
	apperrors "github.com/landsight/prospect-api/internal/errors"
)

// AssetRepo provides database operations for prospect assets.
// Locations are stored as PostGIS points in SRID 4326; the API surface
// exposes flat lat/lng derived with ST_Y/ST_X.
type AssetRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAssetRepo creates a new AssetRepo with real time provider.
func NewAssetRepo(db *sql.DB) *AssetRepo {
	return &AssetRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewAssetRepoWithTimeProvider creates a new AssetRepo with a custom time provider (useful for tests).
func NewAssetRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *AssetRepo {
	return &AssetRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries (no dynamic WHERE).
// Spatial expressions keep these out of the generic query builder.
const (
	assetSelectColumns = `
		a.id, a.title,
		ST_Y(a.location) AS lat,
		ST_X(a.location) AS lng,
		s.name AS submarket,
		a.phone, a.marker_options, a.demo, a.created_at, a.updated_at`

	assetGetByIDQuery = `
		SELECT ` + assetSelectColumns + `
		FROM assets a
		LEFT JOIN submarkets s ON s.id = a.submarket_id
		WHERE a.id = $1`

	assetInsertQuery = `
		INSERT INTO assets (title, location, submarket_id, phone, marker_options, demo, created_at)
		VALUES (
			$1,
			ST_SetSRID(ST_MakePoint($2, $3), 4326),
			(SELECT id FROM submarkets WHERE lower(name) = lower($4)),
			$5, $6, $7, $8
		)
		RETURNING id`
)

// Create inserts a new asset. The submarket is resolved by name
// (case-insensitive); an unknown name leaves the asset unassigned.
func (r *AssetRepo) Create(ctx context.Context, req *model.CreateAssetRequest) (*model.Asset, error) {
	if req == nil {
		return nil, errors.New("create asset request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var title *string
	if req.Title != nil {
		if t := strings.TrimSpace(*req.Title); t != "" {
			title = &t
		}
	}
	var submarket string
	if req.Submarket != nil {
		submarket = strings.TrimSpace(*req.Submarket)
	}

	createdAt := r.timeProvider.Now().UTC()
	var out model.Asset
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var id string
		// ST_MakePoint takes lon/lat ordering.
		if err := conn.QueryRow(ctx, assetInsertQuery,
			title,
			req.Lng,
			req.Lat,
			submarket,
			req.Phone,
			req.MarkerOptions,
			req.Demo,
			createdAt,
		).Scan(&id); err != nil {
			return err
		}

		rows, err := conn.Query(ctx, assetGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Asset])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// GetByID retrieves an asset by ID.
func (r *AssetRepo) GetByID(ctx context.Context, id string) (*model.Asset, error) {
	var asset model.Asset
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, assetGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		asset, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Asset])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset by ID: %w", apperrors.MapDBError(err))
	}
	return &asset, nil
}

// List retrieves assets with optional filters and pagination.
func (r *AssetRepo) List(ctx context.Context, opts model.AssetsListOptions) ([]*model.Asset, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 200
	}
	offset := max(opts.Offset, 0)

	query, args := buildAssetListQuery(opts, limit, offset)

	var rowsOut []model.Asset
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Asset])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Asset, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// buildAssetListQuery assembles the list query. Filters are appended in a
// fixed order so placeholder numbering stays predictable.
func buildAssetListQuery(opts model.AssetsListOptions, limit, offset int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + assetSelectColumns + `
		FROM assets a
		LEFT JOIN submarkets s ON s.id = a.submarket_id`)

	var conds []string
	var args []any
	next := func() int { return len(args) + 1 }

	if opts.Bounds != nil {
		b := *opts.Bounds
		conds = append(conds, fmt.Sprintf(
			"a.location && ST_MakeEnvelope($%d, $%d, $%d, $%d, 4326)",
			next(), next()+1, next()+2, next()+3,
		))
		args = append(args, b.West, b.South, b.East, b.North)
	}
	if opts.Submarket != nil && strings.TrimSpace(*opts.Submarket) != "" {
		conds = append(conds, fmt.Sprintf("lower(s.name) = lower($%d)", next()))
		args = append(args, strings.TrimSpace(*opts.Submarket))
	}
	if opts.DemoOnly {
		conds = append(conds, "a.demo = true")
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	sb.WriteString(fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", next(), next()+1))
	args = append(args, limit, offset)

	return sb.String(), args
}

// ListInBounds retrieves all assets whose location intersects the envelope.
func (r *AssetRepo) ListInBounds(ctx context.Context, bounds model.BoundingBox) ([]*model.Asset, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return r.List(ctx, model.AssetsListOptions{Bounds: &bounds})
}

// Delete deletes an asset by ID. It reports whether a row was removed.
func (r *AssetRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete asset: %w", apperrors.MapDBError(err))
	}
	return rows > 0, nil
}
