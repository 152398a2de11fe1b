package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/landsight/prospect-api/internal/data/database"
	"github.com/landsight/prospect-api/internal/data/pgxutil"
	"github.com/landsight/prospect-api/internal/domain/model"
	apperrors "github.com/landsight/prospect-api/internal/errors"
)

// SubmarketRepo provides database operations for submarkets.
type SubmarketRepo struct {
	DB *sql.DB
}

// NewSubmarketRepo creates a new SubmarketRepo.
func NewSubmarketRepo(db *sql.DB) *SubmarketRepo {
	return &SubmarketRepo{DB: db}
}

const submarketSelectQuery = `
	SELECT id, name,
	       COALESCE(ST_Y(ST_Centroid(boundary)), 0) AS centroid_lat,
	       COALESCE(ST_X(ST_Centroid(boundary)), 0) AS centroid_lng,
	       demo, created_at
	FROM submarkets`

// Create inserts a new submarket by name. The boundary geometry is loaded
// out of band (imports), never through the API.
func (r *SubmarketRepo) Create(ctx context.Context, name string, demo bool) (*model.Submarket, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("submarket name is required")
	}

	var out model.Submarket
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO submarkets (name, demo)
			VALUES ($1, $2)
			RETURNING id, name,
			          COALESCE(ST_Y(ST_Centroid(boundary)), 0) AS centroid_lat,
			          COALESCE(ST_X(ST_Centroid(boundary)), 0) AS centroid_lng,
			          demo, created_at`,
			name, demo)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Submarket])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrSubmarketNameExists
		}
		return nil, fmt.Errorf("failed to create submarket: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// GetByName retrieves a submarket by name, case-insensitively.
func (r *SubmarketRepo) GetByName(ctx context.Context, name string) (*model.Submarket, error) {
	var out model.Submarket
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, submarketSelectQuery+` WHERE lower(name) = lower($1)`, strings.TrimSpace(name))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Submarket])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmarketNotFound
		}
		return nil, fmt.Errorf("failed to get submarket by name: %w", apperrors.MapDBError(err))
	}
	return &out, nil
}

// List retrieves all submarkets ordered by name.
func (r *SubmarketRepo) List(ctx context.Context) ([]*model.Submarket, error) {
	var rowsOut []model.Submarket
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, submarketSelectQuery+` ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Submarket])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list submarkets: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Submarket, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListNames returns deduplicated submarket names in insertion order.
// Raw rows may carry whitespace or casing drift from imports; the result is
// normalized through model.UniqueSubmarketNames.
func (r *SubmarketRepo) ListNames(ctx context.Context) ([]string, error) {
	queryOpts := database.NewListQueryOptions("submarkets",
		database.WithColumns("name"),
		database.WithOrderBy("created_at", "ASC"),
	)
	query, args := database.BuildListQuery(queryOpts)

	var names []string
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		names, err = pgx.CollectRows(rows, pgx.RowTo[string])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list submarket names: %w", apperrors.MapDBError(err))
	}

	return model.UniqueSubmarketNames(names), nil
}

// NearestTo returns up to limit submarkets whose boundary lies within
// radiusMeters of the point, nearest first. Submarkets without a boundary
// are excluded.
func (r *SubmarketRepo) NearestTo(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]*model.Submarket, error) {
	if limit <= 0 {
		limit = 10
	}

	var rowsOut []model.Submarket
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, submarketSelectQuery+`
			WHERE boundary IS NOT NULL
			  AND ST_DWithin(boundary::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
			ORDER BY ST_Distance(boundary::geography, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) ASC
			LIMIT $4`,
			lng, lat, radiusMeters, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Submarket])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to query nearest submarkets: %w", apperrors.MapDBError(err))
	}

	res := make([]*model.Submarket, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
