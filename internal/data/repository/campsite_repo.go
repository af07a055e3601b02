package repository

import (
	"context"
	"fmt"

	"campground-booking/internal/data/entity"
	"campground-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// CampsiteFilter narrows the active-campsite query. Zero values are permissive.
type CampsiteFilter struct {
	MinGuests int
	Type      *entity.CampsiteType
}

type CampsiteRepository interface {
	Create(ctx context.Context, campsite *entity.Campsite) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campsite, error)
	FindAll(ctx context.Context) ([]*entity.Campsite, error)
	FindActive(ctx context.Context, filter CampsiteFilter) ([]*entity.Campsite, error)
	CountActive(ctx context.Context) (int, error)
	Update(ctx context.Context, campsite *entity.Campsite) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type campsiteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCampsiteRepository(db database.PgxIface, log *zap.Logger) CampsiteRepository {
	return &campsiteRepository{
		db:  db,
		log: log.With(zap.String("repository", "campsite")),
	}
}

const campsiteColumns = `id, name, code, type, max_guests, max_rv_length, base_rate, sort_order, is_active, notes, created_at, updated_at`

func scanCampsite(row pgx.Row) (*entity.Campsite, error) {
	var c entity.Campsite
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Code,
		&c.Type,
		&c.MaxGuests,
		&c.MaxRVLength,
		&c.BaseRate,
		&c.SortOrder,
		&c.IsActive,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *campsiteRepository) Create(ctx context.Context, campsite *entity.Campsite) error {
	query := `
		INSERT INTO campsites (id, name, code, type, max_guests, max_rv_length, base_rate, sort_order, is_active, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		campsite.ID,
		campsite.Name,
		campsite.Code,
		campsite.Type,
		campsite.MaxGuests,
		campsite.MaxRVLength,
		campsite.BaseRate,
		campsite.SortOrder,
		campsite.IsActive,
		campsite.Notes,
		campsite.CreatedAt,
		campsite.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create campsite",
			zap.Error(err),
			zap.String("code", campsite.Code),
		)
		return fmt.Errorf("create campsite %s: %w", campsite.Code, err)
	}

	return nil
}

func (r *campsiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campsite, error) {
	query := `SELECT ` + campsiteColumns + ` FROM campsites WHERE id = $1`

	campsite, err := scanCampsite(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find campsite by ID",
			zap.Error(err),
			zap.String("campsite_id", id.String()),
		)
		return nil, fmt.Errorf("find campsite by ID %s: %w", id.String(), err)
	}

	return campsite, nil
}

func (r *campsiteRepository) FindAll(ctx context.Context) ([]*entity.Campsite, error) {
	query := `SELECT ` + campsiteColumns + ` FROM campsites ORDER BY sort_order, code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find campsites", zap.Error(err))
		return nil, fmt.Errorf("find campsites: %w", err)
	}
	defer rows.Close()

	var campsites []*entity.Campsite
	for rows.Next() {
		campsite, err := scanCampsite(rows)
		if err != nil {
			r.log.Error("Failed to scan campsite row", zap.Error(err))
			return nil, fmt.Errorf("scan campsite row: %w", err)
		}
		campsites = append(campsites, campsite)
	}

	return campsites, nil
}

func (r *campsiteRepository) FindActive(ctx context.Context, filter CampsiteFilter) ([]*entity.Campsite, error) {
	query := `SELECT ` + campsiteColumns + ` FROM campsites WHERE is_active = true`
	args := []any{}

	if filter.MinGuests > 0 {
		args = append(args, filter.MinGuests)
		query += fmt.Sprintf(" AND max_guests >= $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	query += " ORDER BY sort_order, code"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find active campsites",
			zap.Error(err),
			zap.Int("min_guests", filter.MinGuests),
		)
		return nil, fmt.Errorf("find active campsites: %w", err)
	}
	defer rows.Close()

	var campsites []*entity.Campsite
	for rows.Next() {
		campsite, err := scanCampsite(rows)
		if err != nil {
			r.log.Error("Failed to scan campsite row", zap.Error(err))
			return nil, fmt.Errorf("scan campsite row: %w", err)
		}
		campsites = append(campsites, campsite)
	}

	return campsites, nil
}

func (r *campsiteRepository) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM campsites WHERE is_active = true`

	var count int
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active campsites", zap.Error(err))
		return 0, fmt.Errorf("count active campsites: %w", err)
	}

	return count, nil
}

func (r *campsiteRepository) Update(ctx context.Context, campsite *entity.Campsite) error {
	query := `
		UPDATE campsites
		SET name = $2, code = $3, type = $4, max_guests = $5, max_rv_length = $6,
		    base_rate = $7, sort_order = $8, is_active = $9, notes = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		campsite.ID,
		campsite.Name,
		campsite.Code,
		campsite.Type,
		campsite.MaxGuests,
		campsite.MaxRVLength,
		campsite.BaseRate,
		campsite.SortOrder,
		campsite.IsActive,
		campsite.Notes,
		campsite.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update campsite",
			zap.Error(err),
			zap.String("campsite_id", campsite.ID.String()),
		)
		return fmt.Errorf("update campsite %s: %w", campsite.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("campsite %s not found", campsite.ID.String())
	}

	return nil
}

func (r *campsiteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM campsites WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete campsite",
			zap.Error(err),
			zap.String("campsite_id", id.String()),
		)
		return fmt.Errorf("delete campsite %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("campsite %s not found", id.String())
	}

	r.log.Info("Campsite deleted", zap.String("campsite_id", id.String()))
	return nil
}
