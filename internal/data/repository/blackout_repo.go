package repository

import (
	"context"
	"fmt"
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BlackoutRepository interface {
	Create(ctx context.Context, blackout *entity.BlackoutDate) error
	FindAll(ctx context.Context) ([]*entity.BlackoutDate, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// FindOverlapping matches blocks against [from, to). Block bounds are
	// inclusive: a block whose end_date equals from still holds that day,
	// while a block starting on the exclusive to date does not.
	FindOverlapping(ctx context.Context, from, to time.Time) ([]*entity.BlackoutDate, error)
}

type blackoutRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlackoutRepository(db database.PgxIface, log *zap.Logger) BlackoutRepository {
	return &blackoutRepository{
		db:  db,
		log: log.With(zap.String("repository", "blackout")),
	}
}

func scanBlackout(row pgx.Row) (*entity.BlackoutDate, error) {
	var b entity.BlackoutDate
	err := row.Scan(
		&b.ID,
		&b.CampsiteID,
		&b.StartDate,
		&b.EndDate,
		&b.Reason,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blackoutRepository) Create(ctx context.Context, blackout *entity.BlackoutDate) error {
	query := `
		INSERT INTO blackout_dates (id, campsite_id, start_date, end_date, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		blackout.ID,
		blackout.CampsiteID,
		blackout.StartDate,
		blackout.EndDate,
		blackout.Reason,
		blackout.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create blackout",
			zap.Error(err),
			zap.Time("start_date", blackout.StartDate),
			zap.Time("end_date", blackout.EndDate),
		)
		return fmt.Errorf("create blackout: %w", err)
	}

	return nil
}

func (r *blackoutRepository) FindAll(ctx context.Context) ([]*entity.BlackoutDate, error) {
	query := `
		SELECT id, campsite_id, start_date, end_date, reason, created_at
		FROM blackout_dates
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find blackouts", zap.Error(err))
		return nil, fmt.Errorf("find blackouts: %w", err)
	}
	defer rows.Close()

	var blackouts []*entity.BlackoutDate
	for rows.Next() {
		blackout, err := scanBlackout(rows)
		if err != nil {
			r.log.Error("Failed to scan blackout row", zap.Error(err))
			return nil, fmt.Errorf("scan blackout row: %w", err)
		}
		blackouts = append(blackouts, blackout)
	}

	return blackouts, nil
}

func (r *blackoutRepository) FindOverlapping(ctx context.Context, from, to time.Time) ([]*entity.BlackoutDate, error) {
	query := `
		SELECT id, campsite_id, start_date, end_date, reason, created_at
		FROM blackout_dates
		WHERE end_date >= $1 AND start_date < $2
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find overlapping blackouts",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find overlapping blackouts: %w", err)
	}
	defer rows.Close()

	var blackouts []*entity.BlackoutDate
	for rows.Next() {
		blackout, err := scanBlackout(rows)
		if err != nil {
			r.log.Error("Failed to scan blackout row", zap.Error(err))
			return nil, fmt.Errorf("scan blackout row: %w", err)
		}
		blackouts = append(blackouts, blackout)
	}

	return blackouts, nil
}

func (r *blackoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM blackout_dates WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete blackout",
			zap.Error(err),
			zap.String("blackout_id", id.String()),
		)
		return fmt.Errorf("delete blackout %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blackout %s not found", id.String())
	}

	r.log.Info("Blackout deleted", zap.String("blackout_id", id.String()))
	return nil
}
