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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByConfirmationCode(ctx context.Context, code string) (*entity.Reservation, error)
	FindAll(ctx context.Context, status *entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error)
	Count(ctx context.Context, status *entity.ReservationStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindOverlapping(ctx context.Context, from, to time.Time, statuses []entity.ReservationStatus) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error
	AssignCampsite(ctx context.Context, reservationID uuid.UUID, campsiteID *uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, confirmation_code, first_name, last_name, address1, address2, city, state, postal_code,
	phone, email, contact_method, campsite_id, check_in, check_out, adults, children,
	camping_unit, rv_length, rv_year, status, total_amount, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.ConfirmationCode,
		&res.FirstName,
		&res.LastName,
		&res.Address1,
		&res.Address2,
		&res.City,
		&res.State,
		&res.PostalCode,
		&res.Phone,
		&res.Email,
		&res.ContactMethod,
		&res.CampsiteID,
		&res.CheckIn,
		&res.CheckOut,
		&res.Adults,
		&res.Children,
		&res.CampingUnit,
		&res.RVLength,
		&res.RVYear,
		&res.Status,
		&res.TotalAmount,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, confirmation_code, first_name, last_name, address1, address2, city, state, postal_code,
			phone, email, contact_method, campsite_id, check_in, check_out, adults, children,
			camping_unit, rv_length, rv_year, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.ConfirmationCode,
		reservation.FirstName,
		reservation.LastName,
		reservation.Address1,
		reservation.Address2,
		reservation.City,
		reservation.State,
		reservation.PostalCode,
		reservation.Phone,
		reservation.Email,
		reservation.ContactMethod,
		reservation.CampsiteID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Adults,
		reservation.Children,
		reservation.CampingUnit,
		reservation.RVLength,
		reservation.RVYear,
		reservation.Status,
		reservation.TotalAmount,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("confirmation_code", reservation.ConfirmationCode),
			zap.String("email", reservation.Email),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.ConfirmationCode, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByConfirmationCode(ctx context.Context, code string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE confirmation_code = $1`

	reservation, err := scanReservation(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by confirmation code",
			zap.Error(err),
			zap.String("confirmation_code", code),
		)
		return nil, fmt.Errorf("find reservation by confirmation code %s: %w", code, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, status *entity.ReservationStatus, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []any{}

	if status != nil {
		args = append(args, *status)
		query += " WHERE status = $1"
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY check_in, created_at LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find reservations",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context, status *entity.ReservationStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations`
	args := []any{}

	if status != nil {
		args = append(args, *status)
		query += " WHERE status = $1"
	}

	var count int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

// FindOverlapping returns reservations in the given statuses whose stay
// intersects [from, to) under the half-open convention: an existing stay
// overlaps iff check_out > from AND check_in < to. The checkout day never
// blocks.
func (r *reservationRepository) FindOverlapping(ctx context.Context, from, to time.Time, statuses []entity.ReservationStatus) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = ANY($1) AND check_out > $2 AND check_in < $3
	`

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	rows, err := r.db.Query(ctx, query, statusStrings, from, to)
	if err != nil {
		r.log.Error("Failed to find overlapping reservations",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find overlapping reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, reservationID, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", reservationID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func (r *reservationRepository) AssignCampsite(ctx context.Context, reservationID uuid.UUID, campsiteID *uuid.UUID) error {
	query := `UPDATE reservations SET campsite_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, reservationID, campsiteID)
	if err != nil {
		r.log.Error("Failed to assign campsite",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return fmt.Errorf("assign campsite for reservation %s: %w", reservationID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}
