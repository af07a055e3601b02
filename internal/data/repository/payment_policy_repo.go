package repository

import (
	"context"
	"fmt"

	"campground-booking/internal/data/entity"
	"campground-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentPolicyRepository interface {
	Create(ctx context.Context, policy *entity.PaymentPolicy) error
	FindAll(ctx context.Context) ([]*entity.PaymentPolicy, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentPolicyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentPolicyRepository(db database.PgxIface, log *zap.Logger) PaymentPolicyRepository {
	return &paymentPolicyRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_policy")),
	}
}

func (r *paymentPolicyRepository) Create(ctx context.Context, policy *entity.PaymentPolicy) error {
	query := `
		INSERT INTO payment_policies (id, name, policy_type, deposit_type, deposit_value, due_days_before_checkin,
			campsite_id, site_type, start_month, end_month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		policy.ID,
		policy.Name,
		policy.PolicyType,
		policy.DepositType,
		policy.DepositValue,
		policy.DueDaysBeforeCheckin,
		policy.CampsiteID,
		policy.SiteType,
		policy.StartMonth,
		policy.EndMonth,
		policy.CreatedAt,
		policy.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment policy",
			zap.Error(err),
			zap.String("name", policy.Name),
		)
		return fmt.Errorf("create payment policy %s: %w", policy.Name, err)
	}

	return nil
}

// FindAll returns every well-formed policy row. Rows with unrecognized type
// strings are logged and dropped so resolution only ever sees valid policies.
func (r *paymentPolicyRepository) FindAll(ctx context.Context) ([]*entity.PaymentPolicy, error) {
	query := `
		SELECT id, name, policy_type, deposit_type, deposit_value, due_days_before_checkin,
		       campsite_id, site_type, start_month, end_month, created_at, updated_at
		FROM payment_policies
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find payment policies", zap.Error(err))
		return nil, fmt.Errorf("find payment policies: %w", err)
	}
	defer rows.Close()

	var policies []*entity.PaymentPolicy
	for rows.Next() {
		var raw entity.PaymentPolicy
		var policyType string
		var depositType *string
		var siteType *string

		err := rows.Scan(
			&raw.ID,
			&raw.Name,
			&policyType,
			&depositType,
			&raw.DepositValue,
			&raw.DueDaysBeforeCheckin,
			&raw.CampsiteID,
			&siteType,
			&raw.StartMonth,
			&raw.EndMonth,
			&raw.CreatedAt,
			&raw.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment policy row", zap.Error(err))
			return nil, fmt.Errorf("scan payment policy row: %w", err)
		}

		dt := ""
		if depositType != nil {
			dt = *depositType
		}

		policy, err := entity.PolicyFromRow(raw, policyType, dt, siteType)
		if err != nil {
			// Malformed config row: skip it, resolution proceeds with the rest
			r.log.Warn("Dropping malformed payment policy row",
				zap.Error(err),
				zap.String("policy_id", raw.ID.String()),
			)
			continue
		}

		policies = append(policies, policy)
	}

	return policies, nil
}

func (r *paymentPolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM payment_policies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete payment policy",
			zap.Error(err),
			zap.String("policy_id", id.String()),
		)
		return fmt.Errorf("delete payment policy %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment policy %s not found", id.String())
	}

	r.log.Info("Payment policy deleted", zap.String("policy_id", id.String()))
	return nil
}
