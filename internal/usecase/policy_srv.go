package usecase

import (
	"context"
	"fmt"
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/internal/dto/request"
	"campground-booking/internal/dto/response"
	"campground-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PolicyService interface {
	CreatePolicy(ctx context.Context, req *request.CreatePaymentPolicyRequest) (*response.PaymentPolicyResponse, error)
	ListPolicies(ctx context.Context) ([]response.PaymentPolicyResponse, error)
	DeletePolicy(ctx context.Context, policyID string) error
}

type policyService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPolicyService(repo *repository.Repository, log *zap.Logger) PolicyService {
	return &policyService{
		repo: repo,
		log:  log.With(zap.String("service", "policy")),
	}
}

func (s *policyService) CreatePolicy(ctx context.Context, req *request.CreatePaymentPolicyRequest) (*response.PaymentPolicyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if entity.PolicyType(req.PolicyType) == entity.PolicyTypeDeposit {
		if req.DepositType == "" {
			return nil, fmt.Errorf("validation failed: deposit policy requires deposit_type")
		}
		if req.DepositValue <= 0 {
			return nil, fmt.Errorf("validation failed: deposit policy requires a positive deposit_value")
		}
	}

	// A season window is all-or-nothing
	if (req.StartMonth == nil) != (req.EndMonth == nil) {
		return nil, fmt.Errorf("validation failed: start_month and end_month must be set together")
	}

	var campsiteID *uuid.UUID
	if req.CampsiteID != nil {
		id, err := uuid.Parse(*req.CampsiteID)
		if err != nil {
			return nil, fmt.Errorf("invalid campsite ID format %s: %w", *req.CampsiteID, err)
		}

		campsite, err := s.repo.Campsite.FindByID(ctx, id)
		if err != nil || campsite == nil {
			return nil, fmt.Errorf("campsite %s not found", *req.CampsiteID)
		}
		campsiteID = &id
	}

	var siteType *entity.CampsiteType
	if req.SiteType != nil {
		st := entity.CampsiteType(*req.SiteType)
		siteType = &st
	}

	now := time.Now()
	policy := &entity.PaymentPolicy{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:                 req.Name,
		PolicyType:           entity.PolicyType(req.PolicyType),
		DepositType:          entity.DepositType(req.DepositType),
		DepositValue:         req.DepositValue,
		DueDaysBeforeCheckin: req.DueDaysBeforeCheckin,
		CampsiteID:           campsiteID,
		SiteType:             siteType,
		StartMonth:           req.StartMonth,
		EndMonth:             req.EndMonth,
	}

	if err := s.repo.PaymentPolicy.Create(ctx, policy); err != nil {
		return nil, err
	}

	s.log.Info("Payment policy created",
		zap.String("policy_id", policy.ID.String()),
		zap.String("name", policy.Name),
		zap.String("policy_type", req.PolicyType),
	)

	resp := response.PaymentPolicyToResponse(policy)
	return &resp, nil
}

func (s *policyService) ListPolicies(ctx context.Context) ([]response.PaymentPolicyResponse, error) {
	policies, err := s.repo.PaymentPolicy.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payment policies: %w", err)
	}

	results := make([]response.PaymentPolicyResponse, len(policies))
	for i, policy := range policies {
		results[i] = response.PaymentPolicyToResponse(policy)
	}

	return results, nil
}

func (s *policyService) DeletePolicy(ctx context.Context, policyID string) error {
	id, err := uuid.Parse(policyID)
	if err != nil {
		return fmt.Errorf("invalid policy ID format %s: %w", policyID, err)
	}

	return s.repo.PaymentPolicy.Delete(ctx, id)
}
