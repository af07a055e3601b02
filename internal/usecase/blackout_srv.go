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

type BlackoutService interface {
	CreateBlackout(ctx context.Context, req *request.CreateBlackoutRequest) (*response.BlackoutResponse, error)
	ListBlackouts(ctx context.Context) ([]response.BlackoutResponse, error)
	DeleteBlackout(ctx context.Context, blackoutID string) error
}

type blackoutService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBlackoutService(repo *repository.Repository, log *zap.Logger) BlackoutService {
	return &blackoutService{
		repo: repo,
		log:  log.With(zap.String("service", "blackout")),
	}
}

func (s *blackoutService) CreateBlackout(ctx context.Context, req *request.CreateBlackoutRequest) (*response.BlackoutResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %s: %w", req.StartDate, err)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %s: %w", req.EndDate, err)
	}
	// Bounds are inclusive, so start == end is a valid one-day block
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end_date before start_date")
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

	blackout := &entity.BlackoutDate{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CampsiteID: campsiteID,
		StartDate:  utils.DateOnly(start),
		EndDate:    utils.DateOnly(end),
		Reason:     req.Reason,
	}

	if err := s.repo.Blackout.Create(ctx, blackout); err != nil {
		return nil, err
	}

	s.log.Info("Blackout created",
		zap.String("blackout_id", blackout.ID.String()),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.Bool("global", blackout.IsGlobal()),
	)

	resp := response.BlackoutToResponse(blackout)
	return &resp, nil
}

func (s *blackoutService) ListBlackouts(ctx context.Context) ([]response.BlackoutResponse, error) {
	blackouts, err := s.repo.Blackout.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}

	results := make([]response.BlackoutResponse, len(blackouts))
	for i, blackout := range blackouts {
		results[i] = response.BlackoutToResponse(blackout)
	}

	return results, nil
}

func (s *blackoutService) DeleteBlackout(ctx context.Context, blackoutID string) error {
	id, err := uuid.Parse(blackoutID)
	if err != nil {
		return fmt.Errorf("invalid blackout ID format %s: %w", blackoutID, err)
	}

	return s.repo.Blackout.Delete(ctx, id)
}
