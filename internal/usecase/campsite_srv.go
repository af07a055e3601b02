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

type CampsiteService interface {
	CreateCampsite(ctx context.Context, req *request.CreateCampsiteRequest) (*response.CampsiteResponse, error)
	GetCampsiteByID(ctx context.Context, campsiteID string) (*response.CampsiteResponse, error)
	ListCampsites(ctx context.Context) ([]response.CampsiteResponse, error)
	ListActiveCampsites(ctx context.Context) ([]response.CampsiteResponse, error)
	UpdateCampsite(ctx context.Context, campsiteID string, req *request.UpdateCampsiteRequest) (*response.CampsiteResponse, error)
	DeleteCampsite(ctx context.Context, campsiteID string) error
}

type campsiteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCampsiteService(repo *repository.Repository, log *zap.Logger) CampsiteService {
	return &campsiteService{
		repo: repo,
		log:  log.With(zap.String("service", "campsite")),
	}
}

func (s *campsiteService) CreateCampsite(ctx context.Context, req *request.CreateCampsiteRequest) (*response.CampsiteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// New sites default to active unless the request says otherwise
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	campsite := &entity.Campsite{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Code:        req.Code,
		Type:        entity.CampsiteType(req.Type),
		MaxGuests:   req.MaxGuests,
		MaxRVLength: req.MaxRVLength,
		BaseRate:    req.BaseRate,
		SortOrder:   req.SortOrder,
		IsActive:    isActive,
		Notes:       req.Notes,
	}

	if err := s.repo.Campsite.Create(ctx, campsite); err != nil {
		return nil, err
	}

	s.log.Info("Campsite created",
		zap.String("campsite_id", campsite.ID.String()),
		zap.String("code", campsite.Code),
		zap.String("type", string(campsite.Type)),
	)

	resp := response.CampsiteToResponse(campsite)
	return &resp, nil
}

func (s *campsiteService) GetCampsiteByID(ctx context.Context, campsiteID string) (*response.CampsiteResponse, error) {
	id, err := uuid.Parse(campsiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid campsite ID format %s: %w", campsiteID, err)
	}

	campsite, err := s.repo.Campsite.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campsite: %w", err)
	}
	if campsite == nil {
		return nil, fmt.Errorf("campsite %s not found", campsiteID)
	}

	resp := response.CampsiteToResponse(campsite)
	return &resp, nil
}

func (s *campsiteService) ListCampsites(ctx context.Context) ([]response.CampsiteResponse, error) {
	campsites, err := s.repo.Campsite.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campsites: %w", err)
	}

	return campsitesToResponses(campsites), nil
}

func (s *campsiteService) ListActiveCampsites(ctx context.Context) ([]response.CampsiteResponse, error) {
	campsites, err := s.repo.Campsite.FindActive(ctx, repository.CampsiteFilter{})
	if err != nil {
		return nil, fmt.Errorf("list active campsites: %w", err)
	}

	return campsitesToResponses(campsites), nil
}

func (s *campsiteService) UpdateCampsite(ctx context.Context, campsiteID string, req *request.UpdateCampsiteRequest) (*response.CampsiteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(campsiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid campsite ID format %s: %w", campsiteID, err)
	}

	campsite, err := s.repo.Campsite.FindByID(ctx, id)
	if err != nil || campsite == nil {
		return nil, fmt.Errorf("campsite %s not found", campsiteID)
	}

	campsite.Name = req.Name
	campsite.Code = req.Code
	campsite.Type = entity.CampsiteType(req.Type)
	campsite.MaxGuests = req.MaxGuests
	campsite.MaxRVLength = req.MaxRVLength
	campsite.BaseRate = req.BaseRate
	campsite.SortOrder = req.SortOrder
	campsite.IsActive = req.IsActive
	campsite.Notes = req.Notes
	campsite.UpdatedAt = time.Now()

	if err := s.repo.Campsite.Update(ctx, campsite); err != nil {
		return nil, err
	}

	s.log.Info("Campsite updated",
		zap.String("campsite_id", campsiteID),
		zap.String("code", campsite.Code),
		zap.Bool("is_active", campsite.IsActive),
	)

	resp := response.CampsiteToResponse(campsite)
	return &resp, nil
}

func (s *campsiteService) DeleteCampsite(ctx context.Context, campsiteID string) error {
	id, err := uuid.Parse(campsiteID)
	if err != nil {
		return fmt.Errorf("invalid campsite ID format %s: %w", campsiteID, err)
	}

	// Sites with reservation history are deactivated, not deleted, so past
	// bookings keep their site reference.
	overlapping, err := s.repo.Reservation.FindOverlapping(ctx,
		time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC),
		entity.OccupyingStatuses(),
	)
	if err != nil {
		return fmt.Errorf("check campsite reservations: %w", err)
	}
	for _, res := range overlapping {
		if res.CampsiteID != nil && *res.CampsiteID == id {
			return fmt.Errorf("campsite %s has active reservations, cannot delete", campsiteID)
		}
	}

	return s.repo.Campsite.Delete(ctx, id)
}

func campsitesToResponses(campsites []*entity.Campsite) []response.CampsiteResponse {
	results := make([]response.CampsiteResponse, len(campsites))
	for i, campsite := range campsites {
		results[i] = response.CampsiteToResponse(campsite)
	}
	return results
}
