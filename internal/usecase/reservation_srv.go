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

type ReservationService interface {
	// Public booking flow
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByCode(ctx context.Context, code string) (*response.ReservationResponse, error)

	// Admin endpoints
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	UpdateStatus(ctx context.Context, reservationID string, req *request.UpdateReservationStatusRequest) error
	AssignCampsite(ctx context.Context, reservationID string, req *request.AssignCampsiteRequest) error
	CancelReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo         *repository.Repository
	availability AvailabilityService
	pricing      PricingService
	log          *zap.Logger
}

func NewReservationService(repo *repository.Repository, availability AvailabilityService, pricing PricingService, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:         repo,
		availability: availability,
		pricing:      pricing,
		log:          log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check_in date %s: %w", req.CheckIn, err)
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check_out date %s: %w", req.CheckOut, err)
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("invalid stay: check-out must be after check-in")
	}

	// Find a site for the stay. The read is advisory only: the write-time
	// overlap constraint on the reservations table settles concurrent bookings.
	check, err := s.availability.CheckSite(ctx, &request.CheckSiteRequest{
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Adults + req.Children,
		CampsiteID: req.CampsiteID,
	})
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	if !check.Available {
		return nil, fmt.Errorf("no campsites available for %s to %s", req.CheckIn, req.CheckOut)
	}

	campsiteID, err := uuid.Parse(*check.RecommendedSiteID)
	if err != nil {
		return nil, fmt.Errorf("invalid recommended site ID %s: %w", *check.RecommendedSiteID, err)
	}

	campsite, err := s.repo.Campsite.FindByID(ctx, campsiteID)
	if err != nil || campsite == nil {
		return nil, fmt.Errorf("campsite %s not found", campsiteID.String())
	}

	// Price the stay and resolve the payment policy
	nights := utils.Nights(checkIn, checkOut)
	total := utils.Round2(campsite.BaseRate * float64(nights))

	policy := s.pricing.ResolvePolicy(ctx, campsite.ID, campsite.Type, checkIn)
	breakdown := ComputeBreakdown(total, policy, checkIn)

	now := time.Now()
	reservation := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ConfirmationCode: utils.GenerateConfirmationCode(),
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Address1:         req.Address1,
		Address2:         req.Address2,
		City:             req.City,
		State:            req.State,
		PostalCode:       req.PostalCode,
		Phone:            req.Phone,
		Email:            req.Email,
		ContactMethod:    req.ContactMethod,
		CampsiteID:       &campsiteID,
		CheckIn:          utils.DateOnly(checkIn),
		CheckOut:         utils.DateOnly(checkOut),
		Adults:           req.Adults,
		Children:         req.Children,
		CampingUnit:      req.CampingUnit,
		RVLength:         req.RVLength,
		RVYear:           req.RVYear,
		Status:           entity.ReservationStatusPending,
		TotalAmount:      total,
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("email", req.Email),
			zap.String("check_in", req.CheckIn),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("confirmation_code", reservation.ConfirmationCode),
		zap.String("campsite_code", campsite.Code),
		zap.Int("nights", nights),
		zap.Float64("total", total),
		zap.Bool("substituted", check.Substituted),
	)

	resp := response.ReservationToResponse(reservation, campsite)
	resp.Substituted = check.Substituted
	breakdownResp := breakdown.ToResponse()
	resp.Breakdown = &breakdownResp

	return &resp, nil
}

func (s *reservationService) GetReservationByCode(ctx context.Context, code string) (*response.ReservationResponse, error) {
	reservation, err := s.repo.Reservation.FindByConfirmationCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("get reservation by code: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", code)
	}

	return s.buildReservationResponse(ctx, reservation), nil
}

// ==================== ADMIN METHODS ====================

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s not found", reservationID)
	}

	return s.buildReservationResponse(ctx, reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	var statusFilter *entity.ReservationStatus
	if status != "" {
		st := entity.ReservationStatus(status)
		if !entity.ValidReservationStatus(st) {
			return nil, fmt.Errorf("invalid status filter %s", status)
		}
		statusFilter = &st
	}

	limit := req.Limit()
	offset := req.Offset()

	reservations, err := s.repo.Reservation.FindAll(ctx, statusFilter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count reservations", zap.Error(err))
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	results := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		results[i] = *s.buildReservationResponse(ctx, reservation)
	}

	s.log.Info("Reservations listed",
		zap.Int("count", len(results)),
		zap.Int64("total", total),
		zap.String("status_filter", status),
	)

	return response.NewPaginatedResponse(results, req.Page, req.PerPage, total), nil
}

func (s *reservationService) UpdateStatus(ctx context.Context, reservationID string, req *request.UpdateReservationStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return fmt.Errorf("reservation %s not found", reservationID)
	}

	status := entity.ReservationStatus(req.Status)
	if err := s.repo.Reservation.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update reservation %s status: %w", reservationID, err)
	}

	s.log.Info("Reservation status updated",
		zap.String("reservation_id", reservationID),
		zap.String("from", string(reservation.Status)),
		zap.String("to", req.Status),
	)

	return nil
}

func (s *reservationService) AssignCampsite(ctx context.Context, reservationID string, req *request.AssignCampsiteRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return fmt.Errorf("reservation %s not found", reservationID)
	}

	// Clearing the assignment is always allowed
	if req.CampsiteID == nil {
		if err := s.repo.Reservation.AssignCampsite(ctx, id, nil); err != nil {
			return fmt.Errorf("unassign campsite: %w", err)
		}
		s.log.Info("Reservation unassigned", zap.String("reservation_id", reservationID))
		return nil
	}

	campsiteID, err := uuid.Parse(*req.CampsiteID)
	if err != nil {
		return fmt.Errorf("invalid campsite ID format %s: %w", *req.CampsiteID, err)
	}

	// The target site must be free over the stay; exclude this reservation's
	// own claim so reassigning to the same site is a no-op, not a conflict.
	free, err := s.campsiteFreeForStay(ctx, campsiteID, reservation)
	if err != nil {
		return err
	}
	if !free {
		return fmt.Errorf("campsite %s is already booked for those dates", *req.CampsiteID)
	}

	if err := s.repo.Reservation.AssignCampsite(ctx, id, &campsiteID); err != nil {
		s.log.Error("Failed to assign campsite",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
			zap.String("campsite_id", *req.CampsiteID),
		)
		return fmt.Errorf("assign campsite: %w", err)
	}

	s.log.Info("Campsite assigned",
		zap.String("reservation_id", reservationID),
		zap.String("campsite_id", *req.CampsiteID),
	)

	return nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil || reservation == nil {
		return fmt.Errorf("reservation %s not found", reservationID)
	}

	// Only forward states can be cancelled
	if reservation.Status != entity.ReservationStatusPending && reservation.Status != entity.ReservationStatusConfirmed {
		return fmt.Errorf("reservation status is %s, cannot cancel", reservation.Status)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, entity.ReservationStatusCancelled); err != nil {
		s.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("confirmation_code", reservation.ConfirmationCode),
	)

	return nil
}

// ==================== HELPER METHODS ====================

// campsiteFreeForStay checks the target site against every other occupying
// claim and blackout over the reservation's stay.
func (s *reservationService) campsiteFreeForStay(ctx context.Context, campsiteID uuid.UUID, reservation *entity.Reservation) (bool, error) {
	campsite, err := s.repo.Campsite.FindByID(ctx, campsiteID)
	if err != nil || campsite == nil {
		return false, fmt.Errorf("campsite %s not found", campsiteID.String())
	}
	if !campsite.IsActive {
		return false, fmt.Errorf("campsite %s is not active", campsite.Code)
	}

	blackouts, err := s.repo.Blackout.FindOverlapping(ctx, reservation.CheckIn, reservation.CheckOut)
	if err != nil {
		return false, fmt.Errorf("check campsite availability: %w", err)
	}
	if hasGlobalBlackout(reservation.CheckIn, reservation.CheckOut, blackouts) {
		return false, nil
	}

	overlapping, err := s.repo.Reservation.FindOverlapping(ctx, reservation.CheckIn, reservation.CheckOut, entity.OccupyingStatuses())
	if err != nil {
		return false, fmt.Errorf("check campsite availability: %w", err)
	}

	others := overlapping[:0:0]
	for _, other := range overlapping {
		if other.ID != reservation.ID {
			others = append(others, other)
		}
	}

	blocked := blockedForStay(reservation.CheckIn, reservation.CheckOut, others, blackouts)
	_, taken := blocked[campsiteID]
	return !taken, nil
}

func (s *reservationService) buildReservationResponse(ctx context.Context, reservation *entity.Reservation) *response.ReservationResponse {
	var campsite *entity.Campsite
	if reservation.CampsiteID != nil {
		campsite, _ = s.repo.Campsite.FindByID(ctx, *reservation.CampsiteID)
	}

	resp := response.ReservationToResponse(reservation, campsite)
	return &resp
}
