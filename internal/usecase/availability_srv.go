package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/internal/data/repository"
	"campground-booking/internal/dto/request"
	"campground-booking/internal/dto/response"
	"campground-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// MonthlyCalendar computes the day-status sequence for the calendar month
	// containing the given YYYY-MM month.
	MonthlyCalendar(ctx context.Context, month string) (*response.CalendarResponse, error)

	// SearchSites returns the campsites free for the requested stay, in
	// display sort order. An empty result is not an error.
	SearchSites(ctx context.Context, req *request.SearchSitesRequest) ([]response.CampsiteResponse, error)

	// CheckSite answers whether any site can host the stay and which one to
	// recommend. When the requested site is taken but an alternative is free,
	// the alternative is recommended with Substituted set.
	CheckSite(ctx context.Context, req *request.CheckSiteRequest) (*response.SiteAvailabilityResponse, error)
}

type availabilityService struct {
	repo             *repository.Repository
	limitedThreshold int
	log              *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AvailabilityService {
	threshold := config.Booking.LimitedThreshold
	if threshold <= 0 {
		threshold = 3
	}

	return &availabilityService{
		repo:             repo,
		limitedThreshold: threshold,
		log:              log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) MonthlyCalendar(ctx context.Context, month string) (*response.CalendarResponse, error) {
	target, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, fmt.Errorf("invalid month format %s: %w", month, err)
	}

	monthStart, nextMonth := utils.MonthBounds(target)

	// Inactive sites are excluded from capacity entirely
	activeSites, err := s.repo.Campsite.FindActive(ctx, repository.CampsiteFilter{})
	if err != nil {
		s.log.Error("Failed to fetch active campsites for calendar", zap.Error(err))
		return nil, fmt.Errorf("calendar scan: %w", err)
	}

	activeIDs := make(map[uuid.UUID]struct{}, len(activeSites))
	for _, site := range activeSites {
		activeIDs[site.ID] = struct{}{}
	}

	reservations, err := s.repo.Reservation.FindOverlapping(ctx, monthStart, nextMonth, entity.OccupyingStatuses())
	if err != nil {
		s.log.Error("Failed to fetch reservations for calendar", zap.Error(err))
		return nil, fmt.Errorf("calendar scan: %w", err)
	}

	blackouts, err := s.repo.Blackout.FindOverlapping(ctx, monthStart, nextMonth)
	if err != nil {
		s.log.Error("Failed to fetch blackouts for calendar", zap.Error(err))
		return nil, fmt.Errorf("calendar scan: %w", err)
	}

	var days []response.DayStatusResponse
	for day := monthStart; day.Before(nextMonth); day = day.AddDate(0, 0, 1) {
		status := dayStatus(day, activeIDs, reservations, blackouts, s.limitedThreshold)
		days = append(days, response.DayStatusResponse{
			Date:   day.Format(utils.DateLayout),
			Status: status,
		})
	}

	s.log.Info("Calendar computed",
		zap.String("month", month),
		zap.Int("active_sites", len(activeSites)),
		zap.Int("reservations", len(reservations)),
		zap.Int("blackouts", len(blackouts)),
	)

	return &response.CalendarResponse{Month: month, Days: days}, nil
}

func (s *availabilityService) SearchSites(ctx context.Context, req *request.SearchSitesRequest) ([]response.CampsiteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Site search validation failed", zap.Any("errors", errs))
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

	sites, err := s.searchForStay(ctx, checkIn, checkOut, req.Guests, unitTypeFilter(req.CampingUnit), req.RVLength)
	if err != nil {
		return nil, err
	}

	results := make([]response.CampsiteResponse, len(sites))
	for i, site := range sites {
		results[i] = response.CampsiteToResponse(site)
	}

	s.log.Info("Site search completed",
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
		zap.Int("guests", req.Guests),
		zap.Int("matches", len(results)),
	)

	return results, nil
}

func (s *availabilityService) CheckSite(ctx context.Context, req *request.CheckSiteRequest) (*response.SiteAvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Availability check validation failed", zap.Any("errors", errs))
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

	// No type or length filter here: any site that fits the party can host
	sites, err := s.searchForStay(ctx, checkIn, checkOut, req.Guests, nil, nil)
	if err != nil {
		return nil, err
	}

	if len(sites) == 0 {
		return &response.SiteAvailabilityResponse{Available: false}, nil
	}

	recommended := sites[0]
	substituted := false

	if req.CampsiteID != nil {
		requestedID, err := uuid.Parse(*req.CampsiteID)
		if err != nil {
			return nil, fmt.Errorf("invalid campsite ID format %s: %w", *req.CampsiteID, err)
		}

		found := false
		for _, site := range sites {
			if site.ID == requestedID {
				recommended = site
				found = true
				break
			}
		}

		// The preferred site is taken but others are free: recommend the
		// first alternative and flag the swap so the caller can re-confirm
		// with the guest.
		if !found {
			substituted = true
			s.log.Info("Requested campsite unavailable, substituting",
				zap.String("requested", requestedID.String()),
				zap.String("substitute", recommended.ID.String()),
			)
		}
	}

	id := recommended.ID.String()
	return &response.SiteAvailabilityResponse{
		Available:         true,
		RecommendedSiteID: &id,
		Substituted:       substituted,
	}, nil
}

// searchForStay runs the point search: blocked ids from overlapping occupying
// reservations and blackouts, then the active-campsite query filtered down.
// A global blackout over the stay short-circuits to an empty result.
func (s *availabilityService) searchForStay(
	ctx context.Context,
	checkIn, checkOut time.Time,
	guests int,
	typeFilter *entity.CampsiteType,
	rvLength *float64,
) ([]*entity.Campsite, error) {
	blackouts, err := s.repo.Blackout.FindOverlapping(ctx, checkIn, checkOut)
	if err != nil {
		s.log.Error("Failed to fetch blackouts for search", zap.Error(err))
		return nil, fmt.Errorf("site search: %w", err)
	}

	if hasGlobalBlackout(checkIn, checkOut, blackouts) {
		s.log.Info("Global blackout covers requested stay, no sites bookable",
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, nil
	}

	reservations, err := s.repo.Reservation.FindOverlapping(ctx, checkIn, checkOut, entity.OccupyingStatuses())
	if err != nil {
		s.log.Error("Failed to fetch reservations for search", zap.Error(err))
		return nil, fmt.Errorf("site search: %w", err)
	}

	blocked := blockedForStay(checkIn, checkOut, reservations, blackouts)

	candidates, err := s.repo.Campsite.FindActive(ctx, repository.CampsiteFilter{
		MinGuests: guests,
		Type:      typeFilter,
	})
	if err != nil {
		s.log.Error("Failed to fetch candidate campsites", zap.Error(err))
		return nil, fmt.Errorf("site search: %w", err)
	}

	var matches []*entity.Campsite
	for _, site := range candidates {
		if _, taken := blocked[site.ID]; taken {
			continue
		}
		if rvLength != nil && site.MaxRVLength != nil && *site.MaxRVLength < *rvLength {
			continue
		}
		matches = append(matches, site)
	}

	return matches, nil
}

// ==================== PURE HELPERS ====================

// dayStatus classifies one calendar date. A global blackout wins outright;
// otherwise capacity is the active-site count minus the sites blocked by
// assigned reservations (half-open) and scoped blackouts (inclusive).
// Unassigned reservations never reduce capacity.
func dayStatus(
	day time.Time,
	activeIDs map[uuid.UUID]struct{},
	reservations []*entity.Reservation,
	blackouts []*entity.BlackoutDate,
	limitedThreshold int,
) response.DayStatus {
	for _, b := range blackouts {
		if b.IsGlobal() && utils.CoversInclusive(day, b.StartDate, b.EndDate) {
			return response.DayStatusBlackout
		}
	}

	blocked := make(map[uuid.UUID]struct{})
	for _, res := range reservations {
		if res.CampsiteID == nil {
			continue
		}
		if _, active := activeIDs[*res.CampsiteID]; !active {
			continue
		}
		if !day.Before(utils.DateOnly(res.CheckIn)) && day.Before(utils.DateOnly(res.CheckOut)) {
			blocked[*res.CampsiteID] = struct{}{}
		}
	}
	for _, b := range blackouts {
		if b.IsGlobal() {
			continue
		}
		if _, active := activeIDs[*b.CampsiteID]; !active {
			continue
		}
		if utils.CoversInclusive(day, b.StartDate, b.EndDate) {
			blocked[*b.CampsiteID] = struct{}{}
		}
	}

	free := len(activeIDs) - len(blocked)
	switch {
	case free <= 0:
		return response.DayStatusSoldOut
	case free < limitedThreshold:
		return response.DayStatusLimited
	default:
		return response.DayStatusAvailable
	}
}

// hasGlobalBlackout reports whether any global block intersects the half-open
// stay [checkIn, checkOut).
func hasGlobalBlackout(checkIn, checkOut time.Time, blackouts []*entity.BlackoutDate) bool {
	for _, b := range blackouts {
		if b.IsGlobal() && utils.OverlapsInclusive(b.StartDate, b.EndDate, checkIn, checkOut) {
			return true
		}
	}
	return false
}

// blockedForStay collects the campsite ids claimed anywhere in [checkIn,
// checkOut) by occupying reservations or scoped blackouts.
func blockedForStay(checkIn, checkOut time.Time, reservations []*entity.Reservation, blackouts []*entity.BlackoutDate) map[uuid.UUID]struct{} {
	blocked := make(map[uuid.UUID]struct{})

	for _, res := range reservations {
		if res.CampsiteID == nil {
			continue
		}
		if utils.OverlapsHalfOpen(res.CheckIn, res.CheckOut, checkIn, checkOut) {
			blocked[*res.CampsiteID] = struct{}{}
		}
	}

	for _, b := range blackouts {
		if b.IsGlobal() {
			continue
		}
		if utils.OverlapsInclusive(b.StartDate, b.EndDate, checkIn, checkOut) {
			blocked[*b.CampsiteID] = struct{}{}
		}
	}

	return blocked
}

// unitTypeFilter maps the free-text camping unit from the public form to a
// coarse site-type filter. Unrecognized units leave the search unfiltered.
func unitTypeFilter(campingUnit string) *entity.CampsiteType {
	unit := strings.ToLower(campingUnit)
	var t entity.CampsiteType

	switch {
	case unit == "":
		return nil
	case strings.Contains(unit, "rv"),
		strings.Contains(unit, "trailer"),
		strings.Contains(unit, "wheel"),
		strings.Contains(unit, "motorhome"):
		t = entity.CampsiteTypeRV
	case strings.Contains(unit, "tent"):
		t = entity.CampsiteTypeTent
	case strings.Contains(unit, "cabin"):
		t = entity.CampsiteTypeCabin
	default:
		return nil
	}

	return &t
}
