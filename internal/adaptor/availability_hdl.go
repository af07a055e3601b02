package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"campground-booking/internal/dto/request"
	"campground-booking/internal/usecase"
	"campground-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	availability usecase.AvailabilityService
	pricing      usecase.PricingService
	log          *zap.Logger
}

func NewAvailabilityHandler(availability usecase.AvailabilityService, pricing usecase.PricingService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
		pricing:      pricing,
		log:          log.With(zap.String("handler", "availability")),
	}
}

// GetCalendar handles GET /api/availability/calendar?month=YYYY-MM
func (h *AvailabilityHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		utils.ResponseBadRequest(w, "month query parameter is required (YYYY-MM)", nil)
		return
	}

	calendar, err := h.availability.MonthlyCalendar(r.Context(), month)
	if err != nil {
		h.handleServiceError(w, err, "get calendar")
		return
	}

	utils.ResponseSuccess(w, "success", calendar)
}

// SearchSites handles GET /api/availability/search
func (h *AvailabilityHandler) SearchSites(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.SearchSitesRequest{
		CheckIn:     query.Get("check_in"),
		CheckOut:    query.Get("check_out"),
		Guests:      utils.ParseInt(query.Get("guests"), 1),
		CampingUnit: query.Get("camping_unit"),
		RVLength:    utils.ParseFloat(query.Get("rv_length")),
	}

	sites, err := h.availability.SearchSites(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "search sites")
		return
	}

	utils.ResponseSuccess(w, "success", sites)
}

// CheckSite handles POST /api/availability/check
func (h *AvailabilityHandler) CheckSite(w http.ResponseWriter, r *http.Request) {
	var req request.CheckSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.availability.CheckSite(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "check site")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// GetQuote handles GET /api/availability/quote?campsite_id&check_in&check_out
func (h *AvailabilityHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	campsiteID := query.Get("campsite_id")
	if campsiteID == "" {
		utils.ResponseBadRequest(w, "campsite_id query parameter is required", nil)
		return
	}

	quote, err := h.pricing.Quote(r.Context(), campsiteID, query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		h.handleServiceError(w, err, "quote stay")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// handleServiceError maps availability errors to HTTP responses
func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
