package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"campground-booking/internal/dto/request"
	"campground-booking/internal/usecase"
	"campground-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (public)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// GetReservationByCode handles GET /api/reservations/{code} (public)
func (h *ReservationHandler) GetReservationByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Confirmation code is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByCode(r.Context(), code)
	if err != nil {
		h.handleServiceError(w, err, "get reservation by code")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ==================== ADMIN METHODS ====================

// ListReservations handles GET /api/admin/reservations
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.ListReservations(r.Context(), query.Get("status"), req)
	if err != nil {
		h.handleServiceError(w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetReservationByID handles GET /api/admin/reservations/{id}
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		h.handleServiceError(w, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// UpdateStatus handles PUT /api/admin/reservations/{id}/status
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), reservationID, &req); err != nil {
		h.handleServiceError(w, err, "update reservation status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AssignCampsite handles PUT /api/admin/reservations/{id}/assign
func (h *ReservationHandler) AssignCampsite(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.AssignCampsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AssignCampsite(r.Context(), reservationID, &req); err != nil {
		h.handleServiceError(w, err, "assign campsite")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CancelReservation handles PUT /api/admin/reservations/{id}/cancel
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.CancelReservation(r.Context(), reservationID); err != nil {
		h.handleServiceError(w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps reservation errors to HTTP responses
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "no campsites available"),
		strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - no availability",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
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
