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

type BlackoutHandler struct {
	service usecase.BlackoutService
	log     *zap.Logger
}

func NewBlackoutHandler(service usecase.BlackoutService, log *zap.Logger) *BlackoutHandler {
	return &BlackoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "blackout")),
	}
}

// CreateBlackout handles POST /api/admin/blackouts
func (h *BlackoutHandler) CreateBlackout(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlackoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	blackout, err := h.service.CreateBlackout(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create blackout")
		return
	}

	utils.ResponseCreated(w, "success", blackout)
}

// ListBlackouts handles GET /api/admin/blackouts
func (h *BlackoutHandler) ListBlackouts(w http.ResponseWriter, r *http.Request) {
	blackouts, err := h.service.ListBlackouts(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list blackouts")
		return
	}

	utils.ResponseSuccess(w, "success", blackouts)
}

// DeleteBlackout handles DELETE /api/admin/blackouts/{id}
func (h *BlackoutHandler) DeleteBlackout(w http.ResponseWriter, r *http.Request) {
	blackoutID := chi.URLParam(r, "id")
	if blackoutID == "" {
		utils.ResponseBadRequest(w, "Blackout ID is required", nil)
		return
	}

	if err := h.service.DeleteBlackout(r.Context(), blackoutID); err != nil {
		h.handleServiceError(w, err, "delete blackout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps blackout errors to HTTP responses
func (h *BlackoutHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input",
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
