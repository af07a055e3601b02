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

type CampsiteHandler struct {
	service usecase.CampsiteService
	log     *zap.Logger
}

func NewCampsiteHandler(service usecase.CampsiteService, log *zap.Logger) *CampsiteHandler {
	return &CampsiteHandler{
		service: service,
		log:     log.With(zap.String("handler", "campsite")),
	}
}

// ListCampsites handles GET /api/campsites (public, active sites only)
func (h *CampsiteHandler) ListCampsites(w http.ResponseWriter, r *http.Request) {
	campsites, err := h.service.ListActiveCampsites(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list campsites")
		return
	}

	utils.ResponseSuccess(w, "success", campsites)
}

// ==================== ADMIN METHODS ====================

// CreateCampsite handles POST /api/admin/campsites
func (h *CampsiteHandler) CreateCampsite(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCampsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	campsite, err := h.service.CreateCampsite(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create campsite")
		return
	}

	utils.ResponseCreated(w, "success", campsite)
}

// ListAllCampsites handles GET /api/admin/campsites (active and retired)
func (h *CampsiteHandler) ListAllCampsites(w http.ResponseWriter, r *http.Request) {
	campsites, err := h.service.ListCampsites(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list campsites")
		return
	}

	utils.ResponseSuccess(w, "success", campsites)
}

// GetCampsiteByID handles GET /api/admin/campsites/{id}
func (h *CampsiteHandler) GetCampsiteByID(w http.ResponseWriter, r *http.Request) {
	campsiteID := chi.URLParam(r, "id")
	if campsiteID == "" {
		utils.ResponseBadRequest(w, "Campsite ID is required", nil)
		return
	}

	campsite, err := h.service.GetCampsiteByID(r.Context(), campsiteID)
	if err != nil {
		h.handleServiceError(w, err, "get campsite by ID")
		return
	}

	utils.ResponseSuccess(w, "success", campsite)
}

// UpdateCampsite handles PUT /api/admin/campsites/{id}
func (h *CampsiteHandler) UpdateCampsite(w http.ResponseWriter, r *http.Request) {
	campsiteID := chi.URLParam(r, "id")
	if campsiteID == "" {
		utils.ResponseBadRequest(w, "Campsite ID is required", nil)
		return
	}

	var req request.UpdateCampsiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	campsite, err := h.service.UpdateCampsite(r.Context(), campsiteID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update campsite")
		return
	}

	utils.ResponseSuccess(w, "success", campsite)
}

// DeleteCampsite handles DELETE /api/admin/campsites/{id}
func (h *CampsiteHandler) DeleteCampsite(w http.ResponseWriter, r *http.Request) {
	campsiteID := chi.URLParam(r, "id")
	if campsiteID == "" {
		utils.ResponseBadRequest(w, "Campsite ID is required", nil)
		return
	}

	if err := h.service.DeleteCampsite(r.Context(), campsiteID); err != nil {
		h.handleServiceError(w, err, "delete campsite")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps campsite errors to HTTP responses
func (h *CampsiteHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
