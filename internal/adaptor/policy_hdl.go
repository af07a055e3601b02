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

type PolicyHandler struct {
	service usecase.PolicyService
	log     *zap.Logger
}

func NewPolicyHandler(service usecase.PolicyService, log *zap.Logger) *PolicyHandler {
	return &PolicyHandler{
		service: service,
		log:     log.With(zap.String("handler", "policy")),
	}
}

// CreatePolicy handles POST /api/admin/payment-policies
func (h *PolicyHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	policy, err := h.service.CreatePolicy(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create payment policy")
		return
	}

	utils.ResponseCreated(w, "success", policy)
}

// ListPolicies handles GET /api/admin/payment-policies
func (h *PolicyHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.service.ListPolicies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list payment policies")
		return
	}

	utils.ResponseSuccess(w, "success", policies)
}

// DeletePolicy handles DELETE /api/admin/payment-policies/{id}
func (h *PolicyHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	policyID := chi.URLParam(r, "id")
	if policyID == "" {
		utils.ResponseBadRequest(w, "Policy ID is required", nil)
		return
	}

	if err := h.service.DeletePolicy(r.Context(), policyID); err != nil {
		h.handleServiceError(w, err, "delete payment policy")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps payment policy errors to HTTP responses
func (h *PolicyHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
