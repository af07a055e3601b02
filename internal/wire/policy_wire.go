package wire

import (
	"campground-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePolicy(r chi.Router, policyHandler *adaptor.PolicyHandler) {
	r.Route("/api/admin/payment-policies", func(r chi.Router) {
		// GET /api/admin/payment-policies - list pricing rules
		r.Get("/", policyHandler.ListPolicies)

		// POST /api/admin/payment-policies - add a pricing rule
		r.Post("/", policyHandler.CreatePolicy)

		// DELETE /api/admin/payment-policies/{id} - retire a pricing rule
		r.Delete("/{id}", policyHandler.DeletePolicy)
	})
}
