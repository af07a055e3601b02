package wire

import (
	"campground-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBlackout(r chi.Router, blackoutHandler *adaptor.BlackoutHandler) {
	r.Route("/api/admin/blackouts", func(r chi.Router) {
		// GET /api/admin/blackouts - list administrative holds
		r.Get("/", blackoutHandler.ListBlackouts)

		// POST /api/admin/blackouts - block a date range, site-scoped or global
		r.Post("/", blackoutHandler.CreateBlackout)

		// DELETE /api/admin/blackouts/{id} - lift a hold
		r.Delete("/{id}", blackoutHandler.DeleteBlackout)
	})
}
