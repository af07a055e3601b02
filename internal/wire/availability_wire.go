package wire

import (
	"campground-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	r.Route("/api/availability", func(r chi.Router) {
		// GET /api/availability/calendar?month=YYYY-MM - month view with day statuses
		r.Get("/calendar", availabilityHandler.GetCalendar)

		// GET /api/availability/search - sites free for a stay
		r.Get("/search", availabilityHandler.SearchSites)

		// POST /api/availability/check - single-stay check with recommendation
		r.Post("/check", availabilityHandler.CheckSite)

		// GET /api/availability/quote - price a stay on a site
		r.Get("/quote", availabilityHandler.GetQuote)
	})
}
