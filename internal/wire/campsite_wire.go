package wire

import (
	"campground-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCampsite(r chi.Router, campsiteHandler *adaptor.CampsiteHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/campsites - active sites for the booking flow
	r.Get("/api/campsites", campsiteHandler.ListCampsites)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/campsites", func(r chi.Router) {
		// GET /api/admin/campsites - every site including retired ones
		r.Get("/", campsiteHandler.ListAllCampsites)

		// POST /api/admin/campsites - add a site
		r.Post("/", campsiteHandler.CreateCampsite)

		// GET /api/admin/campsites/{id} - site details
		r.Get("/{id}", campsiteHandler.GetCampsiteByID)

		// PUT /api/admin/campsites/{id} - edit a site
		r.Put("/{id}", campsiteHandler.UpdateCampsite)

		// DELETE /api/admin/campsites/{id} - remove a site with no bookings
		r.Delete("/{id}", campsiteHandler.DeleteCampsite)
	})
}
