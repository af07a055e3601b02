package wire

import (
	"campground-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/reservations - book a stay
	r.Post("/api/reservations", reservationHandler.CreateReservation)

	// GET /api/reservations/{code} - look up a booking by confirmation code
	r.Get("/api/reservations/{code}", reservationHandler.GetReservationByCode)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		// GET /api/admin/reservations - paginated list with optional status filter
		r.Get("/", reservationHandler.ListReservations)

		// GET /api/admin/reservations/{id} - full booking details
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// PUT /api/admin/reservations/{id}/status - lifecycle transitions
		r.Put("/{id}/status", reservationHandler.UpdateStatus)

		// PUT /api/admin/reservations/{id}/assign - move or clear the site assignment
		r.Put("/{id}/assign", reservationHandler.AssignCampsite)

		// PUT /api/admin/reservations/{id}/cancel - cancel a forward booking
		r.Put("/{id}/cancel", reservationHandler.CancelReservation)
	})
}
