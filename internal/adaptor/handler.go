package adaptor

import (
	"campground-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Availability *AvailabilityHandler
	Reservation  *ReservationHandler
	Campsite     *CampsiteHandler
	Blackout     *BlackoutHandler
	Policy       *PolicyHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, service.Pricing, log),
		Reservation:  NewReservationHandler(service.Reservation, log),
		Campsite:     NewCampsiteHandler(service.Campsite, log),
		Blackout:     NewBlackoutHandler(service.Blackout, log),
		Policy:       NewPolicyHandler(service.Policy, log),
	}
}
