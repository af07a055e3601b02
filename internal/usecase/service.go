package usecase

import (
	"campground-booking/internal/data/repository"
	"campground-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
	Pricing      PricingService
	Reservation  ReservationService
	Campsite     CampsiteService
	Blackout     BlackoutService
	Policy       PolicyService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo, config, log)
	pricing := NewPricingService(repo, log)

	return &Service{
		Availability: availability,
		Pricing:      pricing,
		Reservation:  NewReservationService(repo, availability, pricing, log),
		Campsite:     NewCampsiteService(repo, log),
		Blackout:     NewBlackoutService(repo, log),
		Policy:       NewPolicyService(repo, log),
	}
}
