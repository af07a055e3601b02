package repository

import (
	"campground-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Campsite      CampsiteRepository
	Reservation   ReservationRepository
	Blackout      BlackoutRepository
	PaymentPolicy PaymentPolicyRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Campsite:      NewCampsiteRepository(db, log),
		Reservation:   NewReservationRepository(db, log),
		Blackout:      NewBlackoutRepository(db, log),
		PaymentPolicy: NewPaymentPolicyRepository(db, log),
	}
}
