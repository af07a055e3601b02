package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusNoShow     ReservationStatus = "no_show"
)

// OccupyingStatuses are the lifecycle states that actively claim a campsite.
// Cancelled, checked-out and no-show reservations never block availability.
func OccupyingStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCheckedIn,
	}
}

// ValidReservationStatus reports whether s is a known lifecycle state
func ValidReservationStatus(s ReservationStatus) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled,
		ReservationStatusCheckedIn, ReservationStatusCheckedOut, ReservationStatusNoShow:
		return true
	}
	return false
}

type Reservation struct {
	Base
	ConfirmationCode string            `db:"confirmation_code"`
	FirstName        string            `db:"first_name"`
	LastName         string            `db:"last_name"`
	Address1         string            `db:"address1"`
	Address2         string            `db:"address2"`
	City             string            `db:"city"`
	State            string            `db:"state"`
	PostalCode       string            `db:"postal_code"`
	Phone            string            `db:"phone"`
	Email            string            `db:"email"`
	ContactMethod    string            `db:"contact_method"`
	CampsiteID       *uuid.UUID        `db:"campsite_id"`
	CheckIn          time.Time         `db:"check_in"`
	CheckOut         time.Time         `db:"check_out"`
	Adults           int               `db:"adults"`
	Children         int               `db:"children"`
	CampingUnit      string            `db:"camping_unit"`
	RVLength         *float64          `db:"rv_length"`
	RVYear           *int              `db:"rv_year"`
	Status           ReservationStatus `db:"status"`
	TotalAmount      float64           `db:"total_amount"`
}

// Guests is the total party size used for capacity checks
func (r *Reservation) Guests() int {
	return r.Adults + r.Children
}
