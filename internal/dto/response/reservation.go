package response

import (
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/pkg/utils"
)

type ReservationResponse struct {
	ID               string                    `json:"id"`
	ConfirmationCode string                    `json:"confirmation_code"`
	FirstName        string                    `json:"first_name"`
	LastName         string                    `json:"last_name"`
	Email            string                    `json:"email"`
	Phone            string                    `json:"phone"`
	ContactMethod    string                    `json:"contact_method"`
	CampsiteID       *string                   `json:"campsite_id"`
	CampsiteCode     string                    `json:"campsite_code,omitempty"`
	CheckIn          string                    `json:"check_in"`
	CheckOut         string                    `json:"check_out"`
	Adults           int                       `json:"adults"`
	Children         int                       `json:"children"`
	CampingUnit      string                    `json:"camping_unit"`
	RVLength         *float64                  `json:"rv_length,omitempty"`
	Status           entity.ReservationStatus  `json:"status"`
	TotalAmount      float64                   `json:"total_amount"`
	Substituted      bool                      `json:"substituted,omitempty"`
	Breakdown        *PaymentBreakdownResponse `json:"breakdown,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
}

func ReservationToResponse(res *entity.Reservation, campsite *entity.Campsite) ReservationResponse {
	resp := ReservationResponse{
		ID:               res.ID.String(),
		ConfirmationCode: res.ConfirmationCode,
		FirstName:        res.FirstName,
		LastName:         res.LastName,
		Email:            res.Email,
		Phone:            res.Phone,
		ContactMethod:    res.ContactMethod,
		CheckIn:          res.CheckIn.Format(utils.DateLayout),
		CheckOut:         res.CheckOut.Format(utils.DateLayout),
		Adults:           res.Adults,
		Children:         res.Children,
		CampingUnit:      res.CampingUnit,
		RVLength:         res.RVLength,
		Status:           res.Status,
		TotalAmount:      res.TotalAmount,
		CreatedAt:        res.CreatedAt,
	}

	if res.CampsiteID != nil {
		id := res.CampsiteID.String()
		resp.CampsiteID = &id
	}
	if campsite != nil {
		resp.CampsiteCode = campsite.Code
	}

	return resp
}
