package response

import (
	"time"

	"campground-booking/internal/data/entity"
	"campground-booking/pkg/utils"
)

type BlackoutResponse struct {
	ID         string    `json:"id"`
	CampsiteID *string   `json:"campsite_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func BlackoutToResponse(b *entity.BlackoutDate) BlackoutResponse {
	resp := BlackoutResponse{
		ID:        b.ID.String(),
		StartDate: b.StartDate.Format(utils.DateLayout),
		EndDate:   b.EndDate.Format(utils.DateLayout),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}

	if b.CampsiteID != nil {
		id := b.CampsiteID.String()
		resp.CampsiteID = &id
	}

	return resp
}
