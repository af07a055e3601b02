package response

import (
	"time"

	"campground-booking/internal/data/entity"
)

type PaymentPolicyResponse struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	PolicyType           entity.PolicyType    `json:"policy_type"`
	DepositType          entity.DepositType   `json:"deposit_type,omitempty"`
	DepositValue         float64              `json:"deposit_value,omitempty"`
	DueDaysBeforeCheckin *int                 `json:"due_days_before_checkin,omitempty"`
	CampsiteID           *string              `json:"campsite_id,omitempty"`
	SiteType             *entity.CampsiteType `json:"site_type,omitempty"`
	StartMonth           *int                 `json:"start_month,omitempty"`
	EndMonth             *int                 `json:"end_month,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
}

func PaymentPolicyToResponse(p *entity.PaymentPolicy) PaymentPolicyResponse {
	resp := PaymentPolicyResponse{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		PolicyType:           p.PolicyType,
		DepositType:          p.DepositType,
		DepositValue:         p.DepositValue,
		DueDaysBeforeCheckin: p.DueDaysBeforeCheckin,
		SiteType:             p.SiteType,
		StartMonth:           p.StartMonth,
		EndMonth:             p.EndMonth,
		CreatedAt:            p.CreatedAt,
	}

	if p.CampsiteID != nil {
		id := p.CampsiteID.String()
		resp.CampsiteID = &id
	}

	return resp
}
