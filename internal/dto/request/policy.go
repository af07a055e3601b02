package request

type CreatePaymentPolicyRequest struct {
	Name                 string   `json:"name" validate:"required,max=100"`
	PolicyType           string   `json:"policy_type" validate:"required,oneof=full deposit"`
	DepositType          string   `json:"deposit_type,omitempty" validate:"omitempty,oneof=percent fixed"`
	DepositValue         float64  `json:"deposit_value,omitempty" validate:"min=0"`
	DueDaysBeforeCheckin *int     `json:"due_days_before_checkin,omitempty" validate:"omitempty,min=0"`
	CampsiteID           *string  `json:"campsite_id,omitempty" validate:"omitempty,uuid4"`
	SiteType             *string  `json:"site_type,omitempty" validate:"omitempty,oneof=rv tent cabin"`
	StartMonth           *int     `json:"start_month,omitempty" validate:"omitempty,min=1,max=12"`
	EndMonth             *int     `json:"end_month,omitempty" validate:"omitempty,min=1,max=12"`
}
