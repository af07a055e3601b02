package request

type CreateBlackoutRequest struct {
	// Null campsite_id creates a global block affecting every site
	CampsiteID *string `json:"campsite_id,omitempty" validate:"omitempty,uuid4"`
	StartDate  string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string  `json:"reason,omitempty" validate:"max=500"`
}
