package response

type PolicyAppliedResponse struct {
	ID                   string  `json:"id,omitempty"`
	Name                 string  `json:"name"`
	PolicyType           string  `json:"policy_type"`
	DepositType          string  `json:"deposit_type,omitempty"`
	DepositValue         float64 `json:"deposit_value,omitempty"`
	DueDaysBeforeCheckin *int    `json:"due_days_before_checkin,omitempty"`
}

type PaymentBreakdownResponse struct {
	TotalAmount    float64               `json:"total_amount"`
	PolicyApplied  PolicyAppliedResponse `json:"policy_applied"`
	DueNow         float64               `json:"due_now"`
	DueLater       float64               `json:"due_later"`
	DepositAmount  float64               `json:"deposit_amount"`
	RemainderDueAt *string               `json:"remainder_due_at"`
}

type QuoteResponse struct {
	CampsiteID  string                   `json:"campsite_id"`
	CheckIn     string                   `json:"check_in"`
	CheckOut    string                   `json:"check_out"`
	Nights      int                      `json:"nights"`
	NightlyRate float64                  `json:"nightly_rate"`
	Breakdown   PaymentBreakdownResponse `json:"breakdown"`
}
