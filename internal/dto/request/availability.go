package request

type SearchSitesRequest struct {
	CheckIn     string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests      int      `json:"guests" validate:"required,min=1"`
	CampingUnit string   `json:"camping_unit,omitempty"`
	RVLength    *float64 `json:"rv_length,omitempty" validate:"omitempty,min=0"`
}

type CheckSiteRequest struct {
	CheckIn    string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests     int     `json:"guests" validate:"required,min=1"`
	CampsiteID *string `json:"campsite_id,omitempty" validate:"omitempty,uuid4"`
}
