package request

type CreateReservationRequest struct {
	FirstName     string   `json:"first_name" validate:"required,max=100"`
	LastName      string   `json:"last_name" validate:"required,max=100"`
	Address1      string   `json:"address1" validate:"required,max=200"`
	Address2      string   `json:"address2,omitempty" validate:"max=200"`
	City          string   `json:"city" validate:"required,max=100"`
	State         string   `json:"state,omitempty" validate:"max=100"`
	PostalCode    string   `json:"postal_code" validate:"required,max=20"`
	Phone         string   `json:"phone" validate:"required,max=30"`
	Email         string   `json:"email" validate:"required,email"`
	ContactMethod string   `json:"contact_method" validate:"required,oneof=Email Phone Either"`
	CheckIn       string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults        int      `json:"adults" validate:"required,min=1"`
	Children      int      `json:"children" validate:"min=0"`
	CampingUnit   string   `json:"camping_unit" validate:"required,max=50"`
	RVLength      *float64 `json:"rv_length,omitempty" validate:"omitempty,min=0"`
	RVYear        *int     `json:"rv_year,omitempty" validate:"omitempty,min=1900"`
	CampsiteID    *string  `json:"campsite_id,omitempty" validate:"omitempty,uuid4"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled checked_in checked_out no_show"`
}

type AssignCampsiteRequest struct {
	// Null clears the assignment back to unassigned
	CampsiteID *string `json:"campsite_id" validate:"omitempty,uuid4"`
}
