package request

type CreateCampsiteRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Code        string   `json:"code" validate:"required,max=10"`
	Type        string   `json:"type" validate:"required,oneof=rv tent cabin"`
	MaxGuests   int      `json:"max_guests" validate:"required,min=1"`
	MaxRVLength *float64 `json:"max_rv_length,omitempty" validate:"omitempty,min=0"`
	BaseRate    float64  `json:"base_rate" validate:"required,min=0"`
	SortOrder   int      `json:"sort_order" validate:"min=0"`
	IsActive    *bool    `json:"is_active,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type UpdateCampsiteRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Code        string   `json:"code" validate:"required,max=10"`
	Type        string   `json:"type" validate:"required,oneof=rv tent cabin"`
	MaxGuests   int      `json:"max_guests" validate:"required,min=1"`
	MaxRVLength *float64 `json:"max_rv_length,omitempty" validate:"omitempty,min=0"`
	BaseRate    float64  `json:"base_rate" validate:"required,min=0"`
	SortOrder   int      `json:"sort_order" validate:"min=0"`
	IsActive    bool     `json:"is_active"`
	Notes       string   `json:"notes,omitempty"`
}
