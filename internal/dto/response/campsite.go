package response

import (
	"time"

	"campground-booking/internal/data/entity"
)

type CampsiteResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Code        string              `json:"code"`
	Type        entity.CampsiteType `json:"type"`
	MaxGuests   int                 `json:"max_guests"`
	MaxRVLength *float64            `json:"max_rv_length,omitempty"`
	BaseRate    float64             `json:"base_rate"`
	SortOrder   int                 `json:"sort_order"`
	IsActive    bool                `json:"is_active"`
	Notes       string              `json:"notes,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func CampsiteToResponse(c *entity.Campsite) CampsiteResponse {
	return CampsiteResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Code:        c.Code,
		Type:        c.Type,
		MaxGuests:   c.MaxGuests,
		MaxRVLength: c.MaxRVLength,
		BaseRate:    c.BaseRate,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}
