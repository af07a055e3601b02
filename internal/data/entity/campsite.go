package entity

type CampsiteType string

const (
	CampsiteTypeRV    CampsiteType = "rv"
	CampsiteTypeTent  CampsiteType = "tent"
	CampsiteTypeCabin CampsiteType = "cabin"
)

// ValidCampsiteType reports whether t is one of the known site types
func ValidCampsiteType(t CampsiteType) bool {
	switch t {
	case CampsiteTypeRV, CampsiteTypeTent, CampsiteTypeCabin:
		return true
	}
	return false
}

type Campsite struct {
	Base
	Name        string       `db:"name"`
	Code        string       `db:"code"`
	Type        CampsiteType `db:"type"`
	MaxGuests   int          `db:"max_guests"`
	MaxRVLength *float64     `db:"max_rv_length"`
	BaseRate    float64      `db:"base_rate"`
	SortOrder   int          `db:"sort_order"`
	IsActive    bool         `db:"is_active"`
	Notes       string       `db:"notes"`
}
