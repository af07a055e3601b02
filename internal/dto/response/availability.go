package response

// DayStatus is the derived occupancy status of a single calendar date.
// Never persisted; recomputed per request.
type DayStatus string

const (
	DayStatusAvailable DayStatus = "available"
	DayStatusLimited   DayStatus = "limited"
	DayStatusSoldOut   DayStatus = "sold-out"
	DayStatusBlackout  DayStatus = "blackout"
)

type DayStatusResponse struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

type CalendarResponse struct {
	Month string              `json:"month"`
	Days  []DayStatusResponse `json:"days"`
}

// SiteAvailabilityResponse reports the single-candidate check. Substituted is
// set when the requested site was taken and a different free site was
// recommended instead; the caller must re-confirm the swap with the guest.
type SiteAvailabilityResponse struct {
	Available         bool    `json:"available"`
	RecommendedSiteID *string `json:"recommended_site_id"`
	Substituted       bool    `json:"substituted"`
}
