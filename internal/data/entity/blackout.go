package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlackoutDate is an administrative hold on a date range. Both bounds are
// inclusive: start == end holds one day. A nil CampsiteID is a global block
// affecting every site.
type BlackoutDate struct {
	BaseSimple
	CampsiteID *uuid.UUID `db:"campsite_id"`
	StartDate  time.Time  `db:"start_date"`
	EndDate    time.Time  `db:"end_date"`
	Reason     string     `db:"reason"`
}

func (b *BlackoutDate) IsGlobal() bool {
	return b.CampsiteID == nil
}
