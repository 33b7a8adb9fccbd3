package domain

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// AvailabilityRule is the coach's recurring working window for one weekday.
// At most one rule exists per (coach, day of week).
type AvailabilityRule struct {
	ID          int64
	CoachID     int64
	DayOfWeek   time.Weekday // 0 = Sunday
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsWorkingDay returns true if the rule opens the day for bookings
func (r *AvailabilityRule) IsWorkingDay() bool {
	return r != nil && r.IsAvailable
}

// BlockedSlot removes one specific hour from an otherwise open day
type BlockedSlot struct {
	ID          int64
	CoachID     int64
	BlockedDate time.Time
	BlockedTime types.TimeString
	Reason      string
	CreatedAt   time.Time
}
