package domain

import "github.com/ninoramishvili/OXY-CoachBooking/pkg/types"

// SlotState classification of a grid slot
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotHeld      SlotState = "held"
)

// SlotStatus is one hour of the per-day grid overlaid with the booking that holds it
type SlotStatus struct {
	Time  types.TimeString
	State SlotState

	// Заполняются только для занятых слотов
	BookingID     *int64
	HolderUserID  *int64
	BookingStatus *BookingStatus

	// Mine is true when the holder is the requesting user
	Mine bool
}

// IsAvailable returns true if the slot can be requested
func (s *SlotStatus) IsAvailable() bool {
	return s.State == SlotAvailable
}
