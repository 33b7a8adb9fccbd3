package get_available_slots

import (
	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// compileSlotStatuses накладывает удерживающие бронирования на сетку
// Бронирования на время вне сетки (например, заблокированное после заявки) не отображаются.
func compileSlotStatuses(grid []types.TimeString, bookings []*domain.Booking, requesterID *int64) []domain.SlotStatus {
	holders := make(map[types.TimeString]*domain.Booking, len(bookings))
	for _, b := range bookings {
		if !b.IsHolding() {
			continue
		}
		if _, exists := holders[b.BookingTime]; !exists {
			holders[b.BookingTime] = b
		}
	}

	result := make([]domain.SlotStatus, 0, len(grid))
	seen := make(map[types.TimeString]struct{}, len(grid))

	for _, slot := range grid {
		if _, dup := seen[slot]; dup {
			continue
		}
		seen[slot] = struct{}{}

		holder, held := holders[slot]
		if !held {
			result = append(result, domain.SlotStatus{Time: slot, State: domain.SlotAvailable})
			continue
		}

		status := holder.Status
		result = append(result, domain.SlotStatus{
			Time:          slot,
			State:         domain.SlotHeld,
			BookingID:     ptr.Ptr(holder.ID),
			HolderUserID:  ptr.Ptr(holder.UserID),
			BookingStatus: &status,
			Mine:          requesterID != nil && *requesterID == holder.UserID,
		})
	}

	return result
}
