package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

func hold(id, userID int64, slot types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, CoachID: 7, UserID: userID, BookingTime: slot, Status: status}
}

func TestCompileSlotStatuses_AllAvailable(t *testing.T) {
	grid := []types.TimeString{"09:00", "10:00", "11:00"}

	slots := compileSlotStatuses(grid, nil, nil)

	require.Len(t, slots, 3)
	for i, s := range slots {
		assert.Equal(t, grid[i], s.Time)
		assert.True(t, s.IsAvailable())
		assert.Nil(t, s.BookingID)
		assert.False(t, s.Mine)
	}
}

func TestCompileSlotStatuses_HeldAndMine(t *testing.T) {
	grid := []types.TimeString{"09:00", "10:00", "11:00"}
	bookings := []*domain.Booking{
		hold(1, 100, "10:00", domain.StatusPending),
		hold(2, 200, "11:00", domain.StatusConfirmed),
	}

	slots := compileSlotStatuses(grid, bookings, ptr.Ptr(int64(100)))

	require.Len(t, slots, 3)
	assert.Equal(t, domain.SlotAvailable, slots[0].State)

	assert.Equal(t, domain.SlotHeld, slots[1].State)
	assert.Equal(t, int64(1), *slots[1].BookingID)
	assert.Equal(t, int64(100), *slots[1].HolderUserID)
	assert.Equal(t, domain.StatusPending, *slots[1].BookingStatus)
	assert.True(t, slots[1].Mine)

	assert.Equal(t, domain.SlotHeld, slots[2].State)
	assert.Equal(t, domain.StatusConfirmed, *slots[2].BookingStatus)
	assert.False(t, slots[2].Mine)
}

func TestCompileSlotStatuses_AnonymousNeverMine(t *testing.T) {
	slots := compileSlotStatuses([]types.TimeString{"10:00"},
		[]*domain.Booking{hold(1, 100, "10:00", domain.StatusPending)}, nil)

	require.Len(t, slots, 1)
	assert.Equal(t, domain.SlotHeld, slots[0].State)
	assert.False(t, slots[0].Mine)
}

func TestCompileSlotStatuses_TerminalBookingsFreeTheSlot(t *testing.T) {
	bookings := []*domain.Booking{
		hold(1, 100, "10:00", domain.StatusDeclined),
		hold(2, 200, "10:00", domain.StatusCancelled),
	}

	slots := compileSlotStatuses([]types.TimeString{"10:00"}, bookings, nil)

	require.Len(t, slots, 1)
	assert.True(t, slots[0].IsAvailable())
}

func TestCompileSlotStatuses_NoDuplicateTimes(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:00", "10:00"}

	slots := compileSlotStatuses(grid, nil, nil)

	seen := map[types.TimeString]bool{}
	for _, s := range slots {
		assert.False(t, seen[s.Time], "duplicate %s", s.Time)
		seen[s.Time] = true
	}
	assert.Len(t, slots, 2)
}

func TestCompileSlotStatuses_BookingOutsideGridIgnored(t *testing.T) {
	slots := compileSlotStatuses([]types.TimeString{"09:00"},
		[]*domain.Booking{hold(1, 100, "15:00", domain.StatusConfirmed)}, nil)

	require.Len(t, slots, 1)
	assert.True(t, slots[0].IsAvailable())
}
