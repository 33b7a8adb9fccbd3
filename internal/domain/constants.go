package domain

// Business validation constants
const (
	SlotDurationMinutes        = 60
	MaxNotesLength             = 500
	MaxReasonLength            = 500
	MaxBlockedSlotReasonLength = 255
	DefaultDeclineReason       = "No reason provided"
	DefaultCancellationReason  = "No reason provided"
	ExpiredCancellationReason  = "Request expired before the coach responded"
	MinDayOfWeek               = 0
	MaxDayOfWeek               = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoldingStatuses статусы, занимающие слот
// Частичный уникальный индекс bookings_active_slot_uniq использует тот же набор
var HoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses терминальные статусы, не занимающие слот
var InactiveStatuses = []BookingStatus{
	StatusDeclined,
	StatusCancelled,
}
