package domain

import (
	"time"

	"github.com/ninoramishvili/OXY-CoachBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeclined  BookingStatus = "declined"
	StatusCancelled BookingStatus = "cancelled"
)

// ActorRole identifies who initiated a booking transition
type ActorRole string

const (
	ActorUser   ActorRole = "user"
	ActorCoach  ActorRole = "coach"
	ActorSystem ActorRole = "system"
)

// IsValid reports whether the role may be supplied by a caller
func (r ActorRole) IsValid() bool {
	return r == ActorUser || r == ActorCoach
}

// Booking represents a coaching session request for one hour slot
type Booking struct {
	ID          int64
	CoachID     int64
	UserID      int64
	BookingDate time.Time
	BookingTime types.TimeString
	Status      BookingStatus
	Notes       *string

	DeclineReason      *string
	CancellationReason *string
	CancelledBy        *ActorRole

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHolding returns true if the booking occupies its slot
func (b *Booking) IsHolding() bool {
	return b.Status.IsHolding()
}

// CanBeConfirmed returns true if the coach may still accept the request
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeDeclined returns true if the coach may still decline the request
func (b *Booking) CanBeDeclined() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.IsHolding()
}

// IsTerminal returns true for declined and cancelled bookings
func (b *Booking) IsTerminal() bool {
	return !b.Status.IsHolding()
}

// IsHolding returns true for statuses that occupy the slot
func (s BookingStatus) IsHolding() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsValid returns true for statuses of the closed enum
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// CoachBookingsFilter фильтр для получения бронирований коуча
type CoachBookingsFilter struct {
	CoachID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклонённые и отменённые
}
