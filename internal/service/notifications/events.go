package notifications

import (
	"fmt"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/domain"
	"github.com/ninoramishvili/OXY-CoachBooking/pkg/ptr"
)

// NewBookingRequested уведомление коучу о новой заявке
func NewBookingRequested(b *domain.Booking) *domain.Notification {
	return &domain.Notification{
		CoachID:       b.CoachID,
		UserID:        b.UserID,
		RecipientRole: domain.RecipientCoach,
		Type:          domain.NotificationNewBooking,
		Title:         "New booking request",
		Message: fmt.Sprintf("User %d requested a session on %s at %s",
			b.UserID, b.BookingDate.Format(domain.DateFormat), b.BookingTime),
		BookingID: ptr.Ptr(b.ID),
	}
}

// NewBookingCancelledByCoach уведомление пользователю об отмене коучем
func NewBookingCancelledByCoach(b *domain.Booking) *domain.Notification {
	reason := ptr.Value(b.CancellationReason, domain.DefaultCancellationReason)

	return &domain.Notification{
		CoachID:       b.CoachID,
		UserID:        b.UserID,
		RecipientRole: domain.RecipientUser,
		Type:          domain.NotificationBookingCancelled,
		Title:         "Booking cancelled by coach",
		Message: fmt.Sprintf("Your session on %s at %s was cancelled. Reason: %s",
			b.BookingDate.Format(domain.DateFormat), b.BookingTime, reason),
		BookingID: ptr.Ptr(b.ID),
	}
}

// NewBookingExpired уведомление пользователю о заявке, на которую коуч не ответил вовремя
func NewBookingExpired(b *domain.Booking) *domain.Notification {
	return &domain.Notification{
		CoachID:       b.CoachID,
		UserID:        b.UserID,
		RecipientRole: domain.RecipientUser,
		Type:          domain.NotificationBookingExpired,
		Title:         "Booking request expired",
		Message: fmt.Sprintf("Your request for %s at %s expired before the coach responded",
			b.BookingDate.Format(domain.DateFormat), b.BookingTime),
		BookingID: ptr.Ptr(b.ID),
	}
}
