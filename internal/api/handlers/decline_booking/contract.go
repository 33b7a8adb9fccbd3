package decline_booking

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/bookings/models"
)

type BookingService interface {
	Decline(ctx context.Context, bookingID int64, req *models.DeclineBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
