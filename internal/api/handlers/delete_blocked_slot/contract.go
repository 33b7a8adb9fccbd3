package delete_blocked_slot

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	UnblockSlot(ctx context.Context, req *models.UnblockSlotRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
