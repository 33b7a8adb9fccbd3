package create_blocked_slot

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	BlockSlot(ctx context.Context, req *models.BlockSlotRequest) (*models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
