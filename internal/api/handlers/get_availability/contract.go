package get_availability

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeeklyTemplate(ctx context.Context, coachID int64) (*models.WeeklyTemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
