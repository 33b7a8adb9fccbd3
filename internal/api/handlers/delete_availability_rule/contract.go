package delete_availability_rule

import (
	"context"

	"github.com/ninoramishvili/OXY-CoachBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	DeleteRule(ctx context.Context, req *models.DeleteRuleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
